package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all repository instances
type Repositories struct {
	UserRepository       *UserRepository
	NoticeRepository     *NoticeRepository
	JobRepository        *JobRepository
	StudyPlanRepository  *StudyPlanRepository
	MaterialRepository   *MaterialRepository
	AssessmentRepository *AssessmentRepository
	CalendarRepository   *CalendarRepository
}

// NewRepositories creates all repositories backed by the given pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		NoticeRepository:     NewNoticeRepository(db),
		JobRepository:        NewJobRepository(db),
		StudyPlanRepository:  NewStudyPlanRepository(db),
		MaterialRepository:   NewMaterialRepository(db),
		AssessmentRepository: NewAssessmentRepository(db),
		CalendarRepository:   NewCalendarRepository(db),
	}
}
