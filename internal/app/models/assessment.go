package models

import "time"

// Question is a single multiple-choice question. CorrectAnswer indexes
// into Options.
type Question struct {
	ID            int64    `json:"id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

// Assessment is a seeded, static skill assessment.
type Assessment struct {
	ID          int64      `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	Questions   []Question `json:"questions" db:"questions_json"`
}

// Score grades the answer map (question id -> chosen option index) against
// the answer key. It is total: unanswered questions and out-of-range option
// indices count as incorrect rather than producing an error. The returned
// total is always the number of questions.
func (a *Assessment) Score(answers map[int64]int) (score, total int) {
	total = len(a.Questions)
	for _, q := range a.Questions {
		if chosen, ok := answers[q.ID]; ok && chosen == q.CorrectAnswer {
			score++
		}
	}
	return score, total
}

// AssessmentResult records one submission. Results are append-only and
// immutable; there is no attempt limit.
type AssessmentResult struct {
	ID           int64     `json:"id" db:"id"`
	UserID       int64     `json:"user_id" db:"user_id"`
	AssessmentID int64     `json:"assessment_id" db:"assessment_id"`
	Score        int       `json:"score" db:"score"`
	TotalScore   int       `json:"total_score" db:"total_score"`
	CompletedAt  time.Time `json:"completed_at" db:"completed_at"`
}
