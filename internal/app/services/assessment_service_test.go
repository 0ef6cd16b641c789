package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusos/campusos/internal/app/models"
	"github.com/campusos/campusos/internal/app/models/dto"
	"github.com/campusos/campusos/internal/pkg/apperrors"
)

type fakeAssessmentStore struct {
	assessments []models.Assessment
	results     []models.AssessmentResult
}

func (f *fakeAssessmentStore) GetAll(ctx context.Context) ([]models.Assessment, error) {
	return f.assessments, nil
}

func (f *fakeAssessmentStore) GetByID(ctx context.Context, id int64) (*models.Assessment, error) {
	for i := range f.assessments {
		if f.assessments[i].ID == id {
			return &f.assessments[i], nil
		}
	}
	return nil, nil
}

func (f *fakeAssessmentStore) CreateResult(ctx context.Context, result *models.AssessmentResult) (int64, error) {
	result.ID = int64(len(f.results) + 1)
	f.results = append(f.results, *result)
	return result.ID, nil
}

func (f *fakeAssessmentStore) GetResults(ctx context.Context, userID int64) ([]models.AssessmentResult, error) {
	if userID == 0 {
		return f.results, nil
	}
	var out []models.AssessmentResult
	for _, r := range f.results {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func sampleAssessmentStore() *fakeAssessmentStore {
	return &fakeAssessmentStore{assessments: []models.Assessment{{
		ID:    1,
		Title: "CS Fundamentals",
		Questions: []models.Question{
			{ID: 1, Text: "q1", Options: []string{"a", "b"}, CorrectAnswer: 1},
			{ID: 2, Text: "q2", Options: []string{"a", "b", "c"}, CorrectAnswer: 2},
		},
	}}}
}

func TestSubmitAnswers(t *testing.T) {
	store := sampleAssessmentStore()
	svc := NewAssessmentService(store)

	resp, err := svc.SubmitAnswers(context.Background(), 1, &dto.SubmitAnswersRequest{
		Answers: map[int64]int{1: 1, 2: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Score)
	assert.Equal(t, 2, resp.TotalScore)
	assert.True(t, resp.Success)

	require.Len(t, store.results, 1)
	assert.Equal(t, int64(defaultExamineeID), store.results[0].UserID)
	assert.Equal(t, int64(1), store.results[0].AssessmentID)
}

func TestSubmitAnswersUnknownAssessment(t *testing.T) {
	svc := NewAssessmentService(sampleAssessmentStore())

	_, err := svc.SubmitAnswers(context.Background(), 99, &dto.SubmitAnswersRequest{Answers: map[int64]int{}})
	assert.ErrorIs(t, err, apperrors.ErrAssessmentNotFound)
}

func TestSubmitAnswersRepeatAttemptsAllowed(t *testing.T) {
	store := sampleAssessmentStore()
	svc := NewAssessmentService(store)

	for i := 0; i < 3; i++ {
		_, err := svc.SubmitAnswers(context.Background(), 1, &dto.SubmitAnswersRequest{
			UserID:  5,
			Answers: map[int64]int{1: 1},
		})
		require.NoError(t, err)
	}
	assert.Len(t, store.results, 3)
}

func TestRecordResultRangeValidation(t *testing.T) {
	tests := []struct {
		name    string
		score   int
		total   int
		wantErr bool
	}{
		{name: "valid", score: 1, total: 2},
		{name: "zero score", score: 0, total: 2},
		{name: "full score", score: 2, total: 2},
		{name: "negative score", score: -1, total: 2, wantErr: true},
		{name: "score above total", score: 3, total: 2, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAssessmentService(sampleAssessmentStore())
			_, err := svc.RecordResult(context.Background(), &dto.RecordResultRequest{
				AssessmentID: 1,
				Score:        tt.score,
				TotalScore:   tt.total,
			})
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidScore)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestListResultsUserFilter(t *testing.T) {
	store := sampleAssessmentStore()
	store.results = []models.AssessmentResult{
		{ID: 1, UserID: 3, AssessmentID: 1, Score: 1, TotalScore: 2},
		{ID: 2, UserID: 5, AssessmentID: 1, Score: 2, TotalScore: 2},
	}
	svc := NewAssessmentService(store)

	all, err := svc.ListResults(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := svc.ListResults(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, int64(2), mine[0].ID)
}
