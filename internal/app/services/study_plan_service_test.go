package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusos/campusos/internal/app/models"
	"github.com/campusos/campusos/internal/app/models/dto"
	"github.com/campusos/campusos/internal/pkg/apperrors"
)

type fakePlanStore struct {
	plans  map[int64]*models.StudyPlan
	nextID int64
}

func newFakePlanStore() *fakePlanStore {
	return &fakePlanStore{plans: make(map[int64]*models.StudyPlan)}
}

func (f *fakePlanStore) GetAll(ctx context.Context) ([]models.StudyPlan, error) {
	out := make([]models.StudyPlan, 0, len(f.plans))
	for _, p := range f.plans {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePlanStore) GetByID(ctx context.Context, id int64) (*models.StudyPlan, error) {
	p, ok := f.plans[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakePlanStore) Create(ctx context.Context, plan *models.StudyPlan) (int64, error) {
	f.nextID++
	plan.ID = f.nextID
	cp := *plan
	f.plans[f.nextID] = &cp
	return f.nextID, nil
}

func (f *fakePlanStore) ReplacePlan(ctx context.Context, id int64, doc *models.PlanDocument) (bool, error) {
	p, ok := f.plans[id]
	if !ok {
		return false, nil
	}
	p.Plan = *doc
	return true, nil
}

// fakeGenerator answers structured calls with a canned JSON payload.
type fakeGenerator struct {
	payload string
	err     error
}

func (f *fakeGenerator) GenerateStructured(ctx context.Context, prompt string, out any) error {
	if f.err != nil {
		return f.err
	}
	return json.Unmarshal([]byte(f.payload), out)
}

func samplePlan() models.PlanDocument {
	return models.PlanDocument{
		Subject: "Databases",
		Modules: []models.PlanModule{
			{Title: "Relational model", Topics: []models.Topic{{Text: "Keys"}, {Text: "Normal forms"}}},
		},
	}
}

func TestGenerateAndSave(t *testing.T) {
	store := newFakePlanStore()
	gen := &fakeGenerator{payload: `{
		"subject": "Databases",
		"modules": [
			{"title": "Relational model", "topics": ["Keys", "Normal forms"], "estimated_hours": 6, "suggested_days": "Day 1-3"}
		]
	}`}
	svc := NewStudyPlanService(store, gen, zerolog.Nop())

	resp, err := svc.GenerateAndSave(context.Background(), &dto.GenerateStudyPlanRequest{Syllabus: "keys, normal forms"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Databases", resp.Subject)
	assert.Equal(t, int64(defaultPlanOwnerID), resp.UserID)
	assert.Zero(t, resp.Progress)

	// string topics from the provider decode to the object form
	require.Len(t, resp.Plan.Modules, 1)
	assert.Equal(t, models.Topic{Text: "Keys"}, resp.Plan.Modules[0].Topics[0])

	// persisted, not just returned
	stored, err := svc.GetPlan(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, resp.Plan, stored.Plan)
}

func TestGenerateAndSaveProviderFailure(t *testing.T) {
	store := newFakePlanStore()
	svc := NewStudyPlanService(store, &fakeGenerator{err: errors.New("upstream 500")}, zerolog.Nop())

	_, err := svc.GenerateAndSave(context.Background(), &dto.GenerateStudyPlanRequest{Syllabus: "x"})
	assert.ErrorIs(t, err, apperrors.ErrGenerationFailed)
	assert.Empty(t, store.plans, "nothing may be persisted on failure")
}

func TestGenerateAndSaveBadShape(t *testing.T) {
	store := newFakePlanStore()
	svc := NewStudyPlanService(store, &fakeGenerator{payload: `{"modules": []}`}, zerolog.Nop())

	_, err := svc.GenerateAndSave(context.Background(), &dto.GenerateStudyPlanRequest{Syllabus: "x"})
	assert.ErrorIs(t, err, apperrors.ErrGenerationFailed)
	assert.Empty(t, store.plans)
}

func TestToggleTopicPersistsDocument(t *testing.T) {
	store := newFakePlanStore()
	svc := NewStudyPlanService(store, &fakeGenerator{}, zerolog.Nop())

	id, err := svc.SavePlan(context.Background(), &dto.CreateStudyPlanRequest{Subject: "Databases", Plan: samplePlan()})
	require.NoError(t, err)

	resp, err := svc.ToggleTopic(context.Background(), id, 0, 0)
	require.NoError(t, err)
	assert.True(t, resp.Plan.Modules[0].Topics[0].Completed)
	assert.Equal(t, 50, resp.Progress)

	stored, err := svc.GetPlan(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, stored.Plan.Modules[0].Topics[0].Completed)

	// toggling back restores the original state
	resp, err = svc.ToggleTopic(context.Background(), id, 0, 0)
	require.NoError(t, err)
	assert.Zero(t, resp.Progress)
}

func TestToggleTopicOutOfRange(t *testing.T) {
	store := newFakePlanStore()
	svc := NewStudyPlanService(store, &fakeGenerator{}, zerolog.Nop())

	id, err := svc.SavePlan(context.Background(), &dto.CreateStudyPlanRequest{Subject: "Databases", Plan: samplePlan()})
	require.NoError(t, err)

	_, err = svc.ToggleTopic(context.Background(), id, 5, 0)
	assert.ErrorIs(t, err, apperrors.ErrTopicOutOfRange)

	_, err = svc.ToggleTopic(context.Background(), 999, 0, 0)
	assert.ErrorIs(t, err, apperrors.ErrStudyPlanNotFound)
}

func TestReplacePlanAbsentID(t *testing.T) {
	svc := NewStudyPlanService(newFakePlanStore(), &fakeGenerator{}, zerolog.Nop())

	replaced, err := svc.ReplacePlan(context.Background(), 42, samplePlan())
	require.NoError(t, err)
	assert.False(t, replaced)
}
