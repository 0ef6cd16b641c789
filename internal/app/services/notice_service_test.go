package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusos/campusos/internal/app/models"
	"github.com/campusos/campusos/internal/app/models/dto"
	"github.com/campusos/campusos/internal/pkg/apperrors"
)

type fakeNoticeStore struct {
	notices    []models.Notice
	nextID     int64
	lastFilter *models.NoticeCategory
	failCreate error
}

func (f *fakeNoticeStore) GetAll(ctx context.Context, category *models.NoticeCategory) ([]models.Notice, error) {
	f.lastFilter = category
	if category == nil {
		return f.notices, nil
	}
	var out []models.Notice
	for _, n := range f.notices {
		if n.Category == *category {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNoticeStore) Create(ctx context.Context, notice *models.Notice) (int64, error) {
	if f.failCreate != nil {
		return 0, f.failCreate
	}
	f.nextID++
	notice.ID = f.nextID
	f.notices = append(f.notices, *notice)
	return f.nextID, nil
}

func (f *fakeNoticeStore) Delete(ctx context.Context, id int64) (bool, error) {
	for i, n := range f.notices {
		if n.ID == id {
			f.notices = append(f.notices[:i], f.notices[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeNotifier struct {
	sent chan string
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{sent: make(chan string, 1)}
}

func (f *fakeNotifier) BroadcastNotice(title, content string) error {
	f.sent <- title
	return nil
}

func TestPostNoticeEmailCoercion(t *testing.T) {
	tests := []struct {
		name      string
		role      models.Role
		sendEmail bool
		wantSent  bool
	}{
		{name: "admin may blast", role: models.RoleAdmin, sendEmail: true, wantSent: true},
		{name: "faculty may blast", role: models.RoleFaculty, sendEmail: true, wantSent: true},
		{name: "student coerced to false", role: models.RoleStudent, sendEmail: true, wantSent: false},
		{name: "admin without flag", role: models.RoleAdmin, sendEmail: false, wantSent: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeNoticeStore{}
			notifier := newFakeNotifier()
			svc := NewNoticeService(store, notifier, zerolog.Nop())

			id, err := svc.PostNotice(context.Background(), &dto.CreateNoticeRequest{
				Title:     "Exam schedule",
				Content:   "Posted outside room 203.",
				SendEmail: tt.sendEmail,
				Category:  string(models.NoticeCategoryStudent),
			}, tt.role)
			require.NoError(t, err)
			assert.Equal(t, int64(1), id)

			require.Len(t, store.notices, 1)
			assert.Equal(t, tt.wantSent, store.notices[0].SentViaEmail)

			if tt.wantSent {
				select {
				case title := <-notifier.sent:
					assert.Equal(t, "Exam schedule", title)
				case <-time.After(time.Second):
					t.Fatal("expected a notice blast to be dispatched")
				}
			} else {
				select {
				case <-notifier.sent:
					t.Fatal("no blast expected")
				case <-time.After(20 * time.Millisecond):
				}
			}
		})
	}
}

func TestPostNoticeDefaultsPoster(t *testing.T) {
	store := &fakeNoticeStore{}
	svc := NewNoticeService(store, newFakeNotifier(), zerolog.Nop())

	_, err := svc.PostNotice(context.Background(), &dto.CreateNoticeRequest{
		Title:    "t",
		Content:  "c",
		Category: string(models.NoticeCategoryAdmin),
	}, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(defaultPosterID), store.notices[0].PostedBy)
}

func TestPostNoticeInvalidCategory(t *testing.T) {
	svc := NewNoticeService(&fakeNoticeStore{}, newFakeNotifier(), zerolog.Nop())

	_, err := svc.PostNotice(context.Background(), &dto.CreateNoticeRequest{
		Title:    "t",
		Content:  "c",
		Category: "everyone",
	}, models.RoleAdmin)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCategory)
}

func TestListNoticesCategoryFilter(t *testing.T) {
	store := &fakeNoticeStore{notices: []models.Notice{
		{ID: 1, Title: "staff only", Category: models.NoticeCategoryAdmin},
		{ID: 2, Title: "for students", Category: models.NoticeCategoryStudent},
	}}
	svc := NewNoticeService(store, newFakeNotifier(), zerolog.Nop())

	all, err := svc.ListNotices(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Nil(t, store.lastFilter)

	students, err := svc.ListNotices(context.Background(), "student")
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "for students", students[0].Title)

	_, err = svc.ListNotices(context.Background(), "everyone")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCategory)
}

func TestDeleteNoticeIdempotent(t *testing.T) {
	store := &fakeNoticeStore{notices: []models.Notice{{ID: 7, Title: "old"}}, nextID: 7}
	svc := NewNoticeService(store, newFakeNotifier(), zerolog.Nop())

	deleted, err := svc.DeleteNotice(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.DeleteNotice(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestPostNoticeCreateFailure(t *testing.T) {
	store := &fakeNoticeStore{failCreate: errors.New("db down")}
	svc := NewNoticeService(store, newFakeNotifier(), zerolog.Nop())

	_, err := svc.PostNotice(context.Background(), &dto.CreateNoticeRequest{
		Title:    "t",
		Content:  "c",
		Category: string(models.NoticeCategoryStudent),
	}, models.RoleAdmin)
	assert.Error(t, err)
}
