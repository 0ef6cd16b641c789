package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusos/campusos/internal/app/models"
	"github.com/campusos/campusos/internal/app/models/dto"
	"github.com/campusos/campusos/internal/middleware"
	"github.com/campusos/campusos/internal/pkg/apperrors"
	"github.com/campusos/campusos/internal/pkg/auth"
)

type stubNoticeService struct {
	notices  []models.Notice
	lastRole models.Role
	deleted  bool
}

func (s *stubNoticeService) ListNotices(ctx context.Context, category string) ([]models.Notice, error) {
	if category != "" && !models.NoticeCategory(category).Valid() {
		return nil, apperrors.ErrInvalidCategory
	}
	return s.notices, nil
}

func (s *stubNoticeService) PostNotice(ctx context.Context, req *dto.CreateNoticeRequest, callerRole models.Role) (int64, error) {
	s.lastRole = callerRole
	return 42, nil
}

func (s *stubNoticeService) DeleteNotice(ctx context.Context, id int64) (bool, error) {
	return s.deleted, nil
}

func noticeTestRouter(svc *stubNoticeService, jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	controller := NewNoticeController(svc)
	authMw := middleware.NewAuthMiddleware(jwtService)

	group := router.Group("/api/v1")
	group.Use(authMw.SessionAuth())
	group.GET("/notices", controller.ListNotices)
	group.POST("/notices", controller.CreateNotice)

	staff := group.Group("")
	staff.Use(middleware.RoleRequired(models.RoleAdmin, models.RoleFaculty))
	staff.DELETE("/notices/:id", controller.DeleteNotice)

	return router
}

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})
}

func adminToken(t *testing.T, jwtService *auth.JWTService) string {
	t.Helper()
	token, _, err := jwtService.GenerateToken(&models.User{ID: 1, Email: "admin@campus.edu", Role: models.RoleAdmin})
	require.NoError(t, err)
	return token
}

func TestListNoticesEndpoint(t *testing.T) {
	svc := &stubNoticeService{notices: []models.Notice{{ID: 1, Title: "Welcome"}}}
	router := noticeTestRouter(svc, testJWTService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/notices", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var got []models.Notice
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Welcome", got[0].Title)
}

func TestListNoticesInvalidCategory(t *testing.T) {
	router := noticeTestRouter(&stubNoticeService{}, testJWTService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/notices?category=everyone", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeValidationFailed, resp.Error.Code)
}

func TestCreateNoticeAnonymousIsStudent(t *testing.T) {
	svc := &stubNoticeService{}
	router := noticeTestRouter(svc, testJWTService())

	body := `{"title":"t","content":"c","category":"student","send_email":true}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/notices", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, models.RoleStudent, svc.lastRole)

	var resp dto.CreateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.True(t, resp.Success)
}

func TestCreateNoticeMissingFields(t *testing.T) {
	router := noticeTestRouter(&stubNoticeService{}, testJWTService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/notices", strings.NewReader(`{"title":"only"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteNoticeRequiresStaffRole(t *testing.T) {
	jwtService := testJWTService()
	svc := &stubNoticeService{deleted: true}
	router := noticeTestRouter(svc, jwtService)

	// anonymous callers hold the student role and are rejected
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/notices/7", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// an admin token passes
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/notices/7", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, jwtService))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.MutationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestDeleteNoticeAbsentIDReportsFalse(t *testing.T) {
	jwtService := testJWTService()
	router := noticeTestRouter(&stubNoticeService{deleted: false}, jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/notices/999", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, jwtService))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.MutationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}

func TestDeleteNoticeBadToken(t *testing.T) {
	router := noticeTestRouter(&stubNoticeService{}, testJWTService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/notices/7", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
