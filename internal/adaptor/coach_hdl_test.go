package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"coaching-booking/internal/dto/response"
	"coaching-booking/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubCoachService struct {
	page    int
	perPage int
	list    []response.CoachResponse
	detail  *response.CoachDetailResponse
	err     error
}

func (s *stubCoachService) List(_ context.Context, page, perPage int) ([]response.CoachResponse, error) {
	s.page = page
	s.perPage = perPage
	return s.list, s.err
}

func (s *stubCoachService) Detail(context.Context, uuid.UUID) (*response.CoachDetailResponse, error) {
	return s.detail, s.err
}

func coachRouter(svc usecase.CoachService) *chi.Mux {
	h := NewCoachHandler(svc, zap.NewNop())
	router := chi.NewRouter()
	router.Get("/api/coaches", h.List)
	router.Get("/api/coaches/{coachId}", h.Detail)
	return router
}

func TestCoachListHandler(t *testing.T) {
	svc := &stubCoachService{
		list: []response.CoachResponse{{ID: uuid.NewString(), Name: "Coach Dana"}},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/coaches?page=2&per=5", nil)
	rec := httptest.NewRecorder()
	coachRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, svc.page)
	assert.Equal(t, 5, svc.perPage)

	var body struct {
		Data []response.CoachResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Coach Dana", body.Data[0].Name)
}

func TestCoachListHandler_DefaultsPaging(t *testing.T) {
	svc := &stubCoachService{}

	req := httptest.NewRequest(http.MethodGet, "/api/coaches", nil)
	rec := httptest.NewRecorder()
	coachRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.page)
	assert.Equal(t, 10, svc.perPage)
}

func TestCoachDetailHandler(t *testing.T) {
	coachID := uuid.New()
	svc := &stubCoachService{
		detail: &response.CoachDetailResponse{
			CoachResponse: response.CoachResponse{ID: coachID.String(), Name: "Coach Dana"},
			Role:          "COACH",
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/coaches/"+coachID.String(), nil)
	rec := httptest.NewRecorder()
	coachRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data response.CoachDetailResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, coachID.String(), body.Data.ID)
	assert.Equal(t, "COACH", body.Data.Role)
}

func TestCoachDetailHandler_NotFound(t *testing.T) {
	svc := &stubCoachService{err: usecase.ErrCoachNotFound}

	req := httptest.NewRequest(http.MethodGet, "/api/coaches/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	coachRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCoachDetailHandler_InvalidID(t *testing.T) {
	svc := &stubCoachService{}

	req := httptest.NewRequest(http.MethodGet, "/api/coaches/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	coachRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
