package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"coaching-booking/internal/dto/response"
	"coaching-booking/internal/usecase"
	"coaching-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubEnrollmentService returns canned results so the tests exercise only
// the HTTP mapping.
type stubEnrollmentService struct {
	enrollID  uuid.UUID
	enrollErr error
	cancelErr error
	summary   *response.SummaryResponse
}

func (s *stubEnrollmentService) Enroll(context.Context, uuid.UUID, uuid.UUID) (uuid.UUID, error) {
	return s.enrollID, s.enrollErr
}

func (s *stubEnrollmentService) Cancel(context.Context, uuid.UUID, uuid.UUID) error {
	return s.cancelErr
}

func (s *stubEnrollmentService) Summary(context.Context, uuid.UUID) (*response.SummaryResponse, error) {
	return s.summary, nil
}

func enrollmentRouter(svc usecase.EnrollmentService) *chi.Mux {
	h := NewEnrollmentHandler(svc, zap.NewNop())
	router := chi.NewRouter()
	router.Post("/api/courses/{courseId}", h.Enroll)
	router.Delete("/api/courses/{courseId}", h.Cancel)
	router.Get("/api/users/courses", h.Summary)
	return router
}

func doEnroll(t *testing.T, svc usecase.EnrollmentService, withIdentity bool) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/courses/"+uuid.NewString(), nil)
	if withIdentity {
		req = req.WithContext(utils.SetUserContext(req.Context(), uuid.New(), "USER"))
	}

	rec := httptest.NewRecorder()
	enrollmentRouter(svc).ServeHTTP(rec, req)
	return rec
}

func TestEnrollHandler_Created(t *testing.T) {
	bookingID := uuid.New()
	rec := doEnroll(t, &stubEnrollmentService{enrollID: bookingID}, true)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		Data    struct {
			BookingID string `json:"booking_id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Status)
	assert.Equal(t, bookingID.String(), body.Data.BookingID)
}

func TestEnrollHandler_RequiresIdentity(t *testing.T) {
	rec := doEnroll(t, &stubEnrollmentService{}, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestEnrollHandler_InvalidCourseID(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/courses/not-a-uuid", nil)
	req = req.WithContext(utils.SetUserContext(req.Context(), uuid.New(), "USER"))

	rec := httptest.NewRecorder()
	enrollmentRouter(&stubEnrollmentService{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEnrollHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"course not found", usecase.ErrCourseNotFound, http.StatusNotFound},
		{"already enrolled", usecase.ErrAlreadyEnrolled, http.StatusConflict},
		{"no credit", usecase.ErrInsufficientCredit, http.StatusBadRequest},
		{"course full", usecase.ErrCourseFull, http.StatusBadRequest},
		{"contention", usecase.ErrContention, http.StatusServiceUnavailable},
		{"rejected input", fmt.Errorf("%w: Name: This field is required", usecase.ErrValidation), http.StatusBadRequest},
		{"store failure", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doEnroll(t, &stubEnrollmentService{enrollErr: tt.err}, true)

			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestCancelHandler(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"cancelled", nil, http.StatusOK},
		{"not enrolled", usecase.ErrNotEnrolled, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/api/courses/"+uuid.NewString(), nil)
			req = req.WithContext(utils.SetUserContext(req.Context(), uuid.New(), "USER"))

			rec := httptest.NewRecorder()
			enrollmentRouter(&stubEnrollmentService{cancelErr: tt.err}).ServeHTTP(rec, req)

			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestSummaryHandler(t *testing.T) {
	svc := &stubEnrollmentService{
		summary: &response.SummaryResponse{
			CreditRemain:  3,
			CreditUsage:   2,
			CourseBooking: []response.BookedCourseResponse{},
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/users/courses", nil)
	req = req.WithContext(utils.SetUserContext(req.Context(), uuid.New(), "USER"))

	rec := httptest.NewRecorder()
	enrollmentRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data response.SummaryResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(3), body.Data.CreditRemain)
	assert.Equal(t, int64(2), body.Data.CreditUsage)
}
