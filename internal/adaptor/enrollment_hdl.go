package adaptor

import (
	"net/http"

	"coaching-booking/internal/dto/response"
	"coaching-booking/internal/usecase"
	"coaching-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EnrollmentHandler struct {
	service usecase.EnrollmentService
	log     *zap.Logger
}

func NewEnrollmentHandler(service usecase.EnrollmentService, log *zap.Logger) *EnrollmentHandler {
	return &EnrollmentHandler{
		service: service,
		log:     log.With(zap.String("handler", "enrollment")),
	}
}

// Enroll handles POST /api/courses/{courseId} (protected)
func (h *EnrollmentHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	courseID, err := uuid.Parse(chi.URLParam(r, "courseId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid course ID", nil)
		return
	}

	bookingID, err := h.service.Enroll(r.Context(), userID, courseID)
	if err != nil {
		handleServiceError(h.log, w, err, "enroll")
		return
	}

	utils.ResponseCreated(w, "success", response.EnrollmentResponse{
		BookingID: bookingID.String(),
	})
}

// Cancel handles DELETE /api/courses/{courseId} (protected)
func (h *EnrollmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	courseID, err := uuid.Parse(chi.URLParam(r, "courseId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid course ID", nil)
		return
	}

	if err := h.service.Cancel(r.Context(), userID, courseID); err != nil {
		handleServiceError(h.log, w, err, "cancel enrollment")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// Summary handles GET /api/users/courses (protected)
func (h *EnrollmentHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	summary, err := h.service.Summary(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, err, "get booking summary")
		return
	}

	utils.ResponseSuccess(w, "success", summary)
}
