package adaptor

import (
	"encoding/json"
	"net/http"

	"coaching-booking/internal/dto/request"
	"coaching-booking/internal/usecase"
	"coaching-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CourseHandler struct {
	service usecase.CourseService
	log     *zap.Logger
}

func NewCourseHandler(service usecase.CourseService, log *zap.Logger) *CourseHandler {
	return &CourseHandler{
		service: service,
		log:     log.With(zap.String("handler", "course")),
	}
}

// defaultCourseListLimit caps the public listing when no limit is given
const defaultCourseListLimit = 50

// List handles GET /api/courses (public)
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list courses")
		return
	}

	limit := utils.ParseInt(r.URL.Query().Get("limit"), defaultCourseListLimit)
	if len(courses) > limit {
		courses = courses[:limit]
	}

	utils.ResponseSuccess(w, "success", courses)
}

// Create handles POST /api/admin/courses (coach only)
func (h *CourseHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	course, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create course")
		return
	}

	utils.ResponseCreated(w, "success", course)
}

// Update handles PUT /api/admin/courses/{courseId} (coach only)
func (h *CourseHandler) Update(w http.ResponseWriter, r *http.Request) {
	courseID, err := uuid.Parse(chi.URLParam(r, "courseId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid course ID", nil)
		return
	}

	var req request.UpdateCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	course, err := h.service.Update(r.Context(), courseID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update course")
		return
	}

	utils.ResponseSuccess(w, "success", course)
}
