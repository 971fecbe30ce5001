package wire

import (
	"coaching-booking/internal/adaptor"
	"coaching-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireEnrollment(r chi.Router, handler *adaptor.EnrollmentHandler, log *zap.Logger) {
	// Identity comes from the gateway; every enrollment route needs it
	r.Group(func(r chi.Router) {
		r.Use(middleware.Identity(log))

		// POST /api/courses/{courseId} - enroll into a course
		r.Post("/api/courses/{courseId}", handler.Enroll)

		// DELETE /api/courses/{courseId} - cancel the active enrollment
		r.Delete("/api/courses/{courseId}", handler.Cancel)

		// GET /api/users/courses - credit position + active bookings
		r.Get("/api/users/courses", handler.Summary)
	})
}
