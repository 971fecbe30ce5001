package wire

import (
	"coaching-booking/internal/adaptor"
	"coaching-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCourse(r chi.Router, handler *adaptor.CourseHandler, log *zap.Logger) {
	// GET /api/courses - public course catalog
	r.Get("/api/courses", handler.List)

	// Coach course management
	r.Route("/api/admin/courses", func(r chi.Router) {
		r.Use(middleware.Identity(log))
		r.Use(middleware.Coach(log))

		r.Post("/", handler.Create)
		r.Put("/{courseId}", handler.Update)
	})
}
