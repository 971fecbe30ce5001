package wire

import (
	"coaching-booking/internal/adaptor"
	"coaching-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSkill(r chi.Router, handler *adaptor.SkillHandler, log *zap.Logger) {
	// GET /api/skills - public skill catalog
	r.Get("/api/skills", handler.List)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Identity(log))
		r.Use(middleware.Coach(log))

		r.Post("/api/skills", handler.Create)
		r.Delete("/api/skills/{skillId}", handler.Delete)
	})
}
