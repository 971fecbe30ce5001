package wire

import (
	"coaching-booking/internal/adaptor"
	"coaching-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(r chi.Router, handler *adaptor.UserHandler, log *zap.Logger) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Identity(log))

		// GET /api/users/profile - own profile
		r.Get("/api/users/profile", handler.GetProfile)

		// PUT /api/users/profile - update own profile
		r.Put("/api/users/profile", handler.UpdateProfile)
	})

	// Promotion is an admin operation behind the coach gate
	r.Route("/api/admin/coaches", func(r chi.Router) {
		r.Use(middleware.Identity(log))
		r.Use(middleware.Coach(log))

		r.Post("/{userId}", handler.PromoteToCoach)
	})
}
