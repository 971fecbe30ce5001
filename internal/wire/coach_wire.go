package wire

import (
	"coaching-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCoach(r chi.Router, handler *adaptor.CoachHandler) {
	// GET /api/coaches - public coach directory (paginated)
	r.Get("/api/coaches", handler.List)

	// GET /api/coaches/{coachId} - coach profile with user name/role
	r.Get("/api/coaches/{coachId}", handler.Detail)
}
