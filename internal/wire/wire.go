package wire

import (
	"net/http"

	"coaching-booking/internal/adaptor"
	"coaching-booking/internal/usecase"
	"coaching-booking/pkg/middleware"
	"coaching-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(service *usecase.Service, config *utils.Config, logger *zap.Logger) *App {
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireEnrollment(r, handler.Enrollment, logger)
	wireCourse(r, handler.Course, logger)
	wireCoach(r, handler.Coach)
	wireCredit(r, handler.Credit, logger)
	wireSkill(r, handler.Skill, logger)
	wireUser(r, handler.User, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
