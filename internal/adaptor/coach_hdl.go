package adaptor

import (
	"net/http"

	"coaching-booking/internal/usecase"
	"coaching-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultCoachPage    = 1
	defaultCoachPerPage = 10
)

type CoachHandler struct {
	service usecase.CoachService
	log     *zap.Logger
}

func NewCoachHandler(service usecase.CoachService, log *zap.Logger) *CoachHandler {
	return &CoachHandler{
		service: service,
		log:     log.With(zap.String("handler", "coach")),
	}
}

// List handles GET /api/coaches?page=&per= (public)
func (h *CoachHandler) List(w http.ResponseWriter, r *http.Request) {
	page := utils.ParseInt(r.URL.Query().Get("page"), defaultCoachPage)
	per := utils.ParseInt(r.URL.Query().Get("per"), defaultCoachPerPage)

	coaches, err := h.service.List(r.Context(), page, per)
	if err != nil {
		handleServiceError(h.log, w, err, "list coaches")
		return
	}

	utils.ResponseSuccess(w, "success", coaches)
}

// Detail handles GET /api/coaches/{coachId} (public)
func (h *CoachHandler) Detail(w http.ResponseWriter, r *http.Request) {
	coachID, err := uuid.Parse(chi.URLParam(r, "coachId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid coach ID", nil)
		return
	}

	coach, err := h.service.Detail(r.Context(), coachID)
	if err != nil {
		handleServiceError(h.log, w, err, "get coach detail")
		return
	}

	utils.ResponseSuccess(w, "success", coach)
}
