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

type SkillHandler struct {
	service usecase.SkillService
	log     *zap.Logger
}

func NewSkillHandler(service usecase.SkillService, log *zap.Logger) *SkillHandler {
	return &SkillHandler{
		service: service,
		log:     log.With(zap.String("handler", "skill")),
	}
}

// List handles GET /api/skills (public)
func (h *SkillHandler) List(w http.ResponseWriter, r *http.Request) {
	skills, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list skills")
		return
	}

	utils.ResponseSuccess(w, "success", skills)
}

// Create handles POST /api/skills (coach only)
func (h *SkillHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	skill, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create skill")
		return
	}

	utils.ResponseCreated(w, "success", skill)
}

// Delete handles DELETE /api/skills/{skillId} (coach only)
func (h *SkillHandler) Delete(w http.ResponseWriter, r *http.Request) {
	skillID, err := uuid.Parse(chi.URLParam(r, "skillId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid skill ID", nil)
		return
	}

	if err := h.service.Delete(r.Context(), skillID); err != nil {
		handleServiceError(h.log, w, err, "delete skill")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
