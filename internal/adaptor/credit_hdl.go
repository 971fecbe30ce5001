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

type CreditHandler struct {
	service usecase.CreditService
	log     *zap.Logger
}

func NewCreditHandler(service usecase.CreditService, log *zap.Logger) *CreditHandler {
	return &CreditHandler{
		service: service,
		log:     log.With(zap.String("handler", "credit")),
	}
}

// ListPackages handles GET /api/credit-packages (public)
func (h *CreditHandler) ListPackages(w http.ResponseWriter, r *http.Request) {
	packages, err := h.service.ListPackages(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list credit packages")
		return
	}

	utils.ResponseSuccess(w, "success", packages)
}

// CreatePackage handles POST /api/credit-packages (coach only)
func (h *CreditHandler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCreditPackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	pkg, err := h.service.CreatePackage(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create credit package")
		return
	}

	utils.ResponseCreated(w, "success", pkg)
}

// DeletePackage handles DELETE /api/credit-packages/{creditPackageId} (coach only)
func (h *CreditHandler) DeletePackage(w http.ResponseWriter, r *http.Request) {
	packageID, err := uuid.Parse(chi.URLParam(r, "creditPackageId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid credit package ID", nil)
		return
	}

	if err := h.service.DeletePackage(r.Context(), packageID); err != nil {
		handleServiceError(h.log, w, err, "delete credit package")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// Purchase handles POST /api/credit-packages/{creditPackageId}/purchase (protected)
func (h *CreditHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	packageID, err := uuid.Parse(chi.URLParam(r, "creditPackageId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid credit package ID", nil)
		return
	}

	if err := h.service.Purchase(r.Context(), userID, packageID); err != nil {
		handleServiceError(h.log, w, err, "purchase credits")
		return
	}

	utils.ResponseCreated(w, "success", nil)
}

// ListPurchases handles GET /api/users/credit-purchases (protected)
func (h *CreditHandler) ListPurchases(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	purchases, err := h.service.ListPurchases(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, err, "list credit purchases")
		return
	}

	utils.ResponseSuccess(w, "success", purchases)
}
