package wire

import (
	"coaching-booking/internal/adaptor"
	"coaching-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCredit(r chi.Router, handler *adaptor.CreditHandler, log *zap.Logger) {
	// GET /api/credit-packages - public package catalog
	r.Get("/api/credit-packages", handler.ListPackages)

	// Catalog management
	r.Group(func(r chi.Router) {
		r.Use(middleware.Identity(log))
		r.Use(middleware.Coach(log))

		r.Post("/api/credit-packages", handler.CreatePackage)
		r.Delete("/api/credit-packages/{creditPackageId}", handler.DeletePackage)
	})

	// Purchases
	r.Group(func(r chi.Router) {
		r.Use(middleware.Identity(log))

		// POST /api/credit-packages/{creditPackageId}/purchase - buy a package
		r.Post("/api/credit-packages/{creditPackageId}/purchase", handler.Purchase)

		// GET /api/users/credit-purchases - purchase history
		r.Get("/api/users/credit-purchases", handler.ListPurchases)
	})
}
