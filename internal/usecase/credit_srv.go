package usecase

import (
	"context"
	"fmt"
	"time"

	"coaching-booking/internal/data/entity"
	"coaching-booking/internal/data/repository"
	"coaching-booking/internal/dto/request"
	"coaching-booking/internal/dto/response"
	"coaching-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CreditService interface {
	ListPackages(ctx context.Context) ([]response.CreditPackageResponse, error)
	CreatePackage(ctx context.Context, req *request.CreateCreditPackageRequest) (*response.CreditPackageResponse, error)
	DeletePackage(ctx context.Context, packageID uuid.UUID) error

	// Purchase appends an immutable ledger row carrying the package's
	// credit amount and price. Payment itself is settled upstream; this
	// is the already-paid record.
	Purchase(ctx context.Context, userID, packageID uuid.UUID) error
	ListPurchases(ctx context.Context, userID uuid.UUID) ([]response.CreditPurchaseResponse, error)
}

type creditService struct {
	store repository.Store
	log   *zap.Logger
}

func NewCreditService(store repository.Store, log *zap.Logger) CreditService {
	return &creditService{
		store: store,
		log:   log.With(zap.String("service", "credit")),
	}
}

func (s *creditService) ListPackages(ctx context.Context) ([]response.CreditPackageResponse, error) {
	packages, err := s.store.Repos().CreditPackage.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list credit packages: %w", err)
	}

	resp := make([]response.CreditPackageResponse, len(packages))
	for i, pkg := range packages {
		resp[i] = response.CreditPackageResponse{
			ID:           pkg.ID.String(),
			Name:         pkg.Name,
			CreditAmount: pkg.CreditAmount,
			Price:        pkg.Price,
		}
	}

	return resp, nil
}

func (s *creditService) CreatePackage(ctx context.Context, req *request.CreateCreditPackageRequest) (*response.CreditPackageResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create credit package validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: Price: must not be negative", ErrValidation)
	}

	r := s.store.Repos()

	existing, err := r.CreditPackage.FindByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateName
	}

	pkg := &entity.CreditPackage{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:         req.Name,
		CreditAmount: req.CreditAmount,
		Price:        req.Price,
	}

	if err := r.CreditPackage.Create(ctx, pkg); err != nil {
		return nil, err
	}

	s.log.Info("Credit package created",
		zap.String("credit_package_id", pkg.ID.String()),
		zap.String("name", pkg.Name),
		zap.Int("credit_amount", pkg.CreditAmount),
	)

	return &response.CreditPackageResponse{
		ID:           pkg.ID.String(),
		Name:         pkg.Name,
		CreditAmount: pkg.CreditAmount,
		Price:        pkg.Price,
	}, nil
}

func (s *creditService) DeletePackage(ctx context.Context, packageID uuid.UUID) error {
	deleted, err := s.store.Repos().CreditPackage.Delete(ctx, packageID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPackageNotFound
	}

	s.log.Info("Credit package deleted", zap.String("credit_package_id", packageID.String()))
	return nil
}

func (s *creditService) Purchase(ctx context.Context, userID, packageID uuid.UUID) error {
	r := s.store.Repos()

	pkg, err := r.CreditPackage.FindByID(ctx, packageID)
	if err != nil {
		return err
	}
	if pkg == nil {
		return ErrPackageNotFound
	}

	now := time.Now()
	purchase := &entity.CreditPurchase{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID:           userID,
		CreditPackageID:  pkg.ID,
		PurchasedCredits: pkg.CreditAmount,
		PricePaid:        pkg.Price,
		PurchasedAt:      now,
	}

	if err := r.CreditPurchase.Create(ctx, purchase); err != nil {
		return err
	}

	s.log.Info("Credits purchased",
		zap.String("purchase_id", purchase.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("credit_package_id", pkg.ID.String()),
		zap.Int("purchased_credits", purchase.PurchasedCredits),
	)

	return nil
}

func (s *creditService) ListPurchases(ctx context.Context, userID uuid.UUID) ([]response.CreditPurchaseResponse, error) {
	r := s.store.Repos()

	purchases, err := r.CreditPurchase.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := make([]response.CreditPurchaseResponse, len(purchases))
	for i, purchase := range purchases {
		var packageName string
		pkg, err := r.CreditPackage.FindByID(ctx, purchase.CreditPackageID)
		if err != nil {
			return nil, err
		}
		if pkg != nil {
			packageName = pkg.Name
		}

		resp[i] = response.CreditPurchaseResponse{
			PackageName:      packageName,
			PurchasedCredits: purchase.PurchasedCredits,
			PricePaid:        purchase.PricePaid,
			PurchasedAt:      purchase.PurchasedAt,
		}
	}

	return resp, nil
}
