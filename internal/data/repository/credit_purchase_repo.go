package repository

import (
	"context"
	"fmt"

	"coaching-booking/internal/data/entity"
	"coaching-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CreditPurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.CreditPurchase) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.CreditPurchase, error)

	// SumCreditsByUserID totals every credit the user ever purchased.
	// Purchases are append-only, so the sum only grows.
	SumCreditsByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}

type creditPurchaseRepository struct {
	db  database.Queryer
	log *zap.Logger
}

func NewCreditPurchaseRepository(db database.Queryer, log *zap.Logger) CreditPurchaseRepository {
	return &creditPurchaseRepository{
		db:  db,
		log: log.With(zap.String("repository", "credit_purchase")),
	}
}

func (r *creditPurchaseRepository) Create(ctx context.Context, purchase *entity.CreditPurchase) error {
	query := `
		INSERT INTO credit_purchases (id, user_id, credit_package_id, purchased_credits, price_paid, purchased_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		purchase.ID,
		purchase.UserID,
		purchase.CreditPackageID,
		purchase.PurchasedCredits,
		purchase.PricePaid,
		purchase.PurchasedAt,
		purchase.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create credit purchase",
			zap.Error(err),
			zap.String("user_id", purchase.UserID.String()),
			zap.String("credit_package_id", purchase.CreditPackageID.String()),
		)
		return fmt.Errorf("create credit purchase: %w", err)
	}

	return nil
}

func (r *creditPurchaseRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.CreditPurchase, error) {
	query := `
		SELECT id, user_id, credit_package_id, purchased_credits, price_paid, purchased_at, created_at
		FROM credit_purchases
		WHERE user_id = $1
		ORDER BY purchased_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find credit purchases by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find credit purchases by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var purchases []*entity.CreditPurchase
	for rows.Next() {
		var purchase entity.CreditPurchase
		err := rows.Scan(
			&purchase.ID,
			&purchase.UserID,
			&purchase.CreditPackageID,
			&purchase.PurchasedCredits,
			&purchase.PricePaid,
			&purchase.PurchasedAt,
			&purchase.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan credit purchase row", zap.Error(err))
			return nil, fmt.Errorf("scan credit purchase row: %w", err)
		}
		purchases = append(purchases, &purchase)
	}

	return purchases, nil
}

func (r *creditPurchaseRepository) SumCreditsByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COALESCE(SUM(purchased_credits), 0) FROM credit_purchases WHERE user_id = $1`

	var sum int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&sum)
	if err != nil {
		r.log.Error("Failed to sum purchased credits",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("sum purchased credits for user %s: %w", userID.String(), err)
	}

	return sum, nil
}
