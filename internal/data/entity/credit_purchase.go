package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreditPurchase is an immutable ledger entry. Rows are only ever appended;
// the available balance is always derived from them, never stored.
type CreditPurchase struct {
	BaseSimple
	UserID           uuid.UUID       `db:"user_id"`
	CreditPackageID  uuid.UUID       `db:"credit_package_id"`
	PurchasedCredits int             `db:"purchased_credits"`
	PricePaid        decimal.Decimal `db:"price_paid"`
	PurchasedAt      time.Time       `db:"purchased_at"`
}
