package response

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreditPackageResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	CreditAmount int             `json:"credit_amount"`
	Price        decimal.Decimal `json:"price"`
}

type CreditPurchaseResponse struct {
	PackageName      string          `json:"name"`
	PurchasedCredits int             `json:"purchased_credits"`
	PricePaid        decimal.Decimal `json:"price_paid"`
	PurchasedAt      time.Time       `json:"purchase_at"`
}
