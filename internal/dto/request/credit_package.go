package request

import "github.com/shopspring/decimal"

type CreateCreditPackageRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=50"`
	CreditAmount int             `json:"credit_amount" validate:"required,gt=0"`
	Price        decimal.Decimal `json:"price"`
}
