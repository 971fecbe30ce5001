package entity

import (
	"github.com/shopspring/decimal"
)

type CreditPackage struct {
	BaseSimple
	Name         string          `db:"name"`
	CreditAmount int             `db:"credit_amount"`
	Price        decimal.Decimal `db:"price"`
}
