package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer represents money moved between two categories
type Transfer struct {
	ID           string
	FromCategory string
	ToCategory   string
	Amount       decimal.Decimal
	Debit        LedgerEntry
	Credit       LedgerEntry
	CreatedAt    time.Time
}
