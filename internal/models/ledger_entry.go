package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry represents a single record in a category's ledger.
// Entries are never mutated once appended.
type LedgerEntry struct {
	ID          string          // unique identifier
	CategoryID  string          // which category this entry belongs to
	Category    string          // category name at the time of the entry
	Amount      decimal.Decimal // positive for deposits, negative for withdrawals
	Description string
	CreatedAt   time.Time
}

// IsWithdrawal reports whether the entry debits its category.
func (e LedgerEntry) IsWithdrawal() bool {
	return e.Amount.IsNegative()
}
