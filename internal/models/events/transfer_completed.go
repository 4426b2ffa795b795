package events

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransferCompleted struct {
	TransferID    string          `json:"transfer_id"`
	FromCategory  string          `json:"from_category"`
	ToCategory    string          `json:"to_category"`
	Amount        decimal.Decimal `json:"amount"`
	DebitEntryID  string          `json:"debit_entry_id"`
	CreditEntryID string          `json:"credit_entry_id"`
	OccurredAt    time.Time       `json:"occurred_at"`
}
