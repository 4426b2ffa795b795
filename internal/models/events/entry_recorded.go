package events

import (
	"time"

	"github.com/shopspring/decimal"
)

type EntryRecorded struct {
	EntryID     string          `json:"entry_id"`
	CategoryID  string          `json:"category_id"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	OccurredAt  time.Time       `json:"occurred_at"`
}
