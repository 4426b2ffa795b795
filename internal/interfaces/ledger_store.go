package interfaces

import (
	"context"

	"github.com/sheikh-saqib/budget-ledger/internal/models"
)

// LedgerStore is the journal every appended ledger entry is mirrored to.
type LedgerStore interface {
	SaveEntry(ctx context.Context, entry models.LedgerEntry) error
	GetEntriesByCategory(ctx context.Context, categoryID string) ([]models.LedgerEntry, error)
	GetLedgerEntries(ctx context.Context) ([]models.LedgerEntry, error)
}
