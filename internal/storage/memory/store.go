package memory

import (
	"context"
	"sync"

	interfaces "github.com/sheikh-saqib/budget-ledger/internal/interfaces"
	"github.com/sheikh-saqib/budget-ledger/internal/models"
)

// MemoryLedgerStore is an in-memory journal of ledger entries.
// It is safe for concurrent use.
type MemoryLedgerStore struct {
	mu      sync.Mutex
	entries []models.LedgerEntry
}

// NewMemoryLedgerStore creates and returns a new MemoryLedgerStore instance
func NewMemoryLedgerStore() *MemoryLedgerStore {
	return &MemoryLedgerStore{
		entries: make([]models.LedgerEntry, 0),
	}
}

// SaveEntry appends a LedgerEntry to the journal.
func (m *MemoryLedgerStore) SaveEntry(ctx context.Context, entry models.LedgerEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append(m.entries, entry)
	return nil
}

// GetLedgerEntries returns a copy of all journaled entries in save order.
func (m *MemoryLedgerStore) GetLedgerEntries(ctx context.Context) ([]models.LedgerEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// return a copy so callers can't modify internal state
	copied := make([]models.LedgerEntry, len(m.entries))
	copy(copied, m.entries)
	return copied, nil
}

func (m *MemoryLedgerStore) GetEntriesByCategory(ctx context.Context, categoryID string) ([]models.LedgerEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var result []models.LedgerEntry
	for _, e := range m.entries {
		if e.CategoryID == categoryID {
			result = append(result, e)
		}
	}
	return result, nil
}

// Compile-time check: ensure MemoryLedgerStore implements LedgerStore interface
var _ interfaces.LedgerStore = (*MemoryLedgerStore)(nil)
