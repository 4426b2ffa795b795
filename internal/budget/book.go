package budget

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	interfaces "github.com/sheikh-saqib/budget-ledger/internal/interfaces"
	"github.com/sheikh-saqib/budget-ledger/internal/models"
	"github.com/sheikh-saqib/budget-ledger/internal/models/events"
	"github.com/shopspring/decimal"
)

const (
	TopicEntryRecorded     = "ledger_entry_recorded"
	TopicTransferCompleted = "transfer_completed"
)

// Book holds a set of named categories and mirrors every entry they
// record to a journal store. Events are published when a publisher is set.
type Book struct {
	store     interfaces.LedgerStore    // journal for appended entries
	publisher interfaces.EventPublisher // optional, may be nil
	logger    *slog.Logger

	mu         sync.Mutex // protects categories and order
	categories map[string]*Category
	order      []string
}

// NewBook creates an empty Book. publisher may be nil to disable events.
func NewBook(store interfaces.LedgerStore, publisher interfaces.EventPublisher, logger *slog.Logger) *Book {
	if logger == nil {
		logger = slog.Default()
	}
	return &Book{
		store:      store,
		publisher:  publisher,
		logger:     logger.With("component", "book"),
		categories: make(map[string]*Category),
	}
}

// Open returns the category with the given name, creating it if needed.
func (b *Book) Open(name string) *Category {
	c, _ := b.open(name)
	return c
}

// open reports whether the category was created by this call.
func (b *Book) open(name string) (*Category, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if c, exists := b.categories[name]; exists {
		return c, false
	}
	c := NewCategory(name)
	b.categories[name] = c
	b.order = append(b.order, name)
	b.logger.Debug("category opened", "category", name, "category_id", c.ID())
	return c, true
}

// discard removes c again if it is still registered under name and has
// never recorded an entry.
func (b *Book) discard(name string, c *Category) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.categories[name] != c || len(c.Ledger()) > 0 {
		return
	}
	delete(b.categories, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	b.logger.Debug("category discarded", "category", name, "category_id", c.ID())
}

func (b *Book) Category(name string) (*Category, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	c, exists := b.categories[name]
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrCategoryNotFound, name)
	}
	return c, nil
}

// Categories returns the categories in the order they were opened.
func (b *Book) Categories() []*Category {
	b.mu.Lock()
	defer b.mu.Unlock()

	result := make([]*Category, 0, len(b.order))
	for _, name := range b.order {
		result = append(result, b.categories[name])
	}
	return result
}

// Deposit credits the named category, opening it if it does not exist.
// A rejected deposit opens nothing.
func (b *Book) Deposit(ctx context.Context, name string, amount decimal.Decimal, description string) error {
	if amount.IsNegative() {
		return fmt.Errorf("deposit to %q: %w", name, ErrNegativeAmount)
	}
	entry, err := b.Open(name).deposit(amount, description)
	if err != nil {
		return fmt.Errorf("deposit to %q: %w", name, err)
	}
	return b.record(ctx, entry)
}

func (b *Book) Withdraw(ctx context.Context, name string, amount decimal.Decimal, description string) error {
	if amount.IsNegative() {
		return fmt.Errorf("withdraw from %q: %w", name, ErrNegativeAmount)
	}
	c, err := b.Category(name)
	if err != nil {
		return err
	}

	entry, ok := c.withdraw(amount, description)
	if !ok {
		return fmt.Errorf("withdraw %s from %q: %w", amount.StringFixed(2), name, ErrInsufficientFunds)
	}
	return b.record(ctx, entry)
}

// Transfer moves amount from an existing category to the destination,
// which is opened if missing. A refused transfer leaves the set of
// categories as it was.
func (b *Book) Transfer(ctx context.Context, from, to string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("transfer from %q: %w", from, ErrNegativeAmount)
	}
	source, err := b.Category(from)
	if err != nil {
		return err
	}
	destination, created := b.open(to)

	debit, credit, ok := source.transfer(amount, destination)
	if !ok {
		if created {
			b.discard(to, destination)
		}
		return fmt.Errorf("transfer %s from %q to %q: %w", amount.StringFixed(2), from, to, ErrInsufficientFunds)
	}

	if err := b.record(ctx, debit, credit); err != nil {
		return err
	}

	t := models.Transfer{
		ID:           uuid.New().String(),
		FromCategory: from,
		ToCategory:   to,
		Amount:       amount,
		Debit:        debit,
		Credit:       credit,
		CreatedAt:    debit.CreatedAt,
	}
	b.publish(ctx, TopicTransferCompleted, events.TransferCompleted{
		TransferID:    t.ID,
		FromCategory:  t.FromCategory,
		ToCategory:    t.ToCategory,
		Amount:        t.Amount,
		DebitEntryID:  t.Debit.ID,
		CreditEntryID: t.Credit.ID,
		OccurredAt:    t.CreatedAt,
	})
	return nil
}

// Statement renders the named category's statement.
func (b *Book) Statement(name string) (string, error) {
	c, err := b.Category(name)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}

// Journal reads back what the store holds: every entry when name is
// empty, otherwise the entries of that category.
func (b *Book) Journal(ctx context.Context, name string) ([]models.LedgerEntry, error) {
	if name == "" {
		entries, err := b.store.GetLedgerEntries(ctx)
		if err != nil {
			return nil, fmt.Errorf("read journal: %w", err)
		}
		return entries, nil
	}

	c, err := b.Category(name)
	if err != nil {
		return nil, err
	}
	entries, err := b.store.GetEntriesByCategory(ctx, c.ID())
	if err != nil {
		return nil, fmt.Errorf("read journal for %q: %w", name, err)
	}
	return entries, nil
}

// SpendChart renders the spend chart over all categories in open order.
func (b *Book) SpendChart() string {
	return SpendChart(b.Categories())
}

// record saves entries to the journal and publishes an event for each.
// The in-memory ledger already holds the entries, so a journal failure
// is reported but not rolled back.
func (b *Book) record(ctx context.Context, entries ...models.LedgerEntry) error {
	var errs []error
	for _, entry := range entries {
		if err := b.store.SaveEntry(ctx, entry); err != nil {
			b.logger.ErrorContext(ctx, "failed to journal entry", "category", entry.Category, "entry_id", entry.ID, "error", err)
			errs = append(errs, fmt.Errorf("journal entry %s: %w", entry.ID, err))
			continue
		}
		b.publish(ctx, TopicEntryRecorded, events.EntryRecorded{
			EntryID:     entry.ID,
			CategoryID:  entry.CategoryID,
			Category:    entry.Category,
			Amount:      entry.Amount,
			Description: entry.Description,
			OccurredAt:  entry.CreatedAt,
		})
	}
	return errors.Join(errs...)
}

// publish failures are logged only; events are best effort
func (b *Book) publish(ctx context.Context, topic string, event any) {
	if b.publisher == nil {
		return
	}
	if err := b.publisher.Publish(ctx, topic, event); err != nil {
		b.logger.WarnContext(ctx, "failed to publish event", "topic", topic, "error", err)
	}
}
