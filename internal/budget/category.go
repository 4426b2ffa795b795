package budget

import (
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sheikh-saqib/budget-ledger/internal/models"
	"github.com/shopspring/decimal"
)

const (
	statementWidth      = 30
	maxDescriptionRunes = 23
)

// Category is a named spending category holding an append-only ledger.
// Every check-then-append happens under the category's mutex, so a
// withdrawal or outgoing transfer can never drive the balance negative.
type Category struct {
	id     string
	name   string
	mu     sync.Mutex
	ledger []models.LedgerEntry
	now    func() time.Time
}

// NewCategory creates a category with an empty ledger.
func NewCategory(name string) *Category {
	return &Category{
		id:   uuid.New().String(),
		name: name,
		now:  time.Now,
	}
}

func (c *Category) ID() string   { return c.id }
func (c *Category) Name() string { return c.name }

// Ledger returns a copy of the entries in insertion order.
func (c *Category) Ledger() []models.LedgerEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	copied := make([]models.LedgerEntry, len(c.ledger))
	copy(copied, c.ledger)
	return copied
}

// Balance is the sum of all ledger amounts.
func (c *Category) Balance() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.balance()
}

// CheckFunds reports whether the balance covers amount.
func (c *Category) CheckFunds(amount decimal.Decimal) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.balance().GreaterThanOrEqual(amount)
}

// Spent is the total of all withdrawals, as a positive amount.
// Deposits are ignored.
func (c *Category) Spent() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()

	spent := decimal.Zero
	for _, e := range c.ledger {
		if e.IsWithdrawal() {
			spent = spent.Sub(e.Amount)
		}
	}
	return spent
}

// Deposit appends a credit. Negative amounts are rejected with
// ErrNegativeAmount and leave the ledger untouched.
func (c *Category) Deposit(amount decimal.Decimal, description string) error {
	_, err := c.deposit(amount, description)
	return err
}

// Withdraw appends a debit of -amount if the balance covers it.
// It returns false, without touching the ledger, on insufficient
// funds or a negative amount.
func (c *Category) Withdraw(amount decimal.Decimal, description string) bool {
	_, ok := c.withdraw(amount, description)
	return ok
}

// Transfer moves amount to destination, recording "Transfer to <dest>"
// here and "Transfer from <src>" there. On failure neither category
// is modified.
func (c *Category) Transfer(amount decimal.Decimal, destination *Category) bool {
	_, _, ok := c.transfer(amount, destination)
	return ok
}

func (c *Category) deposit(amount decimal.Decimal, description string) (models.LedgerEntry, error) {
	if amount.IsNegative() {
		return models.LedgerEntry{}, ErrNegativeAmount
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.appendEntry(amount, description), nil
}

func (c *Category) withdraw(amount decimal.Decimal, description string) (models.LedgerEntry, bool) {
	if amount.IsNegative() {
		return models.LedgerEntry{}, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.balance().LessThan(amount) {
		return models.LedgerEntry{}, false
	}
	return c.appendEntry(amount.Neg(), description), true
}

func (c *Category) transfer(amount decimal.Decimal, destination *Category) (debit, credit models.LedgerEntry, ok bool) {
	if destination == nil || amount.IsNegative() {
		return debit, credit, false
	}

	if destination == c {
		c.mu.Lock()
		defer c.mu.Unlock()
	} else {
		// Lock in ID order to avoid deadlocks between opposite transfers
		first, second := c, destination
		if second.id < first.id {
			first, second = second, first
		}
		first.mu.Lock()
		defer first.mu.Unlock()
		second.mu.Lock()
		defer second.mu.Unlock()
	}

	if c.balance().LessThan(amount) {
		return debit, credit, false
	}

	debit = c.appendEntry(amount.Neg(), "Transfer to "+destination.name)
	credit = destination.appendEntry(amount, "Transfer from "+c.name)
	return debit, credit, true
}

// caller must hold c.mu
func (c *Category) balance() decimal.Decimal {
	balance := decimal.Zero
	for _, e := range c.ledger {
		balance = balance.Add(e.Amount)
	}
	return balance
}

// caller must hold c.mu
func (c *Category) appendEntry(amount decimal.Decimal, description string) models.LedgerEntry {
	entry := models.LedgerEntry{
		ID:          uuid.New().String(),
		CategoryID:  c.id,
		Category:    c.name,
		Amount:      amount,
		Description: description,
		CreatedAt:   c.now(),
	}
	c.ledger = append(c.ledger, entry)
	return entry
}

// String renders the category statement:
//
//	*************Food*************
//	initial deposit        1000.00
//	groceries               -10.15
//	Total: 989.85
func (c *Category) String() string {
	entries := c.Ledger()

	var b strings.Builder
	b.WriteString(center(c.name, statementWidth, '*'))
	b.WriteString("\n")

	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)

		amount := e.Amount.StringFixed(2)
		description := truncateRunes(e.Description, maxDescriptionRunes)
		gap := statementWidth - utf8.RuneCountInString(amount) - utf8.RuneCountInString(description)

		b.WriteString(description)
		b.WriteString(strings.Repeat(" ", max(gap, 0)))
		b.WriteString(amount)
		b.WriteString("\n")
	}

	b.WriteString("Total: ")
	b.WriteString(total.StringFixed(2))
	return b.String()
}

// center pads s with fill on both sides up to width. When the padding is
// odd the extra character goes right, except for odd widths where it goes left.
func center(s string, width int, fill rune) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	pad := width - n
	left := pad/2 + (pad & width & 1)
	return strings.Repeat(string(fill), left) + s + strings.Repeat(string(fill), pad-left)
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}
