// Package script reads budget operations from YAML and applies them to a Book.
//
//	operations:
//	  - op: deposit
//	    category: Food
//	    amount: "1000"
//	    description: initial deposit
//	  - op: transfer
//	    category: Food
//	    to: Clothing
//	    amount: "50"
package script

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sheikh-saqib/budget-ledger/internal/budget"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const (
	OpDeposit  = "deposit"
	OpWithdraw = "withdraw"
	OpTransfer = "transfer"
)

var ErrInvalidOperation = errors.New("invalid operation")

type Operation struct {
	Op          string `yaml:"op"`
	Category    string `yaml:"category"`
	To          string `yaml:"to,omitempty"`
	Amount      string `yaml:"amount"`
	Description string `yaml:"description,omitempty"`
}

type Script struct {
	// Categories are opened in this order before any operation runs,
	// which fixes their column order in the spend chart.
	Categories []string    `yaml:"categories,omitempty"`
	Operations []Operation `yaml:"operations"`
}

// Parse decodes and validates a script.
func Parse(r io.Reader) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode script: %w", err)
	}

	for i, op := range s.Operations {
		if err := op.validate(); err != nil {
			return nil, fmt.Errorf("operation %d: %w", i+1, err)
		}
	}
	return &s, nil
}

func (o Operation) validate() error {
	switch o.Op {
	case OpDeposit, OpWithdraw:
	case OpTransfer:
		if o.To == "" {
			return fmt.Errorf("%w: transfer needs a destination", ErrInvalidOperation)
		}
	default:
		return fmt.Errorf("%w: unknown op %q", ErrInvalidOperation, o.Op)
	}
	if o.Category == "" {
		return fmt.Errorf("%w: missing category", ErrInvalidOperation)
	}
	if _, err := o.amount(); err != nil {
		return err
	}
	return nil
}

func (o Operation) amount() (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(o.Amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: amount %q: %v", ErrInvalidOperation, o.Amount, err)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: amount %q", ErrInvalidOperation, o.Amount)
	}
	return amount, nil
}

// Result counts the outcome of Apply.
type Result struct {
	Applied  int
	Rejected []error // operations refused for insufficient funds
}

// Apply runs the operations in order. Operations refused for insufficient
// funds are collected in Result.Rejected and do not stop the run; any
// other error aborts it.
func (s *Script) Apply(ctx context.Context, book *budget.Book) (Result, error) {
	var res Result
	for _, name := range s.Categories {
		book.Open(name)
	}

	for i, op := range s.Operations {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		amount, err := op.amount()
		if err != nil {
			return res, fmt.Errorf("operation %d: %w", i+1, err)
		}

		switch op.Op {
		case OpDeposit:
			err = book.Deposit(ctx, op.Category, amount, op.Description)
		case OpWithdraw:
			err = book.Withdraw(ctx, op.Category, amount, op.Description)
		case OpTransfer:
			err = book.Transfer(ctx, op.Category, op.To, amount)
		}

		switch {
		case err == nil:
			res.Applied++
		case errors.Is(err, budget.ErrInsufficientFunds):
			res.Rejected = append(res.Rejected, fmt.Errorf("operation %d: %w", i+1, err))
		default:
			return res, fmt.Errorf("operation %d: %w", i+1, err)
		}
	}
	return res, nil
}
