package budget

import "errors"

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNegativeAmount    = errors.New("amount must not be negative")
	ErrCategoryNotFound  = errors.New("category not found")
)
