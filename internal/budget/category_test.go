package budget

import (
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCategoryBalanceIsRunningSum(t *testing.T) {
	c := NewCategory("Food")
	require.NoError(t, c.Deposit(d("900"), "initial"))
	assert.True(t, c.Withdraw(d("105.25"), "groceries"))
	require.NoError(t, c.Deposit(d("0.25"), ""))
	assert.True(t, c.Withdraw(d("5"), ""))

	assert.True(t, c.Balance().Equal(d("790")), "got %s", c.Balance())
}

func TestCategoryWithdrawInsufficientFunds(t *testing.T) {
	c := NewCategory("Food")
	require.NoError(t, c.Deposit(d("900"), "initial"))
	assert.True(t, c.Withdraw(d("105.25"), "groceries"))
	assert.True(t, c.Balance().Equal(d("794.75")))

	assert.False(t, c.Withdraw(d("100000"), "too much"))
	assert.True(t, c.Balance().Equal(d("794.75")))
	assert.Len(t, c.Ledger(), 2)
}

func TestCategoryWithdrawNegatesAmount(t *testing.T) {
	c := NewCategory("Food")
	require.NoError(t, c.Deposit(d("10"), "initial"))
	require.True(t, c.Withdraw(d("4.5"), "milk"))

	entries := c.Ledger()
	require.Len(t, entries, 2)
	assert.True(t, entries[1].Amount.Equal(d("-4.5")))
	assert.Equal(t, "milk", entries[1].Description)
	assert.Equal(t, c.ID(), entries[1].CategoryID)
	assert.Equal(t, "Food", entries[1].Category)
	assert.NotEmpty(t, entries[1].ID)
}

func TestCategoryWithdrawExactBalance(t *testing.T) {
	c := NewCategory("Food")
	require.NoError(t, c.Deposit(d("20"), ""))

	assert.True(t, c.CheckFunds(d("20")))
	assert.False(t, c.CheckFunds(d("20.01")))
	assert.True(t, c.Withdraw(d("20"), ""))
	assert.True(t, c.Balance().IsZero())
}

func TestCategoryDepositThenWithdrawRoundTrip(t *testing.T) {
	c := NewCategory("Food")
	require.NoError(t, c.Deposit(d("33.33"), ""))
	before := c.Balance()

	require.NoError(t, c.Deposit(d("0.1"), ""))
	require.True(t, c.Withdraw(d("0.1"), ""))
	assert.True(t, c.Balance().Equal(before))
}

func TestCategoryRejectsNegativeAmounts(t *testing.T) {
	c := NewCategory("Food")
	require.NoError(t, c.Deposit(d("10"), ""))
	other := NewCategory("Auto")

	assert.ErrorIs(t, c.Deposit(d("-1"), ""), ErrNegativeAmount)
	assert.False(t, c.Withdraw(d("-1"), ""))
	assert.False(t, c.Transfer(d("-1"), other))

	assert.Len(t, c.Ledger(), 1)
	assert.Empty(t, other.Ledger())
}

func TestCategoryTransfer(t *testing.T) {
	food := NewCategory("Food")
	clothing := NewCategory("Clothing")
	require.NoError(t, food.Deposit(d("900"), "deposit"))

	assert.True(t, food.Transfer(d("20"), clothing))

	assert.True(t, food.Balance().Equal(d("880")))
	assert.True(t, clothing.Balance().Equal(d("20")))

	debit := food.Ledger()[1]
	assert.True(t, debit.Amount.Equal(d("-20")))
	assert.Equal(t, "Transfer to Clothing", debit.Description)

	credit := clothing.Ledger()[0]
	assert.True(t, credit.Amount.Equal(d("20")))
	assert.Equal(t, "Transfer from Food", credit.Description)
}

func TestCategoryTransferInsufficientFunds(t *testing.T) {
	food := NewCategory("Food")
	clothing := NewCategory("Clothing")
	require.NoError(t, food.Deposit(d("10"), "deposit"))

	assert.False(t, food.Transfer(d("200"), clothing))
	assert.Len(t, food.Ledger(), 1)
	assert.Empty(t, clothing.Ledger())
	assert.False(t, food.Transfer(d("1"), nil))
}

func TestCategoryTransferToSelf(t *testing.T) {
	food := NewCategory("Food")
	require.NoError(t, food.Deposit(d("10"), ""))

	assert.True(t, food.Transfer(d("10"), food))
	assert.True(t, food.Balance().Equal(d("10")))
	assert.Len(t, food.Ledger(), 3)
	assert.False(t, food.Transfer(d("11"), food))
}

func TestCategoryConcurrentWithdrawNeverOverdraws(t *testing.T) {
	c := NewCategory("Food")
	require.NoError(t, c.Deposit(d("100"), ""))

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.Withdraw(d("3"), "") {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 33, succeeded)
	assert.True(t, c.Balance().Equal(d("1")))
}

func TestCategoryConcurrentOpposingTransfers(t *testing.T) {
	a := NewCategory("A")
	b := NewCategory("B")
	require.NoError(t, a.Deposit(d("50"), ""))
	require.NoError(t, b.Deposit(d("50"), ""))

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() { defer wg.Done(); a.Transfer(d("1"), b) }()
		go func() { defer wg.Done(); b.Transfer(d("1"), a) }()
	}
	wg.Wait()

	assert.True(t, a.Balance().Add(b.Balance()).Equal(d("100")))
	assert.False(t, a.Balance().IsNegative())
	assert.False(t, b.Balance().IsNegative())
}

func TestCategoryString(t *testing.T) {
	food := NewCategory("Food")
	entertainment := NewCategory("Entertainment")
	clothing := NewCategory("Clothing")

	require.NoError(t, food.Deposit(d("900"), "deposit"))
	require.NoError(t, entertainment.Deposit(d("900"), "deposit"))
	food.Withdraw(d("45.67"), "milk, cereal, eggs, bacon, bread")
	food.Transfer(d("20"), clothing)

	want := "*************Food*************\n" +
		"deposit                 900.00\n" +
		"milk, cereal, eggs, bac -45.67\n" +
		"Transfer to Clothing    -20.00\n" +
		"Total: 834.33"
	assert.Equal(t, want, food.String())

	assert.Equal(t, "********Entertainment*********\n"+
		"deposit                 900.00\n"+
		"Total: 900.00", entertainment.String())
}

func TestCategoryStringLineWidth(t *testing.T) {
	business := NewCategory("Business")
	rainy := NewCategory("Rainy Days")
	require.NoError(t, business.Deposit(d("15"), ""))
	require.True(t, business.Transfer(d("15"), rainy))

	lines := strings.Split(business.String(), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "***********Business***********", lines[0])
	assert.Equal(t, "Transfer to Rainy Days  -15.00", lines[2])
	assert.Equal(t, 30, utf8.RuneCountInString(lines[2]))
	assert.Equal(t, "Total: 0.00", lines[3])
}

func TestCategoryStringEmptyLedger(t *testing.T) {
	assert.Equal(t, "*************Auto*************\nTotal: 0.00", NewCategory("Auto").String())
}

func TestCenter(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Food", 30, "*************Food*************"},
		{"Rainy", 30, "************Rainy*************"},
		{"ab", 5, "**ab*"},
		{"abc", 2, "abc"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, center(tt.in, tt.width, '*'), tt.in)
	}
}

func TestCategoryStringRoundsHalfAwayFromZero(t *testing.T) {
	c := NewCategory("Tips")
	require.NoError(t, c.Deposit(d("0.125"), "tip"))
	require.NoError(t, c.Deposit(d("1"), "cash"))
	require.True(t, c.Withdraw(d("0.005"), "fee"))

	lines := strings.Split(c.String(), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "tip"+strings.Repeat(" ", 23)+"0.13", lines[1])
	assert.Equal(t, "fee"+strings.Repeat(" ", 22)+"-0.01", lines[3])
	// the total rounds the exact sum 1.12, not the printed lines
	assert.Equal(t, "Total: 1.12", lines[4])
	assert.True(t, c.Balance().Equal(d("1.12")))
}
