package budget

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const chartTitle = "Percentage spent by category"

var ten = decimal.NewFromInt(10)

// SpendPercentages returns, for each category in order, its share of the
// total withdrawals rounded down to a multiple of 10. When nothing has been
// withdrawn at all every share is 0.
func SpendPercentages(categories []*Category) []int {
	spent := make([]decimal.Decimal, len(categories))
	total := decimal.Zero
	for i, c := range categories {
		spent[i] = c.Spent()
		total = total.Add(spent[i])
	}

	percents := make([]int, len(categories))
	if total.IsZero() {
		return percents
	}

	for i, s := range spent {
		// floor(10 * s / total) is exact since both operands are non-negative
		q, _ := s.Mul(ten).QuoRem(total, 0)
		percents[i] = int(q.IntPart()) * 10
	}
	return percents
}

// SpendChart renders a vertical bar chart of SpendPercentages with the
// category names printed top-down below the x axis.
func SpendChart(categories []*Category) string {
	percents := SpendPercentages(categories)

	var b strings.Builder
	b.WriteString(chartTitle)
	b.WriteString("\n")

	for level := 100; level >= 0; level -= 10 {
		fmt.Fprintf(&b, "%4s", fmt.Sprintf("%d|", level))
		for _, p := range percents {
			if p >= level {
				b.WriteString(" o ")
			} else {
				b.WriteString("   ")
			}
		}
		b.WriteString(" \n")
	}

	b.WriteString("    ")
	b.WriteString(strings.Repeat("-", 3*len(categories)+1))
	b.WriteString("\n")

	names := make([][]rune, len(categories))
	longest := 0
	for i, c := range categories {
		names[i] = []rune(c.Name())
		longest = max(longest, len(names[i]))
	}

	for row := 0; row < longest; row++ {
		b.WriteString("    ")
		for _, name := range names {
			if row < len(name) {
				b.WriteString(" " + string(name[row]) + " ")
			} else {
				b.WriteString("   ")
			}
		}
		b.WriteString(" ")
		if row < longest-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}
