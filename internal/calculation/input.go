package calculation

import (
	"strings"

	money "github.com/rpgo/profit-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// ParseNumberOrZero converts user-entered text to a decimal. Empty,
// unparsable or out of range text yields zero; bad input is never an error.
func ParseNumberOrZero(text string) decimal.Decimal {
	m, err := money.NewMoneyFromString(strings.TrimSpace(text))
	if err != nil {
		return decimal.Zero
	}
	return m.Decimal
}
