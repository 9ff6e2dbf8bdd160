package decimal

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Input limits. Outside them the digit strings built for display grow with
// the exponent, so such values are rejected before any arithmetic.
const (
	MaxIntegerDigits  = 30
	MaxFractionDigits = 30
)

// ErrOutOfRange is returned for values exceeding MaxIntegerDigits or MaxFractionDigits.
var ErrOutOfRange = errors.New("value out of range")

// InRange reports whether d has at most MaxIntegerDigits integer digits and
// at most MaxFractionDigits fraction digits.
func InRange(d decimal.Decimal) bool {
	exp := int(d.Exponent())
	if exp < -MaxFractionDigits || exp > MaxIntegerDigits {
		return false
	}
	return d.NumDigits()+exp <= MaxIntegerDigits
}

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	if !InRange(d) {
		return Money{}, fmt.Errorf("%w: %q", ErrOutOfRange, value)
	}
	return Money{d}, nil
}

// PercentOf returns points percent of the amount (points=10 means 10%).
func (m Money) PercentOf(points decimal.Decimal) Money {
	return Money{m.Decimal.Mul(points).Div(hundred)}
}

// Ceil rounds up to the next whole unit.
func (m Money) Ceil() Money {
	return Money{m.Decimal.Ceil()}
}

// RoundNearest rounds to the nearest whole unit, ties to even.
func (m Money) RoundNearest() Money {
	return Money{m.Decimal.RoundBank(0)}
}

// Round rounds the money amount to cents using banker's rounding
func (m Money) Round() Money {
	return Money{m.Decimal.RoundBank(2)}
}

// IsZero checks if the amount is zero
func (m Money) IsZero() bool {
	return m.Decimal.IsZero()
}

// IsNegative checks if the amount is negative
func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the amount with exactly two fraction digits
func (m Money) String() string {
	return m.Decimal.StringFixedBank(2)
}
