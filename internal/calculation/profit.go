package calculation

import (
	"github.com/rpgo/profit-calculator/internal/domain"
	"github.com/rpgo/profit-calculator/internal/output"
	money "github.com/rpgo/profit-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

const (
	// DefaultCurrencySymbol is appended to every formatted amount.
	DefaultCurrencySymbol = "€"
	// DefaultFallback is returned when formatting fails.
	DefaultFallback = "0,00"
)

// ProfitCalculator computes percentage profit on an amount and formats it.
// It never returns an error: formatting failures produce Fallback.
type ProfitCalculator struct {
	Formatter output.MoneyFormatter
	Symbol    string
	Fallback  string
	Logger    Logger
}

// NewProfitCalculator creates a calculator using formatter and currency symbol.
func NewProfitCalculator(formatter output.MoneyFormatter, symbol string) *ProfitCalculator {
	return &ProfitCalculator{
		Formatter: formatter,
		Symbol:    symbol,
		Fallback:  DefaultFallback,
		Logger:    NopLogger{},
	}
}

// NewProfitCalculatorFromSettings builds a calculator for the configured locale.
// An unsupported locale is logged and leaves the calculator returning the fallback.
func NewProfitCalculatorFromSettings(s domain.Settings, logger Logger) *ProfitCalculator {
	if logger == nil {
		logger = NopLogger{}
	}
	f, err := output.NewLocaleFormatter(s.Locale)
	if err != nil {
		logger.Warnf("locale %q unavailable, results will use fallback: %v", s.Locale, err)
	}
	pc := NewProfitCalculator(f, s.CurrencySymbol)
	if s.Fallback != "" {
		pc.Fallback = s.Fallback
	}
	pc.Logger = logger
	return pc
}

// SetLogger sets the logger. If nil is provided, a no-op logger is used.
func (pc *ProfitCalculator) SetLogger(l Logger) {
	if l == nil {
		pc.Logger = NopLogger{}
		return
	}
	pc.Logger = l
}

var defaultCalculator = NewProfitCalculator(output.MustLocaleFormatter(output.DefaultLocale), DefaultCurrencySymbol)

// ComputeProfit returns percentagePoints percent of amount, rounded per mode,
// formatted for es-ES with a trailing euro sign (e.g. "1.234,50€").
func ComputeProfit(amount, percentagePoints decimal.Decimal, mode domain.RoundingMode) string {
	return defaultCalculator.Compute(amount, percentagePoints, mode)
}

// Compute returns the formatted profit.
func (pc *ProfitCalculator) Compute(amount, percentagePoints decimal.Decimal, mode domain.RoundingMode) string {
	return pc.Calculate(domain.Calculation{Amount: amount, Percentage: percentagePoints, Mode: mode}).Formatted
}

// Calculate computes raw = amount * percentage / 100, applies the rounding
// mode and formats the result. Inputs outside money.InRange produce the
// fallback text without being computed.
func (pc *ProfitCalculator) Calculate(c domain.Calculation) domain.ProfitResult {
	if !money.InRange(c.Amount) || !money.InRange(c.Percentage) {
		pc.logger().Warnf("input out of range (amount exp %d, percentage exp %d), using fallback",
			c.Amount.Exponent(), c.Percentage.Exponent())
		return domain.ProfitResult{
			Amount:     c.Amount,
			Percentage: c.Percentage,
			Mode:       c.Mode,
			Formatted:  pc.Fallback,
			FellBack:   true,
		}
	}
	raw := money.NewMoneyFromDecimal(c.Amount).PercentOf(c.Percentage)
	profit := pc.round(raw, c.Mode)

	formatted, ok := pc.Format(profit.Decimal)
	return domain.ProfitResult{
		Amount:     c.Amount,
		Percentage: c.Percentage,
		Mode:       c.Mode,
		Raw:        raw.Decimal,
		Profit:     profit.Decimal,
		Formatted:  formatted,
		FellBack:   !ok,
	}
}

func (pc *ProfitCalculator) round(m money.Money, mode domain.RoundingMode) money.Money {
	switch mode {
	case domain.RoundUp:
		return m.Ceil()
	case domain.RoundNearest:
		return m.RoundNearest()
	case domain.RoundNone:
		return m
	default:
		pc.logger().Warnf("unknown rounding mode %d, leaving profit unrounded", int(mode))
		return m
	}
}

// Format renders amount with the calculator's formatter and symbol. When the
// formatter fails it returns the fallback text and false.
func (pc *ProfitCalculator) Format(amount decimal.Decimal) (string, bool) {
	if pc.Formatter == nil {
		pc.logger().Errorf("no money formatter configured")
		return pc.Fallback, false
	}
	s, err := pc.Formatter.FormatMoney(amount, pc.Symbol)
	if err != nil {
		pc.logger().Errorf("format %s: %v", amount, err)
		return pc.Fallback, false
	}
	return s, true
}

func (pc *ProfitCalculator) logger() Logger {
	if pc.Logger == nil {
		return NopLogger{}
	}
	return pc.Logger
}
