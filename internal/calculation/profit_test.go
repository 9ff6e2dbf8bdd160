package calculation

import (
	"errors"
	"testing"

	"github.com/rpgo/profit-calculator/internal/domain"
	"github.com/rpgo/profit-calculator/internal/output"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestComputeProfit(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		pct    string
		mode   domain.RoundingMode
		want   string
	}{
		{"no rounding", "100", "10", domain.RoundNone, "10,00€"},
		{"round up exact", "100", "10", domain.RoundUp, "10,00€"},
		{"round up fractional", "33", "10", domain.RoundUp, "4,00€"},
		{"round nearest down", "33", "10", domain.RoundNearest, "3,00€"},
		{"round nearest up", "37", "10", domain.RoundNearest, "4,00€"},
		{"nearest tie to even", "25", "10", domain.RoundNearest, "2,00€"},
		{"nearest tie to even upward", "35", "10", domain.RoundNearest, "4,00€"},
		{"unrounded fraction", "33", "10", domain.RoundNone, "3,30€"},
		{"fractional percentage", "19.99", "21", domain.RoundNone, "4,20€"},
		{"thousands grouping", "123456", "10", domain.RoundNone, "12.345,60€"},
		{"zero percentage", "100", "0", domain.RoundUp, "0,00€"},
		{"negative percentage", "33", "-10", domain.RoundNone, "-3,30€"},
		{"negative percentage round up", "33", "-10", domain.RoundUp, "-3,00€"},
		{"negative percentage nearest", "33", "-10", domain.RoundNearest, "-3,00€"},
		{"small negative rounds up to zero", "3", "-10", domain.RoundUp, "0,00€"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeProfit(dec(tt.amount), dec(tt.pct), tt.mode))
		})
	}
}

func TestComputeProfit_ZeroAmount(t *testing.T) {
	for _, pct := range []string{"0", "10", "-5", "12.5", "1000"} {
		for _, mode := range domain.RoundingModes {
			assert.Equal(t, "0,00€", ComputeProfit(decimal.Zero, dec(pct), mode), "pct=%s mode=%s", pct, mode)
		}
	}
}

func TestComputeProfit_Idempotent(t *testing.T) {
	a := ComputeProfit(dec("1234.56"), dec("7.5"), domain.RoundNone)
	b := ComputeProfit(dec("1234.56"), dec("7.5"), domain.RoundNone)
	assert.Equal(t, a, b)
	assert.Equal(t, "92,59€", a)
}

type recordingLogger struct {
	NopLogger
	errors []string
	warns  []string
}

func (r *recordingLogger) Errorf(format string, args ...any) { r.errors = append(r.errors, format) }
func (r *recordingLogger) Warnf(format string, args ...any)  { r.warns = append(r.warns, format) }

func TestCalculate_FormatterFailureFallsBack(t *testing.T) {
	failing := output.MoneyFormatterFunc(func(decimal.Decimal, string) (string, error) {
		return "", errors.New("locale data missing")
	})
	logger := &recordingLogger{}
	pc := NewProfitCalculator(failing, "€")
	pc.SetLogger(logger)

	res := pc.Calculate(domain.Calculation{Amount: dec("100"), Percentage: dec("10"), Mode: domain.RoundNone})
	assert.Equal(t, "0,00", res.Formatted)
	assert.True(t, res.FellBack)
	assert.True(t, res.Profit.Equal(dec("10")))
	assert.Len(t, logger.errors, 1)
}

func TestCalculate_NilFormatterFallsBack(t *testing.T) {
	pc := &ProfitCalculator{Fallback: "n/a"}
	assert.Equal(t, "n/a", pc.Compute(dec("1"), dec("1"), domain.RoundNone))
}

func TestCalculate_ResultFields(t *testing.T) {
	pc := NewProfitCalculator(output.MustLocaleFormatter("en-US"), "$")
	res := pc.Calculate(domain.Calculation{Amount: dec("33"), Percentage: dec("10"), Mode: domain.RoundUp})
	assert.True(t, res.Raw.Equal(dec("3.3")))
	assert.True(t, res.Profit.Equal(dec("4")))
	assert.Equal(t, domain.RoundUp, res.Mode)
	assert.Equal(t, "4.00$", res.Formatted)
	assert.False(t, res.FellBack)
}

func TestCalculate_UnknownModeLeavesUnrounded(t *testing.T) {
	logger := &recordingLogger{}
	pc := NewProfitCalculator(output.MustLocaleFormatter("es-ES"), "€")
	pc.SetLogger(logger)
	assert.Equal(t, "3,30€", pc.Compute(dec("33"), dec("10"), domain.RoundingMode(42)))
	assert.Len(t, logger.warns, 1)
}

func TestNewProfitCalculatorFromSettings(t *testing.T) {
	pc := NewProfitCalculatorFromSettings(domain.Settings{Locale: "de-DE", CurrencySymbol: " EUR"}, nil)
	assert.Equal(t, "1.234,50 EUR", pc.Compute(dec("12345"), dec("10"), domain.RoundNone))
	assert.Equal(t, DefaultFallback, pc.Fallback)

	logger := &recordingLogger{}
	broken := NewProfitCalculatorFromSettings(domain.Settings{Locale: "und", CurrencySymbol: "€", Fallback: "--"}, logger)
	assert.Equal(t, "--", broken.Compute(dec("100"), dec("10"), domain.RoundNone))
	assert.Len(t, logger.warns, 1)
}

func TestParseNumberOrZero(t *testing.T) {
	cases := map[string]string{
		"":            "0",
		"  ":          "0",
		"abc":         "0",
		"12,5":        "0",
		"12.5":        "12.5",
		" 100 ":       "100",
		"-3":          "-3",
		"1e999999999": "0",
		"1e-99999999": "0",
		"1e31":        "0",
		"1e29":        "1e29",
	}
	for in, want := range cases {
		assert.True(t, ParseNumberOrZero(in).Equal(dec(want)), "input %q", in)
	}
}

func TestCalculate_OutOfRangeFallsBack(t *testing.T) {
	logger := &recordingLogger{}
	pc := NewProfitCalculator(output.MustLocaleFormatter("es-ES"), "€")
	pc.SetLogger(logger)

	res := pc.Calculate(domain.Calculation{Amount: dec("1e999999999"), Percentage: dec("10"), Mode: domain.RoundUp})
	assert.Equal(t, DefaultFallback, res.Formatted)
	assert.True(t, res.FellBack)
	assert.True(t, res.Profit.IsZero())
	assert.Len(t, logger.warns, 1)

	assert.Equal(t, DefaultFallback, pc.Compute(dec("100"), dec("1e-999999999"), domain.RoundNone))
	assert.Equal(t, "0,00€", ComputeProfit(ParseNumberOrZero("1e999999999"), dec("10"), domain.RoundNone))
}
