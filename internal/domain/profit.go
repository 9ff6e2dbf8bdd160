package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Calculation is a single profit request: a base amount, a profit percentage
// in whole percentage points (10 means 10%) and a rounding mode.
type Calculation struct {
	Name       string          `yaml:"name" json:"name,omitempty"`
	Amount     decimal.Decimal `yaml:"amount" json:"amount"`
	Percentage decimal.Decimal `yaml:"percentage" json:"percentage"`
	Mode       RoundingMode    `yaml:"mode" json:"mode"`
}

// ProfitResult holds the computed profit and its display form.
type ProfitResult struct {
	Amount     decimal.Decimal `json:"amount" yaml:"amount"`
	Percentage decimal.Decimal `json:"percentage" yaml:"percentage"`
	Mode       RoundingMode    `json:"mode" yaml:"mode"`
	Raw        decimal.Decimal `json:"raw" yaml:"raw"`
	Profit     decimal.Decimal `json:"profit" yaml:"profit"`
	Formatted  string          `json:"formatted" yaml:"formatted"`
	// FellBack is set when formatting failed and Formatted holds the fallback text.
	FellBack bool `json:"fell_back,omitempty" yaml:"fell_back,omitempty"`
}

// Settings controls formatting and rounding defaults.
type Settings struct {
	Locale         string       `yaml:"locale" json:"locale"`
	CurrencySymbol string       `yaml:"currency_symbol" json:"currency_symbol"`
	Fallback       string       `yaml:"fallback" json:"fallback"`
	DefaultMode    RoundingMode `yaml:"default_mode" json:"default_mode"`
	FallbackMode   RoundingMode `yaml:"fallback_mode" json:"fallback_mode"`
}

// Configuration is the YAML input for batch runs.
type Configuration struct {
	Settings     Settings      `yaml:"settings" json:"settings"`
	Calculations []Calculation `yaml:"calculations" json:"calculations"`
}

// ReportEntry pairs a named calculation with its result.
type ReportEntry struct {
	Name   string       `json:"name" yaml:"name"`
	Result ProfitResult `json:"result" yaml:"result"`
}

// ProfitReport is the output of a batch run.
type ProfitReport struct {
	GeneratedAt    time.Time       `json:"generated_at" yaml:"generated_at"`
	Locale         string          `json:"locale" yaml:"locale"`
	CurrencySymbol string          `json:"currency_symbol" yaml:"currency_symbol"`
	Entries        []ReportEntry   `json:"entries" yaml:"entries"`
	TotalProfit    decimal.Decimal `json:"total_profit" yaml:"total_profit"`
	TotalFormatted string          `json:"total_formatted" yaml:"total_formatted"`
}
