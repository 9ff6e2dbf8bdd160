package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rpgo/profit-calculator/internal/domain"
	"github.com/rpgo/profit-calculator/internal/output"
	money "github.com/rpgo/profit-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// DefaultSettings mirrors the single-screen calculator: Spanish formatting,
// euro symbol, no rounding, round up when the active switch is turned off.
func DefaultSettings() domain.Settings {
	return domain.Settings{
		Locale:         output.DefaultLocale,
		CurrencySymbol: "€",
		Fallback:       "0,00",
		DefaultMode:    domain.RoundNone,
		FallbackMode:   domain.RoundUp,
	}
}

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML (or JSON) file. Settings not
// present in the file keep their defaults.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// calculationInput mirrors domain.Calculation with an optional mode, so a
// calculation without one can take settings.default_mode.
type calculationInput struct {
	Name       string               `yaml:"name"`
	Amount     decimal.Decimal      `yaml:"amount"`
	Percentage decimal.Decimal      `yaml:"percentage"`
	Mode       *domain.RoundingMode `yaml:"mode"`
}

type configurationInput struct {
	Settings     domain.Settings    `yaml:"settings"`
	Calculations []calculationInput `yaml:"calculations"`
}

// Parse decodes and validates configuration bytes.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	input := configurationInput{Settings: DefaultSettings()}
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	config := domain.Configuration{
		Settings:     input.Settings,
		Calculations: make([]domain.Calculation, len(input.Calculations)),
	}
	for i, in := range input.Calculations {
		mode := input.Settings.DefaultMode
		if in.Mode != nil {
			mode = *in.Mode
		}
		config.Calculations[i] = domain.Calculation{
			Name:       in.Name,
			Amount:     in.Amount,
			Percentage: in.Percentage,
			Mode:       mode,
		}
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.ValidateSettings(&config.Settings); err != nil {
		return fmt.Errorf("settings validation failed: %w", err)
	}

	if len(config.Calculations) == 0 {
		return fmt.Errorf("no calculations provided")
	}

	seen := make(map[string]bool, len(config.Calculations))
	for i, c := range config.Calculations {
		if err := ip.validateCalculation(&c); err != nil {
			return fmt.Errorf("calculation %d validation failed: %w", i, err)
		}
		if c.Name != "" {
			if seen[c.Name] {
				return fmt.Errorf("calculation %d: duplicate name %q", i, c.Name)
			}
			seen[c.Name] = true
		}
	}

	return nil
}

// ValidateSettings checks that the locale is supported and the modes are known.
func (ip *InputParser) ValidateSettings(settings *domain.Settings) error {
	if strings.TrimSpace(settings.Locale) == "" {
		return fmt.Errorf("locale is required")
	}
	if _, err := output.NewLocaleFormatter(settings.Locale); err != nil {
		return err
	}
	if !settings.DefaultMode.Valid() {
		return fmt.Errorf("default mode: %w", domain.ErrInvalidRoundingMode)
	}
	if !settings.FallbackMode.Valid() {
		return fmt.Errorf("fallback mode: %w", domain.ErrInvalidRoundingMode)
	}
	return nil
}

// validateCalculation validates a single calculation
func (ip *InputParser) validateCalculation(c *domain.Calculation) error {
	if c.Amount.IsNegative() {
		return fmt.Errorf("amount cannot be negative")
	}
	if !money.InRange(c.Amount) {
		return fmt.Errorf("amount: %w", money.ErrOutOfRange)
	}
	if !money.InRange(c.Percentage) {
		return fmt.Errorf("percentage: %w", money.ErrOutOfRange)
	}
	if !c.Mode.Valid() {
		return domain.ErrInvalidRoundingMode
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Settings: DefaultSettings(),
		Calculations: []domain.Calculation{
			{
				Name:       "Standard margin",
				Amount:     decimal.NewFromInt(100),
				Percentage: decimal.NewFromInt(10),
				Mode:       domain.RoundNone,
			},
			{
				Name:       "Rounded up",
				Amount:     decimal.NewFromInt(33),
				Percentage: decimal.NewFromInt(10),
				Mode:       domain.RoundUp,
			},
			{
				Name:       "Wholesale",
				Amount:     decimal.NewFromFloat(12499.90),
				Percentage: decimal.NewFromFloat(7.5),
				Mode:       domain.RoundNearest,
			},
		},
	}
}

// SaveConfiguration writes config as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
