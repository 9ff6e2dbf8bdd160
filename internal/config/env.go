package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/rpgo/profit-calculator/internal/domain"
)

// Environment variables recognised by the CLI and server.
const (
	EnvLocale         = "PROFITCALC_LOCALE"
	EnvCurrencySymbol = "PROFITCALC_CURRENCY_SYMBOL"
	EnvFallback       = "PROFITCALC_FALLBACK"
	EnvDefaultMode    = "PROFITCALC_DEFAULT_MODE"
	EnvFallbackMode   = "PROFITCALC_FALLBACK_MODE"
	EnvLogLevel       = "PROFITCALC_LOG_LEVEL"
	EnvAddr           = "PROFITCALC_ADDR"
)

// DefaultEnvFile is loaded when present; its absence is not an error.
const DefaultEnvFile = ".env"

// Runtime holds process-level settings resolved from the environment.
type Runtime struct {
	Settings domain.Settings
	LogLevel string
	Addr     string
}

// LoadEnvFile loads KEY=value pairs from path into the process environment
// without overriding variables that are already set. A missing DefaultEnvFile
// is ignored; any other missing file is an error.
func LoadEnvFile(path string) error {
	if path == "" {
		path = DefaultEnvFile
	}
	err := godotenv.Load(path)
	if err != nil && path == DefaultEnvFile && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// LoadRuntime loads envFile (see LoadEnvFile) and resolves the runtime settings.
func LoadRuntime(envFile string) (*Runtime, error) {
	if err := LoadEnvFile(envFile); err != nil {
		return nil, err
	}
	rt := &Runtime{
		Settings: DefaultSettings(),
		LogLevel: getEnvString(EnvLogLevel, "info"),
		Addr:     getEnvString(EnvAddr, ":8080"),
	}
	if err := ApplyEnv(&rt.Settings); err != nil {
		return nil, err
	}
	return rt, nil
}

// ApplyEnv overrides settings with any PROFITCALC_* variables that are set.
func ApplyEnv(settings *domain.Settings) error {
	settings.Locale = getEnvString(EnvLocale, settings.Locale)
	settings.CurrencySymbol = getEnvString(EnvCurrencySymbol, settings.CurrencySymbol)
	settings.Fallback = getEnvString(EnvFallback, settings.Fallback)

	if v, ok := os.LookupEnv(EnvDefaultMode); ok {
		mode, err := domain.ParseRoundingMode(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDefaultMode, err)
		}
		settings.DefaultMode = mode
	}
	if v, ok := os.LookupEnv(EnvFallbackMode); ok {
		mode, err := domain.ParseRoundingMode(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFallbackMode, err)
		}
		settings.FallbackMode = mode
	}
	return nil
}

func getEnvString(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}
