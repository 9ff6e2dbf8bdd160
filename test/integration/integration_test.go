package integration

import (
	"testing"

	"github.com/rpgo/profit-calculator/internal/calculation"
	"github.com/rpgo/profit-calculator/internal/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndToEndCalculation(t *testing.T) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)
	assert.Len(t, cfg.Calculations, 4)

	pc := calculation.NewProfitCalculatorFromSettings(cfg.Settings, nil)
	report := calculation.RunBatch(pc, pc, cfg)

	require.Len(t, report.Entries, 4)
	want := []string{"10,00€", "4,00€", "3,00€", "15.625,00€"}
	for i, e := range report.Entries {
		assert.Equal(t, want[i], e.Result.Formatted, e.Name)
		assert.False(t, e.Result.FellBack)
	}
	assert.True(t, report.TotalProfit.Equal(decimal.NewFromInt(15642)))
	assert.Equal(t, "15.642,00€", report.TotalFormatted)
}

func TestConfigurationValidation(t *testing.T) {
	parser := config.NewInputParser()

	cfg, err := parser.LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)

	err = parser.ValidateConfiguration(cfg)
	assert.NoError(t, err)
}
