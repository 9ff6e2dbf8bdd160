package calculation

import (
	"bytes"
	"testing"
	"time"

	"github.com/go-kit/log"
	"github.com/rpgo/profit-calculator/internal/domain"
	"github.com/rpgo/profit-calculator/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingService(t *testing.T) {
	var buf bytes.Buffer
	pc := NewProfitCalculator(output.MustLocaleFormatter("es-ES"), "€")
	svc := NewLoggingService(log.NewLogfmtLogger(&buf), pc)

	res := svc.Calculate(domain.Calculation{Amount: dec("33"), Percentage: dec("10"), Mode: domain.RoundNearest})
	assert.Equal(t, "3,00€", res.Formatted)

	line := buf.String()
	assert.Contains(t, line, "level=debug")
	assert.Contains(t, line, "method=calculate")
	assert.Contains(t, line, "mode=round_nearest")
	assert.Contains(t, line, "formatted=3,00€")
}

func TestLoggingService_WarnsOnFallback(t *testing.T) {
	var buf bytes.Buffer
	pc := NewProfitCalculator(output.LocaleFormatter{}, "€")
	svc := NewLoggingService(log.NewLogfmtLogger(&buf), pc)

	res := svc.Calculate(domain.Calculation{Amount: dec("1"), Percentage: dec("1")})
	assert.True(t, res.FellBack)
	assert.Contains(t, buf.String(), "level=warn")
	assert.Contains(t, buf.String(), "fell_back=true")
}

func TestRunBatch(t *testing.T) {
	SetNowFunc(func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) })
	defer SetNowFunc(time.Now)

	cfg := &domain.Configuration{
		Settings: domain.Settings{Locale: "es-ES", CurrencySymbol: "€"},
		Calculations: []domain.Calculation{
			{Name: "base", Amount: dec("100"), Percentage: dec("10"), Mode: domain.RoundNone},
			{Amount: dec("33"), Percentage: dec("10"), Mode: domain.RoundUp},
			{Name: "big", Amount: dec("20000"), Percentage: dec("15"), Mode: domain.RoundNearest},
		},
	}
	pc := NewProfitCalculatorFromSettings(cfg.Settings, nil)
	report := RunBatch(pc, pc, cfg)

	require.Len(t, report.Entries, 3)
	assert.Equal(t, "base", report.Entries[0].Name)
	assert.Equal(t, "calculation 2", report.Entries[1].Name)
	assert.Equal(t, "4,00€", report.Entries[1].Result.Formatted)
	assert.Equal(t, "3.000,00€", report.Entries[2].Result.Formatted)
	assert.True(t, report.TotalProfit.Equal(dec("3014")))
	assert.Equal(t, "3.014,00€", report.TotalFormatted)
	assert.Equal(t, 2025, report.GeneratedAt.Year())
	assert.Equal(t, "es-ES", report.Locale)
}
