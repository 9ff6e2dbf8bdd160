package calculation

import (
	"fmt"

	"github.com/rpgo/profit-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// RunBatch computes every configured calculation in order and totals the profit.
func RunBatch(svc Service, pc *ProfitCalculator, config *domain.Configuration) *domain.ProfitReport {
	report := &domain.ProfitReport{
		GeneratedAt:    nowFunc(),
		Locale:         config.Settings.Locale,
		CurrencySymbol: config.Settings.CurrencySymbol,
		Entries:        make([]domain.ReportEntry, 0, len(config.Calculations)),
	}
	total := decimal.Zero
	for i, c := range config.Calculations {
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("calculation %d", i+1)
		}
		res := svc.Calculate(c)
		total = total.Add(res.Profit)
		report.Entries = append(report.Entries, domain.ReportEntry{Name: name, Result: res})
	}
	report.TotalProfit = total
	report.TotalFormatted, _ = pc.Format(total)
	return report
}
