package output

import (
	"github.com/rpgo/profit-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// Highlight identifies the calculation contributing the most profit.
type Highlight struct {
	Name string
	// Profit is the rounded profit of the entry.
	Profit decimal.Decimal
	// Share is the entry's share of the report total, in percentage points.
	Share decimal.Decimal
}

// AnalyzeReport picks the entry with the largest profit. Ties keep the first
// entry. An empty report yields a zero Highlight.
func AnalyzeReport(report *domain.ProfitReport) Highlight {
	if len(report.Entries) == 0 {
		return Highlight{}
	}
	best := report.Entries[0]
	for _, e := range report.Entries[1:] {
		if e.Result.Profit.GreaterThan(best.Result.Profit) {
			best = e
		}
	}
	share := decimal.Zero
	if !report.TotalProfit.IsZero() {
		share = best.Result.Profit.Div(report.TotalProfit).Mul(decimalHundred).Round(2)
	}
	return Highlight{Name: best.Name, Profit: best.Result.Profit, Share: share}
}
