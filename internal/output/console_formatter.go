package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/rpgo/profit-calculator/internal/domain"
)

// ConsoleFormatter renders a human-readable table, one row per calculation.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }
func (c ConsoleFormatter) Ext() string  { return "txt" }

func (c ConsoleFormatter) Format(report *domain.ProfitReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "PROFIT SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Locale: %s\n\n", report.Locale)

	tw := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Name\tAmount\tProfit %\tRounding\tProfit")
	for _, e := range report.Entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			e.Name,
			FormatPlain(e.Result.Amount),
			FormatPercentage(e.Result.Percentage),
			e.Result.Mode,
			e.Result.Formatted,
		)
	}
	if err := tw.Flush(); err != nil {
		return nil, err
	}
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Total: %s\n", report.TotalFormatted)
	if h := AnalyzeReport(report); h.Name != "" && len(report.Entries) > 1 {
		fmt.Fprintf(&buf, "Largest: %s (%s of total)\n", h.Name, FormatPercentage(h.Share))
	}
	return buf.Bytes(), nil
}
