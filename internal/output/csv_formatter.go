package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/profit-calculator/internal/domain"
)

// CSVFormatter writes one row per calculation with plain (unlocalized) numbers.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }
func (c CSVFormatter) Ext() string  { return "csv" }

func (c CSVFormatter) Format(report *domain.ProfitReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Name", "Amount", "Percentage", "Mode", "Raw", "Profit", "Formatted"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, e := range report.Entries {
		r := e.Result
		row := []string{
			e.Name,
			FormatPlain(r.Amount),
			r.Percentage.String(),
			r.Mode.String(),
			r.Raw.String(),
			FormatPlain(r.Profit),
			r.Formatted,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
