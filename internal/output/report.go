package output

import (
	"io"

	"github.com/rpgo/profit-calculator/internal/domain"
)

// GenerateReport renders the report in the named format and writes it to w.
func GenerateReport(w io.Writer, report *domain.ProfitReport, format string) error {
	f, err := LookupFormatter(format)
	if err != nil {
		return err
	}
	data, err := f.Format(report)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
