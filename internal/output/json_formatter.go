package output

import (
	"encoding/json"

	"github.com/rpgo/profit-calculator/internal/domain"
)

// JSONFormatter serializes the report as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }
func (j JSONFormatter) Ext() string  { return "json" }

func (j JSONFormatter) Format(report *domain.ProfitReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
