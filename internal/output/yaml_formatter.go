package output

import (
	"github.com/rpgo/profit-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter serializes the report as YAML.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }
func (y YAMLFormatter) Ext() string  { return "yaml" }

func (y YAMLFormatter) Format(report *domain.ProfitReport) ([]byte, error) {
	return yaml.Marshal(report)
}
