package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rpgo/profit-calculator/internal/calculation"
	"github.com/rpgo/profit-calculator/internal/domain"
)

// Metrics holds the calculator's Prometheus collectors.
type Metrics struct {
	Calculations *prometheus.CounterVec
	Fallbacks    prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "profitcalc",
			Name:      "calculations_total",
			Help:      "Number of profit calculations by rounding mode.",
		}, []string{"mode"}),
		Fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "profitcalc",
			Name:      "format_fallbacks_total",
			Help:      "Number of results that used the fallback text because formatting failed.",
		}),
	}
	reg.MustRegister(m.Calculations, m.Fallbacks)
	return m
}

type instrumentingService struct {
	metrics *Metrics
	next    calculation.Service
}

// NewInstrumentingService counts calculations and formatting fallbacks.
func NewInstrumentingService(m *Metrics, s calculation.Service) calculation.Service {
	return &instrumentingService{metrics: m, next: s}
}

func (s *instrumentingService) Calculate(c domain.Calculation) domain.ProfitResult {
	res := s.next.Calculate(c)
	s.metrics.Calculations.WithLabelValues(c.Mode.String()).Inc()
	if res.FellBack {
		s.metrics.Fallbacks.Inc()
	}
	return res
}
