package calculation

import (
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/rpgo/profit-calculator/internal/domain"
)

// Service computes profit results. ProfitCalculator is the base implementation;
// decorators add logging and metrics.
type Service interface {
	Calculate(c domain.Calculation) domain.ProfitResult
}

// loggingService decorates a Service with structured logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a Service that logs every calculation.
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		logger: logger,
		next:   s,
	}
}

func (s *loggingService) Calculate(c domain.Calculation) (res domain.ProfitResult) {
	defer func(begin time.Time) {
		lvl := level.Debug(s.logger)
		if res.FellBack {
			lvl = level.Warn(s.logger)
		}
		lvl.Log(
			"method", "calculate",
			"amount", c.Amount,
			"percentage", c.Percentage,
			"mode", c.Mode,
			"profit", res.Profit,
			"formatted", res.Formatted,
			"fell_back", res.FellBack,
			"took", time.Since(begin),
		)
	}(time.Now())
	return s.next.Calculate(c)
}
