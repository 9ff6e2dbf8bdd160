package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rpgo/profit-calculator/internal/calculation"
	"github.com/rpgo/profit-calculator/internal/domain"
	money "github.com/rpgo/profit-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Handlers serves profit calculations over HTTP.
type Handlers struct {
	svc         calculation.Service
	defaultMode domain.RoundingMode
}

// NewHandlers creates handlers; requests without a mode use defaultMode.
func NewHandlers(svc calculation.Service, defaultMode domain.RoundingMode) *Handlers {
	return &Handlers{svc: svc, defaultMode: defaultMode}
}

// profitRequest is the POST /profit body. Amount and percentage are JSON
// numbers or strings.
type profitRequest struct {
	Amount     decimal.Decimal      `json:"amount"`
	Percentage decimal.Decimal      `json:"percentage"`
	Mode       *domain.RoundingMode `json:"mode"`
}

// GetProfit handles GET /profit?amount=&percent=&mode=
// Unparsable or out of range numbers count as zero, like the text inputs
// they stand in for.
func (h *Handlers) GetProfit(c *gin.Context) {
	mode := h.defaultMode
	if raw, ok := c.GetQuery("mode"); ok {
		parsed, err := domain.ParseRoundingMode(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		mode = parsed
	}
	res := h.svc.Calculate(domain.Calculation{
		Amount:     calculation.ParseNumberOrZero(c.Query("amount")),
		Percentage: calculation.ParseNumberOrZero(c.Query("percent")),
		Mode:       mode,
	})
	c.JSON(http.StatusOK, res)
}

// PostProfit handles POST /profit
func (h *Handlers) PostProfit(c *gin.Context) {
	var req profitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !money.InRange(req.Amount) || !money.InRange(req.Percentage) {
		c.JSON(http.StatusBadRequest, gin.H{"error": money.ErrOutOfRange.Error()})
		return
	}
	mode := h.defaultMode
	if req.Mode != nil {
		mode = *req.Mode
	}
	c.JSON(http.StatusOK, h.svc.Calculate(domain.Calculation{
		Amount:     req.Amount,
		Percentage: req.Percentage,
		Mode:       mode,
	}))
}

// Health handles GET /health
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "profit-calculator",
	})
}
