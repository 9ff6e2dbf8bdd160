// Package session models the state of the single calculator screen: two text
// inputs, the rounding switches and the derived profit label.
package session

import (
	"errors"
	"fmt"

	"github.com/rpgo/profit-calculator/internal/calculation"
	"github.com/rpgo/profit-calculator/internal/domain"
)

// ErrClipboardUnavailable is returned when no system clipboard can be used.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// Screen holds the raw input text and the rounding selection. The profit is
// recomputed from scratch on every read; nothing is cached.
type Screen struct {
	svc        calculation.Service
	amountText string
	pctText    string
	rounding   domain.RoundingSelection
}

// NewScreen starts with empty inputs and the given selection.
func NewScreen(svc calculation.Service, rounding domain.RoundingSelection) *Screen {
	return &Screen{svc: svc, rounding: rounding}
}

// NewScreenFromSettings applies the configured default and fallback modes.
func NewScreenFromSettings(svc calculation.Service, s domain.Settings) *Screen {
	sel := domain.NewRoundingSelection().WithFallback(s.FallbackMode).WithActive(s.DefaultMode)
	return NewScreen(svc, sel)
}

// SetAmount replaces the amount input text.
func (s *Screen) SetAmount(text string) { s.amountText = text }

// SetPercentage replaces the percentage input text.
func (s *Screen) SetPercentage(text string) { s.pctText = text }

// SetSwitch turns the switch for mode on or off.
func (s *Screen) SetSwitch(mode domain.RoundingMode, on bool) error {
	next, err := s.rounding.Set(mode, on)
	if err != nil {
		return err
	}
	s.rounding = next
	return nil
}

// ToggleSwitch flips the switch for mode.
func (s *Screen) ToggleSwitch(mode domain.RoundingMode) error {
	return s.SetSwitch(mode, !s.rounding.IsActive(mode))
}

// Rounding returns the current selection.
func (s *Screen) Rounding() domain.RoundingSelection { return s.rounding }

// Inputs returns the raw amount and percentage text.
func (s *Screen) Inputs() (amount, percentage string) { return s.amountText, s.pctText }

// Calculation converts the inputs; unparsable text counts as zero.
func (s *Screen) Calculation() domain.Calculation {
	return domain.Calculation{
		Amount:     calculation.ParseNumberOrZero(s.amountText),
		Percentage: calculation.ParseNumberOrZero(s.pctText),
		Mode:       s.rounding.Active(),
	}
}

// Result computes the profit for the current inputs.
func (s *Screen) Result() domain.ProfitResult {
	return s.svc.Calculate(s.Calculation())
}

// Copy places the formatted profit on the clipboard and returns it.
func (s *Screen) Copy(cb Clipboard) (string, error) {
	text := s.Result().Formatted
	if err := cb.WriteText(text); err != nil {
		return "", fmt.Errorf("copy to clipboard: %w", err)
	}
	return text, nil
}
