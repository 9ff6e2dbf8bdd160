package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRoundingMode is returned when a rounding mode name is not recognised.
var ErrInvalidRoundingMode = errors.New("invalid rounding mode")

// RoundingMode selects how a computed profit is rounded to whole units.
type RoundingMode int

const (
	// RoundNone leaves the profit unrounded.
	RoundNone RoundingMode = iota
	// RoundUp rounds the profit up to the next whole unit (ceiling).
	RoundUp
	// RoundNearest rounds the profit to the nearest whole unit, ties to even.
	RoundNearest
)

// RoundingModes lists every mode in switch order.
var RoundingModes = []RoundingMode{RoundNone, RoundUp, RoundNearest}

var roundingModeNames = map[RoundingMode]string{
	RoundNone:    "none",
	RoundUp:      "round_up",
	RoundNearest: "round_nearest",
}

// aliases accepted by ParseRoundingMode in addition to the canonical names
var roundingModeAliases = map[string]RoundingMode{
	"":        RoundNone,
	"off":     RoundNone,
	"up":      RoundUp,
	"ceil":    RoundUp,
	"nearest": RoundNearest,
	"round":   RoundNearest,
	"normal":  RoundNearest,
}

func (m RoundingMode) String() string {
	if name, ok := roundingModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("RoundingMode(%d)", int(m))
}

// Valid reports whether m is one of the three known modes.
func (m RoundingMode) Valid() bool {
	_, ok := roundingModeNames[m]
	return ok
}

// ParseRoundingMode resolves a canonical name or alias (case-insensitive).
func ParseRoundingMode(s string) (RoundingMode, error) {
	n := strings.ToLower(strings.TrimSpace(s))
	n = strings.ReplaceAll(n, "-", "_")
	for mode, name := range roundingModeNames {
		if n == name {
			return mode, nil
		}
	}
	if mode, ok := roundingModeAliases[n]; ok {
		return mode, nil
	}
	return RoundNone, fmt.Errorf("%w: %q", ErrInvalidRoundingMode, s)
}

// MarshalText implements encoding.TextMarshaler (used by JSON and YAML).
func (m RoundingMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRoundingMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler (used by JSON and YAML).
func (m *RoundingMode) UnmarshalText(text []byte) error {
	mode, err := ParseRoundingMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// RoundingSelection is the state behind the three mutually exclusive rounding
// switches. Exactly one mode is active at any time.
type RoundingSelection struct {
	active   RoundingMode
	fallback RoundingMode
}

// NewRoundingSelection starts with no rounding and falls back to RoundUp when
// the active switch is turned off.
func NewRoundingSelection() RoundingSelection {
	return RoundingSelection{active: RoundNone, fallback: RoundUp}
}

// WithFallback returns a copy that falls back to mode instead of RoundUp.
// An invalid mode leaves the fallback unchanged.
func (s RoundingSelection) WithFallback(mode RoundingMode) RoundingSelection {
	if mode.Valid() {
		s.fallback = mode
	}
	return s
}

// WithActive returns a copy with mode active. An invalid mode is ignored.
func (s RoundingSelection) WithActive(mode RoundingMode) RoundingSelection {
	if mode.Valid() {
		s.active = mode
	}
	return s
}

// Active returns the single active mode.
func (s RoundingSelection) Active() RoundingMode { return s.active }

// Fallback returns the mode activated when the active switch is turned off.
func (s RoundingSelection) Fallback() RoundingMode { return s.fallback }

// IsActive reports whether the switch for mode is on.
func (s RoundingSelection) IsActive(mode RoundingMode) bool { return s.active == mode }

// Set is the transition function for a switch change. Turning a switch on
// turns the other two off. Turning off the active switch leaves nothing on,
// so the fallback mode is activated. Turning off an inactive switch is a no-op.
func (s RoundingSelection) Set(mode RoundingMode, on bool) (RoundingSelection, error) {
	if !mode.Valid() {
		return s, fmt.Errorf("%w: %d", ErrInvalidRoundingMode, int(mode))
	}
	switch {
	case on:
		s.active = mode
	case s.active == mode:
		s.active = s.fallback
	}
	return s, nil
}

// Toggle flips the switch for mode.
func (s RoundingSelection) Toggle(mode RoundingMode) (RoundingSelection, error) {
	return s.Set(mode, !s.IsActive(mode))
}

// Switches returns the on/off state of each switch in RoundingModes order.
func (s RoundingSelection) Switches() [3]bool {
	var out [3]bool
	for i, mode := range RoundingModes {
		out[i] = s.active == mode
	}
	return out
}
