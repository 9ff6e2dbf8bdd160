package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseRoundingMode(t *testing.T) {
	tests := []struct {
		in   string
		want RoundingMode
	}{
		{"none", RoundNone},
		{"", RoundNone},
		{"round_up", RoundUp},
		{"Round-Up", RoundUp},
		{"ceil", RoundUp},
		{"up", RoundUp},
		{"round_nearest", RoundNearest},
		{" nearest ", RoundNearest},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRoundingMode(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseRoundingMode("sideways")
	assert.ErrorIs(t, err, ErrInvalidRoundingMode)
}

func TestRoundingModeText(t *testing.T) {
	assert.Equal(t, "round_up", RoundUp.String())
	assert.Equal(t, "RoundingMode(7)", RoundingMode(7).String())

	b, err := json.Marshal(struct {
		Mode RoundingMode `json:"mode"`
	}{RoundNearest})
	require.NoError(t, err)
	assert.JSONEq(t, `{"mode":"round_nearest"}`, string(b))

	var out struct {
		Mode RoundingMode `yaml:"mode"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("mode: up\n"), &out))
	assert.Equal(t, RoundUp, out.Mode)

	assert.Error(t, yaml.Unmarshal([]byte("mode: sideways\n"), &out))
}

func TestRoundingSelection_Initial(t *testing.T) {
	s := NewRoundingSelection()
	assert.Equal(t, RoundNone, s.Active())
	assert.Equal(t, RoundUp, s.Fallback())
	assert.Equal(t, [3]bool{true, false, false}, s.Switches())
}

func TestRoundingSelection_ActivateIsExclusive(t *testing.T) {
	s := NewRoundingSelection()

	s, err := s.Set(RoundUp, true)
	require.NoError(t, err)
	assert.Equal(t, [3]bool{false, true, false}, s.Switches())

	s, err = s.Set(RoundNearest, true)
	require.NoError(t, err)
	assert.Equal(t, [3]bool{false, false, true}, s.Switches())

	s, err = s.Set(RoundNone, true)
	require.NoError(t, err)
	assert.Equal(t, [3]bool{true, false, false}, s.Switches())
}

func TestRoundingSelection_TurningOffActiveFallsBackToRoundUp(t *testing.T) {
	for _, mode := range RoundingModes {
		t.Run(mode.String(), func(t *testing.T) {
			s := NewRoundingSelection().WithActive(mode)
			s, err := s.Set(mode, false)
			require.NoError(t, err)
			assert.Equal(t, RoundUp, s.Active())
		})
	}
}

func TestRoundingSelection_TurningOffInactiveIsNoop(t *testing.T) {
	s := NewRoundingSelection().WithActive(RoundNearest)
	s, err := s.Set(RoundUp, false)
	require.NoError(t, err)
	assert.Equal(t, RoundNearest, s.Active())
}

func TestRoundingSelection_CustomFallback(t *testing.T) {
	s := NewRoundingSelection().WithFallback(RoundNone).WithActive(RoundNearest)
	s, err := s.Toggle(RoundNearest)
	require.NoError(t, err)
	assert.Equal(t, RoundNone, s.Active())

	// invalid fallback is ignored
	assert.Equal(t, RoundUp, NewRoundingSelection().WithFallback(RoundingMode(9)).Fallback())
}

func TestRoundingSelection_InvalidMode(t *testing.T) {
	s := NewRoundingSelection()
	got, err := s.Set(RoundingMode(5), true)
	assert.ErrorIs(t, err, ErrInvalidRoundingMode)
	assert.Equal(t, s, got)
}

func TestRoundingSelection_ExactlyOneActiveAfterEveryEvent(t *testing.T) {
	type event struct {
		mode RoundingMode
		on   bool
	}
	events := []event{
		{RoundUp, true}, {RoundUp, false}, {RoundNone, false}, {RoundNearest, true},
		{RoundNone, true}, {RoundNone, false}, {RoundUp, false}, {RoundNearest, false},
		{RoundNearest, true}, {RoundNearest, false}, {RoundNone, true}, {RoundUp, true},
	}
	s := NewRoundingSelection()
	for i, ev := range events {
		var err error
		s, err = s.Set(ev.mode, ev.on)
		require.NoError(t, err)

		on := 0
		for _, sw := range s.Switches() {
			if sw {
				on++
			}
		}
		assert.Equalf(t, 1, on, "event %d (%s on=%v)", i, ev.mode, ev.on)
		if ev.on {
			assert.Equal(t, ev.mode, s.Active())
		}
	}
}
