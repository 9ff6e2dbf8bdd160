package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrintf(New(&buf, "warn"), "test")

	p.Infof("hidden %d", 1)
	p.Warnf("shown %d", 2)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=warn")
	assert.Contains(t, out, `msg="shown 2"`)
	assert.Contains(t, out, "component=test")
	assert.Contains(t, out, "ts=")
}

func TestNew_DefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrintf(New(&buf, "bogus"), "test")

	p.Debugf("debug line")
	p.Infof("info line")
	p.Errorf("error line")

	out := buf.String()
	assert.NotContains(t, out, "debug line")
	assert.Contains(t, out, "info line")
	assert.Contains(t, out, "level=error")
}

func TestPrintf_NilLoggerIsSafe(t *testing.T) {
	assert.NotPanics(t, func() { Printf{}.Errorf("nothing") })
}
