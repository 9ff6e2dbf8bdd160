// Package logging builds the go-kit logger shared by the CLI and HTTP server.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// New returns a logfmt logger writing to w, filtered at the named level
// (debug, info, warn, error). Unknown names default to info.
func New(w io.Writer, lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	return level.NewFilter(logger, levelOption(lvl))
}

func levelOption(lvl string) level.Option {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return level.AllowDebug()
	case "warn", "warning":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	case "none", "off":
		return level.AllowNone()
	default:
		return level.AllowInfo()
	}
}

// Printf adapts a go-kit logger to the Debugf/Infof/Warnf/Errorf style used by
// the calculator.
type Printf struct {
	Logger log.Logger
}

// NewPrintf tags every line with component.
func NewPrintf(logger log.Logger, component string) Printf {
	return Printf{Logger: log.With(logger, "component", component)}
}

func (p Printf) Debugf(format string, args ...any) { p.log(level.Debug, format, args) }
func (p Printf) Infof(format string, args ...any)  { p.log(level.Info, format, args) }
func (p Printf) Warnf(format string, args ...any)  { p.log(level.Warn, format, args) }
func (p Printf) Errorf(format string, args ...any) { p.log(level.Error, format, args) }

func (p Printf) log(lvl func(log.Logger) log.Logger, format string, args []any) {
	if p.Logger == nil {
		return
	}
	_ = lvl(p.Logger).Log("msg", fmt.Sprintf(format, args...))
}
