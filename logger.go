package oscgrid

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled reports false so callers never build
// the attributes of a disabled message.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }

// silent is the logger installed until SetLogger is called.
var silent = slog.New(discard{})

var current atomic.Pointer[slog.Logger]

func init() { current.Store(silent) }

// SetLogger routes oscgrid diagnostics to l. The package is silent until
// SetLogger is called; SetLogger(nil) makes it silent again. It may be called
// while surfaces are rendering on other goroutines.
//
// Levels:
//   - [slog.LevelDebug]: buffer allocation and renders
//   - [slog.LevelWarn]: rejected configurations
//
// Example:
//
//	oscgrid.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger set with SetLogger. The integration packages log
// through it too.
func Logger() *slog.Logger {
	return current.Load()
}
