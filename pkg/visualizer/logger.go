package visualizer

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// silentHandler is the handler behind the package default logger. The
// visualizers are a library, so a program that never calls SetLogger sees
// no output from them. trivis installs a text handler for --verbose and
// trivis-gui does so when TRIVIS_DEBUG is set.
type silentHandler struct{}

func (silentHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (silentHandler) Handle(context.Context, slog.Record) error { return nil }
func (h silentHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h silentHandler) WithGroup(string) slog.Handler           { return h }

// current is read on every paint, possibly from the fyne render goroutine
// while the CLI or a test swaps it.
var current atomic.Pointer[slog.Logger]

func init() {
	SetLogger(nil)
}

// SetLogger configures the logger used by the visualizers. By default
// nothing is logged. Pass nil to restore the silent default.
//
// Undefined constructions (zero denominators for the current vertices)
// are reported at [slog.LevelDebug].
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(silentHandler{})
	}
	current.Store(l)
}

// Logger returns the current logger
func Logger() *slog.Logger {
	return current.Load()
}
