package morph

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for morph.
// By default, morph produces no log output. Pass nil to restore the
// default silent behavior.
//
// Log levels used by morph:
//   - [slog.LevelDebug]: sweep counts of each seedfill and distance call
//   - [slog.LevelWarn]: a call stopped at MaxIters before reaching a fixed point
//
// Example:
//
//	morph.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by morph.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// logSweeps records the outcome of a converging loop.
func logSweeps(op string, w, h, sweeps int, converged bool) {
	l := Logger()
	if !converged {
		l.Warn("morph: stopped before fixed point",
			"op", op, "width", w, "height", h, "sweeps", sweeps)
		return
	}
	l.Debug("morph: converged", "op", op, "width", w, "height", h, "sweeps", sweeps)
}
