package imapp

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
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
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for imapp and all registered window
// drivers. By default, imapp produces no log output.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by imapp:
//   - [slog.LevelDebug]: per-frame diagnostics (canvas resizes, uploads)
//   - [slog.LevelInfo]: lifecycle events (window opened, driver selected)
//   - [slog.LevelWarn]: non-fatal issues (present errors, release failures)
//
// Example:
//
//	imapp.SetLogger(slog.Default())
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	// Propagate to window drivers that accept a logger.
	driverRegistry.mu.RLock()
	defer driverRegistry.mu.RUnlock()
	for _, e := range driverRegistry.entries {
		if ls, ok := e.Driver.(loggerSetter); ok {
			ls.SetLogger(l)
		}
	}
}

// Logger returns the current logger used by imapp.
// Driver packages call this to share the same logger configuration
// without introducing import cycles.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// loggerSetter is implemented by window drivers that accept a logger.
type loggerSetter interface {
	SetLogger(*slog.Logger)
}
