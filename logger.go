package fontbake

import (
	"context"
	"fmt"
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

// loggerPtr stores the active logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for fontbake and its sub-packages.
// By default, fontbake produces no log output. Call SetLogger to enable logging.
// Pass nil to restore the default silent behavior.
//
// Log levels used by fontbake:
//   - [slog.LevelDebug]: per-glyph diagnostics (metrics, packed positions)
//   - [slog.LevelInfo]: pipeline progress (files read, atlas size, glyph counts, output size)
//   - [slog.LevelWarn]: lossy lookup encoding (collapsed sequences, overwritten slots)
//
// Example:
//
//	fontbake.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by fontbake.
// The text sub-package calls this to share the same logger configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// printfLogger adapts the package logger to libraries that expect a
// Printf-style logger. Messages are emitted at debug level.
type printfLogger struct{}

// PrintfLogger returns a Printf-style view of the package logger.
func PrintfLogger() interface {
	Printf(format string, args ...any)
} {
	return printfLogger{}
}

func (printfLogger) Printf(format string, args ...any) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug(fmt.Sprintf(format, args...))
}
