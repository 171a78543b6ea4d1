package meme

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for meme and the gg drawing library
// underneath it. By default nothing is logged: a failed base image load or
// an empty label is a silent no-op, and SetLogger only makes those events
// visible for diagnostics.
//
// Pass nil to restore the silent default.
//
// Log levels used by meme:
//   - [slog.LevelDebug]: per-render details (font size, label boxes, skipped labels)
//   - [slog.LevelInfo]: lifecycle events (base image attached, file exported)
//   - [slog.LevelWarn]: non-fatal issues (clipboard unavailable in memeedit)
//
// Example:
//
//	meme.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	gg.SetLogger(l)
}

// Logger returns the current logger used by meme.
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
