package curve3

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards all records. Enabled returns false so that callers skip
// formatting altogether.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by curve3. By default, curve3 produces
// no log output. Pass nil to restore that behavior.
//
// SetLogger is safe for concurrent use.
//
// Log levels used by curve3:
//   - [slog.LevelDebug]: cached path lengths being recomputed after a segment
//     changed
//   - [slog.LevelWarn]: a path parameter that no segment claims, which points
//     at stale cached lengths
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by curve3.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
