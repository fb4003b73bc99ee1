package geodesic

import (
	"log/slog"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(slog.DiscardHandler))
}

// SetLogger sets the logger used to report solver diagnostics, such as an
// iteration that stopped at its step cap. Passing nil restores the default,
// which discards everything.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger.Store(l)
}

// Logger returns the current diagnostics logger.
func Logger() *slog.Logger {
	return logger.Load()
}

func logCapped(solver string, steps int) {
	Logger().Debug("iteration stopped at step cap",
		slog.String("solver", solver),
		slog.Int("steps", steps))
}
