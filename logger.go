package staticptr

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// Logger returns the library's logger instance.
// It is a no-op logger unless SetLogger was called.
func Logger() *zap.Logger {
	return logger.Load()
}

// SetLogger installs l as the library logger. Passing nil restores the
// no-op logger. The logger is only consulted off the ownership hot path
// (contract-violation diagnostics).
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}
