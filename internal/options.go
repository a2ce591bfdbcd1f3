package internal

import (
	"log/slog"
	"sync/atomic"

	"github.com/AnatoleLucet/sigui/internal/metrics"
)

// Options toggles the debug checks of every runtime in the process.
type Options struct {
	// BorrowTracking records the call site of each borrow so conflicts can
	// report where the value is held. Conflicts are detected either way.
	BorrowTracking bool

	// ThreadAffinity makes every handle check it is used on the goroutine
	// that owns its runtime.
	ThreadAffinity bool
}

func DefaultOptions() Options {
	return Options{
		BorrowTracking: true,
		ThreadAffinity: true,
	}
}

var options atomic.Pointer[Options]

func init() {
	opts := DefaultOptions()
	options.Store(&opts)
}

func CurrentOptions() Options {
	return *options.Load()
}

func SetOptions(opts Options) {
	options.Store(&opts)
}

var logger atomic.Pointer[slog.Logger]

// Logger returns the logger used by the runtime, slog.Default() unless replaced.
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}

	return slog.Default()
}

func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

func recorder() *metrics.Recorder {
	return metrics.Current()
}
