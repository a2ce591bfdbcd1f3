package sigui

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/AnatoleLucet/sigui/internal"
	"github.com/AnatoleLucet/sigui/internal/metrics"
)

// Options toggles debug checks for every runtime of the process.
type Options struct {
	// BorrowTracking records where values are borrowed so conflicts name both sites.
	BorrowTracking bool
	// ThreadAffinity panics when a handle is used off the goroutine that owns it.
	ThreadAffinity bool
}

func DefaultOptions() Options {
	return Options(internal.DefaultOptions())
}

func CurrentOptions() Options {
	return Options(internal.CurrentOptions())
}

func Configure(opts Options) {
	internal.SetOptions(internal.Options(opts))
}

// SetLogger replaces the logger used by the runtime. nil restores slog.Default().
func SetLogger(l *slog.Logger) {
	internal.SetLogger(l)
}

// EnableMetrics registers the runtime collectors on reg and starts recording.
func EnableMetrics(reg prometheus.Registerer, namespace string) error {
	r := metrics.New(namespace)
	if err := r.Register(reg); err != nil {
		return err
	}

	metrics.Use(r)
	return nil
}

// DisableMetrics stops recording. Registered collectors keep their last values.
func DisableMetrics() {
	metrics.Use(nil)
}

// Batch runs fn and defers every update it causes until it returns.
// Nested batches flush once, when the outermost one returns.
func Batch(fn func()) {
	internal.GetRuntime().Batch(fn)
}

// Untrack runs the given function without tracking any reactive dependencies.
func Untrack[T any](fn func() T) T {
	var result T
	internal.GetRuntime().Untrack(func() { result = fn() })
	return result
}

// OnCleanup registers a function called when the current scope is disposed,
// or before the next run when called within an effect.
func OnCleanup(fn func()) {
	internal.GetRuntime().OnCleanup(fn)
}

// OnSettled registers a function called once the pending updates are flushed.
func OnSettled(fn func()) {
	internal.GetRuntime().OnSettled(fn)
}

// RunPending runs the updates other goroutines posted to this goroutine
// through sync signals. It returns the number of notifications processed.
func RunPending() int {
	rt, ok := internal.LookupRuntime()
	if !ok {
		return 0
	}

	return rt.RunPending()
}

// SetWaker installs fn to be called, from the writing goroutine, whenever
// work is posted to the calling goroutine's runtime. Event loops use it to
// wake up and call RunPending.
func SetWaker(fn func()) {
	internal.GetRuntime().SetWaker(fn)
}

// SetHotpatchResolver installs the function Hotpatch uses to find the current
// code of an effect from its function pointer. It returns 0 or the same pointer
// when the code did not change.
func SetHotpatchResolver(fn func(ptr uintptr) uintptr) {
	internal.GetRuntime().SetPatcher(fn)
}

// Hotpatch re-runs every effect whose code changed according to the resolver
// and returns how many were re-run. Nothing happens when nothing changed.
func Hotpatch() int {
	return internal.GetRuntime().Hotpatch()
}

// Shutdown disposes everything owned by the calling goroutine's runtime and
// forgets it. The next call to the API starts a fresh runtime.
func Shutdown() {
	rt, ok := internal.LookupRuntime()
	if !ok {
		return
	}

	rt.Dispose(rt.Root())
	internal.DropRuntime()

	internal.Logger().Debug("runtime shut down", slog.Int64("goroutine", rt.Goroutine()))
}
