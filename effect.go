package sigui

import (
	"reflect"

	"github.com/AnatoleLucet/sigui/internal"
)

type Effect struct {
	effect *internal.Effect
}

// NewEffect creates a reactive effect that runs the given function now and
// again whenever one of the signals it read changes.
// Everything created while it runs is disposed before the next run.
func NewEffect(fn func()) *Effect {
	return &Effect{
		internal.GetRuntime().NewEffect(fn, fingerprint(fn)),
	}
}

// NewStatefulEffect is NewEffect passing the value returned by the previous run.
// first is true on the initial run, when prev is the zero value.
func NewStatefulEffect[T any](fn func(prev T, first bool) T) *Effect {
	var prev T
	first := true

	run := func() {
		prev = fn(prev, first)
		first = false
	}

	return &Effect{
		internal.GetRuntime().NewEffect(run, fingerprint(fn)),
	}
}

// NewUpdater runs compute in an effect and returns its first result.
// Later results are handed to onChange, which runs untracked.
func NewUpdater[T any](compute func() T, onChange func(v T)) T {
	rt := internal.GetRuntime()

	var initial T
	first := true

	rt.NewEffect(func() {
		v := compute()
		if first {
			initial = v
			first = false
			return
		}

		rt.Untrack(func() { onChange(v) })
	}, fingerprint(compute))

	return initial
}

// NewStatefulUpdater is NewUpdater threading a state through the runs.
// compute receives the state left by the previous run (first is true on the
// initial run) and returns a value and the next state. Later values are
// handed to onChange with that state, and what onChange returns becomes the
// state of the next run.
func NewStatefulUpdater[S, R any](compute func(prev S, first bool) (R, S), onChange func(v R, state S) S) R {
	rt := internal.GetRuntime()

	var (
		initial R
		state   S
	)
	first := true

	rt.NewEffect(func() {
		v, next := compute(state, first)
		if first {
			initial, state = v, next
			first = false
			return
		}

		rt.Untrack(func() { state = onChange(v, next) })
	}, fingerprint(compute))

	return initial
}

// Tracker calls onChange when a signal read by its last Track call changes.
// Unlike an effect, the tracked function is not re-run: onChange decides
// what to do, usually calling Track again.
type Tracker struct {
	effect *internal.Effect
}

func NewTracker(onChange func()) *Tracker {
	return &Tracker{
		internal.GetRuntime().NewIdleEffect(onChange, fingerprint(onChange)),
	}
}

// Track runs fn and replaces the tracker's dependencies with what fn read.
func (t *Tracker) Track(fn func()) {
	t.effect.Runtime().AssertOwner(1)
	t.effect.Observe(fn)
}

func (t *Tracker) Dispose() {
	t.effect.Runtime().AssertOwner(1)
	t.effect.Runtime().Dispose(t.effect.Id())
}

func (t *Tracker) Disposed() bool {
	return t.effect.Disposed()
}

// Dispose stops the effect and runs its cleanups. It never runs again.
func (e *Effect) Dispose() {
	e.effect.Runtime().AssertOwner(1)
	e.effect.Runtime().Dispose(e.effect.Id())
}

func (e *Effect) Disposed() bool {
	return e.effect.Disposed()
}

// Scope returns the scope owning what the effect creates while it runs.
func (e *Effect) Scope() *Scope {
	return &Scope{id: e.effect.Id(), rt: e.effect.Runtime()}
}

func fingerprint(fn any) uintptr {
	return reflect.ValueOf(fn).Pointer()
}
