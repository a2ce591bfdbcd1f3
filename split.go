package sigui

import "github.com/AnatoleLucet/sigui/internal"

// ReadSignal is the read half of a signal. It can be handed out to code that
// must observe a value without being able to change it.
type ReadSignal[T any] struct {
	s *Signal[T]
}

// WriteSignal is the write half of a signal.
type WriteSignal[T any] struct {
	s *Signal[T]
}

// NewSignalSplit creates a signal and returns its two halves.
func NewSignalSplit[T any](initial T) (ReadSignal[T], WriteSignal[T]) {
	return NewSignal(initial).Split()
}

func (s *Signal[T]) Split() (ReadSignal[T], WriteSignal[T]) {
	return ReadSignal[T]{s}, WriteSignal[T]{s}
}

func (s *Signal[T]) ReadOnly() ReadSignal[T] {
	return ReadSignal[T]{s}
}

func (s *Signal[T]) WriteOnly() WriteSignal[T] {
	return WriteSignal[T]{s}
}

func (r ReadSignal[T]) Get() T {
	r.s.assert()
	r.s.alive()

	r.s.signal.Track()
	return load[T](r.s.signal.Cell(), internal.CallSite(1))
}

func (r ReadSignal[T]) GetUntracked() T {
	r.s.assert()
	r.s.alive()

	return load[T](r.s.signal.Cell(), internal.CallSite(1))
}

func (r ReadSignal[T]) TryGet() (T, bool) {
	r.s.assert()
	if r.s.signal.Disposed() {
		var zero T
		return zero, false
	}

	r.s.signal.Track()
	return load[T](r.s.signal.Cell(), internal.CallSite(1)), true
}

func (r ReadSignal[T]) With(fn func(v *T)) {
	r.s.assert()
	r.s.alive()

	r.s.signal.Track()
	with(r.s.signal.Cell(), internal.CallSite(1), fn)
}

func (r ReadSignal[T]) Read() *ReadGuard[T] {
	r.s.assert()
	r.s.alive()

	r.s.signal.Track()
	return newReadGuard[T](r.s.signal.Cell(), internal.CallSite(1))
}

func (r ReadSignal[T]) Track() {
	r.s.assert()
	r.s.signal.Track()
}

func (r ReadSignal[T]) Disposed() bool {
	return r.s.signal.Disposed()
}

func (w WriteSignal[T]) Set(v T) {
	w.s.assert()
	w.s.alive()

	update(w.s.signal, internal.CallSite(1), func(p *T) { *p = v })
}

func (w WriteSignal[T]) Update(fn func(v *T)) {
	w.s.assert()
	w.s.alive()

	update(w.s.signal, internal.CallSite(1), fn)
}

func (w WriteSignal[T]) TrySet(v T) bool {
	w.s.assert()
	if w.s.signal.Disposed() {
		return false
	}

	update(w.s.signal, internal.CallSite(1), func(p *T) { *p = v })
	return true
}

func (w WriteSignal[T]) TryUpdate(fn func(v *T)) bool {
	w.s.assert()
	if w.s.signal.Disposed() {
		return false
	}

	update(w.s.signal, internal.CallSite(1), fn)
	return true
}

func (w WriteSignal[T]) Write() *WriteGuard[T] {
	w.s.assert()
	w.s.alive()

	return newWriteGuard[T](w.s.signal, internal.CallSite(1))
}

func (w WriteSignal[T]) Disposed() bool {
	return w.s.signal.Disposed()
}
