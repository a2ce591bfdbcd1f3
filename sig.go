// Package sigui is a fine-grained reactive runtime: signals, memos and effects
// owned by a tree of scopes, one runtime per goroutine.
package sigui

import (
	"errors"
	"fmt"

	"github.com/AnatoleLucet/sigui/internal"
)

// ErrDisposed is wrapped by the panic raised when a disposed signal is accessed
// through an accessor without a Try prefix.
var ErrDisposed = errors.New("sigui: signal disposed")

type Signal[T any] struct {
	signal *internal.Signal
}

// NewSignal creates your typical read/write signal, owned by the current scope.
func NewSignal[T any](initial T) *Signal[T] {
	value := initial

	return &Signal[T]{
		internal.GetRuntime().NewSignal(&value),
	}
}

func (s *Signal[T]) assert() {
	s.signal.Runtime().AssertOwner(2)
}

func (s *Signal[T]) alive() {
	if s.signal.Disposed() {
		panic(fmt.Errorf("%w: %s", ErrDisposed, s.signal.Id()))
	}
}

// Read tracks the signal and returns a shared borrow of its value.
// The value cannot be written until the guard is released.
func (s *Signal[T]) Read() *ReadGuard[T] {
	s.assert()
	s.alive()

	s.signal.Track()
	return newReadGuard[T](s.signal.Cell(), internal.CallSite(1))
}

// ReadUntracked is Read without the dependency.
func (s *Signal[T]) ReadUntracked() *ReadGuard[T] {
	s.assert()
	s.alive()

	return newReadGuard[T](s.signal.Cell(), internal.CallSite(1))
}

// Write returns an exclusive borrow of the value.
// Subscribers are notified when the guard is released.
func (s *Signal[T]) Write() *WriteGuard[T] {
	s.assert()
	s.alive()

	return newWriteGuard[T](s.signal, internal.CallSite(1))
}

// Get reads the current value, tracking the dependency if within a reactive context.
func (s *Signal[T]) Get() T {
	s.assert()
	s.alive()

	s.signal.Track()
	return load[T](s.signal.Cell(), internal.CallSite(1))
}

// GetUntracked reads the current value without tracking it.
func (s *Signal[T]) GetUntracked() T {
	s.assert()
	s.alive()

	return load[T](s.signal.Cell(), internal.CallSite(1))
}

// TryGet is Get returning false instead of panicking when the signal was disposed.
func (s *Signal[T]) TryGet() (T, bool) {
	s.assert()
	if s.signal.Disposed() {
		var zero T
		return zero, false
	}

	s.signal.Track()
	return load[T](s.signal.Cell(), internal.CallSite(1)), true
}

func (s *Signal[T]) TryGetUntracked() (T, bool) {
	s.assert()
	if s.signal.Disposed() {
		var zero T
		return zero, false
	}

	return load[T](s.signal.Cell(), internal.CallSite(1)), true
}

// With calls fn with a pointer to the value, tracking the dependency.
// fn must not modify the value.
func (s *Signal[T]) With(fn func(v *T)) {
	s.assert()
	s.alive()

	s.signal.Track()
	with(s.signal.Cell(), internal.CallSite(1), fn)
}

func (s *Signal[T]) WithUntracked(fn func(v *T)) {
	s.assert()
	s.alive()

	with(s.signal.Cell(), internal.CallSite(1), fn)
}

// Set writes a new value and notifies subscribers, even if v equals the current value.
func (s *Signal[T]) Set(v T) {
	s.assert()
	s.alive()

	update(s.signal, internal.CallSite(1), func(p *T) { *p = v })
}

// Update mutates the value in place and notifies subscribers.
func (s *Signal[T]) Update(fn func(v *T)) {
	s.assert()
	s.alive()

	update(s.signal, internal.CallSite(1), fn)
}

// TryUpdate is Update returning false when the signal was disposed.
func (s *Signal[T]) TryUpdate(fn func(v *T)) bool {
	s.assert()
	if s.signal.Disposed() {
		return false
	}

	update(s.signal, internal.CallSite(1), fn)
	return true
}

func (s *Signal[T]) TrySet(v T) bool {
	s.assert()
	if s.signal.Disposed() {
		return false
	}

	update(s.signal, internal.CallSite(1), func(p *T) { *p = v })
	return true
}

// Track subscribes the running effect or memo without reading the value.
func (s *Signal[T]) Track() {
	s.assert()
	s.signal.Track()
}

// Dispose removes the signal. Its subscribers are detached, not run.
func (s *Signal[T]) Dispose() {
	s.assert()
	s.signal.Runtime().Dispose(s.signal.Id())
}

func (s *Signal[T]) Disposed() bool {
	return s.signal.Disposed()
}

// Trigger is a signal without a value, used to invalidate dependents by hand.
type Trigger struct {
	signal *internal.Signal
}

func NewTrigger() *Trigger {
	return &Trigger{
		internal.GetRuntime().NewSignal(&struct{}{}),
	}
}

// Track subscribes the running effect or memo to the trigger.
func (t *Trigger) Track() {
	t.signal.Runtime().AssertOwner(1)
	t.signal.Track()
}

// Notify re-runs everything that tracked the trigger.
func (t *Trigger) Notify() {
	t.signal.Runtime().AssertOwner(1)
	t.signal.Notify()
}

func (t *Trigger) Dispose() {
	t.signal.Runtime().AssertOwner(1)
	t.signal.Runtime().Dispose(t.signal.Id())
}

func load[T any](cell *internal.Cell, at internal.Location) T {
	v := *cell.Borrow(at).(*T)
	cell.Release()
	return v
}

func with[T any](cell *internal.Cell, at internal.Location, fn func(v *T)) {
	v := cell.Borrow(at).(*T)
	defer cell.Release()

	fn(v)
}

func update[T any](s *internal.Signal, at internal.Location, fn func(v *T)) {
	cell := s.Cell()
	v := cell.BorrowMut(at).(*T)

	func() {
		defer cell.ReleaseMut()
		fn(v)
	}()

	s.Notify()
}
