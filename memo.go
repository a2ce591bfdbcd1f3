package sigui

import (
	"fmt"

	"github.com/AnatoleLucet/sigui/internal"
)

type Memo[T any] struct {
	memo *internal.Memo
}

// NewMemo creates a memo that derives its value from other signals.
// fn receives the previous value, nil on the first run. The memo is computed
// once right away, then lazily: an upstream change only marks it dirty (and
// memos downstream of it possibly changed) and the next read recomputes.
// Subscribers are only notified when the value changed.
func NewMemo[T comparable](fn func(prev *T) T) *Memo[T] {
	return NewMemoFunc(fn, func(a, b T) bool { return a == b })
}

// NewMemoFunc is NewMemo for values that are not comparable with ==.
func NewMemoFunc[T any](fn func(prev *T) T, equal func(a, b T) bool) *Memo[T] {
	var value T
	first := true

	compute := func(c *internal.Cell) bool {
		var prev *T
		if !first {
			old := load[T](c, internal.Location{})
			prev = &old
		}

		next := fn(prev)

		changed := first || !equal(*prev, next)
		first = false

		if changed {
			p := c.BorrowMut(internal.Location{}).(*T)
			*p = next
			c.ReleaseMut()
		}

		return changed
	}

	return &Memo[T]{
		internal.GetRuntime().NewMemo(&value, compute),
	}
}

func (m *Memo[T]) assert() {
	m.memo.Runtime().AssertOwner(2)
}

func (m *Memo[T]) alive() {
	if m.memo.Disposed() {
		panic(fmt.Errorf("%w: %s", ErrDisposed, m.memo.Id()))
	}
}

// Get returns the memoized value, recomputing it first if a dependency changed.
func (m *Memo[T]) Get() T {
	m.assert()
	m.alive()

	m.memo.Resolve()
	m.memo.Track()
	return load[T](m.memo.Cell(), internal.CallSite(1))
}

func (m *Memo[T]) GetUntracked() T {
	m.assert()
	m.alive()

	m.memo.Resolve()
	return load[T](m.memo.Cell(), internal.CallSite(1))
}

func (m *Memo[T]) TryGet() (T, bool) {
	m.assert()
	if m.memo.Disposed() {
		var zero T
		return zero, false
	}

	m.memo.Resolve()
	m.memo.Track()
	return load[T](m.memo.Cell(), internal.CallSite(1)), true
}

// With calls fn with a pointer to the memoized value. fn must not modify it.
func (m *Memo[T]) With(fn func(v *T)) {
	m.assert()
	m.alive()

	m.memo.Resolve()
	m.memo.Track()
	with(m.memo.Cell(), internal.CallSite(1), fn)
}

// Read returns a shared borrow of the memoized value.
func (m *Memo[T]) Read() *ReadGuard[T] {
	m.assert()
	m.alive()

	m.memo.Resolve()
	m.memo.Track()
	return newReadGuard[T](m.memo.Cell(), internal.CallSite(1))
}

// Track subscribes the running observer without reading the value. A stale
// memo is resolved first so that later changes reach the new subscriber.
func (m *Memo[T]) Track() {
	m.assert()
	m.memo.Resolve()
	m.memo.Track()
}

// Dirty reports whether a dependency changed since the last computation.
func (m *Memo[T]) Dirty() bool {
	return m.memo.Dirty()
}

func (m *Memo[T]) Dispose() {
	m.assert()
	m.memo.Runtime().Dispose(m.memo.Id())
}

func (m *Memo[T]) Disposed() bool {
	return m.memo.Disposed()
}
