package sigui

import "github.com/AnatoleLucet/sigui/internal"

// ReadGuard is a shared borrow of a signal value.
// Writes to the signal panic until Release is called.
type ReadGuard[T any] struct {
	cell     *internal.Cell
	value    *T
	released bool
}

func newReadGuard[T any](cell *internal.Cell, at internal.Location) *ReadGuard[T] {
	return &ReadGuard[T]{
		cell:  cell,
		value: cell.Borrow(at).(*T),
	}
}

func (g *ReadGuard[T]) Value() T {
	return *g.value
}

// Release ends the borrow. Releasing twice is a no-op.
func (g *ReadGuard[T]) Release() {
	if g.released {
		return
	}

	g.released = true
	g.cell.Release()
}

// WriteGuard is the exclusive borrow of a signal value.
// Releasing it notifies the signal's subscribers.
type WriteGuard[T any] struct {
	signal   *internal.Signal
	value    *T
	released bool
}

func newWriteGuard[T any](s *internal.Signal, at internal.Location) *WriteGuard[T] {
	return &WriteGuard[T]{
		signal: s,
		value:  s.Cell().BorrowMut(at).(*T),
	}
}

// Value returns a pointer to the value, valid until Release.
func (g *WriteGuard[T]) Value() *T {
	return g.value
}

func (g *WriteGuard[T]) Set(v T) {
	*g.value = v
}

// Release ends the borrow and notifies subscribers. Releasing twice is a no-op.
func (g *WriteGuard[T]) Release() {
	if g.released {
		return
	}

	g.released = true
	g.signal.Cell().ReleaseMut()
	g.signal.Notify()
}
