package sigui

import (
	"context"

	"github.com/AnatoleLucet/sigui/internal"
)

// SyncSignal is a signal that can be read and written from any goroutine.
// Effects on the writing goroutine re-run right away. Effects owned by other
// goroutines re-run when their goroutine calls RunPending.
type SyncSignal[T any] struct {
	signal *internal.SyncSignal
}

func NewSyncSignal[T any](initial T) *SyncSignal[T] {
	value := initial

	return &SyncSignal[T]{
		internal.NewSyncSignal(&value),
	}
}

// FromChannel returns a sync signal holding the latest value received on ch.
// It stops following ch when ctx is done or ch is closed.
func FromChannel[T any](ctx context.Context, ch <-chan T, initial T) *SyncSignal[T] {
	s := NewSyncSignal(initial)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-ch:
				if !ok {
					return
				}
				s.Set(v)
			}
		}
	}()

	return s
}

// Get reads the value, tracking the dependency if the calling goroutine is
// running an effect or memo.
func (s *SyncSignal[T]) Get() T {
	s.signal.Track()
	return s.GetUntracked()
}

func (s *SyncSignal[T]) GetUntracked() T {
	var v T
	s.signal.Read(func(value any) { v = *value.(*T) })
	return v
}

func (s *SyncSignal[T]) Set(v T) {
	s.Update(func(p *T) { *p = v })
}

// Update mutates the value under the lock, then notifies subscribers.
func (s *SyncSignal[T]) Update(fn func(v *T)) {
	s.signal.Write(func(value any) { fn(value.(*T)) })
	s.signal.Notify()
}

func (s *SyncSignal[T]) Track() {
	s.signal.Track()
}

// SyncMemo is a memo whose value can be read from any goroutine. It is
// recomputed by an effect on the goroutine that created it and notifies
// subscribers, local or not, only when the value changed.
type SyncMemo[T any] struct {
	value  *SyncSignal[T]
	effect *Effect
}

func NewSyncMemo[T comparable](fn func(prev *T) T) *SyncMemo[T] {
	return NewSyncMemoFunc(fn, func(a, b T) bool { return a == b })
}

// NewSyncMemoFunc is NewSyncMemo for values that are not comparable with ==.
func NewSyncMemoFunc[T any](fn func(prev *T) T, equal func(a, b T) bool) *SyncMemo[T] {
	m := &SyncMemo[T]{}

	m.effect = NewEffect(func() {
		if m.value == nil {
			m.value = NewSyncSignal(fn(nil))
			return
		}

		prev := m.value.GetUntracked()
		if next := fn(&prev); !equal(prev, next) {
			m.value.Set(next)
		}
	})

	return m
}

// Get reads the value, tracking the dependency if the calling goroutine is
// running an effect or memo.
func (m *SyncMemo[T]) Get() T {
	return m.value.Get()
}

func (m *SyncMemo[T]) GetUntracked() T {
	return m.value.GetUntracked()
}

func (m *SyncMemo[T]) Track() {
	m.value.Track()
}

// Dispose stops recomputing. It must be called from the creating goroutine.
func (m *SyncMemo[T]) Dispose() {
	m.effect.Dispose()
}

func (m *SyncMemo[T]) Disposed() bool {
	return m.effect.Disposed()
}
