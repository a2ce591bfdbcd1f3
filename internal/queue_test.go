package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobQueue(t *testing.T) {
	q := NewJobQueue()

	assert.True(t, q.Push(3))
	assert.True(t, q.Push(1))
	assert.False(t, q.Push(3))
	assert.Equal(t, 2, q.Len())

	id, ok := q.Pop()
	assert.True(t, ok)
	assert.Equal(t, Id(3), id)

	// popped ids can be queued again
	assert.True(t, q.Push(3))

	id, _ = q.Pop()
	assert.Equal(t, Id(1), id)
	id, _ = q.Pop()
	assert.Equal(t, Id(3), id)

	_, ok = q.Pop()
	assert.False(t, ok)
}

func TestBatcher(t *testing.T) {
	t.Run("flushes once when the outermost batch closes", func(t *testing.T) {
		b := NewBatcher()
		flushes := 0
		flush := func() { flushes++ }

		b.Batch(func() {
			assert.True(t, b.IsBatching())
			b.Batch(func() { b.Defer() }, flush)
			b.Defer()
			assert.Equal(t, 0, flushes)
		}, flush)

		assert.False(t, b.IsBatching())
		assert.Equal(t, 1, flushes)
	})

	t.Run("nothing deferred", func(t *testing.T) {
		b := NewBatcher()
		flushes := 0

		b.Batch(func() {}, func() { flushes++ })

		assert.Equal(t, 0, flushes)
	})

	t.Run("panics close the batch", func(t *testing.T) {
		b := NewBatcher()
		flushes := 0

		assert.Panics(t, func() {
			b.Batch(func() {
				b.Defer()
				panic("boom")
			}, func() { flushes++ })
		})

		assert.False(t, b.IsBatching())
		assert.Equal(t, 0, flushes)

		b.Batch(func() { b.Defer() }, func() { flushes++ })
		assert.Equal(t, 1, flushes)
	})
}

func TestScheduler(t *testing.T) {
	s := NewScheduler()

	nested := true
	ran := s.Run(func() {
		nested = s.Run(func() {})
	})

	assert.True(t, ran)
	assert.False(t, nested)
	assert.Equal(t, 1, s.Time())
}

func TestNextId(t *testing.T) {
	a, b := NextId(), NextId()
	assert.Less(t, a, b)
	assert.Equal(t, "#5", Id(5).String())
}
