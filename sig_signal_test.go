package sigui

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnatoleLucet/sigui/internal"
)

func TestSignal(t *testing.T) {
	t.Run("read and write", func(t *testing.T) {
		fresh(t)

		count := NewSignal(0)
		assert.Equal(t, 0, count.Get())

		count.Set(10)
		assert.Equal(t, 10, count.Get())

		count.Update(func(v *int) { *v++ })
		assert.Equal(t, 11, count.Get())
	})

	t.Run("zero values", func(t *testing.T) {
		fresh(t)

		err := NewSignal[error](nil)
		assert.Nil(t, err.Get())

		err.Set(errors.New("oops"))
		assert.EqualError(t, err.Get(), "oops")

		err.Set(nil)
		assert.Nil(t, err.Get())
	})

	t.Run("guards", func(t *testing.T) {
		fresh(t)

		items := NewSignal([]string{"a"})

		w := items.Write()
		*w.Value() = append(*w.Value(), "b")
		w.Release()

		r := items.Read()
		assert.Equal(t, []string{"a", "b"}, r.Value())
		r.Release()
		r.Release()

		var seen []string
		items.With(func(v *[]string) { seen = *v })
		assert.Equal(t, []string{"a", "b"}, seen)
	})

	t.Run("notifies on every write", func(t *testing.T) {
		fresh(t)

		runs := 0
		count := NewSignal(0)
		NewEffect(func() {
			count.Get()
			runs++
		})

		count.Set(0)
		count.Set(0)

		assert.Equal(t, 3, runs)
	})

	t.Run("each write runs the effect once", func(t *testing.T) {
		fresh(t)

		log := []int{}
		count := NewSignal(0)
		NewEffect(func() {
			log = append(log, count.Get())
		})
		assert.Equal(t, []int{0}, log)

		count.Set(1)
		assert.Equal(t, []int{0, 1}, log)
	})

	t.Run("untracked reads", func(t *testing.T) {
		fresh(t)

		runs := 0
		count := NewSignal(0)
		NewEffect(func() {
			count.GetUntracked()
			count.WithUntracked(func(*int) {})
			count.ReadUntracked().Release()
			runs++
		})

		count.Set(1)
		assert.Equal(t, 1, runs)
	})

	t.Run("track without reading", func(t *testing.T) {
		fresh(t)

		runs := 0
		count := NewSignal(0)
		NewEffect(func() {
			count.Track()
			runs++
		})

		count.Set(1)
		assert.Equal(t, 2, runs)
	})

	t.Run("trigger", func(t *testing.T) {
		fresh(t)

		runs := 0
		trigger := NewTrigger()
		NewEffect(func() {
			trigger.Track()
			runs++
		})

		trigger.Notify()
		trigger.Notify()
		assert.Equal(t, 3, runs)
	})

	t.Run("disposed", func(t *testing.T) {
		fresh(t)

		count := NewSignal(1)
		count.Dispose()

		assert.True(t, count.Disposed())

		v, ok := count.TryGet()
		assert.False(t, ok)
		assert.Zero(t, v)

		_, ok = count.TryGetUntracked()
		assert.False(t, ok)
		assert.False(t, count.TrySet(2))
		assert.False(t, count.TryUpdate(func(v *int) { *v = 3 }))

		err, ok := recovered(func() { count.Get() }).(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, ErrDisposed)
	})

	t.Run("try accessors on live signal", func(t *testing.T) {
		fresh(t)

		count := NewSignal(1)
		assert.True(t, count.TrySet(2))
		assert.True(t, count.TryUpdate(func(v *int) { *v *= 10 }))

		v, ok := count.TryGet()
		assert.True(t, ok)
		assert.Equal(t, 20, v)
	})
}

func TestBorrow(t *testing.T) {
	t.Run("write while reading panics", func(t *testing.T) {
		fresh(t)

		count := NewSignal(0)
		guard := count.Read()

		v := recovered(func() { count.Set(1) })
		guard.Release()

		err, ok := v.(error)
		require.True(t, ok, "expected an error panic, got %v", v)

		var borrowErr *internal.BorrowError
		require.ErrorAs(t, err, &borrowErr)
		assert.Contains(t, err.Error(), "borrow conflict")
		assert.Contains(t, borrowErr.Holder.File, "signal_test.go")
		assert.Contains(t, borrowErr.Attempt.File, "signal_test.go")
		assert.NotEqual(t, borrowErr.Holder.Line, borrowErr.Attempt.Line)
		assert.True(t, borrowErr.Exclusive)

		// released guards don't block writers
		count.Set(2)
		assert.Equal(t, 2, count.Get())
	})

	t.Run("read while writing panics", func(t *testing.T) {
		fresh(t)

		count := NewSignal(0)
		guard := count.Write()

		v := recovered(func() { count.Get() })
		guard.Release()

		var borrowErr *internal.BorrowError
		require.ErrorAs(t, v.(error), &borrowErr)
		assert.False(t, borrowErr.Exclusive)
	})

	t.Run("shared reads", func(t *testing.T) {
		fresh(t)

		count := NewSignal(0)
		a := count.Read()
		b := count.Read()

		assert.Equal(t, 0, a.Value()+b.Value())

		a.Release()
		b.Release()
	})

	t.Run("without tracking locations are unknown", func(t *testing.T) {
		fresh(t)
		Configure(Options{BorrowTracking: false, ThreadAffinity: true})
		t.Cleanup(func() { Configure(DefaultOptions()) })

		count := NewSignal(0)
		guard := count.Read()
		v := recovered(func() { count.Set(1) })
		guard.Release()

		var borrowErr *internal.BorrowError
		require.ErrorAs(t, v.(error), &borrowErr)
		assert.True(t, borrowErr.Holder.IsZero())
		assert.Contains(t, borrowErr.Error(), "borrow conflict")
	})
}

func TestAffinity(t *testing.T) {
	t.Run("foreign goroutine panics", func(t *testing.T) {
		fresh(t)

		count := NewSignal(0)

		var v any
		var wg sync.WaitGroup
		wg.Go(func() {
			v = recovered(func() { count.Set(1) })
		})
		wg.Wait()

		err, ok := v.(error)
		require.True(t, ok, "expected an error panic, got %v", v)

		var affinityErr *internal.AffinityError
		require.ErrorAs(t, err, &affinityErr)
		assert.NotEqual(t, affinityErr.Goroutine, affinityErr.Owner)
		assert.Contains(t, affinityErr.Caller.File, "signal_test.go")
		assert.False(t, affinityErr.Origin.IsZero())
		assert.Equal(t, 0, count.Get())
	})

	t.Run("can be disabled", func(t *testing.T) {
		fresh(t)
		Configure(Options{BorrowTracking: true, ThreadAffinity: false})
		t.Cleanup(func() { Configure(DefaultOptions()) })

		count := NewSignal(0)

		var v any
		var wg sync.WaitGroup
		wg.Go(func() {
			v = recovered(func() { count.Set(1) })
		})
		wg.Wait()

		assert.Nil(t, v)
		assert.Equal(t, 1, count.Get())
	})
}
