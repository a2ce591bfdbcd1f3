package sigui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffect(t *testing.T) {
	t.Run("runs on signal change with cleanup", func(t *testing.T) {
		fresh(t)
		log := []string{}

		count := NewSignal(0)
		log = append(log, fmt.Sprintf("%d", count.Get()))

		NewEffect(func() {
			log = append(log, fmt.Sprintf("changed %d", count.Get()))

			OnCleanup(func() {
				log = append(log, "cleanup")
			})
		})

		count.Set(10)
		log = append(log, fmt.Sprintf("%d", count.Get()))
		count.Set(20)

		assert.Equal(t, []string{
			"0",
			"changed 0",
			"cleanup",
			"changed 10",
			"10",
			"cleanup",
			"changed 20",
		}, log)
	})

	t.Run("writes to another signal", func(t *testing.T) {
		fresh(t)
		log := []string{}

		count := NewSignal(0)
		double := NewSignal(0)

		NewEffect(func() {
			double.Set(count.Get() * 2)
		})

		NewEffect(func() {
			log = append(log, fmt.Sprintf("changed %d", double.Get()))

			OnCleanup(func() {
				log = append(log, "cleanup")
			})
		})

		count.Set(10)

		assert.Equal(t, []string{
			"changed 0",
			"cleanup",
			"changed 20",
		}, log)
	})

	t.Run("nested effects", func(t *testing.T) {
		fresh(t)
		log := []string{}

		count := NewSignal(0)

		NewEffect(func() {
			count.Get()
			log = append(log, "running")

			NewEffect(func() {
				log = append(log, "running nested")

				OnCleanup(func() {
					log = append(log, "cleanup nested")
				})
			})

			OnCleanup(func() {
				log = append(log, "cleanup")
			})
		})

		count.Set(10)

		assert.Equal(t, []string{
			"running",
			"running nested",
			"cleanup nested",
			"cleanup",
			"running",
			"running nested",
		}, log)
	})

	t.Run("nested signals are disposed between runs", func(t *testing.T) {
		fresh(t)

		count := NewSignal(0)
		var inner []*Signal[int]

		NewEffect(func() {
			count.Get()
			inner = append(inner, NewSignal(0))
		})

		count.Set(1)

		assert.Len(t, inner, 2)
		assert.True(t, inner[0].Disposed())
		assert.False(t, inner[1].Disposed())
	})

	t.Run("diamond dependency", func(t *testing.T) {
		fresh(t)
		log := []string{}

		count := NewSignal(0)
		double := NewMemo(func(*int) int { return count.Get() * 2 })
		quad := NewMemo(func(*int) int { return count.Get() * 4 })

		NewEffect(func() {
			log = append(log, fmt.Sprintf("running %d %d", double.Get(), quad.Get()))

			OnCleanup(func() {
				log = append(log, fmt.Sprintf("cleanup %d %d", double.Get(), quad.Get()))
			})
		})

		count.Set(10)

		assert.Equal(t, []string{
			"running 0 0",
			"cleanup 20 40",
			"running 20 40",
		}, log)
	})

	t.Run("diamond dependency nested", func(t *testing.T) {
		fresh(t)
		log := []string{}

		count := NewSignal(0)
		double := NewMemo(func(*int) int { return count.Get() * 2 })
		quad := NewMemo(func(*int) int { return count.Get() * 4 })

		NewEffect(func() {
			log = append(log, fmt.Sprintf("running %d %d", double.Get(), quad.Get()))

			NewEffect(func() {
				log = append(log, fmt.Sprintf("running nested %d %d", double.Get(), quad.Get()))
				OnCleanup(func() {
					log = append(log, fmt.Sprintf("cleanup nested %d %d", double.Get(), quad.Get()))
				})
			})

			OnCleanup(func() {
				log = append(log, fmt.Sprintf("cleanup %d %d", double.Get(), quad.Get()))
			})
		})

		count.Set(10)

		assert.Equal(t, []string{
			"running 0 0",
			"running nested 0 0",
			"cleanup nested 20 40",
			"cleanup 20 40",
			"running 20 40",
			"running nested 20 40",
		}, log)
	})

	t.Run("deps change between runs", func(t *testing.T) {
		fresh(t)
		log := []string{}

		count := NewSignal(0)

		initialized := false
		NewEffect(func() {
			log = append(log, "running")
			if !initialized {
				count.Get()
			}
			initialized = true
		})

		count.Set(1)
		count.Set(2) // should not trigger since effect no longer depends on count

		assert.Equal(t, []string{
			"running",
			"running",
		}, log)
	})

	t.Run("writing its own dependency does not re-enter", func(t *testing.T) {
		fresh(t)

		runs := 0
		count := NewSignal(0)
		NewEffect(func() {
			runs++
			if v := count.Get(); v < 5 {
				count.Set(v + 1)
			}
		})

		assert.Equal(t, 1, runs)
		assert.Equal(t, 1, count.Get())
	})

	t.Run("dispose", func(t *testing.T) {
		fresh(t)
		log := []int{}

		count := NewSignal(0)
		e := NewEffect(func() {
			log = append(log, count.Get())
		})

		count.Set(1)
		e.Dispose()
		count.Set(2)

		assert.True(t, e.Disposed())
		assert.Equal(t, []int{0, 1}, log)
	})

	t.Run("stateful", func(t *testing.T) {
		fresh(t)
		log := []string{}

		count := NewSignal(1)
		NewStatefulEffect(func(prev int, first bool) int {
			v := count.Get()
			log = append(log, fmt.Sprintf("prev %d first %t now %d", prev, first, v))
			return v
		})

		count.Set(2)
		count.Set(3)

		assert.Equal(t, []string{
			"prev 0 first true now 1",
			"prev 1 first false now 2",
			"prev 2 first false now 3",
		}, log)
	})

	t.Run("updater", func(t *testing.T) {
		fresh(t)
		changes := []int{}

		count := NewSignal(1)
		initial := NewUpdater(func() int { return count.Get() * 10 }, func(v int) {
			changes = append(changes, v)
		})

		count.Set(2)
		count.Set(3)

		assert.Equal(t, 10, initial)
		assert.Equal(t, []int{20, 30}, changes)
	})

	t.Run("updater callback is untracked", func(t *testing.T) {
		fresh(t)
		runs := 0

		count := NewSignal(1)
		other := NewSignal(0)
		NewUpdater(func() int { return count.Get() }, func(int) {
			other.Get()
			runs++
		})

		count.Set(2)
		other.Set(1)

		assert.Equal(t, 1, runs)
	})
	t.Run("stateful updater threads state", func(t *testing.T) {
		fresh(t)
		log := []string{}

		count := NewSignal(1)
		initial := NewStatefulUpdater(func(prev int, first bool) (string, int) {
			if first {
				return fmt.Sprintf("init %d", count.Get()), 100
			}
			return fmt.Sprintf("value %d", count.Get()), prev + 1
		}, func(v string, state int) int {
			log = append(log, fmt.Sprintf("%s state %d", v, state))
			return state * 2
		})

		count.Set(2)
		count.Set(3)

		assert.Equal(t, "init 1", initial)
		assert.Equal(t, []string{
			"value 2 state 101",
			"value 3 state 203",
		}, log)
	})
}

func TestTracker(t *testing.T) {
	t.Run("calls on change without re-running the tracked function", func(t *testing.T) {
		fresh(t)
		log := []string{}

		count := NewSignal(0)
		tracker := NewTracker(func() {
			log = append(log, "changed")
		})

		tracker.Track(func() {
			log = append(log, fmt.Sprintf("tracked %d", count.Get()))
		})

		count.Set(1)
		count.Set(2)

		assert.Equal(t, []string{"tracked 0", "changed"}, log)
	})

	t.Run("track replaces dependencies", func(t *testing.T) {
		fresh(t)
		changes := 0

		a := NewSignal(0)
		b := NewSignal(0)
		tracker := NewTracker(func() { changes++ })

		tracker.Track(func() { a.Get() })
		tracker.Track(func() { b.Get() })

		a.Set(1)
		assert.Equal(t, 0, changes)

		b.Set(1)
		assert.Equal(t, 1, changes)
	})

	t.Run("re-tracks from on change", func(t *testing.T) {
		fresh(t)
		seen := []int{}

		count := NewSignal(0)
		var tracker *Tracker
		tracker = NewTracker(func() {
			tracker.Track(func() { seen = append(seen, count.Get()) })
		})
		tracker.Track(func() { seen = append(seen, count.Get()) })

		count.Set(1)
		count.Set(2)

		assert.Equal(t, []int{0, 1, 2}, seen)
	})

	t.Run("disposed", func(t *testing.T) {
		fresh(t)
		changes := 0

		count := NewSignal(0)
		tracker := NewTracker(func() { changes++ })
		tracker.Track(func() { count.Get() })
		tracker.Dispose()

		count.Set(1)
		assert.Equal(t, 0, changes)
		assert.True(t, tracker.Disposed())
	})
}
