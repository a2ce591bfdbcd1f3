package sigui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatch(t *testing.T) {
	t.Run("batches multiple writes", func(t *testing.T) {
		fresh(t)
		log := []string{}

		count := NewSignal(0)

		NewEffect(func() {
			log = append(log, fmt.Sprintf("changed %d", count.Get()))

			OnCleanup(func() {
				log = append(log, "cleanup")
			})
		})

		Batch(func() {
			count.Set(10)
			count.Set(20)
			log = append(log, "updated")
		})

		assert.Equal(t, []string{
			"changed 0",
			"updated",
			"cleanup",
			"changed 20",
		}, log)
	})

	t.Run("batches multiple signals", func(t *testing.T) {
		fresh(t)
		log := []string{}

		count := NewSignal(0)
		double := NewSignal(0)

		NewEffect(func() {
			log = append(log, fmt.Sprintf("count %d", count.Get()))

			OnCleanup(func() {
				log = append(log, "count cleanup")
			})
		})

		NewEffect(func() {
			log = append(log, fmt.Sprintf("double %d", double.Get()))

			OnCleanup(func() {
				log = append(log, "double cleanup")
			})
		})

		Batch(func() {
			count.Set(10)
			double.Set(count.Get() * 2)
			log = append(log, "updated")
		})

		assert.Equal(t, []string{
			"count 0",
			"double 0",
			"updated",
			"count cleanup",
			"count 10",
			"double cleanup",
			"double 20",
		}, log)
	})

	t.Run("one run for an effect reading both signals", func(t *testing.T) {
		fresh(t)
		log := []string{}

		a := NewSignal(0)
		b := NewSignal(0)

		NewEffect(func() {
			log = append(log, fmt.Sprintf("%d %d", a.Get(), b.Get()))
		})

		Batch(func() {
			a.Set(1)
			b.Set(2)
		})

		assert.Equal(t, []string{"0 0", "1 2"}, log)
	})

	t.Run("nested batches", func(t *testing.T) {
		fresh(t)
		log := []string{}

		count := NewSignal(0)

		NewEffect(func() {
			log = append(log, fmt.Sprintf("changed %d", count.Get()))

			OnCleanup(func() {
				log = append(log, "cleanup")
			})
		})

		Batch(func() {
			count.Set(10)
			Batch(func() {
				count.Set(20)
			})
			log = append(log, "updated")
		})

		assert.Equal(t, []string{
			"changed 0",
			"updated",
			"cleanup",
			"changed 20",
		}, log)
	})

	t.Run("runs effects in first enqueued order", func(t *testing.T) {
		fresh(t)
		log := []string{}

		a := NewSignal(0)
		b := NewSignal(0)

		NewEffect(func() {
			b.Get()
			log = append(log, "b")
		})
		NewEffect(func() {
			a.Get()
			log = append(log, "a")
		})

		log = log[:0]
		Batch(func() {
			a.Set(1)
			b.Set(1)
			a.Set(2)
		})

		assert.Equal(t, []string{"a", "b"}, log)
	})
}
