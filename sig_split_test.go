package sigui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSignal(t *testing.T) {
	t.Run("halves share the value", func(t *testing.T) {
		fresh(t)
		log := []int{}

		read, write := NewSignalSplit(1)
		NewEffect(func() {
			log = append(log, read.Get())
		})

		write.Set(2)
		write.Update(func(v *int) { *v *= 10 })

		assert.Equal(t, []int{1, 2, 20}, log)
		assert.Equal(t, 20, read.GetUntracked())
	})

	t.Run("read only and write only views", func(t *testing.T) {
		fresh(t)

		s := NewSignal("a")
		read, write := s.ReadOnly(), s.WriteOnly()

		g := write.Write()
		*g.Value() = "b"
		g.Release()

		assert.Equal(t, "b", s.Get())

		r := read.Read()
		assert.Equal(t, "b", r.Value())
		r.Release()
	})

	t.Run("disposed", func(t *testing.T) {
		fresh(t)

		s := NewSignal(0)
		read, write := s.Split()
		s.Dispose()

		_, ok := read.TryGet()
		assert.False(t, ok)
		assert.False(t, write.TrySet(1))
		assert.True(t, read.Disposed())
		assert.True(t, write.Disposed())
	})
}
