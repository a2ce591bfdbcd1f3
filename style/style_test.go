package style

import (
	"testing"

	"github.com/AnatoleLucet/sigui/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyle(t *testing.T) {
	t.Run("apply overrides", func(t *testing.T) {
		a := New().Set(Width.Value(layout.Px(1)), Height.Value(layout.Px(2)))
		b := New().Set(Width.Value(layout.Px(3)))

		a.Apply(b)

		w, _ := a.Get(Width)
		h, _ := a.Get(Height)
		assert.Equal(t, layout.Px(3), w)
		assert.Equal(t, layout.Px(2), h)
	})

	t.Run("clone is independent", func(t *testing.T) {
		a := New().Set(Opacity.Value(0.5))
		b := a.Clone().Set(Opacity.Value(0.2))

		v, _ := a.Get(Opacity)
		assert.Equal(t, 0.5, v)
		assert.Equal(t, 1, a.Len())
		assert.Equal(t, 1, b.Len())
	})

	t.Run("unset", func(t *testing.T) {
		s := New().Set(Opacity.Value(0.5)).Unset(Opacity)

		_, ok := s.Get(Opacity)
		assert.False(t, ok)
	})

	t.Run("rules for the same class merge", func(t *testing.T) {
		s := New().
			Class("x", func(s *Style) *Style { return s.Set(Opacity.Value(0.5)) }).
			Class("x", func(s *Style) *Style { return s.Set(Width.Value(layout.Px(4))) })

		require.Len(t, s.ClassRules(), 1)
		assert.Equal(t, 2, s.ClassRules()[0].Style.Len())
	})

	t.Run("simple", func(t *testing.T) {
		var nilStyle *Style
		assert.True(t, nilStyle.Simple())
		assert.True(t, New().Set(Opacity.Value(1)).Simple())
		assert.False(t, New().DarkMode(func(s *Style) *Style { return s }).Simple())
		assert.False(t, New().Responsive(XS, func(s *Style) *Style { return s }).Simple())
	})

	t.Run("selectors union", func(t *testing.T) {
		s := New().
			Hover(func(s *Style) *Style { return s }).
			Selector(Focus|Disabled, func(s *Style) *Style { return s })

		assert.Equal(t, Hover|Focus|Disabled, s.Selectors())
	})
}

func TestColor(t *testing.T) {
	assert.Equal(t, RGBA{0x33, 0x66, 0x99, 255}, Hex(0x336699))
	assert.Equal(t, RGBA{1, 2, 3, 128}, Rgb(1, 2, 3).WithAlpha(128))
}

func TestBreakpoints(t *testing.T) {
	b := DefaultBreakpoints()
	require.NoError(t, b.Validate())

	assert.Equal(t, XS, b.Size(500))
	assert.Equal(t, SM, b.Size(576))
	assert.Equal(t, LG, b.Size(1000))
	assert.Equal(t, XXL, b.Size(4000))

	assert.Equal(t, MD|LG|XL|XXL, MD.AtLeast())
	assert.Equal(t, XS|SM, SM.AtMost())
	assert.Equal(t, XXL, XXL.AtLeast())

	t.Run("set", func(t *testing.T) {
		t.Cleanup(func() { _ = SetBreakpoints(DefaultBreakpoints()) })

		bad := b
		bad.MD = bad.SM
		assert.Error(t, SetBreakpoints(bad))
		assert.Equal(t, b, CurrentBreakpoints())

		custom := Breakpoints{SM: 100, MD: 200, LG: 300, XL: 400, XXL: 500}
		require.NoError(t, SetBreakpoints(custom))
		assert.Equal(t, MD, CurrentBreakpoints().Size(250))
	})
}
