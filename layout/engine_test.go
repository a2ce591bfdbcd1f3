package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

var engines = []struct {
	name string
	new  func() Engine
}{
	{"box", func() Engine { return NewBoxEngine() }},
	{"flex", func() Engine { return NewFlexEngine() }},
}

func fixed(w, h float64) Style {
	return Style{Width: Px(w), Height: Px(h)}
}

func TestEngine(t *testing.T) {
	for _, engine := range engines {
		t.Run(engine.name, func(t *testing.T) {
			testEngine(t, engine.new)
		})
	}
}

func testEngine(t *testing.T, newEngine func() Engine) {
	t.Run("row with padding and gap", func(t *testing.T) {
		e := newEngine()
		root, a, b := e.NewNode(), e.NewNode(), e.NewNode()

		e.SetStyle(root, Style{Padding: All(10), Gap: 5})
		e.SetStyle(a, fixed(20, 30))
		e.SetStyle(b, fixed(40, 10))
		e.SetChildren(root, []Node{a, b})

		e.Compute(root, Size{200, 100})

		want := []Rect{
			{0, 0, 200, 100},
			{10, 10, 20, 30},
			{35, 10, 40, 10},
		}
		got := []Rect{e.Layout(root), e.Layout(a), e.Layout(b)}
		if diff := cmp.Diff(want, got, approx); diff != "" {
			t.Errorf("layout mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("column with margins", func(t *testing.T) {
		e := newEngine()
		root, a, b := e.NewNode(), e.NewNode(), e.NewNode()

		e.SetStyle(root, Style{Direction: Column})
		e.SetStyle(a, Style{Width: Px(50), Height: Px(10), Margin: Edges{Top: 4, Left: 2}})
		e.SetStyle(b, fixed(50, 10))
		e.SetChildren(root, []Node{a, b})

		e.Compute(root, Size{100, 100})

		assert.Equal(t, Rect{2, 4, 50, 10}, e.Layout(a))
		assert.Equal(t, Rect{0, 14, 50, 10}, e.Layout(b))
	})

	t.Run("auto size wraps content", func(t *testing.T) {
		e := newEngine()
		root, wrapper, leaf := e.NewNode(), e.NewNode(), e.NewNode()

		e.SetStyle(wrapper, Style{Padding: All(3)})
		e.SetStyle(leaf, fixed(10, 20))
		e.SetChildren(root, []Node{wrapper})
		e.SetChildren(wrapper, []Node{leaf})

		e.Compute(root, Size{100, 100})

		assert.Equal(t, Rect{0, 0, 16, 26}, e.Layout(wrapper))
		assert.Equal(t, Rect{3, 3, 10, 20}, e.Layout(leaf))
	})

	t.Run("percentages and grow", func(t *testing.T) {
		e := newEngine()
		root, a, b, c := e.NewNode(), e.NewNode(), e.NewNode(), e.NewNode()

		e.SetStyle(a, Style{Width: Pct(25), Height: Pct(50)})
		e.SetStyle(b, Style{Height: Px(10), Grow: 1})
		e.SetStyle(c, Style{Height: Px(10), Grow: 3})
		e.SetChildren(root, []Node{a, b, c})

		e.Compute(root, Size{200, 80})

		got := []Rect{e.Layout(a), e.Layout(b), e.Layout(c)}
		want := []Rect{
			{0, 0, 50, 40},
			{50, 0, 37.5, 10},
			{87.5, 0, 112.5, 10},
		}
		if diff := cmp.Diff(want, got, approx); diff != "" {
			t.Errorf("layout mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("absolute and hidden children leave the flow", func(t *testing.T) {
		e := newEngine()
		root, abs, hidden, a := e.NewNode(), e.NewNode(), e.NewNode(), e.NewNode()

		e.SetStyle(root, Style{Padding: All(5)})
		e.SetStyle(abs, Style{Position: Absolute, Left: 30, Top: 40, Width: Px(10), Height: Px(10)})
		e.SetStyle(hidden, Style{Display: DisplayNone, Width: Px(100), Height: Px(100)})
		e.SetStyle(a, fixed(10, 10))
		e.SetChildren(root, []Node{abs, hidden, a})

		e.Compute(root, Size{100, 100})

		assert.Equal(t, Rect{35, 45, 10, 10}, e.Layout(abs))
		assert.Equal(t, Rect{}, e.Layout(hidden))
		assert.Equal(t, Rect{5, 5, 10, 10}, e.Layout(a))
	})

	t.Run("reparenting and removal", func(t *testing.T) {
		e := newEngine()
		root, a, b, child := e.NewNode(), e.NewNode(), e.NewNode(), e.NewNode()

		e.SetStyle(child, fixed(10, 10))
		e.SetChildren(root, []Node{a, b})
		e.SetChildren(a, []Node{child})
		e.SetChildren(b, []Node{child})

		e.Compute(root, Size{100, 100})
		assert.Equal(t, Rect{0, 0, 0, 0}, e.Layout(a))
		assert.Equal(t, Rect{0, 0, 10, 10}, e.Layout(b))

		e.Remove(b)
		e.Compute(root, Size{100, 100})
		assert.Equal(t, Rect{}, e.Layout(b))
		assert.Equal(t, Rect{0, 0, 0, 0}, e.Layout(a))
	})

	t.Run("dirty flags", func(t *testing.T) {
		e := newEngine()
		root, left, right, leaf := e.NewNode(), e.NewNode(), e.NewNode(), e.NewNode()

		e.SetStyle(left, fixed(10, 10))
		e.SetStyle(leaf, fixed(5, 5))
		e.SetChildren(root, []Node{left, right})
		e.SetChildren(right, []Node{leaf})

		e.Compute(root, Size{100, 100})
		assert.False(t, e.Dirty(root))

		e.SetStyle(leaf, fixed(5, 5))
		assert.False(t, e.Dirty(root), "same style")

		e.SetStyle(leaf, fixed(6, 6))
		assert.True(t, e.Dirty(leaf))
		assert.True(t, e.Dirty(right))
		assert.True(t, e.Dirty(root))
		assert.False(t, e.Dirty(left))

		e.Compute(root, Size{100, 100})
		assert.False(t, e.Dirty(root))
		assert.Equal(t, Rect{10, 0, 6, 6}, e.Layout(right))

		e.MarkDirty(left)
		assert.True(t, e.Dirty(left))
		assert.True(t, e.Dirty(root))
		assert.False(t, e.Dirty(right))
	})
}
