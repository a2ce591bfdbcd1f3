// Package style resolves per-view styles from inline styles, class rules
// declared by ancestors, interaction selectors and screen size breakpoints.
package style

import "github.com/AnatoleLucet/sigui/layout"

// Flags classify what a property change invalidates.
type Flags uint8

const (
	// Inherited props flow from parent to children.
	Inherited Flags = 1 << iota
	// Layout props require a layout pass.
	Layout
	// Transform props invalidate the visual transform of the view and its subtree.
	Transform
	// Paint props only require a repaint.
	Paint

	AllFlags = Inherited | Layout | Transform | Paint
)

func (f Flags) Has(o Flags) bool { return f&o != 0 }

// Key is the untyped side of a Prop.
type Key interface {
	Name() string
	Flags() Flags

	defaultValue() any
	equal(a, b any) bool
	lerp(a, b any, t float64) (any, bool)
}

// Prop is a typed style property.
type Prop[T comparable] struct {
	name  string
	flags Flags
	def   T

	interpolate func(a, b T, t float64) T
}

func NewProp[T comparable](name string, flags Flags, def T) *Prop[T] {
	return &Prop[T]{name: name, flags: flags, def: def}
}

// NewAnimatableProp creates a prop that transitions can interpolate.
func NewAnimatableProp[T comparable](name string, flags Flags, def T, lerp func(a, b T, t float64) T) *Prop[T] {
	return &Prop[T]{name: name, flags: flags, def: def, interpolate: lerp}
}

func (p *Prop[T]) Name() string { return p.name }
func (p *Prop[T]) Flags() Flags { return p.flags }
func (p *Prop[T]) Default() T   { return p.def }

// Value pairs the prop with v, for Style.Set.
func (p *Prop[T]) Value(v T) Value {
	return Value{key: p, value: v}
}

// Get returns the value of p in c, or its default.
func (p *Prop[T]) Get(c *Computed) T {
	if c != nil {
		if v, ok := c.values[p]; ok {
			return v.(T)
		}
	}

	return p.def
}

func (p *Prop[T]) defaultValue() any { return p.def }

func (p *Prop[T]) equal(a, b any) bool {
	return a.(T) == b.(T)
}

func (p *Prop[T]) lerp(a, b any, t float64) (any, bool) {
	if p.interpolate == nil {
		return nil, false
	}

	return p.interpolate(a.(T), b.(T), t), true
}

type Value struct {
	key   Key
	value any
}

func (v Value) Key() Key { return v.key }

type CursorStyle uint8

const (
	CursorDefault CursorStyle = iota
	CursorPointer
	CursorText
	CursorGrab
	CursorNotAllowed
)

var (
	Display       = NewProp("display", Layout, layout.DisplayFlex)
	FlexDirection = NewProp("flex-direction", Layout, layout.Row)
	Width         = NewAnimatableProp("width", Layout, layout.Auto, lerpDimension)
	Height        = NewAnimatableProp("height", Layout, layout.Auto, lerpDimension)
	Padding       = NewAnimatableProp("padding", Layout, layout.Edges{}, lerpEdges)
	Margin        = NewAnimatableProp("margin", Layout, layout.Edges{}, lerpEdges)
	Gap           = NewAnimatableProp("gap", Layout, 0.0, lerpFloat)
	FlexGrow      = NewAnimatableProp("flex-grow", Layout, 0.0, lerpFloat)
	Position      = NewProp("position", Layout, layout.Relative)
	InsetLeft     = NewAnimatableProp("left", Layout, 0.0, lerpFloat)
	InsetTop      = NewAnimatableProp("top", Layout, 0.0, lerpFloat)

	TranslateX = NewAnimatableProp("translate-x", Transform, 0.0, lerpFloat)
	TranslateY = NewAnimatableProp("translate-y", Transform, 0.0, lerpFloat)
	Scale      = NewAnimatableProp("scale", Transform, 1.0, lerpFloat)
	// Rotate is in degrees, clockwise.
	Rotate = NewAnimatableProp("rotate", Transform, 0.0, lerpFloat)

	Background   = NewAnimatableProp("background", Paint, Transparent, lerpRGBA)
	Opacity      = NewAnimatableProp("opacity", Paint, 1.0, lerpFloat)
	BorderRadius = NewAnimatableProp("border-radius", Paint, 0.0, lerpFloat)

	Color    = NewAnimatableProp("color", Inherited|Paint, Black, lerpRGBA)
	FontSize = NewAnimatableProp("font-size", Inherited|Layout|Paint, 14.0, lerpFloat)
	Cursor   = NewProp("cursor", Inherited, CursorDefault)
)

// LayoutStyle extracts what the layout engine needs from c.
func LayoutStyle(c *Computed) layout.Style {
	return layout.Style{
		Display:   Display.Get(c),
		Direction: FlexDirection.Get(c),
		Position:  Position.Get(c),
		Width:     Width.Get(c),
		Height:    Height.Get(c),
		Padding:   Padding.Get(c),
		Margin:    Margin.Get(c),
		Gap:       Gap.Get(c),
		Grow:      FlexGrow.Get(c),
		Left:      InsetLeft.Get(c),
		Top:       InsetTop.Get(c),
	}
}
