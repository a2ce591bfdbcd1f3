package view

import (
	"github.com/AnatoleLucet/sigui/layout"
	"github.com/AnatoleLucet/sigui/style"
)

// View is the behaviour attached to a node. Widgets implement it, the tree
// only calls it from the goroutine that owns it.
type View interface {
	// Update receives the payload of a State message.
	Update(t *Tree, id ID, state any)
	// Paint draws the view in its local coordinate space. The painter
	// already carries the view's visual transform.
	Paint(p Painter, id ID, size layout.Size, s *style.Computed)
}

// Painter is implemented by rendering back-ends.
type Painter interface {
	SetTransform(t layout.Affine)
	FillRect(r layout.Rect, c style.RGBA, radius float64)
}

// Func adapts a paint function to a View ignoring state updates.
type Func func(p Painter, id ID, size layout.Size, s *style.Computed)

func (f Func) Update(*Tree, ID, any) {}

func (f Func) Paint(p Painter, id ID, size layout.Size, s *style.Computed) {
	f(p, id, size, s)
}
