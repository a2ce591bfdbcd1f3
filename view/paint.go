package view

import (
	"context"
	"math"
	"slices"

	"go.opentelemetry.io/otel/attribute"

	"github.com/AnatoleLucet/sigui/layout"
	"github.com/AnatoleLucet/sigui/style"
)

// Paint walks the window in paint order, parents before children, and
// returns how many views were painted. Hidden subtrees are skipped.
func (w *Window) Paint(ctx context.Context, p Painter) int {
	w.tree.rt.AssertOwner(1)

	_, span := w.tree.tracer.Start(ctx, "view.Window.Paint")
	defer span.End()

	if w.closed {
		return 0
	}

	count := w.paint(w.root, p)
	w.needsPaint = false

	span.SetAttributes(attribute.Int("view.painted", count))
	return count
}

func (w *Window) paint(id ID, p Painter) int {
	n := w.tree.node(id)
	if style.Display.Get(n.computed) == layout.DisplayNone {
		return 0
	}

	p.SetTransform(n.transform)
	size := n.rect.Size()

	bg := style.Background.Get(n.computed)
	bg.A = uint8(math.Round(float64(bg.A) * min(max(style.Opacity.Get(n.computed), 0), 1)))
	if bg.A > 0 {
		p.FillRect(layout.Rect{Width: size.Width, Height: size.Height}, bg, style.BorderRadius.Get(n.computed))
	}

	if n.view != nil {
		n.view.Paint(p, id, size, n.computed)
	}

	count := 1
	for _, c := range n.children {
		count += w.paint(c, p)
	}
	return count
}

// HitTest returns the topmost view under p, in window coordinates.
func (w *Window) HitTest(p layout.Point) (ID, bool) {
	w.tree.rt.AssertOwner(1)
	return w.hitTest(p)
}

func (w *Window) hitTest(p layout.Point) (ID, bool) {
	if w.closed {
		return ID{}, false
	}
	return w.hit(w.root, p)
}

func (w *Window) hit(id ID, p layout.Point) (ID, bool) {
	n := w.tree.node(id)
	if n == nil || style.Display.Get(n.computed) == layout.DisplayNone {
		return ID{}, false
	}

	for _, c := range slices.Backward(n.children) {
		if hit, ok := w.hit(c, p); ok {
			return hit, true
		}
	}

	if !n.invertible {
		return ID{}, false
	}

	local := n.inverse.Apply(p)
	if (layout.Rect{Width: n.rect.Width, Height: n.rect.Height}).Contains(local) {
		return id, true
	}
	return ID{}, false
}
