package view

import (
	"context"
	"math"
	"time"

	"github.com/AnatoleLucet/sigui/internal/metrics"
	"github.com/AnatoleLucet/sigui/layout"
	"github.com/AnatoleLucet/sigui/style"
)

func (w *Window) stylePass(ctx context.Context, now time.Time, stats *Stats) {
	root := w.tree.node(w.root)
	if root.flags&(flagStyle|flagStyleRecursive|flagStyleChildren) == 0 {
		return
	}

	span := w.childSpan(ctx, "view.Window.style")
	defer span.End()

	metrics.Current().StylePass()
	w.restyle(w.root, nil, nil, false, now, stats)
}

// restyle walks the flagged part of the subtree of id. It reports whether
// a view in it is mid-transition and needs another pass.
func (w *Window) restyle(id ID, parent *style.Computed, rules [][]style.ClassRule, force bool, now time.Time, stats *Stats) bool {
	t := w.tree
	n := t.node(id)

	pending := false
	forceChildren := force || n.flags&flagStyleRecursive != 0

	if force || n.flags&(flagStyle|flagStyleRecursive) != 0 {
		interaction := n.interaction
		if w.dark {
			interaction |= style.DarkMode
		}

		res := style.Resolve(n.inline, style.Context{
			Parent:      parent,
			Rules:       rules,
			Classes:     n.classes,
			Interaction: interaction,
			Screen:      w.screen,
		})

		shown, running := n.animator.Step(n.computed, res.Computed, res.Transitions, now)
		changed := style.Diff(n.computed, shown)

		n.computed = shown
		n.childRules = res.Rules
		n.selectors = res.Selectors
		n.flags &^= flagStyle | flagStyleRecursive

		stats.Styled++
		if res.FastPath {
			stats.FastPath++
		}

		if changed.Has(style.Layout) {
			t.engine.SetStyle(n.layout, style.LayoutStyle(shown))
			t.requestLayout(id)
		}
		if changed.Has(style.Transform) {
			n.transformDirty = true
		}
		if changed != 0 {
			w.needsPaint = true
		}
		if changed.Has(style.Inherited) || len(res.Rules) != len(rules) {
			forceChildren = true
		}

		if running {
			n.flags |= flagStyle
			pending = true
			stats.Animating = true
		}
	}

	childPending := false
	if forceChildren || n.flags&flagStyleChildren != 0 {
		n.flags &^= flagStyleChildren

		for _, c := range n.children {
			if w.restyle(c, n.computed, n.childRules, forceChildren, now, stats) {
				childPending = true
			}
		}
	}

	if childPending {
		n.flags |= flagStyleChildren
	}

	return pending || childPending
}

func (w *Window) layoutPass(ctx context.Context, stats *Stats) {
	t := w.tree
	root := t.node(w.root)
	if root.flags&flagLayout == 0 {
		return
	}

	span := w.childSpan(ctx, "view.Window.layout")
	defer span.End()

	metrics.Current().LayoutPass()
	t.engine.Compute(root.layout, w.size)
	w.syncRects(w.root)

	stats.Layout = true
	w.needsPaint = true
}

// syncRects copies the engine's rects, flagging moved or resized views.
func (w *Window) syncRects(id ID) {
	t := w.tree
	n := t.node(id)

	n.flags &^= flagLayout
	if r := t.engine.Layout(n.layout); r != n.rect {
		n.rect = r
		n.transformDirty = true
	}

	for _, c := range n.children {
		w.syncRects(c)
	}
}

func (w *Window) transformPass(ctx context.Context, stats *Stats) {
	span := w.childSpan(ctx, "view.Window.transform")
	defer span.End()

	w.updateTransform(w.root, layout.Identity, false, stats)
}

// updateTransform recomputes the visual transform of every view that moved,
// changed its CSS transform, or has an ancestor that did.
func (w *Window) updateTransform(id ID, parent layout.Affine, parentChanged bool, stats *Stats) {
	n := w.tree.node(id)

	changed := parentChanged || n.transformDirty
	if changed {
		n.transform = parent.
			Mul(layout.Translate(n.rect.X, n.rect.Y)).
			Mul(cssTransform(n.computed, n.rect.Size()))
		n.inverse, n.invertible = n.transform.Inverse()
		n.transformDirty = false

		stats.Transforms++
		w.needsPaint = true
	}

	for _, c := range n.children {
		w.updateTransform(c, n.transform, changed, stats)
	}
}

// cssTransform applies translate, rotate and scale about the centre of the box.
func cssTransform(c *style.Computed, size layout.Size) layout.Affine {
	tx, ty := style.TranslateX.Get(c), style.TranslateY.Get(c)
	scale, deg := style.Scale.Get(c), style.Rotate.Get(c)

	if tx == 0 && ty == 0 && scale == 1 && deg == 0 {
		return layout.Identity
	}

	cx, cy := size.Width/2, size.Height/2
	return layout.Translate(cx+tx, cy+ty).
		Mul(layout.Rotate(deg * math.Pi / 180)).
		Mul(layout.Scale(scale, scale)).
		Mul(layout.Translate(-cx, -cy))
}
