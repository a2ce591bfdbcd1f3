package view

import (
	"context"
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/AnatoleLucet/sigui/internal/metrics"
	"github.com/AnatoleLucet/sigui/layout"
	"github.com/AnatoleLucet/sigui/style"
)

// Window is a root view with its own message queue, size and interaction state.
type Window struct {
	tree *Tree
	root ID

	size        layout.Size
	breakpoints style.Breakpoints
	screen      style.ScreenSize
	dark        bool

	queue []envelope

	focus   ID
	active  ID
	hovered []ID

	needsPaint bool
	closed     bool
}

// Stats describes the work done by one Update.
type Stats struct {
	Routed  int
	Dropped int
	Applied int

	// Styled counts restyled views, FastPath the ones that skipped the cascade.
	Styled   int
	FastPath int

	Layout     bool
	Transforms int

	Animating  bool
	NeedsPaint bool
}

// NewWindow makes root the root view of a window of the given size. root is
// detached from its parent if it has one.
func (t *Tree) NewWindow(root ID, size layout.Size) *Window {
	t.rt.AssertOwner(1)

	n := t.mustNode(root)
	if !n.parent.IsZero() {
		if parent := t.node(n.parent); parent != nil {
			parent.children = without(parent.children, root)
			t.syncLayoutChildren(n.parent)
			t.requestLayout(n.parent)
		}
		n.parent = ID{}
	}

	w := &Window{
		tree:        t,
		root:        root,
		size:        size,
		breakpoints: style.CurrentBreakpoints(),
		needsPaint:  true,
	}
	w.screen = w.breakpoints.Size(size.Width)
	t.windows[root] = w

	t.requestStyle(root, true)
	t.requestLayout(root)

	return w
}

// Window returns the window id is displayed in.
func (t *Tree) Window(id ID) (*Window, bool) {
	t.rt.AssertOwner(1)
	w, ok := t.windows[t.root(id)]
	return w, ok
}

func (w *Window) Root() ID { return w.root }

func (w *Window) Size() layout.Size { return w.size }

func (w *Window) ScreenSize() style.ScreenSize { return w.screen }

func (w *Window) Closed() bool { return w.closed }

// Focused returns the view holding the keyboard focus.
func (w *Window) Focused() (ID, bool) {
	return w.focus, !w.focus.IsZero() && w.tree.node(w.focus) != nil
}

// Resize changes the window size. Crossing a breakpoint restyles every view.
func (w *Window) Resize(size layout.Size) {
	w.tree.rt.AssertOwner(1)

	if size == w.size {
		return
	}
	w.size = size
	w.tree.requestLayout(w.root)

	if screen := w.breakpoints.Size(size.Width); screen != w.screen {
		w.screen = screen
		w.tree.requestStyle(w.root, true)
	}
}

// SetBreakpoints replaces the breakpoints used by this window.
func (w *Window) SetBreakpoints(b style.Breakpoints) error {
	w.tree.rt.AssertOwner(1)

	if err := b.Validate(); err != nil {
		return err
	}

	w.breakpoints = b
	if screen := b.Size(w.size.Width); screen != w.screen {
		w.screen = screen
		w.tree.requestStyle(w.root, true)
	}
	return nil
}

func (w *Window) SetDarkMode(dark bool) {
	w.tree.rt.AssertOwner(1)

	if dark == w.dark {
		return
	}
	w.dark = dark
	w.tree.requestStyle(w.root, true)
}

// Close removes the root view and everything under it.
func (w *Window) Close() {
	w.tree.rt.AssertOwner(1)
	w.tree.Remove(w.root)
	w.queue = nil
}

// Update drains the messages of the window, then brings style, layout and
// visual transforms up to date. now drives style transitions.
func (w *Window) Update(ctx context.Context, now time.Time) Stats {
	t := w.tree
	t.rt.AssertOwner(1)

	start := time.Now()
	ctx, span := t.tracer.Start(ctx, "view.Window.Update")
	defer span.End()

	var stats Stats
	if w.closed {
		return stats
	}

	for {
		routed, dropped := t.route()
		stats.Routed += routed
		stats.Dropped += dropped

		if len(w.queue) == 0 {
			break
		}

		queue := w.queue
		w.queue = nil
		for _, env := range queue {
			w.apply(env.id, env.msg)
		}
		stats.Applied += len(queue)
	}

	w.stylePass(ctx, now, &stats)
	w.layoutPass(ctx, &stats)
	w.transformPass(ctx, &stats)

	stats.NeedsPaint = w.needsPaint

	span.SetAttributes(
		attribute.Int("view.messages.applied", stats.Applied),
		attribute.Int("view.styled", stats.Styled),
		attribute.Bool("view.layout", stats.Layout),
		attribute.Int("view.transforms", stats.Transforms),
	)

	metrics.Current().ObserveFrame(time.Since(start).Seconds())
	return stats
}

// route moves central messages to the queue of the window their view is in.
// Messages of views outside any window stay central, messages of removed
// views are dropped.
func (t *Tree) route() (routed, dropped int) {
	if len(t.central) == 0 {
		return 0, 0
	}

	central := t.central
	t.central = nil

	var kept []envelope
	for _, env := range central {
		if t.node(env.id) == nil {
			dropped++
			continue
		}

		w, ok := t.windows[t.root(env.id)]
		if !ok {
			kept = append(kept, env)
			continue
		}

		w.queue = append(w.queue, env)
		routed++
	}

	// messages sent while routing land after the ones kept back
	t.central = append(kept, t.central...)

	rec := metrics.Current()
	rec.MessagesRouted(routed)
	rec.MessagesDropped(dropped)

	if dropped > 0 {
		t.logger.Debug("dropped update messages of removed views", "count", dropped)
	}

	return routed, dropped
}

func (w *Window) apply(id ID, msg Message) {
	t := w.tree
	n := t.node(id)
	if n == nil {
		return
	}

	switch msg := msg.(type) {
	case RequestStyle:
		t.requestStyle(id, msg.Recursive)
	case RequestPaint:
		w.needsPaint = true
	case Focus:
		if prev := t.node(w.focus); prev != nil && w.focus != id {
			w.setInteraction(w.focus, style.Focus|style.FocusVisible, false)
		}
		w.focus = id
		w.setInteraction(id, style.Focus, true)
		w.setInteraction(id, style.FocusVisible, msg.Visible)
	case ClearFocus:
		if w.focus == id {
			w.focus = ID{}
		}
		w.setInteraction(id, style.Focus|style.FocusVisible, false)
	case Active:
		if w.active != id && t.node(w.active) != nil {
			w.setInteraction(w.active, style.Active, false)
		}
		w.active = id
		w.setInteraction(id, style.Active, true)
	case ClearActive:
		if w.active == id {
			w.active = ID{}
		}
		w.setInteraction(id, style.Active, false)
	case SetDisabled:
		w.setInteraction(id, style.Disabled, msg.Disabled)
	case SetSelected:
		w.setInteraction(id, style.Selected, msg.Selected)
	case SetStyle:
		recursive := len(n.inline.ClassRules()) > 0 || len(msg.Style.ClassRules()) > 0
		n.inline = msg.Style
		t.requestStyle(id, recursive)
	case AddClass:
		if !slices.Contains(n.classes, msg.Class) {
			n.classes = append(n.classes, msg.Class)
			t.requestStyle(id, false)
		}
	case RemoveClass:
		if i := slices.Index(n.classes, msg.Class); i >= 0 {
			n.classes = slices.Delete(n.classes, i, i+1)
			t.requestStyle(id, false)
		}
	case State:
		if n.view != nil {
			n.view.Update(t, id, msg.Payload)
		}
	}
}

// setInteraction toggles sel on id, restyling it when its style reacts to sel.
func (w *Window) setInteraction(id ID, sel style.Selector, on bool) {
	n := w.tree.node(id)
	if n == nil {
		return
	}

	next := n.interaction &^ sel
	if on {
		next |= sel
	}
	if next == n.interaction {
		return
	}

	changed := next ^ n.interaction
	n.interaction = next

	if n.selectors&changed != 0 {
		w.tree.requestStyle(id, false)
	}
}

// PointerMove updates the hovered views to the ones under p.
func (w *Window) PointerMove(p layout.Point) {
	w.tree.rt.AssertOwner(1)

	var path []ID
	if hit, ok := w.hitTest(p); ok {
		for id := hit; !id.IsZero(); {
			path = append(path, id)
			id = w.tree.node(id).parent
		}
	}

	for _, id := range w.hovered {
		if !slices.Contains(path, id) {
			w.setInteraction(id, style.Hover, false)
		}
	}
	for _, id := range path {
		w.setInteraction(id, style.Hover, true)
	}

	w.hovered = path
}

// PointerLeave clears the hover state.
func (w *Window) PointerLeave() {
	w.tree.rt.AssertOwner(1)

	for _, id := range w.hovered {
		w.setInteraction(id, style.Hover, false)
	}
	w.hovered = nil
}

func (w *Window) childSpan(ctx context.Context, name string) trace.Span {
	_, span := w.tree.tracer.Start(ctx, name)
	return span
}
