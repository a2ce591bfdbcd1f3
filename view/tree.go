// Package view stores the retained view tree and turns reactive writes into
// the minimal style, layout, transform and paint work for each window.
//
// Requests made on a view are queued centrally, since a view can be built
// and updated before it is attached under a window. Window.Update routes
// them to their window, applies them, then runs the style, layout and
// transform passes for the views they flagged.
package view

import (
	"fmt"
	"log/slog"
	"slices"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/AnatoleLucet/sigui"
	"github.com/AnatoleLucet/sigui/internal"
	"github.com/AnatoleLucet/sigui/layout"
	"github.com/AnatoleLucet/sigui/style"
)

const tracerName = "github.com/AnatoleLucet/sigui/view"

type changeFlags uint8

const (
	flagLayout changeFlags = 1 << iota
	flagStyle
	// some descendant has flagStyle
	flagStyleChildren
	// restyle the whole subtree
	flagStyleRecursive
)

type node struct {
	parent   ID
	children []ID

	view   View
	layout layout.Node

	rect           layout.Rect
	transform      layout.Affine
	inverse        layout.Affine
	invertible     bool
	transformDirty bool

	flags changeFlags

	inline      *style.Style
	classes     []style.Class
	interaction style.Selector

	computed    *style.Computed
	childRules  [][]style.ClassRule
	selectors   style.Selector
	transitions bool
	animator    style.Animator

	scope *sigui.Scope
}

// Tree owns the views of one UI goroutine. Every method must be called from
// the goroutine that created the tree.
type Tree struct {
	rt *internal.Runtime

	engine layout.Engine
	nodes  slots

	central []envelope
	windows map[ID]*Window

	scope  *sigui.Scope
	logger *slog.Logger
	tracer trace.Tracer
}

type Option func(*Tree)

// WithEngine replaces the default FlexEngine.
func WithEngine(e layout.Engine) Option {
	return func(t *Tree) { t.engine = e }
}

func WithLogger(l *slog.Logger) Option {
	return func(t *Tree) { t.logger = l }
}

func WithTracer(tr trace.Tracer) Option {
	return func(t *Tree) { t.tracer = tr }
}

func NewTree(opts ...Option) *Tree {
	t := &Tree{
		rt:      internal.GetRuntime(),
		windows: make(map[ID]*Window),
		scope:   sigui.NewScope(),
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.engine == nil {
		t.engine = layout.NewFlexEngine()
	}
	if t.logger == nil {
		t.logger = internal.Logger()
	}
	if t.tracer == nil {
		t.tracer = otel.Tracer(tracerName)
	}

	return t
}

func (t *Tree) node(id ID) *node {
	return t.nodes.get(id)
}

func (t *Tree) mustNode(id ID) *node {
	n := t.nodes.get(id)
	if n == nil {
		panic(fmt.Errorf("view: %s: %w", id, sigui.ErrDisposed))
	}
	return n
}

// NewID creates a detached view with its own layout node and reactive scope.
func (t *Tree) NewID() ID {
	t.rt.AssertOwner(1)

	n := &node{
		layout:    t.engine.NewNode(),
		transform: layout.Identity,
		inverse:   layout.Identity,
		flags:     flagLayout | flagStyle,
		scope:     t.scope.CreateChild(),
	}
	return t.nodes.insert(n)
}

// Alive reports whether id names a view that was not removed.
func (t *Tree) Alive(id ID) bool {
	t.rt.AssertOwner(1)
	return t.node(id) != nil
}

// Len returns the number of live views.
func (t *Tree) Len() int {
	return t.nodes.len
}

func (t *Tree) SetView(id ID, v View) {
	t.rt.AssertOwner(1)
	t.mustNode(id).view = v
}

func (t *Tree) View(id ID) View {
	t.rt.AssertOwner(1)
	if n := t.node(id); n != nil {
		return n.view
	}
	return nil
}

// Scope returns the reactive scope of id. It is disposed when the view is removed.
func (t *Tree) Scope(id ID) *sigui.Scope {
	t.rt.AssertOwner(1)
	return t.mustNode(id).scope
}

func (t *Tree) Parent(id ID) (ID, bool) {
	t.rt.AssertOwner(1)
	n := t.node(id)
	if n == nil || n.parent.IsZero() {
		return ID{}, false
	}
	return n.parent, true
}

func (t *Tree) Children(id ID) []ID {
	t.rt.AssertOwner(1)
	if n := t.node(id); n != nil {
		return slices.Clone(n.children)
	}
	return nil
}

// Root returns the topmost ancestor of id.
func (t *Tree) Root(id ID) ID {
	t.rt.AssertOwner(1)
	return t.root(id)
}

func (t *Tree) root(id ID) ID {
	for {
		n := t.node(id)
		if n == nil || n.parent.IsZero() {
			return id
		}
		id = n.parent
	}
}

// SetChildren replaces the children of id. Children no longer listed are
// removed. A listed view attached elsewhere is moved under id.
func (t *Tree) SetChildren(id ID, children []ID) {
	t.rt.AssertOwner(1)

	n := t.mustNode(id)
	for _, c := range children {
		if c == id || t.isAncestor(c, id) {
			panic(fmt.Errorf("view: %s can't be a child of %s, it would create a cycle", c, id))
		}
		t.mustNode(c)
	}

	for _, old := range n.children {
		if !slices.Contains(children, old) {
			t.remove(old)
		}
	}

	for _, c := range children {
		t.attach(id, c)
	}
	n.children = slices.Clone(children)

	t.syncLayoutChildren(id)
	t.requestLayout(id)
}

// AddChild appends child to the children of id.
func (t *Tree) AddChild(id, child ID) {
	t.rt.AssertOwner(1)

	n := t.mustNode(id)
	t.mustNode(child)
	if child == id || t.isAncestor(child, id) {
		panic(fmt.Errorf("view: %s can't be a child of %s, it would create a cycle", child, id))
	}

	t.attach(id, child)
	n.children = append(without(n.children, child), child)

	t.syncLayoutChildren(id)
	t.requestLayout(id)
}

// attach moves child under parent, leaving parent's child list to the caller.
func (t *Tree) attach(parent, child ID) {
	c := t.node(child)

	if !c.parent.IsZero() && c.parent != parent {
		if old := t.node(c.parent); old != nil {
			old.children = without(old.children, child)
			t.syncLayoutChildren(c.parent)
			t.requestLayout(c.parent)
		}
	}

	c.parent = parent
	c.transformDirty = true

	// a new parent means new inherited values and class rules
	c.flags |= flagStyle | flagStyleRecursive
	t.markStyleAncestors(parent)
}

func (t *Tree) isAncestor(ancestor, id ID) bool {
	for n := t.node(id); n != nil && !n.parent.IsZero(); n = t.node(n.parent) {
		if n.parent == ancestor {
			return true
		}
	}
	return false
}

func (t *Tree) syncLayoutChildren(id ID) {
	n := t.node(id)
	nodes := make([]layout.Node, 0, len(n.children))
	for _, c := range n.children {
		nodes = append(nodes, t.node(c).layout)
	}
	t.engine.SetChildren(n.layout, nodes)
}

// Remove removes id and its subtree, disposing their scopes. Pending
// messages for them are dropped. Removing a window root closes the window.
func (t *Tree) Remove(id ID) {
	t.rt.AssertOwner(1)

	n := t.node(id)
	if n == nil {
		return
	}

	if parent := t.node(n.parent); parent != nil {
		parent.children = without(parent.children, id)
		t.syncLayoutChildren(n.parent)
		t.requestLayout(n.parent)
	}

	t.remove(id)
}

func (t *Tree) remove(id ID) {
	n := t.node(id)
	if n == nil {
		return
	}

	for _, c := range slices.Backward(n.children) {
		t.remove(c)
	}

	n.scope.Dispose()
	t.engine.Remove(n.layout)
	t.nodes.remove(id)

	if w, ok := t.windows[id]; ok {
		w.closed = true
		delete(t.windows, id)
	}
}

// Dispose removes every view and window.
func (t *Tree) Dispose() {
	t.rt.AssertOwner(1)

	for i := range t.nodes.entries {
		e := t.nodes.entries[i]
		if e.node != nil && e.node.parent.IsZero() {
			t.remove(ID{index: uint32(i), gen: e.gen})
		}
	}

	t.central = nil
	t.scope.Dispose()
}

func without(ids []ID, id ID) []ID {
	return slices.DeleteFunc(ids, func(other ID) bool { return other == id })
}
