package layout

import (
	"sync"

	"github.com/kjk/flex"
)

// FlexEngine places nodes with a port of the Yoga flexbox engine.
//
// Nodes align to the start of the cross axis and never shrink, which matches
// BoxEngine. Gap has no flexbox counterpart in the port, so it is added to
// the leading main axis margin of every in-flow child but the first.
// Absolute offsets are taken from the parent's content box.
type FlexEngine struct {
	config *flex.Config

	next  Node
	nodes map[Node]*flexNode
}

type flexNode struct {
	node     *flex.Node
	style    Style
	parent   Node
	children []Node
}

var _ Engine = (*FlexEngine)(nil)

// the port keeps its layout generation in a package variable
var flexMu sync.Mutex

func NewFlexEngine() *FlexEngine {
	config := flex.NewConfig()
	// no rounding to the pixel grid, rects stay fractional like the styles
	config.SetPointScaleFactor(0)

	return &FlexEngine{
		config: config,
		nodes:  make(map[Node]*flexNode),
	}
}

func (e *FlexEngine) NewNode() Node {
	n := flex.NewNodeWithConfig(e.config)
	n.StyleSetAlignItems(flex.AlignFlexStart)
	n.StyleSetFlexShrink(0)

	e.next++
	e.nodes[e.next] = &flexNode{node: n}
	e.apply(e.next)

	return e.next
}

// Remove forgets n. Its children are detached, not removed.
func (e *FlexEngine) Remove(n Node) {
	b, ok := e.nodes[n]
	if !ok {
		return
	}

	if parent, ok := e.nodes[b.parent]; ok {
		parent.children = without(parent.children, n)
		parent.node.RemoveChild(b.node)
		e.applyChildren(parent)
	}

	for _, c := range b.children {
		if child, ok := e.nodes[c]; ok {
			b.node.RemoveChild(child.node)
			child.parent = 0
		}
	}

	delete(e.nodes, n)
}

func (e *FlexEngine) SetStyle(n Node, s Style) {
	b, ok := e.nodes[n]
	if !ok || b.style == s {
		return
	}

	b.style = s

	if parent, ok := e.nodes[b.parent]; ok {
		e.applyChildren(parent)
	} else {
		e.apply(n)
	}
	e.applyChildren(b)
}

func (e *FlexEngine) SetChildren(n Node, children []Node) {
	b, ok := e.nodes[n]
	if !ok {
		return
	}

	for _, c := range b.children {
		if child, ok := e.nodes[c]; ok && child.parent == n {
			b.node.RemoveChild(child.node)
			child.parent = 0
		}
	}

	b.children = make([]Node, 0, len(children))
	for _, c := range children {
		child, ok := e.nodes[c]
		if !ok {
			continue
		}

		if child.parent == n {
			// listed twice
			continue
		}
		if prev, ok := e.nodes[child.parent]; ok {
			prev.children = without(prev.children, c)
			prev.node.RemoveChild(child.node)
			e.applyChildren(prev)
		}

		child.parent = n
		b.node.InsertChild(child.node, len(b.children))
		b.children = append(b.children, c)
	}

	e.applyChildren(b)
}

// MarkDirty flags n and its ancestors for the next Compute. Style changes
// flag nodes by themselves, this is for content the engine cannot see.
func (e *FlexEngine) MarkDirty(n Node) {
	for b, ok := e.nodes[n]; ok; b, ok = e.nodes[b.parent] {
		b.node.IsDirty = true
	}
}

func (e *FlexEngine) Dirty(n Node) bool {
	b, ok := e.nodes[n]
	return ok && b.node.IsDirty
}

func (e *FlexEngine) Compute(root Node, available Size) {
	b, ok := e.nodes[root]
	if !ok {
		return
	}

	flexMu.Lock()
	defer flexMu.Unlock()

	flex.CalculateLayout(b.node, float32(available.Width), float32(available.Height), flex.DirectionLTR)
}

func (e *FlexEngine) Layout(n Node) Rect {
	b, ok := e.nodes[n]
	if !ok {
		return Rect{}
	}

	return Rect{
		X:      float64(b.node.LayoutGetLeft()),
		Y:      float64(b.node.LayoutGetTop()),
		Width:  float64(b.node.LayoutGetWidth()),
		Height: float64(b.node.LayoutGetHeight()),
	}
}

func (e *FlexEngine) applyChildren(b *flexNode) {
	for _, c := range b.children {
		e.apply(c)
	}
}

// apply copies the style of n, and what it takes from its parent, to the
// flex node. The setters only mark the node dirty when a value changes.
func (e *FlexEngine) apply(n Node) {
	b := e.nodes[n]
	s, fn := b.style, b.node

	if s.Display == DisplayNone {
		fn.StyleSetDisplay(flex.DisplayNone)
	} else {
		fn.StyleSetDisplay(flex.DisplayFlex)
	}

	if s.Direction == Column {
		fn.StyleSetFlexDirection(flex.FlexDirectionColumn)
	} else {
		fn.StyleSetFlexDirection(flex.FlexDirectionRow)
	}

	setDimension(s.Width, fn.StyleSetWidth, fn.StyleSetWidthPercent, fn.StyleSetWidthAuto)
	setDimension(s.Height, fn.StyleSetHeight, fn.StyleSetHeightPercent, fn.StyleSetHeightAuto)

	setEdges(s.Padding, fn.StyleSetPadding)
	fn.StyleSetFlexGrow(float32(s.Grow))

	margin := s.Margin
	var parent Style
	if p, ok := e.nodes[b.parent]; ok {
		parent = p.style
		if e.leadsGap(p, n) {
			if parent.Direction == Column {
				margin.Top += parent.Gap
			} else {
				margin.Left += parent.Gap
			}
		}
	}
	setEdges(margin, fn.StyleSetMargin)

	if s.Position == Absolute {
		fn.StyleSetPositionType(flex.PositionTypeAbsolute)
		fn.StyleSetPosition(flex.EdgeLeft, float32(parent.Padding.Left+s.Left))
		fn.StyleSetPosition(flex.EdgeTop, float32(parent.Padding.Top+s.Top))
	} else {
		fn.StyleSetPositionType(flex.PositionTypeRelative)
		clearPosition(fn, flex.EdgeLeft)
		clearPosition(fn, flex.EdgeTop)
	}
}

// clearPosition unsets an offset. Undefined is NaN, which the setter never
// sees as unchanged.
func clearPosition(fn *flex.Node, edge flex.Edge) {
	if fn.StyleGetPosition(edge).Unit != flex.UnitUndefined {
		fn.StyleSetPosition(edge, flex.Undefined)
	}
}

// leadsGap reports whether n is an in-flow child of p preceded by another one.
func (e *FlexEngine) leadsGap(p *flexNode, n Node) bool {
	if p.style.Gap == 0 || !e.inFlow(n) {
		return false
	}

	for _, c := range p.children {
		if c == n {
			return false
		}
		if e.inFlow(c) {
			return true
		}
	}

	return false
}

func (e *FlexEngine) inFlow(n Node) bool {
	s := e.nodes[n].style
	return s.Display != DisplayNone && s.Position != Absolute
}

func setDimension(d Dimension, px, pct func(float32), auto func()) {
	switch d.Unit {
	case UnitPx:
		px(float32(d.Value))
	case UnitPercent:
		pct(float32(d.Value))
	default:
		auto()
	}
}

func setEdges(e Edges, set func(edge flex.Edge, v float32)) {
	set(flex.EdgeTop, float32(e.Top))
	set(flex.EdgeRight, float32(e.Right))
	set(flex.EdgeBottom, float32(e.Bottom))
	set(flex.EdgeLeft, float32(e.Left))
}
