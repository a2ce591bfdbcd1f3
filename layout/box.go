package layout

// BoxEngine is a small flex-like engine with no dependencies. Children are
// stacked along a row or a column, separated by gap, with the free space
// shared between growing children. Absolute children are taken out of the
// flow and positioned against the parent's content box. Auto sizes
// shrink-wrap the content, except for the root, which fills the available
// space.
//
// Measurements are cached per node and reused until the node or one of
// its descendants is marked dirty.
type BoxEngine struct {
	next  Node
	nodes map[Node]*box

	measures int
}

type box struct {
	style    Style
	parent   Node
	children []Node

	dirty bool

	measured    Size
	measuredFor Size
	hasMeasure  bool

	rect Rect
}

var _ Engine = (*BoxEngine)(nil)

func NewBoxEngine() *BoxEngine {
	return &BoxEngine{
		nodes: make(map[Node]*box),
	}
}

func (e *BoxEngine) NewNode() Node {
	e.next++
	e.nodes[e.next] = &box{dirty: true}

	return e.next
}

// Remove forgets n. Its children are detached, not removed.
func (e *BoxEngine) Remove(n Node) {
	b, ok := e.nodes[n]
	if !ok {
		return
	}

	if parent, ok := e.nodes[b.parent]; ok {
		parent.children = without(parent.children, n)
		e.MarkDirty(b.parent)
	}

	for _, c := range b.children {
		if child, ok := e.nodes[c]; ok {
			child.parent = 0
		}
	}

	delete(e.nodes, n)
}

func (e *BoxEngine) SetStyle(n Node, s Style) {
	b, ok := e.nodes[n]
	if !ok || b.style == s {
		return
	}

	b.style = s
	e.MarkDirty(n)
}

func (e *BoxEngine) SetChildren(n Node, children []Node) {
	b, ok := e.nodes[n]
	if !ok {
		return
	}

	for _, c := range b.children {
		if child, ok := e.nodes[c]; ok && child.parent == n {
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
			e.MarkDirty(child.parent)
		}

		child.parent = n
		b.children = append(b.children, c)
	}

	e.MarkDirty(n)
}

func (e *BoxEngine) MarkDirty(n Node) {
	for b, ok := e.nodes[n]; ok; b, ok = e.nodes[b.parent] {
		b.dirty = true
	}
}

func (e *BoxEngine) Dirty(n Node) bool {
	b, ok := e.nodes[n]
	return ok && b.dirty
}

// Measures returns how many node measurements were computed, cache hits excluded.
func (e *BoxEngine) Measures() int {
	return e.measures
}

func (e *BoxEngine) Layout(n Node) Rect {
	b, ok := e.nodes[n]
	if !ok {
		return Rect{}
	}

	return b.rect
}

func (e *BoxEngine) Compute(root Node, available Size) {
	b, ok := e.nodes[root]
	if !ok {
		return
	}

	s := b.style
	size := Size{
		Width:  available.Width - s.Margin.Horizontal(),
		Height: available.Height - s.Margin.Vertical(),
	}
	if w, ok := s.Width.Resolve(available.Width); ok {
		size.Width = w
	}
	if h, ok := s.Height.Resolve(available.Height); ok {
		size.Height = h
	}

	if !b.dirty && b.rect.Size() == size {
		return
	}

	e.place(root, Rect{X: s.Margin.Left, Y: s.Margin.Top, Width: size.Width, Height: size.Height})
}

// measure returns the border box size of n given the content box of its parent.
func (e *BoxEngine) measure(n Node, available Size) Size {
	b := e.nodes[n]
	if !b.dirty && b.hasMeasure && b.measuredFor == available {
		return b.measured
	}

	e.measures++

	s := b.style
	var size Size

	if s.Display != DisplayNone {
		width, hasWidth := s.Width.Resolve(available.Width)
		height, hasHeight := s.Height.Resolve(available.Height)

		outer := Size{
			Width:  available.Width - s.Margin.Horizontal(),
			Height: available.Height - s.Margin.Vertical(),
		}
		if hasWidth {
			outer.Width = width
		}
		if hasHeight {
			outer.Height = height
		}

		inner := Size{
			Width:  max(0, outer.Width-s.Padding.Horizontal()),
			Height: max(0, outer.Height-s.Padding.Vertical()),
		}

		content := e.measureContent(b, inner)

		size = Size{Width: width, Height: height}
		if !hasWidth {
			size.Width = content.Width + s.Padding.Horizontal()
		}
		if !hasHeight {
			size.Height = content.Height + s.Padding.Vertical()
		}
	}

	b.measured = size
	b.measuredFor = available
	b.hasMeasure = true

	return size
}

func (e *BoxEngine) measureContent(b *box, inner Size) Size {
	var content Size
	flow := 0

	for _, c := range b.children {
		child := e.nodes[c]
		cs := e.measure(c, inner)

		if child.style.Display == DisplayNone || child.style.Position == Absolute {
			continue
		}

		w := cs.Width + child.style.Margin.Horizontal()
		h := cs.Height + child.style.Margin.Vertical()

		if b.style.Direction == Row {
			content.Width += w
			content.Height = max(content.Height, h)
		} else {
			content.Height += h
			content.Width = max(content.Width, w)
		}
		flow++
	}

	if flow > 1 {
		gaps := b.style.Gap * float64(flow-1)
		if b.style.Direction == Row {
			content.Width += gaps
		} else {
			content.Height += gaps
		}
	}

	return content
}

func (e *BoxEngine) place(n Node, rect Rect) {
	b := e.nodes[n]
	b.dirty = false

	s := b.style
	if s.Display == DisplayNone {
		b.rect = Rect{X: rect.X, Y: rect.Y}
		for _, c := range b.children {
			e.place(c, Rect{})
		}
		return
	}
	b.rect = rect

	inner := Size{
		Width:  max(0, rect.Width-s.Padding.Horizontal()),
		Height: max(0, rect.Height-s.Padding.Vertical()),
	}

	row := s.Direction == Row

	type flowItem struct {
		node  Node
		size  Size
		style Style
	}

	var items []flowItem
	used, grow := 0.0, 0.0

	for _, c := range b.children {
		child := e.nodes[c]
		cs := e.measure(c, inner)

		switch {
		case child.style.Display == DisplayNone:
			e.place(c, Rect{})
		case child.style.Position == Absolute:
			m := child.style.Margin
			e.place(c, Rect{
				X:      s.Padding.Left + child.style.Left + m.Left,
				Y:      s.Padding.Top + child.style.Top + m.Top,
				Width:  cs.Width,
				Height: cs.Height,
			})
		default:
			items = append(items, flowItem{c, cs, child.style})
			if row {
				used += cs.Width + child.style.Margin.Horizontal()
			} else {
				used += cs.Height + child.style.Margin.Vertical()
			}
			grow += child.style.Grow
		}
	}

	if len(items) > 1 {
		used += s.Gap * float64(len(items)-1)
	}

	free := inner.Height - used
	if row {
		free = inner.Width - used
	}

	cursor := s.Padding.Top
	if row {
		cursor = s.Padding.Left
	}

	for _, it := range items {
		size, m := it.size, it.style.Margin

		if free > 0 && grow > 0 && it.style.Grow > 0 {
			extra := free * it.style.Grow / grow
			if row {
				size.Width += extra
			} else {
				size.Height += extra
			}
		}

		var r Rect
		if row {
			r = Rect{X: cursor + m.Left, Y: s.Padding.Top + m.Top, Width: size.Width, Height: size.Height}
			cursor += m.Horizontal() + size.Width + s.Gap
		} else {
			r = Rect{X: s.Padding.Left + m.Left, Y: cursor + m.Top, Width: size.Width, Height: size.Height}
			cursor += m.Vertical() + size.Height + s.Gap
		}

		e.place(it.node, r)
	}
}

func without(nodes []Node, n Node) []Node {
	out := nodes[:0]
	for _, other := range nodes {
		if other != n {
			out = append(out, other)
		}
	}
	return out
}
