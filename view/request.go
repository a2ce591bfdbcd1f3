package view

import "github.com/AnatoleLucet/sigui/style"

// RequestLayout flags id and its ancestors for the next layout pass.
// Unlike the other requests it takes effect immediately.
func (t *Tree) RequestLayout(id ID) {
	t.rt.AssertOwner(1)
	t.requestLayout(id)
}

func (t *Tree) requestLayout(id ID) {
	n := t.node(id)
	if n == nil {
		return
	}

	t.engine.MarkDirty(n.layout)
	for n != nil {
		n.flags |= flagLayout
		n = t.node(n.parent)
	}
}

// markStyleAncestors lets the style pass reach a flagged descendant of id.
func (t *Tree) markStyleAncestors(id ID) {
	for n := t.node(id); n != nil; n = t.node(n.parent) {
		if n.flags&flagStyleChildren != 0 {
			return
		}
		n.flags |= flagStyleChildren
	}
}

func (t *Tree) requestStyle(id ID, recursive bool) {
	n := t.node(id)
	if n == nil {
		return
	}

	n.flags |= flagStyle
	if recursive {
		n.flags |= flagStyleRecursive
	}
	t.markStyleAncestors(n.parent)
}

// Send queues msg for id. It is applied by the next Update of the window id
// ends up under.
func (t *Tree) Send(id ID, msg Message) {
	t.rt.AssertOwner(1)
	t.central = append(t.central, envelope{id: id, msg: msg})
}

func (t *Tree) RequestStyle(id ID) {
	t.rt.AssertOwner(1)
	t.central = append(t.central, envelope{id, RequestStyle{}})
}

// RequestStyleRecursive restyles id and its whole subtree.
func (t *Tree) RequestStyleRecursive(id ID) {
	t.rt.AssertOwner(1)
	t.central = append(t.central, envelope{id, RequestStyle{Recursive: true}})
}

func (t *Tree) RequestPaint(id ID) {
	t.rt.AssertOwner(1)
	t.central = append(t.central, envelope{id, RequestPaint{}})
}

// RequestAll requests layout, style and paint for id.
func (t *Tree) RequestAll(id ID) {
	t.rt.AssertOwner(1)
	t.requestLayout(id)
	t.central = append(t.central, envelope{id, RequestStyle{}}, envelope{id, RequestPaint{}})
}

// UpdateState hands payload to the view of id during the next Update.
func (t *Tree) UpdateState(id ID, payload any) {
	t.rt.AssertOwner(1)
	t.central = append(t.central, envelope{id, State{Payload: payload}})
}

func (t *Tree) RequestFocus(id ID, visible bool) {
	t.rt.AssertOwner(1)
	t.central = append(t.central, envelope{id, Focus{Visible: visible}})
}

func (t *Tree) ClearFocus(id ID) {
	t.rt.AssertOwner(1)
	t.central = append(t.central, envelope{id, ClearFocus{}})
}

func (t *Tree) RequestActive(id ID) {
	t.rt.AssertOwner(1)
	t.central = append(t.central, envelope{id, Active{}})
}

func (t *Tree) ClearActive(id ID) {
	t.rt.AssertOwner(1)
	t.central = append(t.central, envelope{id, ClearActive{}})
}

func (t *Tree) SetDisabled(id ID, disabled bool) {
	t.rt.AssertOwner(1)
	t.central = append(t.central, envelope{id, SetDisabled{Disabled: disabled}})
}

func (t *Tree) SetSelected(id ID, selected bool) {
	t.rt.AssertOwner(1)
	t.central = append(t.central, envelope{id, SetSelected{Selected: selected}})
}

// SetStyle replaces the inline style of id.
func (t *Tree) SetStyle(id ID, s *style.Style) {
	t.rt.AssertOwner(1)
	t.central = append(t.central, envelope{id, SetStyle{Style: s}})
}

func (t *Tree) AddClass(id ID, c style.Class) {
	t.rt.AssertOwner(1)
	t.central = append(t.central, envelope{id, AddClass{Class: c}})
}

func (t *Tree) RemoveClass(id ID, c style.Class) {
	t.rt.AssertOwner(1)
	t.central = append(t.central, envelope{id, RemoveClass{Class: c}})
}

// Pending returns the number of messages not yet routed to a window.
func (t *Tree) Pending() int {
	return len(t.central)
}
