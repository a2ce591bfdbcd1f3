// Package layout computes the boxes of a tree of nodes.
package layout

// Node is an engine-owned handle. The zero Node is never handed out.
type Node uint64

// Engine places a tree of styled nodes. Sizes are measured bottom-up, then
// boxes are placed top-down. Layout rects are relative to the parent's
// border box.
type Engine interface {
	NewNode() Node
	Remove(n Node)

	SetStyle(n Node, s Style)
	SetChildren(n Node, children []Node)

	// MarkDirty invalidates the cached measurement of n and its ancestors.
	MarkDirty(n Node)
	Dirty(n Node) bool

	Compute(root Node, available Size)
	Layout(n Node) Rect
}
