package view

import (
	"slices"

	"github.com/AnatoleLucet/sigui/layout"
	"github.com/AnatoleLucet/sigui/style"
)

// LayoutRect returns the last computed box of id, relative to its parent.
func (t *Tree) LayoutRect(id ID) layout.Rect {
	t.rt.AssertOwner(1)
	return t.mustNode(id).rect
}

// VisualTransform returns the cached local to window transform of id.
func (t *Tree) VisualTransform(id ID) layout.Affine {
	t.rt.AssertOwner(1)
	return t.mustNode(id).transform
}

// ComputedStyle returns the style shown for id, nil before its first style pass.
func (t *Tree) ComputedStyle(id ID) *style.Computed {
	t.rt.AssertOwner(1)
	return t.mustNode(id).computed
}

func (t *Tree) Interaction(id ID) style.Selector {
	t.rt.AssertOwner(1)
	return t.mustNode(id).interaction
}

func (t *Tree) Classes(id ID) []style.Class {
	t.rt.AssertOwner(1)
	return slices.Clone(t.mustNode(id).classes)
}
