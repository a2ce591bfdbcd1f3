package view

import "fmt"

// ID identifies a view in a Tree. Slots are reused once a view is removed,
// the generation tells a stale ID apart from the slot's new occupant.
// The zero ID never names a view.
type ID struct {
	index uint32
	gen   uint32
}

func (id ID) IsZero() bool { return id.gen == 0 }

func (id ID) String() string {
	if id.IsZero() {
		return "view(none)"
	}

	return fmt.Sprintf("view(%d@%d)", id.index, id.gen)
}

type slot struct {
	gen  uint32
	node *node
}

type slots struct {
	entries []slot
	free    []uint32
	len     int
}

func (s *slots) insert(n *node) ID {
	var index uint32
	if k := len(s.free); k > 0 {
		index = s.free[k-1]
		s.free = s.free[:k-1]
	} else {
		index = uint32(len(s.entries))
		s.entries = append(s.entries, slot{})
	}

	e := &s.entries[index]
	e.gen++
	e.node = n
	s.len++

	return ID{index: index, gen: e.gen}
}

func (s *slots) get(id ID) *node {
	if id.IsZero() || int(id.index) >= len(s.entries) {
		return nil
	}

	e := s.entries[id.index]
	if e.gen != id.gen {
		return nil
	}
	return e.node
}

func (s *slots) remove(id ID) bool {
	if s.get(id) == nil {
		return false
	}

	e := &s.entries[id.index]
	e.node = nil
	// bumped again by the next insert, so the freed slot never matches id
	e.gen++
	s.free = append(s.free, id.index)
	s.len--

	return true
}
