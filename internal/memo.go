package internal

import (
	"fmt"
	"maps"
	"slices"
)

type memoState uint8

const (
	memoClean memoState = iota
	// an upstream memo is dirty, the value may or may not have changed
	memoCheck
	// a direct source changed
	memoDirty
)

// Memo is a signal whose value is derived from other sources.
// It is recomputed lazily: an upstream change only marks it dirty.
type Memo struct {
	*Signal

	// compute runs the user function, stores the result in the cell
	// and reports whether the stored value changed
	compute func(c *Cell) bool

	state     memoState
	computing bool

	sources map[Id]Source
}

// NewMemo creates a memo under the current scope and computes it once.
func (r *Runtime) NewMemo(value any, compute func(c *Cell) bool) *Memo {
	m := &Memo{
		Signal:  r.NewSignal(value),
		compute: compute,
		sources: make(map[Id]Source),
	}
	r.memos[m.id] = m

	r.recompute(m)

	return m
}

func (m *Memo) Dirty() bool { return m.state != memoClean }

// Resolve brings the memo up to date and notifies its subscribers when the
// value changed. A memo that was only possibly changed first resolves its
// upstream memos, and recomputes only if one of them actually changed.
func (m *Memo) Resolve() {
	if m.disposed || m.state == memoClean {
		return
	}

	r := m.rt

	if m.state == memoCheck {
		for _, id := range slices.Sorted(maps.Keys(m.sources)) {
			if src, ok := r.memos[id]; ok {
				src.Resolve()
			}
			if m.state != memoCheck {
				break
			}
		}
	}

	switch m.state {
	case memoClean:
		return
	case memoCheck:
		m.state = memoClean
		return
	}

	if r.recompute(m) {
		m.Notify()
	}
}

func (m *Memo) observerId() Id { return m.id }

func (m *Memo) addSource(src Source) {
	m.sources[src.sourceId()] = src
}

// mark raises the memo to state s. Going out of clean marks every
// downstream memo as possibly changed, and queues a check job for each memo
// read by an effect. Chains nobody observes stay marked until they are read.
func (r *Runtime) mark(m *Memo, s memoState) {
	if m.state >= s {
		return
	}

	prev := m.state
	m.state = s
	if prev != memoClean {
		return
	}

	for _, id := range m.subs.snapshot() {
		if sub, ok := r.memos[id]; ok {
			r.mark(sub, memoCheck)
			continue
		}
		if _, ok := r.effects[id]; ok {
			r.jobs.Push(m.id)
		}
	}
}

func (r *Runtime) recompute(m *Memo) bool {
	if m.computing {
		panic(fmt.Errorf("sigui: memo %s read itself while computing", m.id))
	}

	r.disposeChildren(m.id)
	r.clearSources(m.id, m.sources)

	m.computing = true
	defer func() { m.computing = false }()

	var changed bool
	r.tracker.RunWithObserver(m, m.id, func() {
		changed = m.compute(m.cell)
	})
	m.state = memoClean

	recorder().MemoRecompute()

	return changed
}
