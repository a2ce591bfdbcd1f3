package internal

import "slices"

// observer is a node that records the sources it reads while running.
type observer interface {
	observerId() Id
	addSource(src Source)
}

// Source is anything an observer can depend on.
type Source interface {
	sourceId() Id
	unsubscribe(r *Runtime, sub Id)
}

// subscribers is an insertion-ordered set of observer ids.
type subscribers struct {
	ids []Id
	set map[Id]struct{}
}

func (s *subscribers) add(id Id) bool {
	if _, ok := s.set[id]; ok {
		return false
	}

	if s.set == nil {
		s.set = make(map[Id]struct{})
	}
	s.set[id] = struct{}{}
	s.ids = append(s.ids, id)

	return true
}

func (s *subscribers) remove(id Id) {
	if _, ok := s.set[id]; !ok {
		return
	}

	delete(s.set, id)
	s.ids = slices.DeleteFunc(s.ids, func(other Id) bool { return other == id })
}

func (s *subscribers) snapshot() []Id {
	return slices.Clone(s.ids)
}

func (s *subscribers) len() int {
	return len(s.ids)
}

func (s *subscribers) clear() {
	s.ids = nil
	s.set = nil
}

// Signal is the type-erased storage of a reactive value and its subscribers.
type Signal struct {
	id   Id
	rt   *Runtime
	cell *Cell
	subs subscribers

	disposed bool
}

// NewSignal creates a signal owned by the current scope.
// value must be a pointer to the actual value.
func (r *Runtime) NewSignal(value any) *Signal {
	s := &Signal{
		id:   NextId(),
		rt:   r,
		cell: NewCell(value),
	}

	r.signals[s.id] = s
	r.addChild(r.tracker.Scope(), s.id)

	return s
}

func (s *Signal) Id() Id               { return s.id }
func (s *Signal) Runtime() *Runtime    { return s.rt }
func (s *Signal) Cell() *Cell          { return s.cell }
func (s *Signal) Disposed() bool       { return s.disposed }
func (s *Signal) SubscriberCount() int { return s.subs.len() }

// Track subscribes the running observer, if any, to this signal.
func (s *Signal) Track() {
	if s.disposed {
		return
	}

	obs := s.rt.tracker.Observer()
	if obs == nil {
		return
	}

	s.subs.add(obs.observerId())
	obs.addSource(s)
}

// Notify schedules every subscriber. Subscribers that no longer exist are pruned.
func (s *Signal) Notify() {
	if s.disposed {
		return
	}

	for _, id := range s.subs.snapshot() {
		if !s.rt.touch(id) {
			s.subs.remove(id)
		}
	}

	s.rt.Schedule()
}

func (s *Signal) sourceId() Id { return s.id }

func (s *Signal) unsubscribe(_ *Runtime, sub Id) {
	s.subs.remove(sub)
}
