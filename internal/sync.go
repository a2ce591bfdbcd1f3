package internal

import (
	"slices"
	"sync"
)

// SetWaker installs fn to be called whenever another goroutine posts work to r.
// fn runs on the posting goroutine and must not touch r itself.
func (r *Runtime) SetWaker(fn func()) {
	r.inbox.mu.Lock()
	defer r.inbox.mu.Unlock()

	r.inbox.waker = fn
}

// Post queues observer ids for the owning goroutine. Safe from any goroutine.
func (r *Runtime) Post(ids ...Id) {
	r.inbox.mu.Lock()
	r.inbox.ids = append(r.inbox.ids, ids...)
	waker := r.inbox.waker
	r.inbox.mu.Unlock()

	if waker != nil {
		waker()
	}
}

// RunPending runs what other goroutines posted since the last call and
// returns the number of notifications that were processed.
func (r *Runtime) RunPending() int {
	r.inbox.mu.Lock()
	ids := r.inbox.ids
	r.inbox.ids = nil
	r.inbox.mu.Unlock()

	if len(ids) == 0 {
		return 0
	}

	for _, id := range ids {
		r.touch(id)
	}
	r.Schedule()

	return len(ids)
}

type syncSubscriber struct {
	rt *Runtime
	id Id
}

// SyncSignal is a signal that can be read and written from any goroutine.
// Subscribers on the writing goroutine run synchronously, others are posted
// to their runtime and run on its next RunPending.
type SyncSignal struct {
	id Id

	mu    sync.RWMutex
	value any

	subsMu sync.Mutex
	subs   []syncSubscriber
}

func NewSyncSignal(value any) *SyncSignal {
	return &SyncSignal{
		id:    NextId(),
		value: value,
	}
}

func (s *SyncSignal) Id() Id { return s.id }

// Read calls fn with the value under the read lock.
func (s *SyncSignal) Read(fn func(value any)) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fn(s.value)
}

// Write calls fn with the value under the write lock.
func (s *SyncSignal) Write(fn func(value any)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(s.value)
}

// Track subscribes the observer running on the calling goroutine, if any.
func (s *SyncSignal) Track() {
	rt, ok := LookupRuntime()
	if !ok {
		return
	}

	obs := rt.tracker.Observer()
	if obs == nil {
		return
	}

	s.subsMu.Lock()
	sub := syncSubscriber{rt: rt, id: obs.observerId()}
	if !slices.Contains(s.subs, sub) {
		s.subs = append(s.subs, sub)
	}
	s.subsMu.Unlock()

	obs.addSource(s)
}

func (s *SyncSignal) SubscriberCount() int {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	return len(s.subs)
}

func (s *SyncSignal) Notify() {
	s.subsMu.Lock()
	subs := slices.Clone(s.subs)
	s.subsMu.Unlock()

	gid := getGID()

	var local *Runtime
	for _, sub := range subs {
		if sub.rt.gid != gid {
			sub.rt.Post(sub.id)
			continue
		}

		local = sub.rt
		if !sub.rt.touch(sub.id) {
			s.unsubscribe(sub.rt, sub.id)
		}
	}

	if local != nil {
		local.Schedule()
	}
}

func (s *SyncSignal) sourceId() Id { return s.id }

func (s *SyncSignal) unsubscribe(r *Runtime, sub Id) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	s.subs = slices.DeleteFunc(s.subs, func(other syncSubscriber) bool {
		return other.rt == r && other.id == sub
	})
}
