package internal

import (
	"reflect"
	"sync"
)

// Runtime is the reactive state of one goroutine. It is never shared:
// every method except Post and SetWaker must be called
// from the goroutine that created it.
type Runtime struct {
	gid    int64
	origin Location

	tracker   *Tracker
	batcher   *Batcher
	scheduler *Scheduler
	jobs      *JobQueue
	settled   *SettledQueue

	root     Id
	scopes   map[Id]struct{}
	parents  map[Id]Id
	children map[Id][]Id
	cleanups map[Id][]func()
	catchers map[Id][]func(any)
	contexts map[Id]map[reflect.Type]any

	signals map[Id]*Signal
	effects map[Id]*Effect
	memos   map[Id]*Memo

	inbox struct {
		mu    sync.Mutex
		ids   []Id
		waker func()
	}

	patcher func(fingerprint uintptr) uintptr
}

func NewRuntime(gid int64, origin Location) *Runtime {
	r := &Runtime{
		gid:       gid,
		origin:    origin,
		batcher:   NewBatcher(),
		scheduler: NewScheduler(),
		jobs:      NewJobQueue(),
		settled:   NewSettledQueue(),
		scopes:    make(map[Id]struct{}),
		parents:   make(map[Id]Id),
		children:  make(map[Id][]Id),
		cleanups:  make(map[Id][]func()),
		catchers:  make(map[Id][]func(any)),
		contexts:  make(map[Id]map[reflect.Type]any),
		signals:   make(map[Id]*Signal),
		effects:   make(map[Id]*Effect),
		memos:     make(map[Id]*Memo),
	}

	r.root = r.NewScope(0)
	r.tracker = NewTracker(r.root)

	return r
}

func (r *Runtime) Goroutine() int64 { return r.gid }

func (r *Runtime) Untrack(fn func()) {
	r.tracker.RunUntracked(fn)
}

// OnSettled runs fn once the current (or next) flush has drained its queue.
func (r *Runtime) OnSettled(fn func()) {
	r.settled.Enqueue(fn)
}

// Schedule flushes the job queue unless a batch or a flush is in progress,
// in which case the pending jobs are picked up by that one.
func (r *Runtime) Schedule() {
	if r.batcher.IsBatching() {
		r.batcher.Defer()
		return
	}
	if r.scheduler.Running() {
		return
	}

	r.Flush()
}

func (r *Runtime) Flush() {
	ran := r.scheduler.Run(func() {
		for {
			id, ok := r.jobs.Pop()
			if !ok {
				return
			}

			r.runJob(id)
		}
	})

	if ran {
		recorder().Flush()
		r.settled.Run()
	}
}

// Pending returns the number of queued jobs.
func (r *Runtime) Pending() int {
	return r.jobs.Len()
}

// touch queues whatever has to happen for observer id after one of its
// sources changed. It reports false when id no longer exists.
func (r *Runtime) touch(id Id) bool {
	if m, ok := r.memos[id]; ok {
		r.mark(m, memoDirty)
		return true
	}

	if e, ok := r.effects[id]; ok {
		if !e.running {
			r.jobs.Push(id)
		}
		return true
	}

	return false
}

func (r *Runtime) runJob(id Id) {
	if m, ok := r.memos[id]; ok {
		m.Resolve()
		return
	}

	if e, ok := r.effects[id]; ok {
		r.runEffect(e)
	}
}
