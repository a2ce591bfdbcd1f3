package internal

// Effect is a closure re-run whenever one of the sources it read during its
// last run changes. Its id doubles as the scope of everything created while it runs.
type Effect struct {
	id Id
	rt *Runtime
	fn func()

	// fingerprint of fn, compared by Hotpatch
	fingerprint uintptr

	// re-entrancy guard
	running bool

	sources map[Id]Source
}

// NewEffect registers fn under the current scope and runs it immediately.
func (r *Runtime) NewEffect(fn func(), fingerprint uintptr) *Effect {
	e := r.NewIdleEffect(fn, fingerprint)
	r.runEffect(e)

	return e
}

// NewIdleEffect registers fn like NewEffect without running it. Its sources
// are recorded by Observe, and fn first runs once one of them changes.
func (r *Runtime) NewIdleEffect(fn func(), fingerprint uintptr) *Effect {
	e := &Effect{
		id:          NextId(),
		rt:          r,
		fn:          fn,
		fingerprint: fingerprint,
		sources:     make(map[Id]Source),
	}

	r.effects[e.id] = e
	r.addChild(r.tracker.Scope(), e.id)

	return e
}

// Observe replaces the sources of e with what fn reads. Everything created
// by a previous run or Observe call is disposed first.
func (e *Effect) Observe(fn func()) {
	r := e.rt
	if _, ok := r.effects[e.id]; !ok {
		r.tracker.RunUntracked(fn)
		return
	}

	r.disposeChildren(e.id)
	r.clearSources(e.id, e.sources)

	r.tracker.RunWithObserver(e, e.id, fn)
}

func (e *Effect) Id() Id            { return e.id }
func (e *Effect) Runtime() *Runtime { return e.rt }
func (e *Effect) Running() bool     { return e.running }
func (e *Effect) Disposed() bool {
	_, ok := e.rt.effects[e.id]
	return !ok
}

func (e *Effect) observerId() Id { return e.id }

func (e *Effect) addSource(src Source) {
	e.sources[src.sourceId()] = src
}

func (r *Runtime) runEffect(e *Effect) {
	if e.running {
		return
	}
	if _, ok := r.effects[e.id]; !ok {
		return
	}

	// what the previous run created goes away, then dependencies are tracked from scratch
	r.disposeChildren(e.id)
	r.clearSources(e.id, e.sources)

	e.running = true
	defer func() { e.running = false }()

	recorder().EffectRun()

	r.tracker.RunWithObserver(e, e.id, func() {
		r.guard(e.id, e.fn)
	})
}

func (r *Runtime) clearSources(sub Id, sources map[Id]Source) {
	for id, src := range sources {
		src.unsubscribe(r, sub)
		delete(sources, id)
	}
}
