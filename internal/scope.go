package internal

import "slices"

// NewScope creates a scope. A zero parent makes it a detached root.
func (r *Runtime) NewScope(parent Id) Id {
	id := NextId()
	r.scopes[id] = struct{}{}

	if parent != 0 {
		r.addChild(parent, id)
	}

	return id
}

func (r *Runtime) Root() Id {
	return r.root
}

func (r *Runtime) CurrentScope() Id {
	return r.tracker.Scope()
}

// Parent returns the scope owning id.
func (r *Runtime) Parent(id Id) (Id, bool) {
	p, ok := r.parents[id]
	return p, ok
}

func (r *Runtime) Children(id Id) []Id {
	return slices.Clone(r.children[id])
}

// IsAlive reports whether id names a scope, signal, memo or effect that was not disposed.
func (r *Runtime) IsAlive(id Id) bool {
	if _, ok := r.scopes[id]; ok {
		return true
	}
	if _, ok := r.effects[id]; ok {
		return true
	}
	_, ok := r.signals[id]
	return ok
}

func (r *Runtime) addChild(parent, child Id) {
	r.parents[child] = parent
	r.children[parent] = append(r.children[parent], child)
}

// RunInScope runs fn with scope as the owner of everything it creates.
// Panics are handed to the scope's error handlers when it has any.
func (r *Runtime) RunInScope(scope Id, fn func()) {
	r.tracker.RunWithScope(scope, func() {
		r.guard(scope, fn)
	})
}

// OnCleanup registers fn on the current scope.
func (r *Runtime) OnCleanup(fn func()) {
	r.AddCleanup(r.CurrentScope(), fn)
}

// AddCleanup registers fn to run once when scope is disposed, or before the
// next run when scope is an effect or memo. A dead scope runs fn right away.
func (r *Runtime) AddCleanup(scope Id, fn func()) {
	if !r.IsAlive(scope) {
		fn()
		return
	}

	r.cleanups[scope] = append(r.cleanups[scope], fn)
}

// OnError registers a panic handler on scope.
func (r *Runtime) OnError(scope Id, fn func(any)) {
	r.catchers[scope] = append(r.catchers[scope], fn)
}

// Dispose tears down id and everything it owns, children first. Subscribers of
// disposed signals are detached, never run. Disposing twice is a no-op.
func (r *Runtime) Dispose(id Id) {
	if !r.IsAlive(id) {
		return
	}

	r.disposeChildren(id)

	if parent, ok := r.parents[id]; ok {
		if siblings, ok := r.children[parent]; ok {
			r.children[parent] = slices.DeleteFunc(siblings, func(other Id) bool { return other == id })
		}
		delete(r.parents, id)
	}

	delete(r.scopes, id)
	delete(r.contexts, id)
	delete(r.catchers, id)

	if e, ok := r.effects[id]; ok {
		r.clearSources(id, e.sources)
		delete(r.effects, id)
	}

	if m, ok := r.memos[id]; ok {
		r.clearSources(id, m.sources)
		delete(r.memos, id)
	}

	if s, ok := r.signals[id]; ok {
		delete(r.signals, id)
		r.detach(s)
	}

	recorder().Disposal()
}

// disposeChildren disposes what id owns (newest first) and runs its cleanups,
// leaving id itself alive.
func (r *Runtime) disposeChildren(id Id) {
	children := r.children[id]
	delete(r.children, id)

	for i := len(children) - 1; i >= 0; i-- {
		r.Dispose(children[i])
	}

	cleanups := r.cleanups[id]
	delete(r.cleanups, id)

	if len(cleanups) == 0 {
		return
	}

	r.tracker.RunUntracked(func() {
		for _, fn := range cleanups {
			fn()
		}
	})
}

func (r *Runtime) detach(s *Signal) {
	for _, sub := range s.subs.snapshot() {
		if e, ok := r.effects[sub]; ok {
			delete(e.sources, s.id)
		}
		if m, ok := r.memos[sub]; ok {
			delete(m.sources, s.id)
		}
	}

	s.subs.clear()
	s.disposed = true
}

// guard runs fn and routes a panic to the nearest error handlers found
// walking up from scope. Without handlers the panic propagates.
func (r *Runtime) guard(scope Id, fn func()) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}

		for s, ok := scope, true; ok; s, ok = r.parents[s] {
			if catchers := r.catchers[s]; len(catchers) > 0 {
				r.tracker.RunUntracked(func() {
					for _, catch := range catchers {
						catch(v)
					}
				})
				return
			}
		}

		panic(v)
	}()

	fn()
}
