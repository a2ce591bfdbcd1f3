package sigui

import "github.com/AnatoleLucet/sigui/internal"

// Scope manages the lifecycle of the reactive nodes created within it.
type Scope struct {
	id internal.Id
	rt *internal.Runtime
}

// NewScope creates a detached scope. Nothing disposes it but an explicit Dispose.
func NewScope() *Scope {
	rt := internal.GetRuntime()

	return &Scope{
		id: rt.NewScope(0),
		rt: rt,
	}
}

// CurrentScope returns the scope new nodes are currently attached to.
func CurrentScope() *Scope {
	rt := internal.GetRuntime()

	return &Scope{
		id: rt.CurrentScope(),
		rt: rt,
	}
}

// CreateChild creates a scope disposed along with s.
func (s *Scope) CreateChild() *Scope {
	s.rt.AssertOwner(1)

	return &Scope{
		id: s.rt.NewScope(s.id),
		rt: s.rt,
	}
}

// Enter runs fn within s: each reactive node created by fn is a child of s
// and will be disposed when s is.
func (s *Scope) Enter(fn func()) {
	s.rt.AssertOwner(1)
	s.rt.RunInScope(s.id, fn)
}

// Within is Enter for functions returning a value.
func Within[T any](s *Scope, fn func() T) T {
	s.rt.AssertOwner(1)

	var result T
	s.rt.RunInScope(s.id, func() { result = fn() })
	return result
}

// Dispose the scope and all its children. Disposing twice is a no-op.
func (s *Scope) Dispose() {
	s.rt.AssertOwner(1)
	s.rt.Dispose(s.id)
}

// OnCleanup adds a function called once when the scope is disposed.
// On an already disposed scope fn runs immediately.
func (s *Scope) OnCleanup(fn func()) {
	s.rt.AssertOwner(1)
	s.rt.AddCleanup(s.id, fn)
}

// OnError adds a function called when a panic occurs within this scope or its children.
// If no error listener is registered, the panic propagates as usual.
func (s *Scope) OnError(fn func(any)) {
	s.rt.AssertOwner(1)
	s.rt.OnError(s.id, fn)
}

func (s *Scope) IsDisposed() bool {
	return !s.rt.IsAlive(s.id)
}

// Parent returns the scope owning s, if any.
func (s *Scope) Parent() (*Scope, bool) {
	p, ok := s.rt.Parent(s.id)
	if !ok {
		return nil, false
	}

	return &Scope{id: p, rt: s.rt}, true
}
