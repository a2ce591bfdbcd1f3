package internal

// Tracker holds the ambient state of a runtime: which observer records
// dependencies and which scope owns newly created nodes.
// Every Run* method restores the previous state on return, panics included.
type Tracker struct {
	tracking bool

	currentObserver observer // for reactive dependency tracking
	currentScope    Id       // for lifecycle/cleanup tracking
}

func NewTracker(root Id) *Tracker {
	return &Tracker{
		tracking:     true,
		currentScope: root,
	}
}

func (t *Tracker) Scope() Id {
	return t.currentScope
}

// Observer returns the observer reads should be attributed to, or nil.
func (t *Tracker) Observer() observer {
	if !t.tracking {
		return nil
	}

	return t.currentObserver
}

func (t *Tracker) RunWithScope(scope Id, fn func()) {
	prev := t.currentScope
	t.currentScope = scope
	defer func() { t.currentScope = prev }()

	fn()
}

func (t *Tracker) RunWithObserver(o observer, scope Id, fn func()) {
	prevScope := t.currentScope
	prevObserver := t.currentObserver
	prevTracking := t.tracking

	t.currentScope = scope
	t.currentObserver = o
	t.tracking = true

	defer func() {
		t.currentScope = prevScope
		t.currentObserver = prevObserver
		t.tracking = prevTracking
	}()

	fn()
}

func (t *Tracker) RunUntracked(fn func()) {
	prev := t.tracking
	t.tracking = false
	defer func() { t.tracking = prev }()

	fn()
}
