package internal

import "fmt"

// BorrowError is the panic value raised when a signal value is borrowed in a
// way that conflicts with an outstanding borrow.
type BorrowError struct {
	// Holder is where the outstanding borrow was taken, zero if unknown.
	Holder Location
	// Attempt is where the conflicting borrow was requested, zero if unknown.
	Attempt Location
	// Exclusive reports whether the rejected borrow was a write.
	Exclusive bool
}

func (e *BorrowError) Error() string {
	kind := "read"
	if e.Exclusive {
		kind = "write"
	}

	if e.Holder.IsZero() {
		return fmt.Sprintf("sigui: borrow conflict: signal value already borrowed (%s attempted at %s)", kind, e.Attempt)
	}

	return fmt.Sprintf("sigui: borrow conflict: signal value already borrowed at %s (%s attempted at %s)", e.Holder, kind, e.Attempt)
}

// Cell stores a signal value behind a dynamic single-writer/multiple-reader check.
// The value is always a pointer (*T) so writers can mutate it in place.
type Cell struct {
	value any

	shared    int
	exclusive bool

	// where the first outstanding borrow was taken
	holder Location
}

func NewCell(value any) *Cell {
	return &Cell{value: value}
}

// Borrow takes a shared borrow. It panics if the value is being written.
func (c *Cell) Borrow(at Location) any {
	if c.exclusive {
		panic(&BorrowError{Holder: c.holder, Attempt: at})
	}

	if c.shared == 0 {
		c.holder = at
	}
	c.shared++

	return c.value
}

func (c *Cell) Release() {
	if c.shared == 0 {
		return
	}

	c.shared--
	if c.shared == 0 && !c.exclusive {
		c.holder = Location{}
	}
}

// BorrowMut takes the exclusive borrow. It panics on any outstanding borrow.
func (c *Cell) BorrowMut(at Location) any {
	if c.exclusive || c.shared > 0 {
		panic(&BorrowError{Holder: c.holder, Attempt: at, Exclusive: true})
	}

	c.exclusive = true
	c.holder = at

	return c.value
}

func (c *Cell) ReleaseMut() {
	c.exclusive = false
	if c.shared == 0 {
		c.holder = Location{}
	}
}

// Borrowed reports whether any borrow is outstanding.
func (c *Cell) Borrowed() bool {
	return c.exclusive || c.shared > 0
}
