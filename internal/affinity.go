package internal

import "fmt"

// AffinityError is raised when a goroutine touches a handle owned by another
// goroutine's runtime.
type AffinityError struct {
	Goroutine int64
	Caller    Location

	Owner  int64
	Origin Location
}

func (e *AffinityError) Error() string {
	return fmt.Sprintf(
		"sigui: handle used from goroutine %d at %s, but it belongs to goroutine %d whose runtime was created at %s",
		e.Goroutine, e.Caller, e.Owner, e.Origin,
	)
}

// AssertOwner panics with an *AffinityError when the calling goroutine does
// not own r. skip is the number of frames between the caller to report and AssertOwner.
func (r *Runtime) AssertOwner(skip int) {
	if !CurrentOptions().ThreadAffinity {
		return
	}

	if g := getGID(); g != r.gid {
		panic(&AffinityError{
			Goroutine: g,
			Caller:    Caller(skip + 1),
			Owner:     r.gid,
			Origin:    r.origin,
		})
	}
}

