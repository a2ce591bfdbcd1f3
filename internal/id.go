package internal

import (
	"fmt"
	"runtime"
	"sync/atomic"
)

// Id identifies a scope, signal, memo or effect.
// Ids come from a process-wide counter and are never handed out twice.
type Id uint64

var idCounter atomic.Uint64

// NextId returns an id that was never returned before.
func NextId() Id {
	return Id(idCounter.Add(1))
}

func (id Id) String() string {
	return fmt.Sprintf("#%d", uint64(id))
}

// Location is a source position recorded for diagnostics.
type Location struct {
	File string
	Line int
}

func (l Location) IsZero() bool {
	return l.File == "" && l.Line == 0
}

func (l Location) String() string {
	if l.IsZero() {
		return "<unknown>"
	}

	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// Caller returns the location skip frames above the function calling Caller.
func Caller(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{}
	}

	return Location{File: file, Line: line}
}

// CallSite is like Caller but returns a zero Location when borrow tracking is off,
// so hot paths don't pay for stack walking.
func CallSite(skip int) Location {
	if !CurrentOptions().BorrowTracking {
		return Location{}
	}

	return Caller(skip + 1)
}
