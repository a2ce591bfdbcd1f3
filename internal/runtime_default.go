//go:build !wasm

package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

var runtimes sync.Map

// GetRuntime returns the runtime of the calling goroutine, creating it on first use.
func GetRuntime() *Runtime {
	gid := getGID()

	if r, ok := runtimes.Load(gid); ok {
		return r.(*Runtime)
	}

	r := NewRuntime(gid, Caller(2))
	runtimes.Store(gid, r)
	return r
}

// LookupRuntime returns the runtime of the calling goroutine without creating one.
func LookupRuntime() (*Runtime, bool) {
	r, ok := runtimes.Load(getGID())
	if !ok {
		return nil, false
	}

	return r.(*Runtime), true
}

// DropRuntime forgets the runtime of the calling goroutine.
func DropRuntime() {
	runtimes.Delete(getGID())
}

func getGID() int64 {
	return goid.Get()
}
