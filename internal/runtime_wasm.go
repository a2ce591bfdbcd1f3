//go:build wasm

package internal

import "sync"

var mu sync.Mutex
var globalRuntime *Runtime

func GetRuntime() *Runtime {
	mu.Lock()
	defer mu.Unlock()

	if globalRuntime == nil {
		globalRuntime = NewRuntime(0, Caller(2))
	}

	return globalRuntime
}

func LookupRuntime() (*Runtime, bool) {
	mu.Lock()
	defer mu.Unlock()

	return globalRuntime, globalRuntime != nil
}

func DropRuntime() {
	mu.Lock()
	defer mu.Unlock()

	globalRuntime = nil
}

// wasm is single threaded: everything runs on the same logical goroutine
func getGID() int64 {
	return 0
}
