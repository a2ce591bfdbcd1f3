package sigui

import (
	"fmt"
	"testing"
)

// fresh gives the test goroutine its own runtime and drops it afterwards.
func fresh(t *testing.T) {
	t.Helper()
	t.Cleanup(Shutdown)
}

func recovered(fn func()) (v any) {
	defer func() { v = recover() }()
	fn()
	return nil
}

func ExampleSignal() {
	defer Shutdown()

	count := NewSignal(0)
	fmt.Println(count.Get())

	count.Set(10)
	fmt.Println(count.Get())

	// Output:
	// 0
	// 10
}

func ExampleNewMemo() {
	defer Shutdown()

	count := NewSignal(1)
	double := NewMemo(func(*int) int {
		fmt.Println("doubling")
		return count.Get() * 2
	})

	fmt.Println(double.Get())

	count.Set(10)
	fmt.Println("set")
	fmt.Println(double.Get())

	// Output:
	// doubling
	// 2
	// set
	// doubling
	// 20
}
