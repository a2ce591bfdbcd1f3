package sigui

import (
	"reflect"

	"github.com/AnatoleLucet/sigui/internal"
)

// ProvideContext stores value on the current scope, keyed by its type.
func ProvideContext[T any](value T) {
	internal.GetRuntime().Provide(reflect.TypeFor[T](), value)
}

// UseContext returns the closest value of type T provided by the current
// scope or one of its ancestors.
func UseContext[T any]() (T, bool) {
	v, ok := internal.GetRuntime().Lookup(reflect.TypeFor[T]())
	if !ok {
		var zero T
		return zero, false
	}

	return v.(T), true
}

// ProvideContextOn is ProvideContext targeting s instead of the current scope.
func ProvideContextOn[T any](s *Scope, value T) {
	s.rt.AssertOwner(1)
	s.rt.ProvideOn(s.id, reflect.TypeFor[T](), value)
}
