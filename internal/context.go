package internal

import "reflect"

// Provide stores value under key on the current scope.
func (r *Runtime) Provide(key reflect.Type, value any) {
	r.ProvideOn(r.CurrentScope(), key, value)
}

func (r *Runtime) ProvideOn(scope Id, key reflect.Type, value any) {
	values, ok := r.contexts[scope]
	if !ok {
		values = make(map[reflect.Type]any)
		r.contexts[scope] = values
	}

	values[key] = value
}

// Lookup walks from the current scope up to its root and returns the
// closest value provided under key.
func (r *Runtime) Lookup(key reflect.Type) (any, bool) {
	return r.LookupFrom(r.CurrentScope(), key)
}

func (r *Runtime) LookupFrom(scope Id, key reflect.Type) (any, bool) {
	for s, ok := scope, true; ok; s, ok = r.parents[s] {
		if v, found := r.contexts[s][key]; found {
			return v, true
		}
	}

	return nil, false
}
