package sigui

// DerivedSignal is a read/write view of a signal through a pair of
// conversions. Reads go through get, writes go through set and land on the
// source, so everything tracking the source sees them.
type DerivedSignal[T, O any] struct {
	source *Signal[T]
	get    func(T) O
	set    func(O) T
}

func NewDerivedSignal[T, O any](source *Signal[T], get func(T) O, set func(O) T) *DerivedSignal[T, O] {
	return &DerivedSignal[T, O]{
		source: source,
		get:    get,
		set:    set,
	}
}

// Get converts the source value, tracking the source.
func (d *DerivedSignal[T, O]) Get() O {
	var out O
	d.source.With(func(v *T) { out = d.get(*v) })
	return out
}

func (d *DerivedSignal[T, O]) GetUntracked() O {
	var out O
	d.source.WithUntracked(func(v *T) { out = d.get(*v) })
	return out
}

func (d *DerivedSignal[T, O]) TryGet() (O, bool) {
	v, ok := d.source.TryGet()
	if !ok {
		var zero O
		return zero, false
	}

	return d.get(v), true
}

// Set converts v back and writes it to the source.
func (d *DerivedSignal[T, O]) Set(v O) {
	d.source.Set(d.set(v))
}

func (d *DerivedSignal[T, O]) TrySet(v O) bool {
	return d.source.TrySet(d.set(v))
}

// Update converts the source value, lets fn modify it and writes the
// result back.
func (d *DerivedSignal[T, O]) Update(fn func(v *O)) {
	d.source.Update(func(v *T) {
		o := d.get(*v)
		fn(&o)
		*v = d.set(o)
	})
}

func (d *DerivedSignal[T, O]) Track() {
	d.source.Track()
}

// Source returns the signal d reads and writes.
func (d *DerivedSignal[T, O]) Source() *Signal[T] {
	return d.source
}
