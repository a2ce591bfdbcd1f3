package internal

// Batcher defers flushes while a batch is open. Nested batches act as one:
// only closing the outermost one flushes.
type Batcher struct {
	depth int

	// flushes skipped since the outermost batch opened
	deferred int
}

func NewBatcher() *Batcher {
	return &Batcher{}
}

func (b *Batcher) IsBatching() bool {
	return b.depth > 0
}

// Defer records a flush that was skipped because a batch is open.
func (b *Batcher) Defer() {
	b.deferred++
}

// Batch runs fn. Closing the outermost batch calls flush if a flush was
// deferred meanwhile. A panicking fn closes its batch without flushing, the
// queued work waits for the next flush.
func (b *Batcher) Batch(fn, flush func()) {
	b.depth++

	completed := false
	defer func() {
		b.depth--
		if b.depth > 0 {
			return
		}

		deferred := b.deferred
		b.deferred = 0

		if completed && deferred > 0 && flush != nil {
			flush()
		}
	}()

	fn()
	completed = true
}

// Batch runs fn with notifications deferred until the outermost batch returns.
func (r *Runtime) Batch(fn func()) {
	r.batcher.Batch(fn, r.Flush)
}
