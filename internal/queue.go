package internal

// JobQueue is a FIFO of observer ids. An id already waiting is not queued twice,
// which is what gives "at most one run per flush".
type JobQueue struct {
	ids     []Id
	pending map[Id]struct{}
}

func NewJobQueue() *JobQueue {
	return &JobQueue{
		ids:     make([]Id, 0),
		pending: make(map[Id]struct{}),
	}
}

func (q *JobQueue) Push(id Id) bool {
	if _, ok := q.pending[id]; ok {
		return false
	}

	q.pending[id] = struct{}{}
	q.ids = append(q.ids, id)

	return true
}

func (q *JobQueue) Pop() (Id, bool) {
	if len(q.ids) == 0 {
		return 0, false
	}

	id := q.ids[0]
	q.ids = q.ids[1:]
	delete(q.pending, id)

	if len(q.ids) == 0 {
		q.ids = q.ids[:0:0]
	}

	return id, true
}

func (q *JobQueue) Len() int {
	return len(q.ids)
}

type SettledQueue struct {
	callbacks []func()
}

func NewSettledQueue() *SettledQueue {
	return &SettledQueue{
		callbacks: make([]func(), 0),
	}
}

func (q *SettledQueue) Enqueue(fn func()) {
	q.callbacks = append(q.callbacks, fn)
}

func (q *SettledQueue) Run() {
	callbacks := q.callbacks
	q.callbacks = nil

	for _, cb := range callbacks {
		cb()
	}
}
