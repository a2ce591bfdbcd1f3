package internal

type Scheduler struct {
	// incremented each time the scheduler is flushed
	clock int

	running bool
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		clock:   0,
		running: false,
	}
}

// Run executes fn unless a run is already in progress, and reports whether it did.
func (s *Scheduler) Run(fn func()) bool {
	if s.running {
		return false
	}

	s.running = true
	defer func() {
		s.clock++
		s.running = false
	}()

	fn()

	return true
}

func (s *Scheduler) Running() bool {
	return s.running
}

func (s *Scheduler) Time() int {
	return s.clock
}
