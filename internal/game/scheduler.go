package game

// scheduler runs callbacks after a number of ticks. It replaces sleeping:
// everything stays on the tick clock.
type scheduler struct {
	pending []scheduled
}

type scheduled struct {
	at uint64
	fn func()
}

// after queues fn to run on tick now+ticks.
func (s *scheduler) after(now uint64, ticks int, fn func()) {
	if ticks < 1 {
		ticks = 1
	}
	s.pending = append(s.pending, scheduled{at: now + uint64(ticks), fn: fn})
}

// run invokes every callback due at or before now, in the order they were
// queued. Callbacks may queue more work; it is not run until it is due.
func (s *scheduler) run(now uint64) {
	if len(s.pending) == 0 {
		return
	}
	var due []scheduled
	keep := s.pending[:0]
	for _, p := range s.pending {
		if p.at <= now {
			due = append(due, p)
		} else {
			keep = append(keep, p)
		}
	}
	s.pending = keep
	for _, p := range due {
		p.fn()
	}
}

func (s *scheduler) len() int { return len(s.pending) }
