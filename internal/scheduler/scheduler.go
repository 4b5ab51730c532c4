package scheduler

import (
	"context"
	"sync"
	"time"
)

// Handle controls a scheduled repeating job.
type Handle interface {
	// Stop cancels the job. Stopping an already-stopped job is a no-op.
	Stop()
	// SetInterval changes the repeat interval. Takes effect for the next
	// firing; the current accumulation is preserved.
	SetInterval(time.Duration)
	// Interval returns the current repeat interval.
	Interval() time.Duration
}

// Registrar schedules repeating callbacks. The game layer depends on this
// rather than the concrete Scheduler so tests can substitute fakes.
type Registrar interface {
	Schedule(key string, interval time.Duration, fn func(context.Context)) Handle
	StopAll(prefix string)
}

// Scheduler runs repeating jobs off the mud driver's tick. It satisfies
// driver.Manager; each Tick it accrues real elapsed time against every job
// and fires the ones whose interval has elapsed.
type Scheduler struct {
	mu   sync.Mutex
	jobs map[string]*Job
	now  func() time.Time
	last time.Time
}

func New() *Scheduler {
	return &Scheduler{
		jobs: make(map[string]*Job),
		now:  time.Now,
	}
}

// Job is a single scheduled repeating callback.
type Job struct {
	s        *Scheduler
	key      string
	interval time.Duration
	elapsed  time.Duration
	fn       func(context.Context)
	stopped  bool
}

// Schedule registers fn to run every interval. Scheduling a key that is
// already registered replaces the existing job.
func (s *Scheduler) Schedule(key string, interval time.Duration, fn func(context.Context)) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.jobs[key]; ok {
		old.stopped = true
	}

	j := &Job{
		s:        s,
		key:      key,
		interval: interval,
		fn:       fn,
	}
	s.jobs[key] = j
	return j
}

// Get returns the handle for key, or nil if no such job is scheduled.
func (s *Scheduler) Get(key string) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.jobs[key]
	if !ok {
		return nil
	}
	return j
}

// StopAll stops every job whose key starts with prefix.
func (s *Scheduler) StopAll(prefix string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, j := range s.jobs {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			j.stopped = true
			delete(s.jobs, key)
		}
	}
}

// Tick advances all jobs by the wall-clock time since the previous Tick and
// runs any that have come due. Callbacks run outside the scheduler lock so
// they may schedule or stop jobs.
func (s *Scheduler) Tick(ctx context.Context) error {
	s.mu.Lock()
	now := s.now()
	var elapsed time.Duration
	if !s.last.IsZero() {
		elapsed = now.Sub(s.last)
	}
	s.last = now
	due := s.collectDue(elapsed)
	s.mu.Unlock()

	for _, j := range due {
		j.fn(ctx)
	}
	return nil
}

// Advance moves all jobs forward by d without consulting the clock.
// Used by tests to simulate the passage of time deterministically.
func (s *Scheduler) Advance(ctx context.Context, d time.Duration) {
	s.mu.Lock()
	due := s.collectDue(d)
	s.mu.Unlock()

	for _, j := range due {
		j.fn(ctx)
	}
}

// collectDue must be called with the lock held. It accrues d on every live
// job and returns the ones ready to fire, resetting their accumulators.
func (s *Scheduler) collectDue(d time.Duration) []*Job {
	var due []*Job
	for key, j := range s.jobs {
		if j.stopped {
			delete(s.jobs, key)
			continue
		}
		j.elapsed += d
		if j.interval > 0 && j.elapsed >= j.interval {
			j.elapsed = 0
			due = append(due, j)
		}
	}
	return due
}

func (j *Job) Stop() {
	j.s.mu.Lock()
	defer j.s.mu.Unlock()

	if j.stopped {
		return
	}
	j.stopped = true
	if cur, ok := j.s.jobs[j.key]; ok && cur == j {
		delete(j.s.jobs, j.key)
	}
}

func (j *Job) SetInterval(d time.Duration) {
	j.s.mu.Lock()
	defer j.s.mu.Unlock()
	j.interval = d
}

func (j *Job) Interval() time.Duration {
	j.s.mu.Lock()
	defer j.s.mu.Unlock()
	return j.interval
}
