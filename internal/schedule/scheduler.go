// Package schedule runs keyed, cancellable deferred callbacks on a
// frame-driven virtual clock.
package schedule

import (
	"sort"
	"time"
)

type task struct {
	key string
	due time.Duration
	seq uint64
	fn  func()
}

// Scheduler holds at most one pending task per key. Time only moves
// when Advance is called, so tasks never fire concurrently with the caller.
type Scheduler struct {
	now   time.Duration
	seq   uint64
	tasks map[string]*task
}

// New creates an empty scheduler at time zero.
func New() *Scheduler {
	return &Scheduler{tasks: make(map[string]*task)}
}

// Now returns the scheduler's virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After arms fn to run once delay has elapsed. Any task already pending
// under key is replaced.
func (s *Scheduler) After(key string, delay time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	s.tasks[key] = &task{key: key, due: s.now + delay, seq: s.seq, fn: fn}
}

// Cancel removes the pending task for key. It reports whether one existed.
func (s *Scheduler) Cancel(key string) bool {
	if _, ok := s.tasks[key]; !ok {
		return false
	}
	delete(s.tasks, key)
	return true
}

// Pending reports whether a task is armed under key.
func (s *Scheduler) Pending(key string) bool {
	_, ok := s.tasks[key]
	return ok
}

// Remaining returns the time left before key fires.
func (s *Scheduler) Remaining(key string) (time.Duration, bool) {
	t, ok := s.tasks[key]
	if !ok {
		return 0, false
	}
	return t.due - s.now, true
}

// Len returns the number of pending tasks.
func (s *Scheduler) Len() int {
	return len(s.tasks)
}

// Clear cancels every pending task.
func (s *Scheduler) Clear() {
	s.tasks = make(map[string]*task)
}

// Advance moves the clock forward by dt and runs every task that comes due,
// earliest first, with ties broken by arming order. Tasks armed by a callback
// run in the same call only if they are already due.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt > 0 {
		s.now += dt
	}

	fired := 0
	for {
		next := s.nextDue()
		if next == nil {
			return fired
		}
		delete(s.tasks, next.key)
		next.fn()
		fired++
	}
}

// nextDue returns the earliest due task, or nil.
func (s *Scheduler) nextDue() *task {
	var due []*task
	for _, t := range s.tasks {
		if t.due <= s.now {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})
	return due[0]
}
