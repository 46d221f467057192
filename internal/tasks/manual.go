// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package tasks

import (
	"sync"
	"time"
)

// =============================================================================
// MANUAL SCHEDULER
// =============================================================================

// ManualScheduler runs tasks against a virtual clock. Nothing fires until
// Advance is called; callbacks run on the caller's goroutine.
type ManualScheduler struct {
	mu    sync.Mutex
	now   time.Time
	tasks []*Task
	seq   uint64
}

// NewManualScheduler creates a scheduler whose clock starts at start.
func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{now: start}
}

// Now returns the virtual time.
func (s *ManualScheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// After implements Scheduler.
func (s *ManualScheduler) After(description string, d time.Duration, fn func()) *Task {
	return s.add(description, d, 0, fn)
}

// Every implements Scheduler. Non-positive intervals are treated as one-shot.
func (s *ManualScheduler) Every(description string, d time.Duration, fn func()) *Task {
	if d <= 0 {
		return s.add(description, 0, 0, fn)
	}
	return s.add(description, d, d, fn)
}

func (s *ManualScheduler) add(description string, d, interval time.Duration, fn func()) *Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d < 0 {
		d = 0
	}
	s.seq++
	task := newTask(s.seq, description, s.now.Add(d), interval, fn)
	s.tasks = append(s.tasks, task)
	return task
}

// Active implements Scheduler.
func (s *ManualScheduler) Active() []*Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.Active() {
			out = append(out, t)
		}
	}
	return out
}

// CancelAll implements Scheduler.
func (s *ManualScheduler) CancelAll() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, t := range s.tasks {
		if t.Cancel() {
			n++
		}
	}
	s.tasks = nil
	return n
}

// Advance moves the clock forward by d, firing every task that comes due in
// due-time order. Tasks with the same due time fire in scheduling order.
// Tasks scheduled by callbacks are eligible if they fall inside the window.
// Returns the number of callbacks run.
func (s *ManualScheduler) Advance(d time.Duration) int {
	s.mu.Lock()
	target := s.now.Add(d)
	s.mu.Unlock()

	fired := 0
	for {
		task := s.nextDue(target)
		if task == nil {
			break
		}
		if fn := task.claim(); fn != nil {
			fn()
			fired++
		}
	}

	s.mu.Lock()
	if s.now.Before(target) {
		s.now = target
	}
	s.prune()
	s.mu.Unlock()
	return fired
}

// nextDue picks the earliest active task due at or before target and moves
// the clock to its due time.
func (s *ManualScheduler) nextDue(target time.Time) *Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	var next *Task
	var nextDue time.Time
	for _, t := range s.tasks {
		t.mu.Lock()
		due, status, seq := t.Due, t.status, t.seq
		t.mu.Unlock()

		if status != TaskStatusScheduled || due.After(target) {
			continue
		}
		if next == nil || due.Before(nextDue) || (due.Equal(nextDue) && seq < next.seq) {
			next = t
			nextDue = due
		}
	}
	if next != nil && nextDue.After(s.now) {
		s.now = nextDue
	}
	return next
}

// prune drops finished tasks. Must be called with s.mu held.
func (s *ManualScheduler) prune() {
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.Active() {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = kept
}
