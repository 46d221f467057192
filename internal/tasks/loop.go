// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package tasks

import (
	"sort"
	"sync"
	"time"
)

// =============================================================================
// LOOP SCHEDULER
// =============================================================================

// LoopScheduler arms real timers but never runs callbacks on timer
// goroutines. When a task comes due it is posted to Fired(); the owning event
// loop then calls Run, so all state mutation stays on one goroutine.
type LoopScheduler struct {
	mu     sync.Mutex
	tasks  map[*Task]struct{}
	seq    uint64
	fired  chan *Task
	done   chan struct{}
	closed bool
}

// NewLoopScheduler creates a scheduler whose Fired channel buffers up to
// buffer due tasks.
func NewLoopScheduler(buffer int) *LoopScheduler {
	if buffer < 1 {
		buffer = 1
	}
	return &LoopScheduler{
		tasks: make(map[*Task]struct{}),
		fired: make(chan *Task, buffer),
		done:  make(chan struct{}),
	}
}

// Now returns wall-clock time.
func (s *LoopScheduler) Now() time.Time {
	return time.Now()
}

// Fired delivers tasks that have come due.
func (s *LoopScheduler) Fired() <-chan *Task {
	return s.fired
}

// Done is closed by Close.
func (s *LoopScheduler) Done() <-chan struct{} {
	return s.done
}

// After implements Scheduler.
func (s *LoopScheduler) After(description string, d time.Duration, fn func()) *Task {
	return s.arm(description, d, 0, fn)
}

// Every implements Scheduler. Non-positive intervals are treated as one-shot.
func (s *LoopScheduler) Every(description string, d time.Duration, fn func()) *Task {
	if d <= 0 {
		return s.arm(description, 0, 0, fn)
	}
	return s.arm(description, d, d, fn)
}

func (s *LoopScheduler) arm(description string, d, interval time.Duration, fn func()) *Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d < 0 {
		d = 0
	}
	s.seq++
	task := newTask(s.seq, description, time.Now().Add(d), interval, fn)
	if s.closed {
		task.status = TaskStatusCanceled
		return task
	}
	s.tasks[task] = struct{}{}

	task.mu.Lock()
	task.timer = time.AfterFunc(d, func() { s.post(task) })
	task.mu.Unlock()
	return task
}

// post hands a due task to the loop. One-shot tasks wait for the loop;
// repeating ticks are dropped when the loop is behind.
func (s *LoopScheduler) post(task *Task) {
	if !task.Active() {
		return
	}
	if task.Repeating() {
		select {
		case s.fired <- task:
		case <-s.done:
			return
		default:
		}
		task.mu.Lock()
		if task.status == TaskStatusScheduled && task.timer != nil {
			task.timer.Reset(task.Interval)
		}
		task.mu.Unlock()
		return
	}
	select {
	case s.fired <- task:
	case <-s.done:
	}
}

// Run executes a task received from Fired. It returns false if the task was
// canceled after being posted.
func (s *LoopScheduler) Run(task *Task) bool {
	fn := task.claim()
	if !task.Repeating() {
		s.mu.Lock()
		delete(s.tasks, task)
		s.mu.Unlock()
	}
	if fn == nil {
		return false
	}
	fn()
	return true
}

// Active implements Scheduler.
func (s *LoopScheduler) Active() []*Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Task, 0, len(s.tasks))
	for t := range s.tasks {
		if t.Active() {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}

// CancelAll implements Scheduler.
func (s *LoopScheduler) CancelAll() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for t := range s.tasks {
		if t.Cancel() {
			n++
		}
		delete(s.tasks, t)
	}
	return n
}

// Close cancels all tasks and stops accepting new ones.
func (s *LoopScheduler) Close() {
	s.CancelAll()

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.done)
	}
}
