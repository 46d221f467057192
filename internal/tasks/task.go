// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package tasks

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// TASK STATUS
// =============================================================================

// TaskStatus represents the current state of a scheduled task.
type TaskStatus string

const (
	// TaskStatusScheduled indicates the task is armed and may still fire
	TaskStatusScheduled TaskStatus = "Scheduled"

	// TaskStatusFired indicates a one-shot task has run
	TaskStatusFired TaskStatus = "Fired"

	// TaskStatusCanceled indicates the task was canceled before (or between) runs
	TaskStatusCanceled TaskStatus = "Canceled"
)

// String returns the string representation of the task status.
func (s TaskStatus) String() string {
	return string(s)
}

// =============================================================================
// TASK STRUCTURE
// =============================================================================

// Task is a scheduled callback.
type Task struct {
	// ID is a unique identifier for this task
	ID string

	// Description is a human-readable label ("boot", "progress", "reply")
	Description string

	// Interval is the repeat period; zero for one-shot tasks
	Interval time.Duration

	// Due is when the task is next expected to fire
	Due time.Time

	status TaskStatus
	runs   int
	seq    uint64
	fn     func()
	timer  *time.Timer

	mu sync.Mutex
}

func newTask(seq uint64, description string, due time.Time, interval time.Duration, fn func()) *Task {
	return &Task{
		ID:          uuid.NewString(),
		Description: description,
		Interval:    interval,
		Due:         due,
		status:      TaskStatusScheduled,
		seq:         seq,
		fn:          fn,
	}
}

// =============================================================================
// TASK METHODS
// =============================================================================

// Status returns the current task status.
func (t *Task) Status() TaskStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

// Runs returns how many times the callback has executed.
func (t *Task) Runs() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.runs
}

// Repeating reports whether the task fires on an interval.
func (t *Task) Repeating() bool {
	return t.Interval > 0
}

// Active reports whether the task may still fire.
func (t *Task) Active() bool {
	return t.Status() == TaskStatusScheduled
}

// Cancel stops the task. Returns false if it had already fired or been canceled.
func (t *Task) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.status != TaskStatusScheduled {
		return false
	}
	t.status = TaskStatusCanceled
	if t.timer != nil {
		t.timer.Stop()
	}
	return true
}

// claim marks a due firing as taken. It returns the callback to run, or nil
// if the task was canceled in the meantime.
func (t *Task) claim() func() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.status != TaskStatusScheduled {
		return nil
	}
	t.runs++
	if t.Interval > 0 {
		t.Due = t.Due.Add(t.Interval)
	} else {
		t.status = TaskStatusFired
	}
	return t.fn
}

// Summary returns a one-line summary of the task.
func (t *Task) Summary() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	kind := "once"
	if t.Interval > 0 {
		kind = "every " + t.Interval.String()
	}
	return fmt.Sprintf("[%s] %s - %s (%s, runs=%d)", t.ID[:8], t.Description, t.status, kind, t.runs)
}

// =============================================================================
// SCHEDULER INTERFACE
// =============================================================================

// Scheduler creates tasks and owns their lifetime.
type Scheduler interface {
	// After schedules fn to run once, d from now.
	After(description string, d time.Duration, fn func()) *Task

	// Every schedules fn to run every d, starting d from now.
	Every(description string, d time.Duration, fn func()) *Task

	// Active returns the tasks that may still fire, in scheduling order.
	Active() []*Task

	// CancelAll cancels every outstanding task and returns how many were canceled.
	CancelAll() int

	// Now returns the scheduler's notion of the current time.
	Now() time.Time
}
