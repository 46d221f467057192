// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package tasks provides cancellable scheduled tasks owned by a session.
//
// Every timer the application uses (boot delay, progress tick, reply delay)
// is a Task created through a Scheduler. Tasks are tied to the lifetime of
// their owner: CancelAll is the explicit release step run on teardown.
//
// # Key Types
//
//   - Task: a one-shot or repeating scheduled callback with status
//   - Scheduler: the interface sessions depend on
//   - ManualScheduler: virtual clock, fires tasks on Advance (tests, replay)
//   - LoopScheduler: real timers that hand due tasks to an event loop
//
// # Usage
//
// Run tasks on the event loop goroutine:
//
//	sched := tasks.NewLoopScheduler(16)
//	defer sched.Close()
//	sched.After("reply", 2*time.Second, func() { ... })
//	for task := range sched.Fired() {
//	    sched.Run(task)
//	}
//
// Drive virtual time in tests:
//
//	sched := tasks.NewManualScheduler(time.Now())
//	sched.After("boot", 5*time.Second, boot)
//	sched.Advance(5 * time.Second) // boot has run
package tasks
