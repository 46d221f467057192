// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session implements the UMBRA boot sequence and terminal session.
//
// A Session owns the boot progress, the append-only transcript, the input
// buffer and the single in-flight simulated reply. It has no knowledge of
// rendering: front ends subscribe to Events and read state through the
// accessors.
//
// # Key Types
//
//   - Session: boot sequencer plus terminal session state machine
//   - Config: tick interval, progress step, boot and reply delays, replies
//   - Event: notification delivered to subscribers after each mutation
//   - Status: point-in-time snapshot for status panels
//
// # Usage
//
// Wire a session to a scheduler and drive it from one goroutine:
//
//	sess := session.New(session.DefaultConfig())
//	if err := sess.Start(sched); err != nil {
//	    return err
//	}
//	defer sess.Close()
//
//	sess.Subscribe(func(ev session.Event) { ... })
//	err := sess.Submit("hello") // ErrNotBooted until the boot task has run
//
// All mutation must happen on the goroutine that runs scheduled tasks.
// Submit, Tick, CompleteBoot and CompleteReply are not meant to be called
// concurrently with each other.
package session
