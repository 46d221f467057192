// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"slices"

	"github.com/jeranaias/umbra-terminal/internal/model"
)

// EventKind identifies what changed.
type EventKind int

const (
	// EventProgress is sent after each progress tick.
	EventProgress EventKind = iota
	// EventBootComplete is sent once, when the terminal screen takes over.
	EventBootComplete
	// EventMessage is sent for each message appended to the transcript.
	EventMessage
	// EventPending is sent when a reply starts or finishes.
	EventPending
)

// String returns the string representation of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventProgress:
		return "progress"
	case EventBootComplete:
		return "boot-complete"
	case EventMessage:
		return "message"
	case EventPending:
		return "pending"
	default:
		return "unknown"
	}
}

// Event describes one state change.
type Event struct {
	Kind     EventKind
	Progress float64
	Message  model.Message
	Pending  bool
}

// Subscribe registers fn to receive events. Events are delivered on the
// goroutine that caused the change, after the session lock is released.
// The returned function removes the subscription.
func (s *Session) Subscribe(fn func(Event)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || fn == nil {
		return func() {}
	}
	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.observers, id)
	}
}

func (s *Session) emit(events ...Event) {
	s.mu.Lock()
	ids := make([]int, 0, len(s.observers))
	for id := range s.observers {
		ids = append(ids, id)
	}
	fns := make([]func(Event), 0, len(ids))
	slices.Sort(ids)
	for _, id := range ids {
		fns = append(fns, s.observers[id])
	}
	s.mu.Unlock()

	for _, ev := range events {
		for _, fn := range fns {
			fn(ev)
		}
	}
}
