// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strconv"
	"time"
)

// =============================================================================
// TRANSCRIPT TYPE
// =============================================================================

// Transcript is the append-only ordered message log of one session.
//
// A Transcript is owned by a single writer (the UI event loop) and is not
// safe for concurrent use.
type Transcript struct {
	messages []Message
	seq      uint64
}

// NewTranscript creates an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{
		messages: make([]Message, 0, 16),
	}
}

// Append creates a message with the next ID and appends it to the log.
// The appended message is returned by value.
func (t *Transcript) Append(kind Kind, content string, at time.Time) Message {
	t.seq++
	msg := Message{
		ID:        "msg-" + strconv.FormatUint(t.seq, 10),
		Kind:      kind,
		Content:   content,
		CreatedAt: at,
	}
	t.messages = append(t.messages, msg)
	return msg
}

// Messages returns a copy of the log in insertion order.
func (t *Transcript) Messages() []Message {
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	return len(t.messages)
}

// Last returns the most recent message.
func (t *Transcript) Last() (Message, bool) {
	if len(t.messages) == 0 {
		return Message{}, false
	}
	return t.messages[len(t.messages)-1], true
}

// CountKind returns how many messages of the given kind are in the log.
func (t *Transcript) CountKind(kind Kind) int {
	n := 0
	for _, msg := range t.messages {
		if msg.Kind == kind {
			n++
		}
	}
	return n
}
