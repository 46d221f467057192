// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the UMBRA transcript.
package model

import (
	"fmt"
	"time"
)

// TimeLayout is the 24h hour:minute:second layout used for every transcript line.
const TimeLayout = "15:04:05"

// =============================================================================
// KIND TYPE
// =============================================================================

// Kind identifies who produced a message.
type Kind string

const (
	KindUser   Kind = "user"
	KindSystem Kind = "system"
	KindUmbra  Kind = "umbra"
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// Valid reports whether k is one of the fixed kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindUser, KindSystem, KindUmbra:
		return true
	default:
		return false
	}
}

// Tag returns the prefix rendered before the message content.
func (k Kind) Tag() string {
	switch k {
	case KindUser:
		return ">"
	case KindSystem:
		return "[SYS]"
	case KindUmbra:
		return "[UMBRA]"
	default:
		return "[" + string(k) + "]"
	}
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message is one line in the transcript. Messages are values; once appended
// to a Transcript they are never modified.
type Message struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// FormatTime returns the creation time as HH:MM:SS.
func (m Message) FormatTime() string {
	return FormatTime(m.CreatedAt)
}

// String renders the message the way the line-mode terminal prints it.
func (m Message) String() string {
	return fmt.Sprintf("%s %s %s", m.FormatTime(), m.Kind.Tag(), m.Content)
}

// FormatTime formats t for display in the transcript.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}
