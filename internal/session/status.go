// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"strconv"
	"time"

	"github.com/jeranaias/umbra-terminal/internal/model"
	"github.com/jeranaias/umbra-terminal/internal/tasks"
)

// =============================================================================
// SESSION STATUS
// =============================================================================

// Status is a snapshot of session state for status panels.
type Status struct {
	SessionID    string
	StartTime    time.Time
	Uptime       time.Duration
	Progress     float64
	BootComplete bool
	PendingReply bool
	Messages     int
	UserMessages int
	Replies      int
	ActiveTasks  int
}

// GetStatus returns the current session status.
func (s *Session) GetStatus() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Status{
		SessionID:    s.id,
		StartTime:    s.startedAt,
		Progress:     s.progress,
		BootComplete: s.bootComplete,
		PendingReply: s.pendingReply,
		Messages:     s.transcript.Len(),
		UserMessages: s.transcript.CountKind(model.KindUser),
		Replies:      s.transcript.CountKind(model.KindUmbra),
	}
	if s.started {
		st.Uptime = s.now().Sub(s.startedAt)
	}
	for _, t := range []*tasks.Task{s.progressTask, s.bootTask, s.replyTask} {
		if t != nil && t.Active() {
			st.ActiveTasks++
		}
	}
	return st
}

// FormatDuration returns a human-readable duration string.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	if d < time.Minute {
		return strconv.Itoa(int(d.Seconds())) + "s"
	}
	if d < time.Hour {
		mins := int(d.Minutes())
		secs := int(d.Seconds()) % 60
		if secs == 0 {
			return strconv.Itoa(mins) + "m"
		}
		return strconv.Itoa(mins) + "m " + strconv.Itoa(secs) + "s"
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	return strconv.Itoa(hours) + "h " + strconv.Itoa(mins) + "m"
}
