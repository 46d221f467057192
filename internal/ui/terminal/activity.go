// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package terminal

import (
	"github.com/jeranaias/umbra-terminal/internal/model"
	"github.com/jeranaias/umbra-terminal/internal/session"
)

// maxLogLines is how many entries the system log panel keeps.
const maxLogLines = 6

// activity collects session events between Updates. It is shared by every
// copy of Model, since bubbletea passes the model by value.
type activity struct {
	dirty bool
	logs  []string
}

func newActivity() *activity {
	return &activity{dirty: true}
}

// observe is the session subscriber.
func (a *activity) observe(ev session.Event) {
	a.dirty = true

	switch ev.Kind {
	case session.EventBootComplete:
		a.add("", "neural link established")
	case session.EventMessage:
		if ev.Message.Kind == model.KindUser {
			a.add(ev.Message.FormatTime(), "query received")
		}
	case session.EventPending:
		if !ev.Pending {
			a.add("", "response delivered")
		} else {
			a.add("", "routing to language model")
		}
	}
}

func (a *activity) add(ts, line string) {
	if ts != "" {
		line = ts + " " + line
	}
	a.logs = append(a.logs, line)
	if len(a.logs) > maxLogLines {
		a.logs = a.logs[len(a.logs)-maxLogLines:]
	}
}

// takeDirty reports and clears the dirty flag.
func (a *activity) takeDirty() bool {
	d := a.dirty
	a.dirty = false
	return d
}
