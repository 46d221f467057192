// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package terminal

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/umbra-terminal/internal/tasks"
)

// =============================================================================
// MESSAGES
// =============================================================================

// TaskFiredMsg carries a due task from the scheduler to the event loop.
type TaskFiredMsg struct {
	Task *tasks.Task
}

// SchedulerClosedMsg is sent when the scheduler stops delivering tasks.
type SchedulerClosedMsg struct{}

// RefreshMsg asks the model to resync its view from session state.
type RefreshMsg struct{}

// waitForTask blocks until the loop delivers a due task.
func waitForTask(loop Loop) tea.Cmd {
	fired := loop.Fired()
	if fired == nil {
		return nil
	}
	done := loop.Done()
	return func() tea.Msg {
		select {
		case task := <-fired:
			return TaskFiredMsg{Task: task}
		case <-done:
			return SchedulerClosedMsg{}
		}
	}
}
