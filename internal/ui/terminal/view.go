// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package terminal

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/umbra-terminal/internal/session"
	"github.com/jeranaias/umbra-terminal/internal/ui/components"
	"github.com/jeranaias/umbra-terminal/internal/ui/styles"
)

// OSVersion is shown in the system info panel.
const OSVersion = "v2.1.0"

// executeLabel is the submit affordance next to the input.
const executeLabel = "EXECUTE"

// Fixed line counts around the transcript viewport.
const (
	navLines      = 2 // bar + bottom border
	helpLines     = 1
	headerLines   = 2 // title + bottom border
	terminalFrame = 2 // top + bottom border
	thinkingLines = 1
	inputLines    = 2 // top border + input
)

// layout holds computed widths and heights for the terminal screen.
type layout struct {
	panels         bool
	centerWidth    int
	viewportWidth  int
	viewportHeight int
	inputWidth     int
}

func (m Model) layout() layout {
	l := layout{panels: m.PanelsVisible()}

	l.centerWidth = m.width
	if l.panels {
		l.centerWidth -= 2 * components.SidePanelWidth
	}
	if l.centerWidth < 20 {
		l.centerWidth = 20
	}

	l.viewportWidth = l.centerWidth - m.theme.Terminal.GetHorizontalFrameSize()
	l.viewportHeight = m.height - navLines - helpLines - terminalFrame - headerLines - thinkingLines - inputLines
	if l.viewportHeight < 1 {
		l.viewportHeight = 1
	}

	executeWidth := lipgloss.Width(m.theme.Execute.Render(executeLabel))
	l.inputWidth = l.viewportWidth - executeWidth - lipgloss.Width(m.input.Prompt) - 2
	if l.inputWidth < 1 {
		l.inputWidth = 1
	}
	return l
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the boot screen or the terminal screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.sess.BootComplete() {
		return m.boot.View()
	}
	if !m.ready {
		return "Initializing..."
	}

	l := m.layout()
	center := m.renderCenter(l)

	body := center
	if l.panels {
		st := m.sess.GetStatus()
		pulse := styles.PulseSpinner.FrameAt(m.loop.Now())
		left := components.RenderPanelColumn(m.theme, leftPanels(st, pulse), components.SidePanelWidth)
		right := components.RenderPanelColumn(m.theme, rightPanels(st, m.Logs()), components.SidePanelWidth)
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, center, right)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.nav.View(),
		body,
		m.theme.Help.Render(m.help.ShortHelpView(m.keys.ShortHelp())),
	)
}

// renderCenter renders the header, transcript, thinking line and input.
func (m Model) renderCenter(l layout) string {
	thinking := ""
	if m.sess.PendingReply() {
		thinking = components.RenderThinking(m.theme, m.spinner.View())
	}

	execute := m.theme.Execute.Render(executeLabel)
	if m.sess.PendingReply() {
		execute = m.theme.ExecuteOff.Render(executeLabel)
	}
	inputLine := m.input.View()
	gap := l.viewportWidth - lipgloss.Width(inputLine) - lipgloss.Width(execute)
	if gap < 1 {
		gap = 1
	}
	inputLine = inputLine + strings.Repeat(" ", gap) + execute

	content := lipgloss.JoinVertical(lipgloss.Left,
		components.RenderHeader(m.theme, m.loop.Now(), l.viewportWidth),
		m.viewport.View(),
		thinking,
		m.theme.InputContainer.Width(l.viewportWidth).Render(inputLine),
	)
	return m.theme.Terminal.
		Width(l.centerWidth - m.theme.Terminal.GetHorizontalBorderSize()).
		Render(content)
}

// =============================================================================
// PANELS
// =============================================================================

func leftPanels(st session.Status, pulse string) []components.Panel {
	replyEngine := components.PanelLine{Label: "Reply Engine", Value: "READY", OK: true}
	if st.PendingReply {
		replyEngine = components.PanelLine{Label: "Reply Engine", Value: "BUSY " + pulse}
	}

	return []components.Panel{
		{
			Title: "SYSTEM INFO",
			Lines: []components.PanelLine{
				{Label: "OS", Value: "UMBRA " + OSVersion},
				{Label: "CPU", Value: "Neural Core"},
				{Label: "RAM", Value: "∞ TB"},
				{Label: "NET", Value: "Quantum Link"},
				{Label: "STATUS", Value: "ONLINE", OK: true},
				{Label: "Session", Value: shortID(st.SessionID)},
			},
		},
		{
			Title: "ACTIVE MODULES",
			Lines: []components.PanelLine{
				{Value: styles.StatusIndicators.Online + " Language Model", OK: true},
				{Value: styles.StatusIndicators.Online + " Neural Interface", OK: true},
				{Value: styles.StatusIndicators.Online + " Quantum Processor", OK: true},
				replyEngine,
			},
		},
	}
}

func rightPanels(st session.Status, logs []string) []components.Panel {
	logLines := make([]components.PanelLine, 0, len(logs))
	for _, line := range logs {
		logLines = append(logLines, components.PanelLine{Value: line})
	}
	if len(logLines) == 0 {
		logLines = append(logLines, components.PanelLine{Value: styles.StatusIndicators.Standby + " idle"})
	}

	return []components.Panel{
		{Title: "SYSTEM LOGS", Lines: logLines},
		{
			Title: "PERFORMANCE",
			Lines: []components.PanelLine{
				{Label: "Response Time", Value: "0.02ms"},
				{Label: "Accuracy", Value: "99.7%"},
				{Label: "Uptime", Value: "100%"},
				{Label: "Session", Value: session.FormatDuration(st.Uptime)},
				{Label: "Queries", Value: strconv.Itoa(st.UserMessages)},
			},
		},
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
