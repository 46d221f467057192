// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jeranaias/umbra-terminal/internal/model"
	"github.com/jeranaias/umbra-terminal/internal/ui/styles"
)

// ThinkingLabel is shown while a reply is pending.
const ThinkingLabel = "Thinking"

// TerminalTitle heads the transcript column.
const TerminalTitle = "UMBRA TERMINAL"

// DateLayout formats the header date as month/day/year.
const DateLayout = "1/2/2006"

// RenderHeader renders the title and date row above the transcript. The
// date is dropped when the row is too narrow for both.
func RenderHeader(theme *styles.Theme, now time.Time, width int) string {
	title := theme.TerminalTitle.Render(TerminalTitle)
	date := theme.TerminalDate.Render(now.Format(DateLayout))

	gap := width - lipgloss.Width(title) - lipgloss.Width(date)
	line := title
	if gap >= 1 {
		line = title + strings.Repeat(" ", gap) + date
	}
	return theme.TerminalHeader.Width(width).Render(line)
}

// =============================================================================
// TRANSCRIPT LINES
// =============================================================================

// RenderMessage renders one transcript line, wrapping content under itself
// so continuation lines stay aligned after the tag.
func RenderMessage(theme *styles.Theme, msg model.Message, width int) string {
	tagStyle, textStyle := kindStyles(theme, msg.Kind)

	ts := msg.FormatTime()
	tag := msg.Kind.Tag()
	prefixWidth := lipgloss.Width(ts) + 2 + lipgloss.Width(tag) + 1

	body := msg.Content
	if avail := width - prefixWidth; avail >= 10 {
		body = wordwrap.String(body, avail)
	}
	lines := strings.Split(body, "\n")
	indent := strings.Repeat(" ", prefixWidth)

	var sb strings.Builder
	sb.WriteString(theme.Timestamp.Render(ts))
	sb.WriteString("  ")
	sb.WriteString(tagStyle.Render(tag))
	sb.WriteString(" ")
	sb.WriteString(textStyle.Render(lines[0]))
	for _, line := range lines[1:] {
		sb.WriteString("\n")
		sb.WriteString(indent)
		sb.WriteString(textStyle.Render(line))
	}
	return sb.String()
}

// RenderTranscript renders every message in order.
func RenderTranscript(theme *styles.Theme, msgs []model.Message, width int) string {
	lines := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		lines = append(lines, RenderMessage(theme, msg, width))
	}
	return strings.Join(lines, "\n")
}

// RenderThinking renders the transient pending-reply line. frame is the
// current spinner frame.
func RenderThinking(theme *styles.Theme, frame string) string {
	return theme.UmbraTag.Render(model.KindUmbra.Tag()) + " " +
		theme.Thinking.Render(ThinkingLabel) + " " + theme.Thinking.Render(frame)
}

func kindStyles(theme *styles.Theme, kind model.Kind) (lipgloss.Style, lipgloss.Style) {
	switch kind {
	case model.KindUser:
		return theme.UserTag, theme.UserText
	case model.KindSystem:
		return theme.SystemTag, theme.SystemText
	default:
		return theme.UmbraTag, theme.UmbraText
	}
}
