// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/umbra-terminal/internal/ui/styles"
)

// SidePanelWidth is the outer width of each side panel.
const SidePanelWidth = 28

// =============================================================================
// SIDE PANELS
// =============================================================================

// PanelLine is one label/value row. An empty Label renders Value alone.
type PanelLine struct {
	Label string
	Value string
	OK    bool // Highlight Value as healthy
}

// Panel is a titled box of rows.
type Panel struct {
	Title string
	Lines []PanelLine
}

// Truncate shortens s to fit width terminal cells, marking the cut with "~".
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "~")
}

// RenderPanel renders p at the given outer width.
func RenderPanel(theme *styles.Theme, p Panel, width int) string {
	inner := width - theme.Panel.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}

	rows := make([]string, 0, len(p.Lines)+1)
	rows = append(rows, theme.PanelTitle.Render(Truncate(p.Title, inner)))
	for _, line := range p.Lines {
		rows = append(rows, renderPanelLine(theme, line, inner))
	}

	return theme.Panel.Width(width - theme.Panel.GetHorizontalBorderSize()).
		Render(strings.Join(rows, "\n"))
}

func renderPanelLine(theme *styles.Theme, line PanelLine, inner int) string {
	valueStyle := theme.PanelValue
	if line.OK {
		valueStyle = theme.PanelOK
	}

	if line.Label == "" {
		return valueStyle.Render(Truncate(line.Value, inner))
	}

	label := line.Label + ": "
	labelWidth := runewidth.StringWidth(label)
	if labelWidth >= inner {
		return theme.PanelLabel.Render(Truncate(line.Label, inner))
	}
	value := Truncate(line.Value, inner-labelWidth)
	return theme.PanelLabel.Render(label) + valueStyle.Render(value)
}

// RenderPanelColumn stacks panels vertically.
func RenderPanelColumn(theme *styles.Theme, panels []Panel, width int) string {
	rendered := make([]string, 0, len(panels))
	for _, p := range panels {
		rendered = append(rendered, RenderPanel(theme, p, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}
