// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/umbra-terminal/internal/model"
	"github.com/jeranaias/umbra-terminal/internal/ui/styles"
)

func testTheme() *styles.Theme {
	return styles.NewTheme("dark")
}

var stamp = time.Date(2025, 1, 1, 14, 3, 9, 0, time.UTC)

// =============================================================================
// BOOT SCREEN TESTS
// =============================================================================

func TestBootScreen_PercentRounding(t *testing.T) {
	b := NewBootScreen(testTheme())

	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{2.22, 2},
		{6.66, 7},
		{99.9, 100},
		{150, 100},
		{-3, 0},
	}

	for _, tt := range tests {
		b.SetPercent(tt.in)
		assert.Equal(t, tt.want, b.Percent(), "input %v", tt.in)
	}
}

func TestBootScreen_View(t *testing.T) {
	b := NewBootScreen(testTheme())
	b.SetSize(50, 12)
	b.SetPercent(44.4)

	view := b.View()
	assert.Contains(t, view, "UMBRA")
	assert.Contains(t, view, "Initializing Neural Interface...")
	assert.Contains(t, view, "44% Complete")
	assert.Equal(t, 12, lipgloss.Height(view))
}

func TestBootScreen_WideLogo(t *testing.T) {
	b := NewBootScreen(testTheme())
	b.SetSize(120, 40)

	view := b.View()
	assert.Contains(t, view, `|  \/  |`)
	assert.Contains(t, view, "0% Complete")
}

// =============================================================================
// NAV BAR TESTS
// =============================================================================

func TestNavBar_View(t *testing.T) {
	nav := NewNavBar(testTheme(), "Contract: To Be Announced")
	nav.SetWidth(100)

	view := nav.View()
	assert.Contains(t, view, "UMBRA")
	assert.Contains(t, view, "Contract: To Be Announced")
	assert.Contains(t, view, "[ctrl+y]")
	assert.Equal(t, 100, lipgloss.Width(view))
}

func TestNavBar_DropsHintWhenNarrow(t *testing.T) {
	nav := NewNavBar(testTheme(), "Contract: To Be Announced")
	nav.SetWidth(40)

	view := nav.View()
	assert.Contains(t, view, "Contract: To Be Announced")
	assert.NotContains(t, view, "[ctrl+y]")
}

// =============================================================================
// PANEL TESTS
// =============================================================================

func TestTruncate(t *testing.T) {
	assert.Equal(t, "", Truncate("abc", 0))
	assert.Equal(t, "abc", Truncate("abc", 3))
	assert.Equal(t, "ab~", Truncate("abcdef", 3))
	// Wide runes count as two cells.
	assert.Equal(t, "日~", Truncate("日本語", 4))
}

func TestRenderPanel(t *testing.T) {
	p := Panel{
		Title: "SYSTEM INFO",
		Lines: []PanelLine{
			{Label: "Version", Value: "v2.1.0"},
			{Label: "Neural Core", Value: "ONLINE", OK: true},
			{Value: "a very long log line that cannot possibly fit in the panel"},
		},
	}

	view := RenderPanel(testTheme(), p, SidePanelWidth)
	assert.Contains(t, view, "SYSTEM INFO")
	assert.Contains(t, view, "Version: v2.1.0")
	assert.Contains(t, view, "Neural Core: ONLINE")
	assert.Contains(t, view, "~")

	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), SidePanelWidth)
	}
}

func TestRenderPanelColumn(t *testing.T) {
	panels := []Panel{
		{Title: "ONE", Lines: []PanelLine{{Value: "x"}}},
		{Title: "TWO", Lines: []PanelLine{{Value: "y"}}},
	}

	view := RenderPanelColumn(testTheme(), panels, 20)
	require.Less(t, strings.Index(view, "ONE"), strings.Index(view, "TWO"))
}

// =============================================================================
// TRANSCRIPT TESTS
// =============================================================================

func TestRenderMessage_Tags(t *testing.T) {
	theme := testTheme()

	tests := []struct {
		kind model.Kind
		want string
	}{
		{model.KindUser, "14:03:09  > hello"},
		{model.KindSystem, "14:03:09  [SYS] hello"},
		{model.KindUmbra, "14:03:09  [UMBRA] hello"},
	}

	for _, tt := range tests {
		msg := model.Message{Kind: tt.kind, Content: "hello", CreatedAt: stamp}
		assert.Equal(t, tt.want, RenderMessage(theme, msg, 80))
	}
}

func TestRenderMessage_Wraps(t *testing.T) {
	msg := model.Message{
		Kind:      model.KindUmbra,
		Content:   "Your request has been processed. Here's my analysis...",
		CreatedAt: stamp,
	}

	view := RenderMessage(testTheme(), msg, 40)
	lines := strings.Split(view, "\n")
	require.Greater(t, len(lines), 1)

	indent := strings.Repeat(" ", len("14:03:09  [UMBRA] "))
	for _, line := range lines[1:] {
		assert.True(t, strings.HasPrefix(line, indent), "line %q", line)
	}
}

func TestRenderTranscript_Order(t *testing.T) {
	tr := model.NewTranscript()
	tr.Append(model.KindSystem, "first", stamp)
	tr.Append(model.KindUser, "second", stamp)

	view := RenderTranscript(testTheme(), tr.Messages(), 80)
	assert.Less(t, strings.Index(view, "first"), strings.Index(view, "second"))
	assert.Equal(t, 2, strings.Count(view, "\n")+1)
}

func TestRenderThinking(t *testing.T) {
	view := RenderThinking(testTheme(), "...")
	assert.Equal(t, "[UMBRA] Thinking ...", view)
}

// =============================================================================
// HEADER TESTS
// =============================================================================

func TestRenderHeader(t *testing.T) {
	view := RenderHeader(testTheme(), stamp, 60)
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 2)

	assert.Contains(t, lines[0], "UMBRA TERMINAL")
	assert.Contains(t, lines[0], "1/1/2025")
	assert.Equal(t, 60, lipgloss.Width(lines[0]))
}

func TestRenderHeader_DropsDateWhenNarrow(t *testing.T) {
	view := RenderHeader(testTheme(), stamp, 18)
	assert.Contains(t, view, "UMBRA TERMINAL")
	assert.NotContains(t, view, "2025")
}
