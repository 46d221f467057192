// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// PanelBreakpoint is the minimum width at which side panels are shown.
const PanelBreakpoint = 100

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// BOOT SCREEN
	// ==========================================================================

	BootTitle    lipgloss.Style
	BootSubtitle lipgloss.Style
	BootPercent  lipgloss.Style

	// ==========================================================================
	// NAV BAR
	// ==========================================================================

	Nav         lipgloss.Style
	NavBrand    lipgloss.Style
	NavContract lipgloss.Style
	NavHint     lipgloss.Style

	// ==========================================================================
	// PANELS
	// ==========================================================================

	Panel      lipgloss.Style
	PanelTitle lipgloss.Style
	PanelLabel lipgloss.Style
	PanelValue lipgloss.Style
	PanelOK    lipgloss.Style

	// ==========================================================================
	// TERMINAL HEADER
	// ==========================================================================

	TerminalHeader lipgloss.Style
	TerminalTitle  lipgloss.Style
	TerminalDate   lipgloss.Style

	// ==========================================================================
	// TRANSCRIPT
	// ==========================================================================

	Terminal   lipgloss.Style
	Timestamp  lipgloss.Style
	UserTag    lipgloss.Style
	UserText   lipgloss.Style
	SystemTag  lipgloss.Style
	SystemText lipgloss.Style
	UmbraTag   lipgloss.Style
	UmbraText  lipgloss.Style
	Thinking   lipgloss.Style

	// ==========================================================================
	// INPUT
	// ==========================================================================

	InputContainer lipgloss.Style
	InputPrompt    lipgloss.Style
	Execute        lipgloss.Style
	ExecuteOff     lipgloss.Style

	// Help line
	Help lipgloss.Style
}

// NewTheme creates a theme. mode is "dark", "light" or "auto"; auto asks
// the terminal for its background.
func NewTheme(mode string) *Theme {
	colorProfile := termenv.ColorProfile()

	var isDark bool
	switch strings.ToLower(mode) {
	case "dark":
		isDark = true
	case "light":
		isDark = false
	default:
		isDark = termenv.HasDarkBackground()
	}
	lipgloss.SetHasDarkBackground(isDark)

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}
	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// Boot screen
	t.BootTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple).
		Padding(0, 2)

	t.BootSubtitle = lipgloss.NewStyle().
		Foreground(Cyan).
		Italic(true)

	t.BootPercent = lipgloss.NewStyle().
		Foreground(TextSecondary)

	// Nav bar
	t.Nav = lipgloss.NewStyle().
		Background(SurfaceDim).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.NavBrand = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.NavContract = lipgloss.NewStyle().
		Foreground(Cyan).
		Underline(true)

	t.NavHint = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Panels
	t.Panel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(0, 1)

	t.PanelTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Magenta)

	t.PanelLabel = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.PanelValue = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.PanelOK = lipgloss.NewStyle().
		Foreground(Emerald)

	// Terminal header
	t.TerminalHeader = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Overlay)

	t.TerminalTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.TerminalDate = lipgloss.NewStyle().
		Foreground(TextSecondary)

	// Transcript
	t.Terminal = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Cyan).
		Padding(0, 1)

	t.Timestamp = lipgloss.NewStyle().Foreground(TextMuted)
	t.UserTag = lipgloss.NewStyle().Bold(true).Foreground(Cyan)
	t.UserText = lipgloss.NewStyle().Foreground(Cyan)
	t.SystemTag = lipgloss.NewStyle().Bold(true).Foreground(Amber)
	t.SystemText = lipgloss.NewStyle().Foreground(Amber)
	t.UmbraTag = lipgloss.NewStyle().Bold(true).Foreground(Purple)
	t.UmbraText = lipgloss.NewStyle().Foreground(TextPrimary)
	t.Thinking = lipgloss.NewStyle().Foreground(Purple).Italic(true)

	// Input
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Overlay)

	t.InputPrompt = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)

	t.Execute = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(Purple).
		Padding(0, 1)

	t.ExecuteOff = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(Overlay).
		Padding(0, 1)

	t.Help = lipgloss.NewStyle().Foreground(TextMuted)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < PanelBreakpoint {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-99 columns
	LayoutWide                     // >= 100 columns, side panels shown
)

// String returns the layout mode name.
func (m LayoutMode) String() string {
	switch m {
	case LayoutNarrow:
		return "narrow"
	case LayoutMedium:
		return "medium"
	default:
		return "wide"
	}
}
