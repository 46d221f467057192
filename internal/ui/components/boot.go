// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"math"
	"strconv"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/umbra-terminal/internal/ui/styles"
)

// BootSubtitle is shown under the logo while booting.
const BootSubtitle = "Initializing Neural Interface..."

// =============================================================================
// BOOT SCREEN
// =============================================================================

// BootScreen renders the logo, a gradient progress bar and the percentage.
type BootScreen struct {
	bar     progress.Model
	percent float64

	width  int
	height int

	theme *styles.Theme
}

// NewBootScreen creates a boot screen at 0%.
func NewBootScreen(theme *styles.Theme) BootScreen {
	bar := progress.New(
		progress.WithGradient(styles.GradientStartHex, styles.GradientEndHex),
		progress.WithoutPercentage(),
	)
	return BootScreen{
		bar:   bar,
		theme: theme,
	}
}

// SetPercent sets progress in [0, 100].
func (b *BootScreen) SetPercent(p float64) {
	b.percent = math.Max(0, math.Min(100, p))
}

// SetSize updates the dimensions.
func (b *BootScreen) SetSize(width, height int) {
	b.width = width
	b.height = height

	barWidth := width - 20
	if barWidth > 60 {
		barWidth = 60
	}
	if barWidth < 10 {
		barWidth = 10
	}
	b.bar.Width = barWidth
}

// Percent returns progress rounded to a whole percent.
func (b BootScreen) Percent() int {
	return int(math.Round(b.percent))
}

// PercentLabel returns the "N% Complete" caption.
func (b BootScreen) PercentLabel() string {
	return PercentLabel(b.percent)
}

// PercentLabel formats percent rounded to a whole number as "N% Complete".
func PercentLabel(percent float64) string {
	return strconv.Itoa(int(math.Round(percent))) + "% Complete"
}

// View renders the boot screen centered in the available space.
func (b BootScreen) View() string {
	width := b.width
	if width == 0 {
		width = 80
	}
	height := b.height
	if height == 0 {
		height = 24
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		b.renderLogo(width, height),
		"",
		b.theme.BootSubtitle.Render(BootSubtitle),
		"",
		b.bar.ViewAs(b.percent/100),
		b.theme.BootPercent.Render(b.PercentLabel()),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderLogo renders the ASCII art logo, or a single word on small terminals.
func (b BootScreen) renderLogo(width, height int) string {
	if width >= 60 && height >= 16 {
		logo := ` _   _ __  __ ____  ____      _
| | | |  \/  | __ )|  _ \    / \
| | | | |\/| |  _ \| |_) |  / _ \
| |_| | |  | | |_) |  _ <  / ___ \
 \___/|_|  |_|____/|_| \_\/_/   \_\`
		return b.theme.BootTitle.Render(logo)
	}
	return b.theme.BootTitle.Render("UMBRA")
}
