// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/umbra-terminal/internal/ui/styles"
)

// Brand is the nav bar title.
const Brand = "UMBRA"

// =============================================================================
// NAV BAR
// =============================================================================

// NavBar is the top bar with the brand and the copy-contract control.
type NavBar struct {
	Contract string // Control label, e.g. "Contract: To Be Announced"
	Hint     string // Key hint shown next to the control
	Width    int
	theme    *styles.Theme
}

// NewNavBar creates a nav bar for the given control label.
func NewNavBar(theme *styles.Theme, contract string) *NavBar {
	return &NavBar{
		Contract: contract,
		Hint:     "ctrl+y",
		Width:    80,
		theme:    theme,
	}
}

// SetWidth updates the nav bar width.
func (n *NavBar) SetWidth(width int) {
	n.Width = width
}

// View renders the nav bar. The hint is dropped first when space runs out.
func (n *NavBar) View() string {
	brand := n.theme.NavBrand.Render(Brand)
	control := n.theme.NavContract.Render(n.Contract)
	hint := n.theme.NavHint.Render("[" + n.Hint + "]")

	inner := n.Width - n.theme.Nav.GetHorizontalFrameSize()
	right := control + " " + hint
	if lipgloss.Width(brand)+lipgloss.Width(right)+1 > inner {
		right = control
	}

	gap := inner - lipgloss.Width(brand) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	line := brand + strings.Repeat(" ", gap) + right
	return n.theme.Nav.Width(n.Width).Render(line)
}
