// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// NEON ACCENT COLORS
// =============================================================================

// Purple - Primary accent, UMBRA lines, borders
var Purple = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A855F7"}

// PurpleDeep - Panel backgrounds and the empty part of the boot bar
var PurpleDeep = lipgloss.AdaptiveColor{Light: "#EDE9FE", Dark: "#2E1065"}

// Cyan - Brand color, user lines, prompt
var Cyan = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// Magenta - Glow accents on titles
var Magenta = lipgloss.AdaptiveColor{Light: "#C026D3", Dark: "#E879F9"}

// Emerald - Online/active indicators
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// Amber - System lines
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Surface - Main background
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#0A0A12"}

// SurfaceDim - Nav bar background
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F5F3FF", Dark: "#11111B"}

// Overlay - Borders, separators
var Overlay = lipgloss.AdaptiveColor{Light: "#DDD6FE", Dark: "#3B0764"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - Main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#E9D5FF"}

// TextSecondary - Labels
var TextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A5B4FC"}

// TextMuted - Timestamps, hints
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

// TextInverse - Text on colored backgrounds
var TextInverse = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#0A0A12"}

// =============================================================================
// SPECIAL EFFECTS
// =============================================================================

// Gradient ends for the boot progress bar, as hex strings for bubbles/progress.
const (
	GradientStartHex = "#A855F7"
	GradientEndHex   = "#22D3EE"
)

// GradientStart/GradientEnd as adaptive colors for lipgloss.
var (
	GradientStart = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: GradientStartHex}
	GradientEnd   = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: GradientEndHex}
)

// FocusRing color
var FocusRing = Cyan

// =============================================================================
// STATUS INDICATORS
// =============================================================================

// StatusIndicatorSet contains text indicators for status states.
type StatusIndicatorSet struct {
	Online  string
	Standby string
	Pending string
}

// StatusIndicators are ASCII-only so they render on every terminal.
var StatusIndicators = StatusIndicatorSet{
	Online:  "[*]",
	Standby: "[ ]",
	Pending: "[~]",
}
