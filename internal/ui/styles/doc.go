// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the umbra TUI.
//
// All colors use Lip Gloss AdaptiveColor so the neon palette stays legible
// on both dark and light terminals.
//
// # Key Types
//
//   - Theme: every lipgloss style used by the UI, plus layout size
//   - LayoutMode: narrow, medium or wide (side panels)
//   - SpinnerConfig: frame sets for spinners
//
// # Usage
//
//	theme := styles.NewTheme("auto")
//	theme.SetSize(width, height)
//	if theme.GetLayoutMode() == styles.LayoutWide {
//	    // render side panels
//	}
package styles
