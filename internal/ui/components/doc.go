// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the rendered pieces of the umbra terminal.

Components are plain values with a View method. They hold no session state;
the root model copies what they need into them before rendering.

# Components

BootScreen (boot.go) - Title, subtitle, gradient progress bar and percentage.
NavBar (navbar.go) - Brand, contract label and key hint.
Panel (panel.go) - Bordered side panel of label/value lines.
RenderMessage, RenderThinking (transcript.go) - Transcript lines.

# Usage

	theme := styles.NewTheme("auto")
	boot := components.NewBootScreen(theme)
	boot.SetSize(80, 24)
	boot.SetPercent(42)
	view := boot.View()
*/
package components
