// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"time"
)

// =============================================================================
// SPINNER ANIMATIONS
// =============================================================================

// DotsSpinner - Three-dot animation used by the thinking line
var DotsSpinner = SpinnerConfig{
	Frames: []string{".  ", ".. ", "...", " ..", "  .", "   "},
	FPS:    6,
}

// PulseSpinner - Pulsing indicator for the busy reply engine panel line
var PulseSpinner = SpinnerConfig{
	Frames: []string{"( )", "(.)", "(o)", "(O)", "(o)", "(.)"},
	FPS:    8,
}

// SpinnerConfig holds the configuration for a spinner animation.
type SpinnerConfig struct {
	Frames []string
	FPS    int
}

// Duration returns the duration for each frame.
func (s SpinnerConfig) Duration() time.Duration {
	if s.FPS <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(s.FPS)
}

// FrameAt returns the frame shown at t, so views re-rendered on any tick
// animate without keeping their own counter.
func (s SpinnerConfig) FrameAt(t time.Time) string {
	if len(s.Frames) == 0 {
		return ""
	}
	i := t.UnixNano() / int64(s.Duration())
	return s.Frames[i%int64(len(s.Frames))]
}

// =============================================================================
// PROGRESS INDICATORS
// =============================================================================

// ProgressBar characters for line mode, where no gradient bar is available.
var (
	ProgressFull    = "#"
	ProgressEmpty   = "-"
	ProgressPartial = []string{".", ":", "+"}
)

// RenderProgressBar creates a progress bar string.
// width: total width of the bar in characters
// percent: 0-100 percentage complete
func RenderProgressBar(width int, percent float64) string {
	if width <= 0 {
		return ""
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filledWidth := float64(width) * percent / 100
	fullBlocks := int(filledWidth)
	partialIndex := int((filledWidth - float64(fullBlocks)) * float64(len(ProgressPartial)+1))

	var sb strings.Builder
	sb.Grow(width)

	for i := 0; i < fullBlocks && i < width; i++ {
		sb.WriteString(ProgressFull)
	}

	if fullBlocks < width && partialIndex > 0 {
		sb.WriteString(ProgressPartial[partialIndex-1])
		fullBlocks++
	}

	for i := fullBlocks; i < width; i++ {
		sb.WriteString(ProgressEmpty)
	}

	return sb.String()
}

// =============================================================================
// BOX DRAWING
// =============================================================================

// BoxChars are ASCII box-drawing characters for line mode.
var BoxChars = struct {
	Horizontal string
	Vertical   string
	Corner     string
}{
	Horizontal: "-",
	Vertical:   "|",
	Corner:     "+",
}

// Rule returns a horizontal rule of the given width.
func Rule(width int) string {
	if width < 2 {
		return strings.Repeat(BoxChars.Horizontal, max(width, 0))
	}
	return BoxChars.Corner + strings.Repeat(BoxChars.Horizontal, width-2) + BoxChars.Corner
}
