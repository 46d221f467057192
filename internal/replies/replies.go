// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package replies holds the canned UMBRA responses and the selection logic.
package replies

import (
	"math/rand/v2"
	"time"
)

// Default is the fixed set of simulated replies.
var Default = []string{
	"Processing your request through neural networks...",
	"I understand. Let me analyze that for you.",
	"Interesting query. My language model is processing...",
	"Accessing knowledge base. Please standby.",
	"Your request has been processed. Here's my analysis...",
}

// Source yields uniformly distributed ints in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// PickReply returns one entry of list chosen by src.
// An empty list yields "". Out-of-range indexes from src are clamped.
func PickReply(src Source, list []string) string {
	if len(list) == 0 {
		return ""
	}
	i := src.IntN(len(list))
	if i < 0 {
		i = 0
	}
	if i >= len(list) {
		i = len(list) - 1
	}
	return list[i]
}

// NewSource returns a time-seeded source for production use.
func NewSource() Source {
	seed := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Fixed is a Source that always returns the same index. Useful in tests and
// for deterministic demos.
type Fixed int

// IntN implements Source. It returns 0 when n <= 0.
func (f Fixed) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return int(f) % n
}

// Clone returns a copy of list so callers can't alias the package defaults.
func Clone(list []string) []string {
	out := make([]string, len(list))
	copy(out, list)
	return out
}
