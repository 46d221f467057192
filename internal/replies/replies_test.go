// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package replies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	next  int
	calls []int
}

func (s *stubSource) IntN(n int) int {
	s.calls = append(s.calls, n)
	return s.next
}

func TestDefault_HasFiveReplies(t *testing.T) {
	require.Len(t, Default, 5)
	for _, r := range Default {
		assert.NotEmpty(t, r)
	}
}

func TestPickReply_UsesSourceIndex(t *testing.T) {
	for i := range Default {
		src := &stubSource{next: i}
		got := PickReply(src, Default)
		assert.Equal(t, Default[i], got)
		assert.Equal(t, []int{len(Default)}, src.calls)
	}
}

func TestPickReply_EmptyList(t *testing.T) {
	src := &stubSource{}
	assert.Equal(t, "", PickReply(src, nil))
	assert.Empty(t, src.calls, "source must not be consulted for an empty list")
}

func TestPickReply_ClampsBadSource(t *testing.T) {
	list := []string{"a", "b"}
	assert.Equal(t, "a", PickReply(&stubSource{next: -3}, list))
	assert.Equal(t, "b", PickReply(&stubSource{next: 9}, list))
}

func TestFixed(t *testing.T) {
	assert.Equal(t, Default[2], PickReply(Fixed(2), Default))
	assert.Equal(t, Default[1], PickReply(Fixed(6), Default))
	assert.Equal(t, 0, Fixed(3).IntN(0))
	assert.Equal(t, 0, Fixed(3).IntN(-1))
}

func TestNewSource_StaysInRange(t *testing.T) {
	src := NewSource()
	for i := 0; i < 200; i++ {
		got := PickReply(src, Default)
		assert.Contains(t, Default, got)
	}
}

func TestClone_DoesNotAlias(t *testing.T) {
	c := Clone(Default)
	c[0] = "changed"
	assert.NotEqual(t, "changed", Default[0])
}
