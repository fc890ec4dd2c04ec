package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageArena_ResolvesReferences(t *testing.T) {
	one, three, missing := int64(1), int64(3), int64(99)
	arena := NewMessageArena([]Message{
		{ID: 1},
		{ID: 2, ReplyToMessageID: &one},
		{ID: 3, PinnedMessageID: &one, ReplyToMessageID: &missing},
		{ID: 4, ReplyToMessageID: &three},
	})

	require.Equal(t, 4, arena.Len())

	m2, ok := arena.Get(2)
	require.True(t, ok)
	parent, ok := arena.ReplyTo(m2)
	require.True(t, ok)
	assert.Equal(t, int64(1), parent.ID)

	m3, _ := arena.Get(3)
	pinned, ok := arena.Pinned(m3)
	require.True(t, ok)
	assert.Equal(t, int64(1), pinned.ID)
	_, ok = arena.ReplyTo(m3)
	assert.False(t, ok)

	m1, _ := arena.Get(1)
	_, ok = arena.ReplyTo(m1)
	assert.False(t, ok)
	_, ok = arena.Pinned(m1)
	assert.False(t, ok)

	assert.Equal(t, []int64{1, 2, 3, 4}, ids(arena.Messages()))
}

func ids(ms []Message) []int64 {
	out := make([]int64, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.ID)
	}
	return out
}
