package mock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regulardicers/dicers-backend/internal/model"
)

func TestSameSeedSameOutput(t *testing.T) {
	a, b := NewSeeded(42), NewSeeded(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.User(), b.User())
		assert.Equal(t, a.Chat(), b.Chat())
	}
	assert.NotEqual(t, NewSeeded(1).User(), NewSeeded(2).User())
}

func TestStrings_PrintableLowercaseFixedLength(t *testing.T) {
	g := NewSeeded(7)
	for i := 0; i < 200; i++ {
		u := g.User()
		require.Len(t, u.FirstName, 16)
		for _, r := range u.FirstName {
			assert.True(t, r >= 33 && r <= 125, "char %q out of range", r)
			assert.False(t, r >= 'A' && r <= 'Z', "char %q not lowercased", r)
		}

		c := g.Chat()
		require.Len(t, c.Title, 16)
		if c.Description != nil {
			assert.Len(t, *c.Description, 64)
		}
		assert.True(t, c.ChatType.Valid())
		assert.True(t, c.CurrentKeyboard.Valid())
	}
}

func TestChatUser_AdminNeverMuted(t *testing.T) {
	g := NewSeeded(3)
	ctx := Context{SlotChatID: 1, SlotUserID: 2}
	admins := 0
	for i := 0; i < 500; i++ {
		cu, ok := g.ChatUser(ctx)
		require.True(t, ok)
		assert.Equal(t, int64(1), cu.ChatID)
		assert.Equal(t, int64(2), cu.UserID)
		if cu.Admin {
			admins++
			assert.False(t, cu.Muted)
		}
	}
	assert.Greater(t, admins, 0)
}

func TestUserRoll_RollInRange(t *testing.T) {
	g := NewSeeded(9)
	seen := map[int32]bool{}
	for i := 0; i < 600; i++ {
		r, ok := g.UserRoll(Context{SlotEventUserID: 5})
		require.True(t, ok)
		require.GreaterOrEqual(t, r.Roll, int32(1))
		require.LessOrEqual(t, r.Roll, int32(6))
		seen[r.Roll] = true
		assert.Len(t, r.CallbackQueryID, 16)
		assert.Len(t, r.Drink, 16)
	}
	assert.Len(t, seen, 6)
}

func TestMissingSlotsYieldNothing(t *testing.T) {
	g := NewSeeded(1)

	_, ok := g.EventUser(Context{SlotEventID: 1})
	assert.False(t, ok, "event_user without user_id")
	_, ok = g.EventUser(Context{SlotUserID: 1})
	assert.False(t, ok, "event_user without event_id")
	_, ok = g.ChatUser(nil)
	assert.False(t, ok)
	_, ok = g.Event(Context{SlotUserID: 1})
	assert.False(t, ok)
	_, ok = g.UserRoll(Context{})
	assert.False(t, ok)
	_, ok = g.Message(Context{SlotUserID: 1})
	assert.False(t, ok)

	eu, ok := g.EventUser(Context{SlotEventID: 1, SlotUserID: 2})
	require.True(t, ok)
	assert.Equal(t, int64(1), eu.EventID)
	assert.Equal(t, int64(2), eu.UserID)
}

func TestMessage_SenderSlotOptional(t *testing.T) {
	g := NewSeeded(11)

	m, ok := g.Message(Context{SlotChatID: 4})
	require.True(t, ok)
	assert.Nil(t, m.UserID)
	assert.Nil(t, m.ReplyToMessageID)
	assert.Nil(t, m.PinnedMessageID)
	assert.Nil(t, m.NewChatMemberIDs)
	assert.Nil(t, m.LeftChatMemberID)
	assert.Nil(t, m.MigrateToChatID)
	assert.Nil(t, m.MigrateFromChatID)

	m, ok = g.Message(Context{SlotChatID: 4, SlotUserID: 8})
	require.True(t, ok)
	require.NotNil(t, m.UserID)
	assert.Equal(t, int64(8), *m.UserID)
	if m.Text != nil {
		assert.Len(t, *m.Text, 128)
	}
	assert.Zero(t, m.Timestamp.Nanosecond())
}

func TestGenerate_Dispatch(t *testing.T) {
	g := NewSeeded(5)

	v, ok := g.Generate(KindUser, nil)
	require.True(t, ok)
	assert.IsType(t, model.User{}, v)

	v, ok = g.Generate(KindEvent, Context{SlotChatID: 1})
	require.True(t, ok)
	assert.IsType(t, model.Event{}, v)

	v, ok = g.Generate(KindEventUser, Context{SlotEventID: 1})
	assert.False(t, ok)
	assert.Nil(t, v)

	_, ok = g.Generate(Kind(99), nil)
	assert.False(t, ok)
	assert.Equal(t, "user_roll", KindUserRoll.String())
}
