package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/regulardicers/dicers-backend/internal/db"
	"github.com/regulardicers/dicers-backend/internal/hydrator"
	"github.com/regulardicers/dicers-backend/internal/model"
	"github.com/regulardicers/dicers-backend/internal/query"
	"github.com/regulardicers/dicers-backend/internal/repository"
)

func newTestService(t *testing.T, opts ...hydrator.Option) (*Service, *gorm.DB) {
	t.Helper()
	gdb, err := db.NewMemoryDB()
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(gdb))
	repos := repository.NewGormRepositories(gdb)
	return New(repos, NewHydrator(repos, opts...)), gdb
}

func ptr[T any](v T) *T { return &v }

func TestUpsertUser_ReturnsStoredIdentity(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	first, err := s.UpsertUser(ctx, &model.User{TelegramID: 5, FirstName: "a"})
	if err != nil {
		t.Fatalf("upsert user: %v", err)
	}
	second, err := s.UpsertUser(ctx, &model.User{TelegramID: 5, FirstName: "b"})
	if err != nil {
		t.Fatalf("upsert user again: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected same id, got %d and %d", first.ID, second.ID)
	}
	if second.FirstName != "b" {
		t.Fatalf("expected overwritten first name, got %q", second.FirstName)
	}

	got, err := s.UserByTelegramID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestChats_FilterAndPagination(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	_, err := s.UpsertChat(ctx, &model.Chat{TelegramID: 1, Title: "foo", ChatType: model.ChatTypeGroup})
	require.NoError(t, err)
	_, err = s.UpsertChat(ctx, &model.Chat{TelegramID: 2, Title: "bar", SpamDetection: true, ChatType: model.ChatTypeSupergroup})
	require.NoError(t, err)
	_, err = s.UpsertChat(ctx, &model.Chat{TelegramID: 3, Title: "baz", ChatType: model.ChatTypePrivate})
	require.NoError(t, err)

	chats, err := s.Chats(ctx, nil, &query.ChatFilter{Title: ptr("foo"), SpamDetection: ptr(true)})
	require.NoError(t, err)
	require.Len(t, chats, 2)
	assert.Equal(t, "foo", chats[0].Title)
	assert.Equal(t, "bar", chats[1].Title)
	assert.Equal(t, model.ChatTypeSupergroup, chats[1].ChatType)

	byType, err := s.Chats(ctx, nil, &query.ChatFilter{ChatType: ptr(model.ChatTypePrivate)})
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.Equal(t, "baz", byType[0].Title)

	all, err := s.Chats(ctx, nil, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	empty, err := s.Chats(ctx, nil, &query.ChatFilter{})
	require.NoError(t, err)
	assert.Equal(t, all, empty)

	page, err := s.Chats(ctx, &query.Constraints{Limit: 1, Offset: 2}, nil)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "baz", page[0].Title)
}

func TestEventFlow_RollsAreHydratedThroughAllLevels(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	chat, err := s.UpsertChat(ctx, &model.Chat{TelegramID: 1, Title: "dicers"})
	require.NoError(t, err)
	user, err := s.UpsertUser(ctx, &model.User{TelegramID: 2, FirstName: "ann"})
	require.NoError(t, err)
	event, err := s.UpsertEvent(ctx, &model.Event{ChatID: chat.ID, Timestamp: time.Unix(60, 0).UTC(), Active: true})
	require.NoError(t, err)
	assert.Equal(t, chat, event.Chat)

	eu, err := s.UpsertEventUser(ctx, &model.EventUser{EventID: event.ID, UserID: user.ID, Attends: true})
	require.NoError(t, err)
	roll, err := s.UpsertUserRoll(ctx, &model.UserRoll{EventUserID: eu.ID, CallbackQueryID: "cb1", Roll: 3, Drink: "caipi"})
	require.NoError(t, err)
	assert.Equal(t, "ann", roll.EventUser.User.FirstName)
	assert.Equal(t, "dicers", roll.EventUser.Event.Chat.Title)

	rolls, err := s.UserRolls(ctx, nil)
	require.NoError(t, err)
	require.Len(t, rolls, 1)
	assert.Equal(t, roll, rolls[0])

	byID, err := s.UserRoll(ctx, roll.ID)
	require.NoError(t, err)
	assert.Equal(t, roll, byID)

	participants, err := s.EventUsersByChat(ctx, chat.ID)
	require.NoError(t, err)
	require.Len(t, participants, 1)
	assert.True(t, participants[0].Attends)

	events, err := s.Events(ctx, nil)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, events[0].Timestamp.Equal(time.Unix(60, 0)))

	_, err = s.UpsertUserRoll(ctx, &model.UserRoll{EventUserID: eu.ID, CallbackQueryID: "cb2", Roll: 7, Drink: "x"})
	assert.ErrorIs(t, err, repository.ErrConstraintViolation)
}

func TestChatUsers_AdminUnmuted(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	chat, err := s.UpsertChat(ctx, &model.Chat{TelegramID: 1, Title: "c"})
	require.NoError(t, err)
	user, err := s.UpsertUser(ctx, &model.User{TelegramID: 2, FirstName: "u"})
	require.NoError(t, err)

	cu, err := s.UpsertChatUser(ctx, &model.ChatUser{ChatID: chat.ID, UserID: user.ID, Admin: true, Muted: true})
	require.NoError(t, err)
	assert.True(t, cu.Admin)
	assert.False(t, cu.Muted)

	byChat, err := s.ChatUsersByChat(ctx, chat.ID)
	require.NoError(t, err)
	byUser, err := s.ChatUsersByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, byChat, byUser)
}

func TestMessage_PartialHydration(t *testing.T) {
	var drops []hydrator.Relation
	s, _ := newTestService(t, hydrator.WithDropHook(func(r hydrator.Relation) { drops = append(drops, r) }))
	ctx := context.Background()

	chat, err := s.UpsertChat(ctx, &model.Chat{TelegramID: 1, Title: "c"})
	require.NoError(t, err)
	user, err := s.UpsertUser(ctx, &model.User{TelegramID: 2, FirstName: "u"})
	require.NoError(t, err)

	m, err := s.UpsertMessage(ctx, &model.Message{
		TelegramID:       100,
		ChatID:           chat.ID,
		UserID:           &user.ID,
		Timestamp:        time.Unix(10, 0).UTC(),
		MigrateToChatID:  ptr(int64(999)),
		LeftChatMemberID: ptr(int64(998)),
		NewChatMemberIDs: []int64{user.ID, 997},
	})
	require.NoError(t, err)

	require.NotNil(t, m.User)
	assert.Equal(t, user.ID, m.User.ID)
	assert.Nil(t, m.MigrateToChat)
	assert.Nil(t, m.LeftChatMember)
	require.Len(t, m.NewChatMembers, 1)
	assert.Equal(t, user.ID, m.NewChatMembers[0].ID)
	assert.Len(t, drops, 3)

	got, err := s.Message(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestMessagesByChat_ArenaResolvesReplies(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	chat, err := s.UpsertChat(ctx, &model.Chat{TelegramID: 1, Title: "c"})
	require.NoError(t, err)
	user, err := s.UpsertUser(ctx, &model.User{TelegramID: 2, FirstName: "u"})
	require.NoError(t, err)

	root, err := s.UpsertMessage(ctx, &model.Message{TelegramID: 1, ChatID: chat.ID, UserID: &user.ID, Timestamp: time.Unix(1, 0).UTC()})
	require.NoError(t, err)
	reply, err := s.UpsertMessage(ctx, &model.Message{TelegramID: 2, ChatID: chat.ID, Timestamp: time.Unix(2, 0).UTC(), ReplyToMessageID: &root.ID})
	require.NoError(t, err)

	arena, err := s.MessagesByChat(ctx, chat.ID)
	require.NoError(t, err)
	require.Equal(t, 2, arena.Len())

	got, ok := arena.Get(reply.ID)
	require.True(t, ok)
	parent, ok := arena.ReplyTo(got)
	require.True(t, ok)
	assert.Equal(t, root.ID, parent.ID)
	assert.Nil(t, got.User)

	mine, err := s.MessagesByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, root.ID, mine[0].ID)
}

func TestCocktails(t *testing.T) {
	s, gdb := newTestService(t)
	ctx := context.Background()

	lime := model.Ingredient{Name: "lime"}
	require.NoError(t, gdb.Create(&lime).Error)
	caipi := model.Cocktail{Name: "caipirinha", Alcoholic: true, Category: model.CocktailCategoryCaipi}
	require.NoError(t, gdb.Create(&caipi).Error)
	frozen := model.Cocktail{Name: "frozen", Category: model.CocktailCategoryFrozenMargaritas}
	require.NoError(t, gdb.Create(&frozen).Error)
	require.NoError(t, gdb.Create(&model.CocktailIngredient{CocktailID: caipi.ID, IngredientID: lime.ID}).Error)

	cocktails, err := s.Cocktails(ctx, nil)
	require.NoError(t, err)
	require.Len(t, cocktails, 2)
	require.Len(t, cocktails[0].Ingredients, 1)
	assert.Equal(t, "lime", cocktails[0].Ingredients[0].Name)
	assert.Empty(t, cocktails[1].Ingredients)
	assert.Equal(t, "Frozen Margaritas", cocktails[1].Category.String())

	links, err := s.CocktailIngredients(ctx, nil)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "caipirinha", links[0].Cocktail.Name)
}

func TestLookups_NotFound(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	_, err := s.Message(ctx, 1)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	_, err = s.Chat(ctx, 1)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	_, err = s.EventUser(ctx, 1)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
