package hydrator

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/regulardicers/dicers-backend/internal/domain"
	"github.com/regulardicers/dicers-backend/internal/model"
)

func toUser(u model.User) domain.User {
	return domain.User{
		ID:                     u.ID,
		TelegramID:             u.TelegramID,
		Username:               u.Username,
		FirstName:              u.FirstName,
		LastName:               u.LastName,
		IsBot:                  u.IsBot,
		HasPrivateConversation: u.HasPrivateConversation,
	}
}

// toChat panics with *model.CorruptEnumError on unmapped enum values.
func toChat(c model.Chat) domain.Chat {
	return domain.Chat{
		ID:              c.ID,
		ChatType:        c.ChatType.Must(),
		TelegramID:      c.TelegramID,
		Title:           c.Title,
		Description:     c.Description,
		CurrentKeyboard: c.CurrentKeyboard.Must(),
		SpamDetection:   c.SpamDetection,
	}
}

func (h *Hydrator) User(u model.User) domain.User {
	return toUser(u)
}

func (h *Hydrator) Users(rows []model.User) []domain.User {
	out := make([]domain.User, 0, len(rows))
	for _, u := range rows {
		out = append(out, toUser(u))
	}
	return out
}

func (h *Hydrator) Chat(c model.Chat) domain.Chat {
	return toChat(c)
}

func (h *Hydrator) Chats(rows []model.Chat) []domain.Chat {
	out := make([]domain.Chat, 0, len(rows))
	for _, c := range rows {
		out = append(out, toChat(c))
	}
	return out
}

func (h *Hydrator) Event(ctx context.Context, e model.Event) (domain.Event, error) {
	return single(h.Events(ctx, []model.Event{e}))
}

func (h *Hydrator) Events(ctx context.Context, rows []model.Event) ([]domain.Event, error) {
	chats, err := fetch(ctx, collect(rows, func(e model.Event) int64 { return e.ChatID }), h.src.Chats.ListByIDs, chatID)
	if err != nil {
		return nil, fmt.Errorf("hydrate events: %w", err)
	}

	out := make([]domain.Event, 0, len(rows))
	for _, e := range rows {
		c, ok := chats[e.ChatID]
		if !ok {
			return nil, missingRequired("event", e.ID, "chat", e.ChatID)
		}
		out = append(out, domain.Event{
			ID:        e.ID,
			Chat:      toChat(c),
			Timestamp: e.Timestamp,
			Active:    e.Active,
		})
	}
	return out, nil
}

func (h *Hydrator) ChatUser(ctx context.Context, cu model.ChatUser) (domain.ChatUser, error) {
	return single(h.ChatUsers(ctx, []model.ChatUser{cu}))
}

func (h *Hydrator) ChatUsers(ctx context.Context, rows []model.ChatUser) ([]domain.ChatUser, error) {
	var (
		chats map[int64]model.Chat
		users map[int64]model.User
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		chats, err = fetch(gctx, collect(rows, func(cu model.ChatUser) int64 { return cu.ChatID }), h.src.Chats.ListByIDs, chatID)
		return err
	})
	g.Go(func() (err error) {
		users, err = fetch(gctx, collect(rows, func(cu model.ChatUser) int64 { return cu.UserID }), h.src.Users.ListByIDs, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("hydrate chat users: %w", err)
	}

	out := make([]domain.ChatUser, 0, len(rows))
	for _, cu := range rows {
		c, ok := chats[cu.ChatID]
		if !ok {
			return nil, missingRequired("chat_user", cu.ID, "chat", cu.ChatID)
		}
		u, ok := users[cu.UserID]
		if !ok {
			return nil, missingRequired("chat_user", cu.ID, "user", cu.UserID)
		}
		out = append(out, domain.ChatUser{
			ID:       cu.ID,
			User:     toUser(u),
			Chat:     toChat(c),
			Spamming: cu.Spamming,
			Muted:    cu.Muted,
			Admin:    cu.Admin,
		})
	}
	return out, nil
}

func (h *Hydrator) EventUser(ctx context.Context, eu model.EventUser) (domain.EventUser, error) {
	return single(h.EventUsers(ctx, []model.EventUser{eu}))
}

func (h *Hydrator) EventUsers(ctx context.Context, rows []model.EventUser) ([]domain.EventUser, error) {
	var (
		events map[int64]model.Event
		users  map[int64]model.User
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		events, err = fetch(gctx, collect(rows, func(eu model.EventUser) int64 { return eu.EventID }), h.src.Events.ListByIDs, eventID)
		return err
	})
	g.Go(func() (err error) {
		users, err = fetch(gctx, collect(rows, func(eu model.EventUser) int64 { return eu.UserID }), h.src.Users.ListByIDs, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("hydrate event users: %w", err)
	}

	hydrated, err := h.Events(ctx, values(events))
	if err != nil {
		return nil, err
	}
	byID := index(hydrated, domainEventID)

	out := make([]domain.EventUser, 0, len(rows))
	for _, eu := range rows {
		e, ok := byID[eu.EventID]
		if !ok {
			return nil, missingRequired("event_user", eu.ID, "event", eu.EventID)
		}
		u, ok := users[eu.UserID]
		if !ok {
			return nil, missingRequired("event_user", eu.ID, "user", eu.UserID)
		}
		out = append(out, domain.EventUser{
			ID:      eu.ID,
			Event:   e,
			User:    toUser(u),
			Attends: eu.Attends,
		})
	}
	return out, nil
}

func (h *Hydrator) UserRoll(ctx context.Context, ur model.UserRoll) (domain.UserRoll, error) {
	return single(h.UserRolls(ctx, []model.UserRoll{ur}))
}

func (h *Hydrator) UserRolls(ctx context.Context, rows []model.UserRoll) ([]domain.UserRoll, error) {
	eventUsers, err := fetch(ctx, collect(rows, func(ur model.UserRoll) int64 { return ur.EventUserID }), h.src.EventUsers.ListByIDs, eventUserID)
	if err != nil {
		return nil, fmt.Errorf("hydrate user rolls: %w", err)
	}
	hydrated, err := h.EventUsers(ctx, values(eventUsers))
	if err != nil {
		return nil, err
	}
	byID := index(hydrated, domainEventUserID)

	out := make([]domain.UserRoll, 0, len(rows))
	for _, ur := range rows {
		eu, ok := byID[ur.EventUserID]
		if !ok {
			return nil, missingRequired("user_roll", ur.ID, "event_user", ur.EventUserID)
		}
		out = append(out, domain.UserRoll{
			ID:              ur.ID,
			EventUser:       eu,
			CallbackQueryID: ur.CallbackQueryID,
			Jumbo:           ur.Jumbo,
			Alcoholic:       ur.Alcoholic,
			Roll:            ur.Roll,
			Drink:           ur.Drink,
		})
	}
	return out, nil
}
