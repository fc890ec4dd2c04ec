package hydrator

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/regulardicers/dicers-backend/internal/domain"
	"github.com/regulardicers/dicers-backend/internal/model"
)

func (h *Hydrator) Message(ctx context.Context, m model.Message) (domain.Message, error) {
	return single(h.Messages(ctx, []model.Message{m}))
}

// Messages loads chats, migration chats and users concurrently. Only the
// message chat is required; the other batches may fail and are then handled
// by the policy like any other miss.
func (h *Hydrator) Messages(ctx context.Context, rows []model.Message) ([]domain.Message, error) {
	var chatIDs, migrateIDs, userIDs []int64
	for _, m := range rows {
		chatIDs = append(chatIDs, m.ChatID)
		appendRef(&migrateIDs, m.MigrateToChatID)
		appendRef(&migrateIDs, m.MigrateFromChatID)
		appendRef(&userIDs, m.UserID)
		appendRef(&userIDs, m.LeftChatMemberID)
		userIDs = append(userIDs, m.NewChatMemberIDs...)
	}

	var (
		chats        map[int64]model.Chat
		migrateChats map[int64]model.Chat
		users        map[int64]model.User
		migrateErr   error
		usersErr     error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		chats, err = fetch(gctx, chatIDs, h.src.Chats.ListByIDs, chatID)
		return err
	})
	g.Go(func() error {
		migrateChats, migrateErr = fetch(gctx, migrateIDs, h.src.Chats.ListByIDs, chatID)
		return nil
	})
	g.Go(func() error {
		users, usersErr = fetch(gctx, userIDs, h.src.Users.ListByIDs, userID)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("hydrate messages: %w", err)
	}

	out := make([]domain.Message, 0, len(rows))
	for _, row := range rows {
		c, ok := chats[row.ChatID]
		if !ok {
			return nil, missingRequired("message", row.ID, "chat", row.ChatID)
		}

		m := domain.Message{
			ID:                    row.ID,
			TelegramID:            row.TelegramID,
			Chat:                  toChat(c),
			Timestamp:             row.Timestamp,
			EditTimestamp:         row.EditTimestamp,
			Text:                  row.Text,
			Caption:               row.Caption,
			ReplyToMessageID:      row.ReplyToMessageID,
			PinnedMessageID:       row.PinnedMessageID,
			NewChatTitle:          row.NewChatTitle,
			GroupChatCreated:      row.GroupChatCreated,
			SupergroupChatCreated: row.SupergroupChatCreated,
		}

		var err error
		if m.User, err = resolve(ctx, h, MessageSender, row.ID, row.UserID, users, usersErr, toUser); err != nil {
			return nil, err
		}
		if m.LeftChatMember, err = resolve(ctx, h, MessageLeftChatMember, row.ID, row.LeftChatMemberID, users, usersErr, toUser); err != nil {
			return nil, err
		}
		if m.MigrateToChat, err = resolve(ctx, h, MessageMigrateToChat, row.ID, row.MigrateToChatID, migrateChats, migrateErr, toChat); err != nil {
			return nil, err
		}
		if m.MigrateFromChat, err = resolve(ctx, h, MessageMigrateFromChat, row.ID, row.MigrateFromChatID, migrateChats, migrateErr, toChat); err != nil {
			return nil, err
		}

		// each member resolves on its own; unresolved ones are skipped
		for _, id := range row.NewChatMemberIDs {
			if u, ok := users[id]; ok {
				m.NewChatMembers = append(m.NewChatMembers, toUser(u))
				continue
			}
			if err := h.miss(ctx, MessageNewChatMembers, "message", row.ID, id, usersErr); err != nil {
				return nil, err
			}
		}

		out = append(out, m)
	}
	return out, nil
}

// resolve returns nil for a nil ref and for a dropped miss.
func resolve[T, D any](ctx context.Context, h *Hydrator, rel Relation, rowID int64, ref *int64, found map[int64]T, lookupErr error, conv func(T) D) (*D, error) {
	if ref == nil {
		return nil, nil
	}
	if v, ok := found[*ref]; ok {
		d := conv(v)
		return &d, nil
	}
	return nil, h.miss(ctx, rel, "message", rowID, *ref, lookupErr)
}

func appendRef(ids *[]int64, ref *int64) {
	if ref != nil {
		*ids = append(*ids, *ref)
	}
}
