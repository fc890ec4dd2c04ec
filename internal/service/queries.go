package service

import (
	"context"

	"github.com/regulardicers/dicers-backend/internal/domain"
	"github.com/regulardicers/dicers-backend/internal/model"
	"github.com/regulardicers/dicers-backend/internal/query"
)

// Chats returns a page of chats. Set filter fields are combined with OR.
func (s *Service) Chats(ctx context.Context, c *query.Constraints, f *query.ChatFilter) ([]domain.Chat, error) {
	window := query.Resolve(c)

	var (
		rows []model.Chat
		err  error
	)
	if f == nil || f.IsEmpty() {
		rows, err = s.repos.Chats.List(ctx, window)
	} else {
		rows, err = s.repos.Chats.Search(ctx, *f, window)
	}
	if err != nil {
		return nil, err
	}
	return s.h.Chats(rows), nil
}

func (s *Service) Chat(ctx context.Context, id int64) (domain.Chat, error) {
	row, err := s.repos.Chats.GetByID(ctx, id)
	if err != nil {
		return domain.Chat{}, err
	}
	return s.h.Chat(*row), nil
}

func (s *Service) Users(ctx context.Context, c *query.Constraints) ([]domain.User, error) {
	rows, err := s.repos.Users.List(ctx, query.Resolve(c))
	if err != nil {
		return nil, err
	}
	return s.h.Users(rows), nil
}

func (s *Service) UserByTelegramID(ctx context.Context, telegramID int64) (domain.User, error) {
	row, err := s.repos.Users.FindByTelegramID(ctx, telegramID)
	if err != nil {
		return domain.User{}, err
	}
	return s.h.User(*row), nil
}

func (s *Service) Events(ctx context.Context, c *query.Constraints) ([]domain.Event, error) {
	rows, err := s.repos.Events.List(ctx, query.Resolve(c))
	if err != nil {
		return nil, err
	}
	return s.h.Events(ctx, rows)
}

func (s *Service) EventUser(ctx context.Context, id int64) (domain.EventUser, error) {
	row, err := s.repos.EventUsers.GetByID(ctx, id)
	if err != nil {
		return domain.EventUser{}, err
	}
	return s.h.EventUser(ctx, *row)
}

// EventUsersByChat returns the participants of every event in the chat.
func (s *Service) EventUsersByChat(ctx context.Context, chatID int64) ([]domain.EventUser, error) {
	rows, err := s.repos.EventUsers.ListByChat(ctx, chatID)
	if err != nil {
		return nil, err
	}
	return s.h.EventUsers(ctx, rows)
}

func (s *Service) UserRolls(ctx context.Context, c *query.Constraints) ([]domain.UserRoll, error) {
	rows, err := s.repos.UserRolls.List(ctx, query.Resolve(c))
	if err != nil {
		return nil, err
	}
	return s.h.UserRolls(ctx, rows)
}

func (s *Service) UserRoll(ctx context.Context, id int64) (domain.UserRoll, error) {
	row, err := s.repos.UserRolls.GetByID(ctx, id)
	if err != nil {
		return domain.UserRoll{}, err
	}
	return s.h.UserRoll(ctx, *row)
}

func (s *Service) ChatUsersByChat(ctx context.Context, chatID int64) ([]domain.ChatUser, error) {
	rows, err := s.repos.ChatUsers.ListByChat(ctx, chatID)
	if err != nil {
		return nil, err
	}
	return s.h.ChatUsers(ctx, rows)
}

func (s *Service) ChatUsersByUser(ctx context.Context, userID int64) ([]domain.ChatUser, error) {
	rows, err := s.repos.ChatUsers.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.h.ChatUsers(ctx, rows)
}

// MessagesByChat returns the chat's messages indexed for reply and pinned
// lookups.
func (s *Service) MessagesByChat(ctx context.Context, chatID int64) (*domain.MessageArena, error) {
	rows, err := s.repos.Messages.ListByChat(ctx, chatID)
	if err != nil {
		return nil, err
	}
	msgs, err := s.h.Messages(ctx, rows)
	if err != nil {
		return nil, err
	}
	return domain.NewMessageArena(msgs), nil
}

func (s *Service) MessagesByUser(ctx context.Context, userID int64) ([]domain.Message, error) {
	rows, err := s.repos.Messages.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.h.Messages(ctx, rows)
}

func (s *Service) Message(ctx context.Context, id int64) (domain.Message, error) {
	row, err := s.repos.Messages.GetByID(ctx, id)
	if err != nil {
		return domain.Message{}, err
	}
	return s.h.Message(ctx, *row)
}

// Cocktails returns a page of cocktails with their ingredients.
func (s *Service) Cocktails(ctx context.Context, c *query.Constraints) ([]domain.Cocktail, error) {
	rows, err := s.repos.Cocktails.List(ctx, query.Resolve(c))
	if err != nil {
		return nil, err
	}
	return s.h.Cocktails(ctx, rows)
}

func (s *Service) CocktailIngredients(ctx context.Context, c *query.Constraints) ([]domain.CocktailIngredient, error) {
	rows, err := s.repos.CocktailIngredients.List(ctx, query.Resolve(c))
	if err != nil {
		return nil, err
	}
	return s.h.CocktailIngredients(ctx, rows)
}
