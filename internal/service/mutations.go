package service

import (
	"context"

	"github.com/regulardicers/dicers-backend/internal/domain"
	"github.com/regulardicers/dicers-backend/internal/model"
)

// UpsertUser creates the user by Telegram ID or overwrites the existing one.
func (s *Service) UpsertUser(ctx context.Context, u *model.User) (domain.User, error) {
	stored, err := s.repos.Users.Upsert(ctx, u)
	if err != nil {
		return domain.User{}, err
	}
	return s.h.User(*stored), nil
}

func (s *Service) UpsertChat(ctx context.Context, c *model.Chat) (domain.Chat, error) {
	stored, err := s.repos.Chats.Upsert(ctx, c)
	if err != nil {
		return domain.Chat{}, err
	}
	return s.h.Chat(*stored), nil
}

func (s *Service) UpsertChatUser(ctx context.Context, cu *model.ChatUser) (domain.ChatUser, error) {
	stored, err := s.repos.ChatUsers.Upsert(ctx, cu)
	if err != nil {
		return domain.ChatUser{}, err
	}
	return s.h.ChatUser(ctx, *stored)
}

// UpsertEvent: an event with the same active flag in the chat is overwritten.
func (s *Service) UpsertEvent(ctx context.Context, e *model.Event) (domain.Event, error) {
	stored, err := s.repos.Events.Upsert(ctx, e)
	if err != nil {
		return domain.Event{}, err
	}
	return s.h.Event(ctx, *stored)
}

func (s *Service) UpsertEventUser(ctx context.Context, eu *model.EventUser) (domain.EventUser, error) {
	stored, err := s.repos.EventUsers.Upsert(ctx, eu)
	if err != nil {
		return domain.EventUser{}, err
	}
	return s.h.EventUser(ctx, *stored)
}

func (s *Service) UpsertUserRoll(ctx context.Context, ur *model.UserRoll) (domain.UserRoll, error) {
	stored, err := s.repos.UserRolls.Upsert(ctx, ur)
	if err != nil {
		return domain.UserRoll{}, err
	}
	return s.h.UserRoll(ctx, *stored)
}

func (s *Service) UpsertMessage(ctx context.Context, m *model.Message) (domain.Message, error) {
	stored, err := s.repos.Messages.Upsert(ctx, m)
	if err != nil {
		return domain.Message{}, err
	}
	return s.h.Message(ctx, *stored)
}
