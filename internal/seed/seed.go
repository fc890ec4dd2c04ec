// Package seed fills the store with generated data.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/regulardicers/dicers-backend/internal/mock"
	"github.com/regulardicers/dicers-backend/internal/repository"
)

// Report counts the rows written by Populate.
type Report struct {
	Users      int
	Chats      int
	ChatUsers  int
	Events     int
	EventUsers int
	UserRolls  int
	Messages   int
}

type Seeder struct {
	gen   *mock.Generator
	repos *repository.Repositories
	log   *slog.Logger
}

func New(gen *mock.Generator, repos *repository.Repositories, log *slog.Logger) *Seeder {
	if log == nil {
		log = slog.Default()
	}
	return &Seeder{gen: gen, repos: repos, log: log}
}

// Populate runs n rounds. Each round stores a user and a chat, links them,
// opens an event for the chat with the user as participant, rolls a dice if
// the user attends and posts one message. The first failing write stops it.
func (s *Seeder) Populate(ctx context.Context, n int) (Report, error) {
	var rep Report
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		if err := s.round(ctx, &rep); err != nil {
			return rep, fmt.Errorf("seed round %d: %w", i, err)
		}
	}
	s.log.InfoContext(ctx, "seed: database populated",
		"rounds", n,
		"users", rep.Users,
		"chats", rep.Chats,
		"events", rep.Events,
		"user_rolls", rep.UserRolls,
		"messages", rep.Messages,
	)
	return rep, nil
}

func (s *Seeder) round(ctx context.Context, rep *Report) error {
	u := s.gen.User()
	user, err := s.repos.Users.Upsert(ctx, &u)
	if err != nil {
		return err
	}
	rep.Users++

	c := s.gen.Chat()
	chat, err := s.repos.Chats.Upsert(ctx, &c)
	if err != nil {
		return err
	}
	rep.Chats++

	slots := mock.Context{mock.SlotChatID: chat.ID, mock.SlotUserID: user.ID}

	cu, ok := s.gen.ChatUser(slots)
	if !ok {
		return errMissingSlot(mock.KindChatUser)
	}
	if _, err := s.repos.ChatUsers.Upsert(ctx, &cu); err != nil {
		return err
	}
	rep.ChatUsers++

	e, ok := s.gen.Event(slots)
	if !ok {
		return errMissingSlot(mock.KindEvent)
	}
	event, err := s.repos.Events.Upsert(ctx, &e)
	if err != nil {
		return err
	}
	rep.Events++

	slots[mock.SlotEventID] = event.ID
	eu, ok := s.gen.EventUser(slots)
	if !ok {
		return errMissingSlot(mock.KindEventUser)
	}
	eventUser, err := s.repos.EventUsers.Upsert(ctx, &eu)
	if err != nil {
		return err
	}
	rep.EventUsers++

	if eventUser.Attends {
		slots[mock.SlotEventUserID] = eventUser.ID
		ur, ok := s.gen.UserRoll(slots)
		if !ok {
			return errMissingSlot(mock.KindUserRoll)
		}
		if _, err := s.repos.UserRolls.Upsert(ctx, &ur); err != nil {
			return err
		}
		rep.UserRolls++
	}

	m, ok := s.gen.Message(slots)
	if !ok {
		return errMissingSlot(mock.KindMessage)
	}
	if _, err := s.repos.Messages.Upsert(ctx, &m); err != nil {
		return err
	}
	rep.Messages++
	return nil
}

func errMissingSlot(k mock.Kind) error {
	return fmt.Errorf("generator produced no %s", k)
}
