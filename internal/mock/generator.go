// Package mock produces random, schema-valid storage records for seeding and
// tests. It never touches the store.
package mock

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/regulardicers/dicers-backend/internal/model"
)

// Context slots carry ids of already stored parents.
const (
	SlotChatID      = "chat_id"
	SlotUserID      = "user_id"
	SlotEventID     = "event_id"
	SlotEventUserID = "event_user_id"
)

// Context maps a slot name to a stored id.
type Context map[string]int64

// string lengths
const (
	nameLen        = 16
	descriptionLen = 64
	textLen        = 128
	captionLen     = 16
)

type Generator struct {
	rng *rand.Rand
}

func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// NewSeeded returns a generator whose output is fully determined by seed.
func NewSeeded(seed uint64) *Generator {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func (g *Generator) User() model.User {
	return model.User{
		TelegramID:             g.telegramID(),
		Username:               g.optionalString(nameLen),
		FirstName:              g.randString(nameLen),
		LastName:               g.optionalString(nameLen),
		IsBot:                  g.randBool(),
		HasPrivateConversation: g.randBool(),
	}
}

func (g *Generator) Chat() model.Chat {
	return model.Chat{
		ChatType:        model.ChatType(g.rng.IntN(3)),
		TelegramID:      g.telegramID(),
		Title:           g.randString(nameLen),
		Description:     g.optionalString(descriptionLen),
		CurrentKeyboard: model.KeyboardType(g.rng.IntN(3)),
		SpamDetection:   g.randBool(),
	}
}

// ChatUser needs chat_id and user_id.
func (g *Generator) ChatUser(c Context) (model.ChatUser, bool) {
	chatID, ok := c[SlotChatID]
	if !ok {
		return model.ChatUser{}, false
	}
	userID, ok := c[SlotUserID]
	if !ok {
		return model.ChatUser{}, false
	}

	cu := model.ChatUser{
		UserID:   userID,
		ChatID:   chatID,
		Spamming: g.randBool(),
		Admin:    g.randBool(),
	}
	if !cu.Admin {
		cu.Muted = g.randBool()
	}
	return cu, true
}

// Event needs chat_id.
func (g *Generator) Event(c Context) (model.Event, bool) {
	chatID, ok := c[SlotChatID]
	if !ok {
		return model.Event{}, false
	}
	return model.Event{
		ChatID:    chatID,
		Timestamp: g.randTime(),
		Active:    g.randBool(),
	}, true
}

// EventUser needs event_id and user_id.
func (g *Generator) EventUser(c Context) (model.EventUser, bool) {
	eventID, ok := c[SlotEventID]
	if !ok {
		return model.EventUser{}, false
	}
	userID, ok := c[SlotUserID]
	if !ok {
		return model.EventUser{}, false
	}
	return model.EventUser{
		EventID: eventID,
		UserID:  userID,
		Attends: g.randBool(),
	}, true
}

// UserRoll needs event_user_id.
func (g *Generator) UserRoll(c Context) (model.UserRoll, bool) {
	eventUserID, ok := c[SlotEventUserID]
	if !ok {
		return model.UserRoll{}, false
	}
	return model.UserRoll{
		EventUserID:     eventUserID,
		CallbackQueryID: g.randString(nameLen),
		Jumbo:           g.randBool(),
		Alcoholic:       g.randBool(),
		Roll:            int32(g.rng.IntN(6) + 1),
		Drink:           g.randString(nameLen),
	}, true
}

// Message needs chat_id; user_id, when present, becomes the sender. Soft
// references to other rows are left empty.
func (g *Generator) Message(c Context) (model.Message, bool) {
	chatID, ok := c[SlotChatID]
	if !ok {
		return model.Message{}, false
	}

	m := model.Message{
		TelegramID: g.telegramID(),
		ChatID:     chatID,
		Timestamp:  g.randTime(),
	}
	if userID, ok := c[SlotUserID]; ok {
		m.UserID = &userID
	}
	if g.randBool() {
		ts := g.randTime()
		m.EditTimestamp = &ts
	}
	m.Text = g.optionalString(textLen)
	m.Caption = g.optionalString(captionLen)
	m.NewChatTitle = g.optionalString(nameLen)
	m.GroupChatCreated = g.optionalBool()
	m.SupergroupChatCreated = g.optionalBool()
	return m, true
}

// telegramID spans the whole int32 range, negatives included.
func (g *Generator) telegramID() int64 {
	return int64(int32(g.rng.Uint32()))
}

func (g *Generator) randBool() bool {
	return g.rng.IntN(2) == 0
}

func (g *Generator) optionalBool() *bool {
	if !g.randBool() {
		return nil
	}
	v := g.randBool()
	return &v
}

// randString returns n printable ASCII characters (33..125), lowercased.
func (g *Generator) randString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(33 + g.rng.IntN(125-33+1))
	}
	return strings.ToLower(string(b))
}

func (g *Generator) optionalString(n int) *string {
	if !g.randBool() {
		return nil
	}
	s := g.randString(n)
	return &s
}

// randTime is whole seconds in the unsigned 32-bit epoch range.
func (g *Generator) randTime() time.Time {
	return time.Unix(int64(g.rng.Uint32()), 0).UTC()
}
