// Package domain holds the read model: entities with their relations
// resolved into nested values.
package domain

import (
	"time"

	"github.com/regulardicers/dicers-backend/internal/model"
)

type User struct {
	ID                     int64
	TelegramID             int64
	Username               *string
	FirstName              string
	LastName               *string
	IsBot                  bool
	HasPrivateConversation bool
}

type Chat struct {
	ID              int64
	ChatType        model.ChatType
	TelegramID      int64
	Title           string
	Description     *string
	CurrentKeyboard model.KeyboardType
	SpamDetection   bool
}

type ChatUser struct {
	ID       int64
	User     User
	Chat     Chat
	Spamming bool
	Muted    bool
	Admin    bool
}

type Event struct {
	ID        int64
	Chat      Chat
	Timestamp time.Time
	Active    bool
}

type EventUser struct {
	ID      int64
	Event   Event
	User    User
	Attends bool
}

type UserRoll struct {
	ID              int64
	EventUser       EventUser
	CallbackQueryID string
	Jumbo           bool
	Alcoholic       bool
	Roll            int32
	Drink           string
}

// Message keeps reply/pinned references as ids; see MessageArena.
// Optional relations that could not be resolved are nil.
type Message struct {
	ID         int64
	TelegramID int64
	Chat       Chat
	User       *User

	Timestamp     time.Time
	EditTimestamp *time.Time
	Text          *string
	Caption       *string

	ReplyToMessageID *int64
	PinnedMessageID  *int64

	NewChatMembers  []User
	LeftChatMember  *User
	MigrateToChat   *Chat
	MigrateFromChat *Chat

	NewChatTitle          *string
	GroupChatCreated      *bool
	SupergroupChatCreated *bool
}

type Ingredient struct {
	ID   int64
	Name string
}

type Cocktail struct {
	ID          int64
	Name        string
	Jumbo       bool
	Alcoholic   bool
	Category    model.CocktailCategory
	Ingredients []Ingredient
}

type CocktailIngredient struct {
	ID         int64
	Cocktail   Cocktail
	Ingredient Ingredient
}
