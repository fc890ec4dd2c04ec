package query

import "github.com/regulardicers/dicers-backend/internal/model"

// ChatFilter is a sparse chat search. Nil fields are not compared; set fields
// are joined by OR.
type ChatFilter struct {
	ID              *int64
	ChatType        *model.ChatType
	TelegramID      *int64
	Title           *string
	Description     *string
	CurrentKeyboard *model.KeyboardType
	SpamDetection   *bool
}

func (f ChatFilter) IsEmpty() bool {
	return f.Builder().Len() == 0
}

// Builder folds every set field into a predicate. Enums compare their stored
// integer.
func (f ChatFilter) Builder() *Builder {
	b := NewBuilder()
	EqIfSet(b, "title", f.Title)
	EqIfSet(b, "description", f.Description)
	EqIfSet(b, "id", f.ID)
	if f.ChatType != nil {
		b.Eq("chat_type", int16(*f.ChatType))
	}
	EqIfSet(b, "telegram_id", f.TelegramID)
	if f.CurrentKeyboard != nil {
		b.Eq("current_keyboard", int16(*f.CurrentKeyboard))
	}
	EqIfSet(b, "spam_detection", f.SpamDetection)
	return b
}
