package model

// chats
type Chat struct {
	ID int64 `gorm:"primaryKey;autoIncrement"`

	ChatType   ChatType `gorm:"type:smallint;not null;index"`
	TelegramID int64    `gorm:"not null;uniqueIndex"`

	Title       string  `gorm:"type:varchar(255);not null"`
	Description *string `gorm:"type:text"`

	CurrentKeyboard KeyboardType `gorm:"type:smallint;not null"`
	SpamDetection   bool         `gorm:"not null"`
}

// chat_users: membership of a user in a chat, unique per (user_id, chat_id).
type ChatUser struct {
	ID int64 `gorm:"primaryKey;autoIncrement"`

	UserID int64 `gorm:"not null;uniqueIndex:idx_chat_users_user_chat"`
	ChatID int64 `gorm:"not null;uniqueIndex:idx_chat_users_user_chat;index"`

	Spamming bool `gorm:"not null"`
	Muted    bool `gorm:"not null"`
	Admin    bool `gorm:"not null"`

	// Navigation fields, only used for the foreign key constraints.
	User *User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Chat *Chat `gorm:"foreignKey:ChatID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// Normalize applies the write-time rule that an administrator is never muted.
func (cu *ChatUser) Normalize() {
	if cu.Admin {
		cu.Muted = false
	}
}
