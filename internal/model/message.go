package model

import (
	"time"

	"gorm.io/datatypes"
)

// messages
type Message struct {
	ID int64 `gorm:"primaryKey;autoIncrement"`

	TelegramID int64  `gorm:"not null;uniqueIndex:idx_messages_chat_telegram"`
	ChatID     int64  `gorm:"not null;uniqueIndex:idx_messages_chat_telegram"`
	UserID     *int64 `gorm:"index"`

	Timestamp     time.Time  `gorm:"not null"`
	EditTimestamp *time.Time

	Text    *string `gorm:"type:text"`
	Caption *string `gorm:"type:text"`

	// Soft references: no constraints, resolved best-effort on read.
	ReplyToMessageID  *int64
	PinnedMessageID   *int64
	NewChatMemberIDs  datatypes.JSONSlice[int64]
	LeftChatMemberID  *int64
	MigrateToChatID   *int64
	MigrateFromChatID *int64

	NewChatTitle          *string `gorm:"type:text"`
	GroupChatCreated      *bool
	SupergroupChatCreated *bool

	Chat *Chat `gorm:"foreignKey:ChatID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	User *User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}
