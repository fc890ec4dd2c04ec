package model

import "time"

// events. A chat has at most one event per timestamp and at most one event
// per value of Active.
type Event struct {
	ID int64 `gorm:"primaryKey;autoIncrement"`

	ChatID    int64     `gorm:"not null;uniqueIndex:idx_events_chat_timestamp;uniqueIndex:idx_events_chat_active"`
	Timestamp time.Time `gorm:"not null;uniqueIndex:idx_events_chat_timestamp"`
	Active    bool      `gorm:"not null;uniqueIndex:idx_events_chat_active"`

	Chat *Chat `gorm:"foreignKey:ChatID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// event_users
type EventUser struct {
	ID int64 `gorm:"primaryKey;autoIncrement"`

	EventID int64 `gorm:"not null;uniqueIndex:idx_event_users_event_user"`
	UserID  int64 `gorm:"not null;uniqueIndex:idx_event_users_event_user;index"`

	Attends bool `gorm:"not null"`

	Event *Event `gorm:"foreignKey:EventID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	User  *User  `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// user_rolls: one dice roll of an attending user, keyed by the callback query
// that produced it.
type UserRoll struct {
	ID int64 `gorm:"primaryKey;autoIncrement"`

	EventUserID     int64  `gorm:"not null;uniqueIndex:idx_user_rolls_event_user_callback"`
	CallbackQueryID string `gorm:"type:varchar(255);not null;uniqueIndex:idx_user_rolls_event_user_callback"`

	Jumbo     bool   `gorm:"not null"`
	Alcoholic bool   `gorm:"not null"`
	Roll      int32  `gorm:"not null;check:chk_user_rolls_roll,roll >= 1 AND roll <= 6"`
	Drink     string `gorm:"type:text;not null"`

	EventUser *EventUser `gorm:"foreignKey:EventUserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
