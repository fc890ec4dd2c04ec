package model

// users
type User struct {
	ID int64 `gorm:"primaryKey;autoIncrement"`

	TelegramID int64   `gorm:"not null;uniqueIndex"`
	Username   *string `gorm:"type:text"`
	FirstName  string  `gorm:"type:text;not null"`
	LastName   *string `gorm:"type:text"`

	IsBot                  bool `gorm:"not null"`
	HasPrivateConversation bool `gorm:"not null"`
}
