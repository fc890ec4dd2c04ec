package repository

import "gorm.io/gorm"

// Repositories bundles the store, one repository per table.
type Repositories struct {
	Users               UserRepository
	Chats               ChatRepository
	ChatUsers           ChatUserRepository
	Events              EventRepository
	EventUsers          EventUserRepository
	UserRolls           UserRollRepository
	Messages            MessageRepository
	Cocktails           CocktailRepository
	Ingredients         IngredientRepository
	CocktailIngredients CocktailIngredientRepository
}

func NewGormRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:               NewGormUserRepository(db),
		Chats:               NewGormChatRepository(db),
		ChatUsers:           NewGormChatUserRepository(db),
		Events:              NewGormEventRepository(db),
		EventUsers:          NewGormEventUserRepository(db),
		UserRolls:           NewGormUserRollRepository(db),
		Messages:            NewGormMessageRepository(db),
		Cocktails:           NewGormCocktailRepository(db),
		Ingredients:         NewGormIngredientRepository(db),
		CocktailIngredients: NewGormCocktailIngredientRepository(db),
	}
}
