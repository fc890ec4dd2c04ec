package model

import "gorm.io/gorm"

// AutoMigrate creates or updates the tables of every storage entity.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Chat{},
		&ChatUser{},
		&Event{},
		&EventUser{},
		&UserRoll{},
		&Message{},
		&Cocktail{},
		&Ingredient{},
		&CocktailIngredient{},
	)
}
