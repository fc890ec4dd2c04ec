package model

// cocktails: reference data, never written by the store.
type Cocktail struct {
	ID int64 `gorm:"primaryKey;autoIncrement"`

	Name      string           `gorm:"type:varchar(255);not null"`
	Jumbo     bool             `gorm:"not null"`
	Alcoholic bool             `gorm:"not null"`
	Category  CocktailCategory `gorm:"type:smallint;not null"`
}

// ingredients
type Ingredient struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(255);not null"`
}

// cocktail_ingredients, join table cocktail <-> ingredient.
type CocktailIngredient struct {
	ID int64 `gorm:"primaryKey;autoIncrement"`

	CocktailID   int64 `gorm:"not null;index"`
	IngredientID int64 `gorm:"not null;index"`

	Cocktail   *Cocktail   `gorm:"foreignKey:CocktailID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}
