package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/regulardicers/dicers-backend/internal/model"
	"github.com/regulardicers/dicers-backend/internal/query"
)

// Cocktails, ingredients and their links are reference data: read-only here.

type CocktailRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Cocktail, error)
	ListByIDs(ctx context.Context, ids []int64) ([]model.Cocktail, error)
	List(ctx context.Context, c query.Constraints) ([]model.Cocktail, error)
}

type GormCocktailRepository struct {
	db *gorm.DB
}

func NewGormCocktailRepository(db *gorm.DB) *GormCocktailRepository {
	return &GormCocktailRepository{db: db}
}

func (r *GormCocktailRepository) GetByID(ctx context.Context, id int64) (*model.Cocktail, error) {
	return getByID[model.Cocktail](ctx, r.db, "cocktail", id)
}

func (r *GormCocktailRepository) ListByIDs(ctx context.Context, ids []int64) ([]model.Cocktail, error) {
	return listByIDs[model.Cocktail](ctx, r.db, "cocktails", ids)
}

func (r *GormCocktailRepository) List(ctx context.Context, c query.Constraints) ([]model.Cocktail, error) {
	return listPage[model.Cocktail](ctx, r.db, "cocktails", c)
}

type IngredientRepository interface {
	ListByIDs(ctx context.Context, ids []int64) ([]model.Ingredient, error)
	List(ctx context.Context, c query.Constraints) ([]model.Ingredient, error)
}

type GormIngredientRepository struct {
	db *gorm.DB
}

func NewGormIngredientRepository(db *gorm.DB) *GormIngredientRepository {
	return &GormIngredientRepository{db: db}
}

func (r *GormIngredientRepository) ListByIDs(ctx context.Context, ids []int64) ([]model.Ingredient, error) {
	return listByIDs[model.Ingredient](ctx, r.db, "ingredients", ids)
}

func (r *GormIngredientRepository) List(ctx context.Context, c query.Constraints) ([]model.Ingredient, error) {
	return listPage[model.Ingredient](ctx, r.db, "ingredients", c)
}

type CocktailIngredientRepository interface {
	List(ctx context.Context, c query.Constraints) ([]model.CocktailIngredient, error)
	ListByCocktailIDs(ctx context.Context, cocktailIDs []int64) ([]model.CocktailIngredient, error)
}

type GormCocktailIngredientRepository struct {
	db *gorm.DB
}

func NewGormCocktailIngredientRepository(db *gorm.DB) *GormCocktailIngredientRepository {
	return &GormCocktailIngredientRepository{db: db}
}

func (r *GormCocktailIngredientRepository) List(ctx context.Context, c query.Constraints) ([]model.CocktailIngredient, error) {
	return listPage[model.CocktailIngredient](ctx, r.db, "cocktail_ingredients", c)
}

func (r *GormCocktailIngredientRepository) ListByCocktailIDs(ctx context.Context, cocktailIDs []int64) ([]model.CocktailIngredient, error) {
	if len(cocktailIDs) == 0 {
		return []model.CocktailIngredient{}, nil
	}
	return listWhere[model.CocktailIngredient](ctx, r.db, "cocktail_ingredients", "cocktail_id IN ?", cocktailIDs)
}
