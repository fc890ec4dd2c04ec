package hydrator

import (
	"context"
	"fmt"

	"github.com/regulardicers/dicers-backend/internal/domain"
	"github.com/regulardicers/dicers-backend/internal/model"
)

// Cocktails attaches ingredients to every cocktail. When the ingredients
// cannot be loaded a dropping policy removes the cocktails from the result.
func (h *Hydrator) Cocktails(ctx context.Context, rows []model.Cocktail) ([]domain.Cocktail, error) {
	byCocktail, err := h.ingredientLists(ctx, collect(rows, cocktailID))
	if err != nil {
		for _, c := range rows {
			if missErr := h.miss(ctx, CocktailIngredients, "cocktail", c.ID, c.ID, err); missErr != nil {
				return nil, missErr
			}
		}
		return []domain.Cocktail{}, nil
	}

	out := make([]domain.Cocktail, 0, len(rows))
	for _, c := range rows {
		out = append(out, toCocktail(c, byCocktail[c.ID]))
	}
	return out, nil
}

// CocktailIngredients hydrates links with both ends. The embedded cocktail
// keeps an empty ingredient list when its ingredients cannot be loaded.
func (h *Hydrator) CocktailIngredients(ctx context.Context, rows []model.CocktailIngredient) ([]domain.CocktailIngredient, error) {
	cocktails, err := fetch(ctx, collect(rows, func(l model.CocktailIngredient) int64 { return l.CocktailID }), h.src.Cocktails.ListByIDs, cocktailID)
	if err != nil {
		return nil, fmt.Errorf("hydrate cocktail ingredients: %w", err)
	}
	ingredients, err := fetch(ctx, collect(rows, func(l model.CocktailIngredient) int64 { return l.IngredientID }), h.src.Ingredients.ListByIDs, ingredientID)
	if err != nil {
		return nil, fmt.Errorf("hydrate cocktail ingredients: %w", err)
	}

	byCocktail, err := h.ingredientLists(ctx, collect(values(cocktails), cocktailID))
	if err != nil {
		for id := range cocktails {
			if missErr := h.miss(ctx, CocktailIngredients, "cocktail", id, id, err); missErr != nil {
				return nil, missErr
			}
		}
		byCocktail = nil
	}

	out := make([]domain.CocktailIngredient, 0, len(rows))
	for _, l := range rows {
		c, ok := cocktails[l.CocktailID]
		if !ok {
			return nil, missingRequired("cocktail_ingredient", l.ID, "cocktail", l.CocktailID)
		}
		ing, ok := ingredients[l.IngredientID]
		if !ok {
			return nil, missingRequired("cocktail_ingredient", l.ID, "ingredient", l.IngredientID)
		}
		out = append(out, domain.CocktailIngredient{
			ID:         l.ID,
			Cocktail:   toCocktail(c, byCocktail[c.ID]),
			Ingredient: domain.Ingredient{ID: ing.ID, Name: ing.Name},
		})
	}
	return out, nil
}

// ingredientLists loads the ingredients of every cocktail in ids. Only a
// failed lookup is returned; dangling links go through the policy.
func (h *Hydrator) ingredientLists(ctx context.Context, ids []int64) (map[int64][]domain.Ingredient, error) {
	links, err := h.src.CocktailLinks.ListByCocktailIDs(ctx, uniqueIDs(ids))
	if err != nil {
		return nil, err
	}
	ingredients, err := fetch(ctx, collect(links, func(l model.CocktailIngredient) int64 { return l.IngredientID }), h.src.Ingredients.ListByIDs, ingredientID)
	if err != nil {
		return nil, err
	}

	byCocktail := make(map[int64][]domain.Ingredient, len(ids))
	for _, l := range links {
		ing, ok := ingredients[l.IngredientID]
		if !ok {
			if err := h.miss(ctx, CocktailIngredients, "cocktail", l.CocktailID, l.IngredientID, nil); err != nil {
				return nil, err
			}
			continue
		}
		byCocktail[l.CocktailID] = append(byCocktail[l.CocktailID], domain.Ingredient{ID: ing.ID, Name: ing.Name})
	}
	return byCocktail, nil
}

func toCocktail(c model.Cocktail, ingredients []domain.Ingredient) domain.Cocktail {
	if ingredients == nil {
		ingredients = []domain.Ingredient{}
	}
	return domain.Cocktail{
		ID:          c.ID,
		Name:        c.Name,
		Jumbo:       c.Jumbo,
		Alcoholic:   c.Alcoholic,
		Category:    c.Category.Must(),
		Ingredients: ingredients,
	}
}
