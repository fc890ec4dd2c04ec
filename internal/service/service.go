// Package service is the API-facing facade: reads go through the store and
// come back hydrated, writes upsert and return the hydrated stored row.
package service

import (
	"github.com/regulardicers/dicers-backend/internal/hydrator"
	"github.com/regulardicers/dicers-backend/internal/repository"
)

type Service struct {
	repos *repository.Repositories
	h     *hydrator.Hydrator
}

func New(repos *repository.Repositories, h *hydrator.Hydrator) *Service {
	return &Service{repos: repos, h: h}
}

// NewHydrator wires a hydrator to the store.
func NewHydrator(repos *repository.Repositories, opts ...hydrator.Option) *hydrator.Hydrator {
	return hydrator.New(hydrator.Sources{
		Chats:         repos.Chats,
		Users:         repos.Users,
		Events:        repos.Events,
		EventUsers:    repos.EventUsers,
		Cocktails:     repos.Cocktails,
		Ingredients:   repos.Ingredients,
		CocktailLinks: repos.CocktailIngredients,
	}, opts...)
}
