// Package hydrator turns flat storage rows into nested domain entities.
// Relations are loaded in batches, one query per relation kind, and the input
// row order is kept. It never writes.
package hydrator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/regulardicers/dicers-backend/internal/domain"
	"github.com/regulardicers/dicers-backend/internal/model"
)

type ChatLookup interface {
	ListByIDs(ctx context.Context, ids []int64) ([]model.Chat, error)
}

type UserLookup interface {
	ListByIDs(ctx context.Context, ids []int64) ([]model.User, error)
}

type EventLookup interface {
	ListByIDs(ctx context.Context, ids []int64) ([]model.Event, error)
}

type EventUserLookup interface {
	ListByIDs(ctx context.Context, ids []int64) ([]model.EventUser, error)
}

type CocktailLookup interface {
	ListByIDs(ctx context.Context, ids []int64) ([]model.Cocktail, error)
}

type IngredientLookup interface {
	ListByIDs(ctx context.Context, ids []int64) ([]model.Ingredient, error)
}

type CocktailLinkLookup interface {
	ListByCocktailIDs(ctx context.Context, cocktailIDs []int64) ([]model.CocktailIngredient, error)
}

// Sources are the batch lookups relations are resolved through.
type Sources struct {
	Chats         ChatLookup
	Users         UserLookup
	Events        EventLookup
	EventUsers    EventUserLookup
	Cocktails     CocktailLookup
	Ingredients   IngredientLookup
	CocktailLinks CocktailLinkLookup
}

type Option func(*Hydrator)

func WithPolicy(p Policy) Option {
	return func(h *Hydrator) { h.policy = p }
}

func WithLogger(l *slog.Logger) Option {
	return func(h *Hydrator) { h.log = l }
}

// WithDropHook registers fn to be called for every dropped relation.
func WithDropHook(fn func(Relation)) Option {
	return func(h *Hydrator) { h.onDrop = fn }
}

type Hydrator struct {
	src    Sources
	policy Policy
	log    *slog.Logger
	onDrop func(Relation)
}

func New(src Sources, opts ...Option) *Hydrator {
	h := &Hydrator{
		src:    src,
		policy: DefaultPolicy(),
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// miss applies the policy to an unresolved optional relation. It returns a
// non-nil error only when the relation is configured to abort.
func (h *Hydrator) miss(ctx context.Context, rel Relation, entity string, rowID, refID int64, cause error) error {
	if h.policy.For(rel) == AbortOnMiss {
		return &MissingRelationError{Entity: entity, RowID: rowID, Relation: string(rel), RefID: refID, Err: cause}
	}

	attrs := []any{"relation", string(rel), "row_id", rowID, "ref_id", refID}
	if cause != nil {
		attrs = append(attrs, "error", cause)
	}
	h.log.WarnContext(ctx, "hydrator: dropping unresolved relation", attrs...)
	if h.onDrop != nil {
		h.onDrop(rel)
	}
	return nil
}

func missingRequired(entity string, rowID int64, relation string, refID int64) error {
	return &MissingRelationError{Entity: entity, RowID: rowID, Relation: relation, RefID: refID}
}

// fetch loads the rows for ids in one call and indexes them by id.
func fetch[T any](ctx context.Context, ids []int64, list func(context.Context, []int64) ([]T, error), id func(T) int64) (map[int64]T, error) {
	ids = uniqueIDs(ids)
	out := make(map[int64]T, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := list(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[id(r)] = r
	}
	return out, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func collect[T any](rows []T, id func(T) int64) []int64 {
	out := make([]int64, 0, len(rows))
	for _, r := range rows {
		out = append(out, id(r))
	}
	return out
}

func values[T any](m map[int64]T) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}

func single[T any](xs []T, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if len(xs) != 1 {
		return zero, fmt.Errorf("hydrator: expected one result, got %d", len(xs))
	}
	return xs[0], nil
}

func chatID(c model.Chat) int64 { return c.ID }
func userID(u model.User) int64 { return u.ID }
func eventID(e model.Event) int64 { return e.ID }
func eventUserID(eu model.EventUser) int64 { return eu.ID }
func cocktailID(c model.Cocktail) int64 { return c.ID }
func ingredientID(i model.Ingredient) int64 { return i.ID }
func domainEventID(e domain.Event) int64 { return e.ID }
func domainEventUserID(e domain.EventUser) int64 { return e.ID }

func index[T any](rows []T, id func(T) int64) map[int64]T {
	out := make(map[int64]T, len(rows))
	for _, r := range rows {
		out[id(r)] = r
	}
	return out
}
