package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/regulardicers/dicers-backend/internal/model"
	"github.com/regulardicers/dicers-backend/internal/query"
)

type UserRollRepository interface {
	// Upsert is keyed by (event_user_id, callback_query_id).
	Upsert(ctx context.Context, ur *model.UserRoll) (*model.UserRoll, error)
	GetByID(ctx context.Context, id int64) (*model.UserRoll, error)
	List(ctx context.Context, c query.Constraints) ([]model.UserRoll, error)
	ListByEventUser(ctx context.Context, eventUserID int64) ([]model.UserRoll, error)
}

type GormUserRollRepository struct {
	db *gorm.DB
}

func NewGormUserRollRepository(db *gorm.DB) *GormUserRollRepository {
	return &GormUserRollRepository{db: db}
}

func (r *GormUserRollRepository) Upsert(ctx context.Context, ur *model.UserRoll) (*model.UserRoll, error) {
	return upsert(ctx, r.db, "user_roll", ur,
		map[string]any{"event_user_id": ur.EventUserID, "callback_query_id": ur.CallbackQueryID},
		"event_user_id", "callback_query_id")
}

func (r *GormUserRollRepository) GetByID(ctx context.Context, id int64) (*model.UserRoll, error) {
	return getByID[model.UserRoll](ctx, r.db, "user_roll", id)
}

func (r *GormUserRollRepository) List(ctx context.Context, c query.Constraints) ([]model.UserRoll, error) {
	return listPage[model.UserRoll](ctx, r.db, "user_rolls", c)
}

func (r *GormUserRollRepository) ListByEventUser(ctx context.Context, eventUserID int64) ([]model.UserRoll, error) {
	return listWhere[model.UserRoll](ctx, r.db, "user_rolls", "event_user_id = ?", eventUserID)
}
