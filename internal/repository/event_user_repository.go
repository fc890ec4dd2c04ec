package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/regulardicers/dicers-backend/internal/model"
	"github.com/regulardicers/dicers-backend/internal/query"
)

type EventUserRepository interface {
	// Upsert is keyed by (event_id, user_id).
	Upsert(ctx context.Context, eu *model.EventUser) (*model.EventUser, error)
	GetByID(ctx context.Context, id int64) (*model.EventUser, error)
	ListByIDs(ctx context.Context, ids []int64) ([]model.EventUser, error)
	List(ctx context.Context, c query.Constraints) ([]model.EventUser, error)
	// ListByChat returns participants of every event of the chat.
	ListByChat(ctx context.Context, chatID int64) ([]model.EventUser, error)
}

type GormEventUserRepository struct {
	db *gorm.DB
}

func NewGormEventUserRepository(db *gorm.DB) *GormEventUserRepository {
	return &GormEventUserRepository{db: db}
}

func (r *GormEventUserRepository) Upsert(ctx context.Context, eu *model.EventUser) (*model.EventUser, error) {
	return upsert(ctx, r.db, "event_user", eu,
		map[string]any{"event_id": eu.EventID, "user_id": eu.UserID},
		"event_id", "user_id")
}

func (r *GormEventUserRepository) GetByID(ctx context.Context, id int64) (*model.EventUser, error) {
	return getByID[model.EventUser](ctx, r.db, "event_user", id)
}

func (r *GormEventUserRepository) ListByIDs(ctx context.Context, ids []int64) ([]model.EventUser, error) {
	return listByIDs[model.EventUser](ctx, r.db, "event_users", ids)
}

func (r *GormEventUserRepository) List(ctx context.Context, c query.Constraints) ([]model.EventUser, error) {
	return listPage[model.EventUser](ctx, r.db, "event_users", c)
}

func (r *GormEventUserRepository) ListByChat(ctx context.Context, chatID int64) ([]model.EventUser, error) {
	var eventUsers []model.EventUser
	err := r.db.WithContext(ctx).
		Model(&model.EventUser{}).
		Select("event_users.*").
		Joins("JOIN events ON events.id = event_users.event_id").
		Where("events.chat_id = ?", chatID).
		Order("event_users.id").
		Find(&eventUsers).Error
	if err != nil {
		return nil, classify("list event_users", err)
	}
	return eventUsers, nil
}
