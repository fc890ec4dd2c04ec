package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/regulardicers/dicers-backend/internal/model"
	"github.com/regulardicers/dicers-backend/internal/query"
)

type MessageRepository interface {
	// Upsert is keyed by (chat_id, telegram_id).
	Upsert(ctx context.Context, m *model.Message) (*model.Message, error)
	GetByID(ctx context.Context, id int64) (*model.Message, error)
	List(ctx context.Context, c query.Constraints) ([]model.Message, error)
	ListByChat(ctx context.Context, chatID int64) ([]model.Message, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Message, error)
}

type GormMessageRepository struct {
	db *gorm.DB
}

func NewGormMessageRepository(db *gorm.DB) *GormMessageRepository {
	return &GormMessageRepository{db: db}
}

func (r *GormMessageRepository) Upsert(ctx context.Context, m *model.Message) (*model.Message, error) {
	return upsert(ctx, r.db, "message", m,
		map[string]any{"chat_id": m.ChatID, "telegram_id": m.TelegramID},
		"chat_id", "telegram_id")
}

func (r *GormMessageRepository) GetByID(ctx context.Context, id int64) (*model.Message, error) {
	return getByID[model.Message](ctx, r.db, "message", id)
}

func (r *GormMessageRepository) List(ctx context.Context, c query.Constraints) ([]model.Message, error) {
	return listPage[model.Message](ctx, r.db, "messages", c)
}

func (r *GormMessageRepository) ListByChat(ctx context.Context, chatID int64) ([]model.Message, error) {
	return listWhere[model.Message](ctx, r.db, "messages", "chat_id = ?", chatID)
}

func (r *GormMessageRepository) ListByUser(ctx context.Context, userID int64) ([]model.Message, error) {
	return listWhere[model.Message](ctx, r.db, "messages", "user_id = ?", userID)
}
