package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/regulardicers/dicers-backend/internal/model"
	"github.com/regulardicers/dicers-backend/internal/query"
)

type ChatRepository interface {
	// Upsert is keyed by telegram_id.
	Upsert(ctx context.Context, c *model.Chat) (*model.Chat, error)
	GetByID(ctx context.Context, id int64) (*model.Chat, error)
	ListByIDs(ctx context.Context, ids []int64) ([]model.Chat, error)
	List(ctx context.Context, c query.Constraints) ([]model.Chat, error)
	// Search returns chats matching any field set in f.
	Search(ctx context.Context, f query.ChatFilter, c query.Constraints) ([]model.Chat, error)
}

type GormChatRepository struct {
	db *gorm.DB
}

func NewGormChatRepository(db *gorm.DB) *GormChatRepository {
	return &GormChatRepository{db: db}
}

func (r *GormChatRepository) Upsert(ctx context.Context, c *model.Chat) (*model.Chat, error) {
	return upsert(ctx, r.db, "chat", c,
		map[string]any{"telegram_id": c.TelegramID},
		"telegram_id")
}

func (r *GormChatRepository) GetByID(ctx context.Context, id int64) (*model.Chat, error) {
	return getByID[model.Chat](ctx, r.db, "chat", id)
}

func (r *GormChatRepository) ListByIDs(ctx context.Context, ids []int64) ([]model.Chat, error) {
	return listByIDs[model.Chat](ctx, r.db, "chats", ids)
}

func (r *GormChatRepository) List(ctx context.Context, c query.Constraints) ([]model.Chat, error) {
	return listPage[model.Chat](ctx, r.db, "chats", c)
}

func (r *GormChatRepository) Search(ctx context.Context, f query.ChatFilter, c query.Constraints) ([]model.Chat, error) {
	b := f.Builder()
	if b.Len() == 0 {
		return r.List(ctx, c)
	}

	var chats []model.Chat
	q := b.Apply(r.db.WithContext(ctx).Model(&model.Chat{})).Order("id")
	if err := c.Apply(q).Find(&chats).Error; err != nil {
		return nil, classify("search chats", err)
	}
	return chats, nil
}
