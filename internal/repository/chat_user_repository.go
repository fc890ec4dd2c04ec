package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/regulardicers/dicers-backend/internal/model"
	"github.com/regulardicers/dicers-backend/internal/query"
)

type ChatUserRepository interface {
	// Upsert is keyed by (user_id, chat_id). An admin is stored unmuted.
	Upsert(ctx context.Context, cu *model.ChatUser) (*model.ChatUser, error)
	List(ctx context.Context, c query.Constraints) ([]model.ChatUser, error)
	ListByChat(ctx context.Context, chatID int64) ([]model.ChatUser, error)
	ListByUser(ctx context.Context, userID int64) ([]model.ChatUser, error)
}

type GormChatUserRepository struct {
	db *gorm.DB
}

func NewGormChatUserRepository(db *gorm.DB) *GormChatUserRepository {
	return &GormChatUserRepository{db: db}
}

func (r *GormChatUserRepository) Upsert(ctx context.Context, cu *model.ChatUser) (*model.ChatUser, error) {
	rec := *cu
	rec.Normalize()
	return upsert(ctx, r.db, "chat_user", &rec,
		map[string]any{"user_id": rec.UserID, "chat_id": rec.ChatID},
		"user_id", "chat_id")
}

func (r *GormChatUserRepository) List(ctx context.Context, c query.Constraints) ([]model.ChatUser, error) {
	return listPage[model.ChatUser](ctx, r.db, "chat_users", c)
}

func (r *GormChatUserRepository) ListByChat(ctx context.Context, chatID int64) ([]model.ChatUser, error) {
	return listWhere[model.ChatUser](ctx, r.db, "chat_users", "chat_id = ?", chatID)
}

func (r *GormChatUserRepository) ListByUser(ctx context.Context, userID int64) ([]model.ChatUser, error) {
	return listWhere[model.ChatUser](ctx, r.db, "chat_users", "user_id = ?", userID)
}
