package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/regulardicers/dicers-backend/internal/model"
	"github.com/regulardicers/dicers-backend/internal/query"
)

type UserRepository interface {
	// Upsert is keyed by telegram_id.
	Upsert(ctx context.Context, u *model.User) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	FindByTelegramID(ctx context.Context, telegramID int64) (*model.User, error)
	ListByIDs(ctx context.Context, ids []int64) ([]model.User, error)
	List(ctx context.Context, c query.Constraints) ([]model.User, error)
}

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Upsert(ctx context.Context, u *model.User) (*model.User, error) {
	return upsert(ctx, r.db, "user", u,
		map[string]any{"telegram_id": u.TelegramID},
		"telegram_id")
}

func (r *GormUserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return getByID[model.User](ctx, r.db, "user", id)
}

func (r *GormUserRepository) FindByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("telegram_id = ?", telegramID).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, classify("find user", err)
	}
	return &u, nil
}

func (r *GormUserRepository) ListByIDs(ctx context.Context, ids []int64) ([]model.User, error) {
	return listByIDs[model.User](ctx, r.db, "users", ids)
}

func (r *GormUserRepository) List(ctx context.Context, c query.Constraints) ([]model.User, error) {
	return listPage[model.User](ctx, r.db, "users", c)
}
