package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/regulardicers/dicers-backend/internal/model"
	"github.com/regulardicers/dicers-backend/internal/query"
)

type EventRepository interface {
	// Upsert reconciles e against both (chat_id, timestamp) and
	// (chat_id, active) inside one transaction.
	Upsert(ctx context.Context, e *model.Event) (*model.Event, error)
	GetByID(ctx context.Context, id int64) (*model.Event, error)
	ListByIDs(ctx context.Context, ids []int64) ([]model.Event, error)
	List(ctx context.Context, c query.Constraints) ([]model.Event, error)
	ListByChat(ctx context.Context, chatID int64) ([]model.Event, error)
}

type GormEventRepository struct {
	db *gorm.DB
}

func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

const eventTimestampSavepoint = "event_by_timestamp"

// Upsert runs two passes. The first overwrites the row sharing chat and
// timestamp; a duplicate on (chat_id, active) there is rolled back to a
// savepoint and left to the second pass, which overwrites the row sharing chat
// and active flag. The returned row is the one holding (chat_id, active).
func (r *GormEventRepository) Upsert(ctx context.Context, e *model.Event) (*model.Event, error) {
	var stored *model.Event
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.SavePoint(eventTimestampSavepoint).Error; err != nil {
			return err
		}
		byTimestamp := *e
		if err := insertOrUpdate(tx, &byTimestamp, "chat_id", "timestamp"); err != nil {
			if !isUniqueViolation(err) {
				return err
			}
			if err := tx.RollbackTo(eventTimestampSavepoint).Error; err != nil {
				return err
			}
		}

		byActive := *e
		if err := insertOrUpdate(tx, &byActive, "chat_id", "active"); err != nil {
			return err
		}

		var err error
		stored, err = reload[model.Event](ctx, tx, "event",
			map[string]any{"chat_id": e.ChatID, "active": e.Active})
		return err
	})
	if err != nil {
		return nil, classify("upsert event", err)
	}
	return stored, nil
}

func (r *GormEventRepository) GetByID(ctx context.Context, id int64) (*model.Event, error) {
	return getByID[model.Event](ctx, r.db, "event", id)
}

func (r *GormEventRepository) ListByIDs(ctx context.Context, ids []int64) ([]model.Event, error) {
	return listByIDs[model.Event](ctx, r.db, "events", ids)
}

func (r *GormEventRepository) List(ctx context.Context, c query.Constraints) ([]model.Event, error) {
	return listPage[model.Event](ctx, r.db, "events", c)
}

func (r *GormEventRepository) ListByChat(ctx context.Context, chatID int64) ([]model.Event, error) {
	return listWhere[model.Event](ctx, r.db, "events", "chat_id = ?", chatID)
}
