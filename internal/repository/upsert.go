package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/regulardicers/dicers-backend/internal/query"
)

// onConflictUpdateAll overwrites every non-key column when the insert hits
// the unique index over columns.
func onConflictUpdateAll(columns ...string) clause.OnConflict {
	cols := make([]clause.Column, 0, len(columns))
	for _, c := range columns {
		cols = append(cols, clause.Column{Name: c})
	}
	return clause.OnConflict{Columns: cols, UpdateAll: true}
}

// insertOrUpdate runs a single INSERT ... ON CONFLICT (conflict) DO UPDATE.
// The surrogate id of rec is never written.
func insertOrUpdate(db *gorm.DB, rec any, conflict ...string) error {
	return db.Omit(clause.Associations, "id").
		Clauses(onConflictUpdateAll(conflict...)).
		Create(rec).Error
}

// reload reads the row identified by its natural key.
func reload[T any](ctx context.Context, db *gorm.DB, entity string, key map[string]any) (*T, error) {
	var stored T
	err := db.WithContext(ctx).Where(key).Take(&stored).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("upsert %s: %w", entity, ErrNotFoundAfterWrite)
	}
	if err != nil {
		return nil, classify("reload "+entity, err)
	}
	return &stored, nil
}

// upsert writes rec keyed by conflict and returns the stored row, re-read
// through key.
func upsert[T any](ctx context.Context, db *gorm.DB, entity string, rec *T, key map[string]any, conflict ...string) (*T, error) {
	if err := insertOrUpdate(db.WithContext(ctx), rec, conflict...); err != nil {
		err = classify("upsert "+entity, err)
		slog.ErrorContext(ctx, "repository: upsert failed", "entity", entity, "error", err)
		return nil, err
	}
	return reload[T](ctx, db, entity, key)
}

func getByID[T any](ctx context.Context, db *gorm.DB, entity string, id int64) (*T, error) {
	var out T
	if err := db.WithContext(ctx).First(&out, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, classify("get "+entity, err)
	}
	return &out, nil
}

func listByIDs[T any](ctx context.Context, db *gorm.DB, entity string, ids []int64) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}
	var out []T
	if err := db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&out).Error; err != nil {
		return nil, classify("list "+entity, err)
	}
	return out, nil
}

// listPage is a plain paginated scan in id order.
func listPage[T any](ctx context.Context, db *gorm.DB, entity string, c query.Constraints) ([]T, error) {
	var out []T
	if err := c.Apply(db.WithContext(ctx).Order("id")).Find(&out).Error; err != nil {
		return nil, classify("list "+entity, err)
	}
	return out, nil
}

// listWhere returns every row matching the condition in id order.
func listWhere[T any](ctx context.Context, db *gorm.DB, entity string, cond string, args ...any) ([]T, error) {
	var out []T
	if err := db.WithContext(ctx).Where(cond, args...).Order("id").Find(&out).Error; err != nil {
		return nil, classify("list "+entity, err)
	}
	return out, nil
}
