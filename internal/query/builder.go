package query

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Predicate is a single equality comparison against a stored column.
type Predicate struct {
	Column string
	Value  any
}

// Builder accumulates equality predicates and joins them with OR.
// Matching any one predicate qualifies a row.
type Builder struct {
	preds []Predicate
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Eq adds "column = value".
func (b *Builder) Eq(column string, value any) *Builder {
	b.preds = append(b.preds, Predicate{Column: column, Value: value})
	return b
}

// EqIfSet adds "column = *value" unless value is nil.
func EqIfSet[T any](b *Builder, column string, value *T) *Builder {
	if value == nil {
		return b
	}
	return b.Eq(column, *value)
}

func (b *Builder) Len() int { return len(b.preds) }

func (b *Builder) Predicates() []Predicate {
	out := make([]Predicate, len(b.preds))
	copy(out, b.preds)
	return out
}

// Expression renders the disjunction, or nil when no predicate was added.
func (b *Builder) Expression() clause.Expression {
	if len(b.preds) == 0 {
		return nil
	}
	exprs := make([]clause.Expression, 0, len(b.preds))
	for _, p := range b.preds {
		exprs = append(exprs, clause.Eq{
			Column: clause.Column{Table: clause.CurrentTable, Name: p.Column},
			Value:  p.Value,
		})
	}
	return clause.Or(exprs...)
}

// Apply adds the WHERE clause to db. Without predicates db is returned as is.
func (b *Builder) Apply(db *gorm.DB) *gorm.DB {
	expr := b.Expression()
	if expr == nil {
		return db
	}
	return db.Where(expr)
}

// Ptr returns a pointer to v, handy for filling filters.
func Ptr[T any](v T) *T {
	return &v
}
