package query

import "gorm.io/gorm"

const (
	DefaultLimit  = 100
	DefaultOffset = 0
)

// Constraints is the pagination window of a read query.
type Constraints struct {
	Limit  int
	Offset int
}

func DefaultConstraints() Constraints {
	return Constraints{Limit: DefaultLimit, Offset: DefaultOffset}
}

// Resolve returns the defaults for a nil window and replaces negative values.
func Resolve(c *Constraints) Constraints {
	if c == nil {
		return DefaultConstraints()
	}
	out := *c
	if out.Limit < 0 {
		out.Limit = DefaultLimit
	}
	if out.Offset < 0 {
		out.Offset = DefaultOffset
	}
	return out
}

// Apply adds LIMIT/OFFSET to db.
func (c Constraints) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(c.Limit).Offset(c.Offset)
}
