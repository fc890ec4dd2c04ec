package hydrator

import (
	"errors"
	"fmt"
)

var ErrMissingRequiredRelation = errors.New("missing required relation")

// MissingRelationError reports a row whose relation could not be resolved
// while it had to be.
type MissingRelationError struct {
	Entity   string
	RowID    int64
	Relation string
	RefID    int64
	// Err is the lookup failure, nil when the referenced row is just absent.
	Err error
}

func (e *MissingRelationError) Error() string {
	msg := fmt.Sprintf("%s %d: %s %d not found", e.Entity, e.RowID, e.Relation, e.RefID)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MissingRelationError) Is(target error) bool {
	return target == ErrMissingRequiredRelation
}

func (e *MissingRelationError) Unwrap() error {
	return e.Err
}
