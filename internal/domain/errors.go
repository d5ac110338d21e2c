package domain

import "fmt"

// ErrNotFound matches every NotFoundError through errors.Is.
var ErrNotFound = &NotFoundError{}

// NotFoundError reports that a referenced record does not resolve. Kind is
// only set for favorite records.
type NotFoundError struct {
	Entity string
	Kind   FavoriteKind
}

func (e *NotFoundError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("%s %s not found", e.Entity, e.Kind)
	}
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is matches a NotFoundError for the same entity. Empty fields on the target
// act as wildcards.
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	if t.Entity != "" && t.Entity != e.Entity {
		return false
	}
	return t.Kind == "" || t.Kind == e.Kind
}
