package usecase

import "errors"

// ErrNotFound is returned when the requested entity does not exist.
var ErrNotFound = errors.New("not found")

// ConstraintError reports a uniqueness violation on a field.
type ConstraintError struct {
	Field   string
	Message string
}

func (e *ConstraintError) Error() string {
	return e.Field + ": " + e.Message
}

// ReferenceError reports a write pointing at a related entity that does
// not exist, e.g. a review for an unknown book.
type ReferenceError struct {
	Field string
}

func (e *ReferenceError) Error() string {
	return e.Field + " does not exist"
}

// ForbiddenError reports an action the authenticated caller may not perform.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}
