package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrIllegalAction indicates an action that is not valid for the
	// draft's current step. The draft is left untouched.
	ErrIllegalAction = errors.New("action not allowed at this step")
)
