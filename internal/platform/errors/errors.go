package apperrors

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrNoActiveFocus     = errors.New("no active focus session")
	ErrActiveFocusExists = errors.New("active focus session already exists")
)
