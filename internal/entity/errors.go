package entity

import "errors"

var (
	// ErrNotFound marks lookups of unknown requests or users.
	ErrNotFound = errors.New("not found")
	// ErrValidation marks requests missing a required field.
	ErrValidation = errors.New("validation failed")
)
