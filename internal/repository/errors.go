package repository

import "errors"

// ErrInvalidRecipe is returned when a recipe cannot be stored as a favorite.
var ErrInvalidRecipe = errors.New("invalid recipe")

// NotFoundError is an error type for when a resource is not found.
type NotFoundError struct {
	message string
}

// NewNotFoundError creates a NotFoundError with the given message.
func NewNotFoundError(message string) NotFoundError {
	return NotFoundError{message: message}
}

// Error returns the error message.
func (e NotFoundError) Error() string {
	return e.message
}
