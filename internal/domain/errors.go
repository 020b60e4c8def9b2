package domain

import "errors"

var (
	// ErrMissingMealID is returned when a mapping request carries no meal id
	ErrMissingMealID = errors.New("meal_id is required")

	// ErrInvalidRequest is returned when request parameters are malformed
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrMealNotFound is returned when no meal row exists for the given id
	ErrMealNotFound = errors.New("meal not found")

	// ErrCatalogUnavailable is returned when the catalog store cannot be read
	ErrCatalogUnavailable = errors.New("catalog store unavailable")

	// ErrPersistenceFailed is returned when writing computed results fails
	ErrPersistenceFailed = errors.New("failed to persist meal results")
)
