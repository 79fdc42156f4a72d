package store

import "errors"

// Error Handling Guidelines:
// - Services/Stores: Use fmt.Errorf("context: %w", err) for wrapping errors
// - Handlers: Use apperrors.* functions for HTTP-appropriate errors

// Predefined errors for the store layer.
var (
	// ErrNotFound indicates that a requested checklist was not found.
	ErrNotFound = errors.New("checklist not found")

	// ErrConflict indicates trying to create a checklist that already exists.
	ErrConflict = errors.New("checklist already exists")
)
