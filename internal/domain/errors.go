package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidContentType is returned when a content type is not one of
	// the supported generation types.
	ErrInvalidContentType = errors.New("invalid content type")

	// ErrInvalidDifficulty is returned when a difficulty is not one of the
	// supported levels.
	ErrInvalidDifficulty = errors.New("invalid difficulty level")

	// ErrInvalidEvidenceLevel is returned when an evidence grade is outside A-D.
	ErrInvalidEvidenceLevel = errors.New("invalid evidence level")

	// ErrEmptyContent is returned when required content is empty.
	ErrEmptyContent = errors.New("content cannot be empty")
)
