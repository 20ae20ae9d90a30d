package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/pharmed/clined-api/internal/domain"
	"github.com/pharmed/clined-api/internal/generation"
	"github.com/pharmed/clined-api/internal/service"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking internal error types or messages to clients.
//
// The generation edge contract collapses every gateway-side failure to a 500
// with success:false; only request validation yields a 400.
func MapErrorToStatusCode(err error) int {
	switch {
	case service.IsValidationError(err),
		errors.Is(err, domain.ErrInvalidContentType),
		errors.Is(err, domain.ErrInvalidDifficulty):
		return http.StatusBadRequest

	case errors.Is(err, generation.ErrInvalidConfig),
		errors.Is(err, generation.ErrProviderFailure),
		errors.Is(err, generation.ErrInvalidResponse),
		errors.Is(err, generation.ErrGenerationFailed):
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly message for the
// given error.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, domain.ErrInvalidContentType):
		return "Invalid content type"

	case errors.Is(err, domain.ErrInvalidDifficulty):
		return "Invalid difficulty level"

	case service.IsValidationError(err):
		return "Invalid generation request"

	case errors.Is(err, generation.ErrInvalidConfig):
		return "Content generation is not configured"

	case errors.Is(err, generation.ErrProviderFailure),
		errors.Is(err, generation.ErrInvalidResponse),
		errors.Is(err, generation.ErrGenerationFailed):
		return "Failed to generate content"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns a validator error into a short message that
// names the offending field without echoing submitted values.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		// "Key: 'GenerateRequest.Type' Error:Field validation for 'Type' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}
				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "oneof":
		return "value not in the allowed set"
	case "min":
		return "value too short"
	case "max":
		return "value too long"
	default:
		return "invalid value"
	}
}
