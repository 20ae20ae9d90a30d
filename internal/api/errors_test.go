package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pharmed/clined-api/internal/domain"
	"github.com/pharmed/clined-api/internal/generation"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "validation error",
			err:  fmt.Errorf("%w: bad type", domain.ErrValidation),
			want: http.StatusBadRequest,
		},
		{
			name: "invalid content type",
			err:  domain.ErrInvalidContentType,
			want: http.StatusBadRequest,
		},
		{
			name: "invalid difficulty",
			err:  fmt.Errorf("validate: %w", domain.ErrInvalidDifficulty),
			want: http.StatusBadRequest,
		},
		{
			name: "missing provider config",
			err:  generation.ErrInvalidConfig,
			want: http.StatusInternalServerError,
		},
		{
			name: "provider failure",
			err:  fmt.Errorf("generate: %w", generation.ErrProviderFailure),
			want: http.StatusInternalServerError,
		},
		{
			name: "unknown error",
			err:  errors.New("boom"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
	assert.Equal(t, "Invalid content type", GetSafeErrorMessage(domain.ErrInvalidContentType))
	assert.Equal(t, "Content generation is not configured", GetSafeErrorMessage(generation.ErrInvalidConfig))
	assert.Equal(t, "Failed to generate content",
		GetSafeErrorMessage(fmt.Errorf("call: %w", generation.ErrProviderFailure)))

	// internal details never leak through
	leaky := errors.New("postgres://user:pw@host failed")
	assert.NotContains(t, GetSafeErrorMessage(leaky), "postgres")
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	err := errors.New(
		"Key: 'GenerateRequest.Type' Error:Field validation for 'Type' failed on the 'required' tag")
	msg := SanitizeValidationError(err)
	assert.Equal(t, "Invalid Type: required field", msg)

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("something else")))
}
