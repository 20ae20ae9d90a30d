package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when content generation fails for any
	// general reason
	ErrGenerationFailed = errors.New("failed to generate clinical content")

	// ErrInvalidConfig is returned when the provider configuration is invalid,
	// most commonly a missing API key
	ErrInvalidConfig = errors.New("invalid provider configuration")

	// ErrProviderFailure is returned when the provider answers with a non-2xx
	// status or the request cannot be delivered
	ErrProviderFailure = errors.New("completion provider request failed")

	// ErrInvalidResponse is returned when the provider response cannot be
	// parsed or contains no usable content
	ErrInvalidResponse = errors.New("invalid response from completion provider")
)
