package generation

import "context"

// Completion is the provider's answer to one generation request: the raw
// message body plus the ordered list of source citations (possibly empty).
type Completion struct {
	Content   string
	Citations []string
}

// Generator defines the interface for the external completion provider.
// This interface is the boundary between the application core and the
// provider HTTP client, so services can be tested against fakes.
type Generator interface {
	// ChatCompletion sends a single system/user prompt pair to the provider
	// and returns the completion. Exactly one provider request is made per
	// call; there is no retry, streaming, or multi-turn follow-up.
	//
	// Returns ErrInvalidConfig if credentials are missing (before any network
	// I/O), ErrProviderFailure for a non-2xx provider response, and
	// ErrInvalidResponse when the provider body cannot be used.
	ChatCompletion(ctx context.Context, systemPrompt, userPrompt string) (*Completion, error)
}
