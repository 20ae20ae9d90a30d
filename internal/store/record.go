package store

import (
	"context"

	"github.com/pharmed/clined-api/internal/domain"
)

// GenerationRecordStore defines the interface for generation record
// persistence. The store is append-only: records capture what was generated
// and are never read back, updated, or deleted by the application, so a
// single Create is the whole contract.
type GenerationRecordStore interface {
	// Create saves a new generation record to the store.
	// It handles domain validation internally.
	// Returns validation errors from the domain record if data is invalid.
	Create(ctx context.Context, record *domain.GenerationRecord) error
}
