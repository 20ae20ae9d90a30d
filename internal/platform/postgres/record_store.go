package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/pharmed/clined-api/internal/domain"
	"github.com/pharmed/clined-api/internal/platform/logger"
	"github.com/pharmed/clined-api/internal/store"
)

// PostgresGenerationRecordStore implements the store.GenerationRecordStore
// interface using a PostgreSQL database as the storage backend.
type PostgresGenerationRecordStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresGenerationRecordStore creates a new PostgreSQL implementation of
// the GenerationRecordStore interface. It accepts a database connection or
// transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresGenerationRecordStore(db store.DBTX, logger *slog.Logger) *PostgresGenerationRecordStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresGenerationRecordStore{
		db:     db,
		logger: logger.With(slog.String("component", "generation_record_store")),
	}
}

// Ensure PostgresGenerationRecordStore implements store.GenerationRecordStore
var _ store.GenerationRecordStore = (*PostgresGenerationRecordStore)(nil)

// Create implements store.GenerationRecordStore.Create
// It saves a new generation record to the database, handling domain
// validation. Citations are stored as a jsonb array because the stdlib
// driver interface cannot bind a []string directly.
func (s *PostgresGenerationRecordStore) Create(ctx context.Context, record *domain.GenerationRecord) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := record.Validate(); err != nil {
		log.Warn("generation record validation failed during create",
			slog.String("error", err.Error()),
			slog.String("record_id", record.ID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	citations := record.Citations
	if citations == nil {
		citations = []string{}
	}
	citationsJSON, err := json.Marshal(citations)
	if err != nil {
		return fmt.Errorf("failed to encode citations: %w", err)
	}

	query := `
		INSERT INTO generated_content
			(id, content_type, prompt, difficulty, specialty, generated_content, citations, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		record.ID,
		record.ContentType,
		record.Prompt,
		record.Difficulty,
		record.Specialty,
		record.GeneratedContent,
		citationsJSON,
		record.CreatedAt,
	)

	if err != nil {
		log.Error("failed to create generation record",
			slog.String("error", err.Error()),
			slog.String("record_id", record.ID.String()),
			slog.String("content_type", string(record.ContentType)))
		return MapError(err)
	}

	log.Info("generation record created successfully",
		slog.String("record_id", record.ID.String()),
		slog.String("content_type", string(record.ContentType)),
		slog.String("difficulty", string(record.Difficulty)),
		slog.Int("citation_count", len(record.Citations)))
	return nil
}
