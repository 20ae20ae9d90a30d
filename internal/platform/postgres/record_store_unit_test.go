package postgres

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmed/clined-api/internal/domain"
	"github.com/pharmed/clined-api/internal/store"
)

// fakeDBTX implements store.DBTX and records the statements it receives.
type fakeDBTX struct {
	execQuery string
	execArgs  []any
	execErr   error
}

func (f *fakeDBTX) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.execQuery = query
	f.execArgs = args
	return nil, f.execErr
}

func (f *fakeDBTX) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	return nil, nil
}

func (f *fakeDBTX) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return nil, nil
}

func (f *fakeDBTX) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return nil
}

func newTestRecord(t *testing.T) *domain.GenerationRecord {
	t.Helper()
	record, err := domain.NewGenerationRecord(
		domain.ContentTypeCase,
		"a case about chest pain",
		domain.DifficultyIntermediate,
		"cardiology",
		"Generated case text",
		[]string{"https://pubmed.ncbi.nlm.nih.gov/1"},
	)
	require.NoError(t, err)
	return record
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewPostgresGenerationRecordStore(t *testing.T) {
	t.Run("nil_db_panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewPostgresGenerationRecordStore(nil, discardLogger())
		})
	})

	t.Run("nil_logger_uses_default", func(t *testing.T) {
		s := NewPostgresGenerationRecordStore(&fakeDBTX{}, nil)
		assert.NotNil(t, s)
		assert.NotNil(t, s.logger)
	})
}

func TestRecordStoreCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts all columns", func(t *testing.T) {
		db := &fakeDBTX{}
		s := NewPostgresGenerationRecordStore(db, discardLogger())
		record := newTestRecord(t)

		err := s.Create(ctx, record)
		require.NoError(t, err)

		assert.Contains(t, db.execQuery, "INSERT INTO generated_content")
		require.Len(t, db.execArgs, 8)
		assert.Equal(t, record.ID, db.execArgs[0])
		assert.Equal(t, record.ContentType, db.execArgs[1])
		assert.Equal(t, record.Prompt, db.execArgs[2])
		assert.Equal(t, record.Difficulty, db.execArgs[3])
		assert.Equal(t, record.Specialty, db.execArgs[4])
		assert.Equal(t, record.GeneratedContent, db.execArgs[5])
		assert.JSONEq(t, `["https://pubmed.ncbi.nlm.nih.gov/1"]`, string(db.execArgs[6].([]byte)))
		assert.Equal(t, record.CreatedAt, db.execArgs[7])
	})

	t.Run("nil citations stored as empty array", func(t *testing.T) {
		db := &fakeDBTX{}
		s := NewPostgresGenerationRecordStore(db, discardLogger())
		record := newTestRecord(t)
		record.Citations = nil

		err := s.Create(ctx, record)
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(db.execArgs[6].([]byte)))
	})

	t.Run("invalid record rejected before any statement", func(t *testing.T) {
		db := &fakeDBTX{}
		s := NewPostgresGenerationRecordStore(db, discardLogger())
		record := newTestRecord(t)
		record.GeneratedContent = ""

		err := s.Create(ctx, record)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.Empty(t, db.execQuery, "no statement should reach the database")
	})

	t.Run("unique violation maps to ErrDuplicate", func(t *testing.T) {
		db := &fakeDBTX{execErr: &pgconn.PgError{Code: "23505"}}
		s := NewPostgresGenerationRecordStore(db, discardLogger())

		err := s.Create(ctx, newTestRecord(t))
		assert.ErrorIs(t, err, store.ErrDuplicate)
	})

	t.Run("unmapped errors pass through", func(t *testing.T) {
		dbErr := errors.New("connection refused")
		db := &fakeDBTX{execErr: dbErr}
		s := NewPostgresGenerationRecordStore(db, discardLogger())

		err := s.Create(ctx, newTestRecord(t))
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestMapError(t *testing.T) {
	t.Parallel()

	assert.NoError(t, MapError(nil))
	assert.ErrorIs(t, MapError(sql.ErrNoRows), store.ErrNotFound)
	assert.ErrorIs(t, MapError(&pgconn.PgError{Code: "23505"}), store.ErrDuplicate)
	assert.ErrorIs(t, MapError(&pgconn.PgError{Code: "23514"}), store.ErrInvalidEntity)
	assert.ErrorIs(t, MapError(&pgconn.PgError{Code: "23502"}), store.ErrInvalidEntity)

	passthrough := errors.New("some other failure")
	assert.Equal(t, passthrough, MapError(passthrough))

	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsUniqueViolation(passthrough))
}
