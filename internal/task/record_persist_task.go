package task

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pharmed/clined-api/internal/domain"
	"github.com/pharmed/clined-api/internal/store"
)

// persistTimeout bounds a single record write so a stalled database cannot
// pin a worker.
const persistTimeout = 10 * time.Second

// Common errors
var (
	ErrNilRecordStore = errors.New("record store cannot be nil")
	ErrNilRecord      = errors.New("record cannot be nil")
	ErrNilLogger      = errors.New("logger cannot be nil")
)

// recordPersistPayload represents the serialized data stored in the task
type recordPersistPayload struct {
	RecordID    uuid.UUID          `json:"record_id"`
	ContentType domain.ContentType `json:"content_type"`
}

// RecordPersistTask implements the Task interface for writing a generation
// record to the append-only store after a response has already been sent.
type RecordPersistTask struct {
	id          uuid.UUID
	record      *domain.GenerationRecord
	recordStore store.GenerationRecordStore
	logger      *slog.Logger
	status      TaskStatus
}

// NewRecordPersistTask creates a new record persistence task
func NewRecordPersistTask(
	record *domain.GenerationRecord,
	recordStore store.GenerationRecordStore,
	logger *slog.Logger,
) (*RecordPersistTask, error) {
	if record == nil {
		return nil, ErrNilRecord
	}
	if recordStore == nil {
		return nil, ErrNilRecordStore
	}
	if logger == nil {
		return nil, ErrNilLogger
	}

	return &RecordPersistTask{
		id:          uuid.New(),
		record:      record,
		recordStore: recordStore,
		logger:      logger.With("task_type", TaskTypeRecordPersist, "record_id", record.ID),
		status:      TaskStatusPending,
	}, nil
}

// ID returns the task's unique identifier
func (t *RecordPersistTask) ID() uuid.UUID {
	return t.id
}

// Type returns the task type identifier
func (t *RecordPersistTask) Type() string {
	return TaskTypeRecordPersist
}

// Payload returns the task data as a byte slice
func (t *RecordPersistTask) Payload() []byte {
	payload := recordPersistPayload{
		RecordID:    t.record.ID,
		ContentType: t.record.ContentType,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		t.logger.Error("failed to marshal task payload", "error", err)
		return nil
	}
	return data
}

// Status returns the current task status
func (t *RecordPersistTask) Status() TaskStatus {
	return t.status
}

// Execute writes the record to the store. A failure marks the task failed
// and is surfaced to the runner; the record is not retried.
func (t *RecordPersistTask) Execute(ctx context.Context) error {
	t.status = TaskStatusProcessing

	ctx, cancel := context.WithTimeout(ctx, persistTimeout)
	defer cancel()

	if err := t.recordStore.Create(ctx, t.record); err != nil {
		t.status = TaskStatusFailed
		return fmt.Errorf("failed to persist generation record: %w", err)
	}

	t.status = TaskStatusCompleted
	t.logger.Debug("generation record persisted",
		"content_type", t.record.ContentType,
		"difficulty", t.record.Difficulty)
	return nil
}
