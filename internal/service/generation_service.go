package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pharmed/clined-api/internal/domain"
	"github.com/pharmed/clined-api/internal/generation"
	"github.com/pharmed/clined-api/internal/platform/logger"
	"github.com/pharmed/clined-api/internal/prompt"
	"github.com/pharmed/clined-api/internal/store"
	"github.com/pharmed/clined-api/internal/task"
)

// TaskRunner defines the interface for submitting background tasks
type TaskRunner interface {
	// Submit adds a task to the processing queue
	Submit(ctx context.Context, task task.Task) error
}

// GenerationService provides clinical content generation operations
type GenerationService interface {
	// Generate validates the request, composes prompts, calls the completion
	// provider exactly once, and schedules a best-effort write of the result
	// to the append-only store. The returned result is complete regardless of
	// whether that write ever happens.
	Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error)
}

// GenerationServiceError wraps errors from the generation service with context.
type GenerationServiceError struct {
	// Operation is the operation that failed (e.g., "generate")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for GenerationServiceError.
func (e *GenerationServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generation service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("generation service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *GenerationServiceError) Unwrap() error {
	return e.Err
}

// generationServiceImpl implements the GenerationService interface
type generationServiceImpl struct {
	generator   generation.Generator
	recordStore store.GenerationRecordStore
	taskRunner  TaskRunner
	logger      *slog.Logger
}

// NewGenerationService creates a new GenerationService.
// It returns an error if any of the required dependencies are nil.
func NewGenerationService(
	generator generation.Generator,
	recordStore store.GenerationRecordStore,
	taskRunner TaskRunner,
	logger *slog.Logger,
) (GenerationService, error) {
	if generator == nil {
		return nil, &GenerationServiceError{
			Operation: "create_service",
			Message:   "generator cannot be nil",
		}
	}
	if recordStore == nil {
		return nil, &GenerationServiceError{
			Operation: "create_service",
			Message:   "recordStore cannot be nil",
		}
	}
	if taskRunner == nil {
		return nil, &GenerationServiceError{
			Operation: "create_service",
			Message:   "taskRunner cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &generationServiceImpl{
		generator:   generator,
		recordStore: recordStore,
		taskRunner:  taskRunner,
		logger:      logger.With("component", "generation_service"),
	}, nil
}

// Generate implements GenerationService.Generate.
func (s *generationServiceImpl) Generate(
	ctx context.Context,
	req domain.GenerationRequest,
) (*domain.GenerationResult, error) {
	// The HTTP layer attaches a trace-scoped logger to the context; fall back
	// to the service logger for non-request callers.
	log := logger.FromContextOrDefault(ctx, s.logger)

	applyDefaults(&req)

	if err := req.Validate(); err != nil {
		log.Warn("generation request validation failed",
			"error", err,
			"content_type", req.ContentType)
		return nil, &GenerationServiceError{
			Operation: "generate",
			Message:   "invalid generation request",
			Err:       fmt.Errorf("%w: %v", domain.ErrValidation, err),
		}
	}

	systemPrompt, userPrompt := prompt.Compose(req)

	completion, err := s.generator.ChatCompletion(ctx, systemPrompt, userPrompt)
	if err != nil {
		log.Error("provider call failed",
			"error", err,
			"content_type", req.ContentType,
			"difficulty", req.Difficulty)
		return nil, &GenerationServiceError{
			Operation: "generate",
			Message:   "completion provider call failed",
			Err:       err,
		}
	}

	s.schedulePersist(ctx, req, completion)

	return &domain.GenerationResult{
		Success:   true,
		Content:   completion.Content,
		Citations: completion.Citations,
	}, nil
}

// schedulePersist enqueues a background write of the generation record.
// Persistence is best-effort: any failure here is logged and swallowed so
// the caller still receives the generated content.
func (s *generationServiceImpl) schedulePersist(
	ctx context.Context,
	req domain.GenerationRequest,
	completion *generation.Completion,
) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	record, err := domain.NewGenerationRecord(
		req.ContentType,
		req.Prompt,
		req.Difficulty,
		req.Specialty,
		completion.Content,
		completion.Citations,
	)
	if err != nil {
		log.Warn("failed to build generation record, skipping persistence",
			"error", err,
			"content_type", req.ContentType)
		return
	}

	persistTask, err := task.NewRecordPersistTask(record, s.recordStore, s.logger)
	if err != nil {
		log.Warn("failed to build persistence task, skipping persistence",
			"error", err,
			"record_id", record.ID)
		return
	}

	if err := s.taskRunner.Submit(ctx, persistTask); err != nil {
		log.Warn("failed to enqueue persistence task, record dropped",
			"error", err,
			"record_id", record.ID)
	}
}

// IsValidationError reports whether the error stems from request validation,
// as opposed to a provider or infrastructure failure.
func IsValidationError(err error) bool {
	return errors.Is(err, domain.ErrValidation)
}

// applyDefaults fills in the documented defaults for optional request fields.
func applyDefaults(req *domain.GenerationRequest) {
	if req.Difficulty == "" {
		req.Difficulty = domain.DifficultyIntermediate
	}
	if req.Specialty == "" {
		req.Specialty = "general"
	}
}
