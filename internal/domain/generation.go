package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ContentType identifies which kind of clinical content to generate.
type ContentType string

// Supported generation content types.
const (
	ContentTypeCase       ContentType = "case"
	ContentTypeSOAP       ContentType = "soap"
	ContentTypeAssessment ContentType = "assessment"
	ContentTypeEvidence   ContentType = "evidence"
	ContentTypeDrugInfo   ContentType = "drug_info"
)

// Difficulty is the complexity tier of generated content.
type Difficulty string

// Supported difficulty levels, in ascending order of complexity.
const (
	DifficultyBasic        Difficulty = "basic"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
	DifficultyExtreme      Difficulty = "extreme"
)

// Common validation errors for generation entities.
var (
	ErrEmptyRecordID      = errors.New("record ID cannot be empty")
	ErrEmptyRecordContent = errors.New("record content cannot be empty")
)

// Demographics carries the optional structured patient fields a caller can
// supply with a generation request. Empty fields are simply omitted from the
// composed prompt; supplied fields must appear in it verbatim.
type Demographics struct {
	Age            string `json:"age,omitempty"`
	Gender         string `json:"gender,omitempty"`
	Diagnosis      string `json:"diagnosis,omitempty"`
	ChiefComplaint string `json:"chiefComplaint,omitempty"`
	MedicalHistory string `json:"medicalHistory,omitempty"`
}

// Empty reports whether no demographic field was supplied.
func (d Demographics) Empty() bool {
	return d.Age == "" && d.Gender == "" && d.Diagnosis == "" &&
		d.ChiefComplaint == "" && d.MedicalHistory == ""
}

// GenerationRequest is the structured input for one generation action.
// It is created transiently per call and never persisted as-is.
type GenerationRequest struct {
	ContentType  ContentType  `json:"type"`
	Prompt       string       `json:"prompt"`
	Difficulty   Difficulty   `json:"difficulty"`
	Specialty    string       `json:"specialty"`
	Demographics Demographics `json:"demographics"`
}

// Validate checks that the request's enumerated fields are in range.
// Free-text fields are intentionally unconstrained.
func (r GenerationRequest) Validate() error {
	if !IsValidContentType(r.ContentType) {
		return ErrInvalidContentType
	}
	if !IsValidDifficulty(r.Difficulty) {
		return ErrInvalidDifficulty
	}
	return nil
}

// GenerationResult is the gateway's answer to a single generation request.
// Exactly one of Content or ErrorMessage is populated: a failed result must
// never be displayed as generated content.
type GenerationResult struct {
	Success      bool     `json:"success"`
	Content      string   `json:"content,omitempty"`
	Citations    []string `json:"citations,omitempty"`
	ErrorMessage string   `json:"error,omitempty"`
}

// GenerationRecord is one append-only row in the generated content log.
// Records are written once after a successful provider call and never read
// back by this system.
type GenerationRecord struct {
	ID               uuid.UUID   `json:"id"`
	ContentType      ContentType `json:"content_type"`
	Prompt           string      `json:"prompt"`
	Difficulty       Difficulty  `json:"difficulty"`
	Specialty        string      `json:"specialty"`
	GeneratedContent string      `json:"generated_content"`
	Citations        []string    `json:"citations"`
	CreatedAt        time.Time   `json:"created_at"`
}

// NewGenerationRecord creates a record for a completed generation, assigning
// a fresh ID and UTC creation timestamp. Returns an error if validation fails.
func NewGenerationRecord(
	contentType ContentType,
	prompt string,
	difficulty Difficulty,
	specialty string,
	generatedContent string,
	citations []string,
) (*GenerationRecord, error) {
	record := &GenerationRecord{
		ID:               uuid.New(),
		ContentType:      contentType,
		Prompt:           prompt,
		Difficulty:       difficulty,
		Specialty:        specialty,
		GeneratedContent: generatedContent,
		Citations:        citations,
		CreatedAt:        time.Now().UTC(),
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate checks if the GenerationRecord has valid data.
func (r *GenerationRecord) Validate() error {
	if r.ID == uuid.Nil {
		return ErrEmptyRecordID
	}

	if !IsValidContentType(r.ContentType) {
		return ErrInvalidContentType
	}

	if !IsValidDifficulty(r.Difficulty) {
		return ErrInvalidDifficulty
	}

	if r.GeneratedContent == "" {
		return ErrEmptyRecordContent
	}

	return nil
}

// IsValidContentType checks if the given value is a supported ContentType.
func IsValidContentType(t ContentType) bool {
	switch t {
	case ContentTypeCase, ContentTypeSOAP, ContentTypeAssessment,
		ContentTypeEvidence, ContentTypeDrugInfo:
		return true
	default:
		return false
	}
}

// IsValidDifficulty checks if the given value is a supported Difficulty.
func IsValidDifficulty(d Difficulty) bool {
	switch d {
	case DifficultyBasic, DifficultyIntermediate, DifficultyAdvanced, DifficultyExtreme:
		return true
	default:
		return false
	}
}
