package api

import (
	"github.com/pharmed/clined-api/internal/domain"
)

// GenerateRequest is the body of POST /api/generate. Type is mandatory;
// difficulty and specialty fall back to service defaults when omitted.
// The demographic fields are optional and flow into the composed prompt.
type GenerateRequest struct {
	Type           string `json:"type" validate:"required,oneof=case soap assessment evidence drug_info"`
	Prompt         string `json:"prompt"`
	Difficulty     string `json:"difficulty" validate:"omitempty,oneof=basic intermediate advanced extreme"`
	Specialty      string `json:"specialty"`
	Age            string `json:"age,omitempty"`
	Gender         string `json:"gender,omitempty"`
	Diagnosis      string `json:"diagnosis,omitempty"`
	ChiefComplaint string `json:"chiefComplaint,omitempty"`
	MedicalHistory string `json:"medicalHistory,omitempty"`
}

// ToDomain converts the DTO into a domain generation request.
func (r GenerateRequest) ToDomain() domain.GenerationRequest {
	return domain.GenerationRequest{
		ContentType: domain.ContentType(r.Type),
		Prompt:      r.Prompt,
		Difficulty:  domain.Difficulty(r.Difficulty),
		Specialty:   r.Specialty,
		Demographics: domain.Demographics{
			Age:            r.Age,
			Gender:         r.Gender,
			Diagnosis:      r.Diagnosis,
			ChiefComplaint: r.ChiefComplaint,
			MedicalHistory: r.MedicalHistory,
		},
	}
}

// GenerateResponse is the success payload of POST /api/generate. SOAPNote is
// populated only for type=soap, carrying the content split into sections.
type GenerateResponse struct {
	Success    bool             `json:"success"`
	Content    string           `json:"content"`
	Citations  []string         `json:"citations"`
	Type       string           `json:"type"`
	Difficulty string           `json:"difficulty"`
	Specialty  string           `json:"specialty"`
	SOAPNote   *domain.SOAPNote `json:"soapNote,omitempty"`
}

// BuildAssessmentRequest is the body of POST /api/assessments/from-template.
type BuildAssessmentRequest struct {
	TemplateID string `json:"templateId" validate:"required"`
}

// ValidateEvidenceRequest is the body of POST /api/evidence/validate.
type ValidateEvidenceRequest struct {
	Criteria domain.ValidationCriteria `json:"criteria"`
}

// ValidateEvidenceResponse reports the appraisal outcome: the number of
// criteria that passed and whether the source clears the threshold.
type ValidateEvidenceResponse struct {
	Score     int  `json:"score"`
	Validated bool `json:"validated"`
}
