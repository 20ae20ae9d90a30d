package prompt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pharmed/clined-api/internal/domain"
	"github.com/pharmed/clined-api/internal/prompt"
)

func TestComposeIncludesAllDemographicsVerbatim(t *testing.T) {
	t.Parallel()

	req := domain.GenerationRequest{
		ContentType: domain.ContentTypeCase,
		Difficulty:  domain.DifficultyBasic,
		Specialty:   "internal medicine",
		Demographics: domain.Demographics{
			Age:            "45",
			Gender:         "Male",
			Diagnosis:      "myocardial infarction",
			ChiefComplaint: "chest pain",
			MedicalHistory: "hypertension, 20 pack-year smoking history",
		},
	}

	_, userPrompt := prompt.Compose(req)

	assert.Contains(t, userPrompt, "Age: 45")
	assert.Contains(t, userPrompt, "Gender: Male")
	assert.Contains(t, userPrompt, "Diagnosis: myocardial infarction")
	assert.Contains(t, userPrompt, "Chief Complaint: chest pain")
	assert.Contains(t, userPrompt, "Medical History: hypertension, 20 pack-year smoking history")
}

func TestComposePartialDemographicsOmitsAbsentFields(t *testing.T) {
	t.Parallel()

	req := domain.GenerationRequest{
		ContentType: domain.ContentTypeCase,
		Difficulty:  domain.DifficultyAdvanced,
		Specialty:   "cardiology",
		Demographics: domain.Demographics{
			Age:    "72",
			Gender: "Female",
		},
	}

	_, userPrompt := prompt.Compose(req)

	assert.Contains(t, userPrompt, "Age: 72")
	assert.Contains(t, userPrompt, "Gender: Female")
	assert.NotContains(t, userPrompt, "Diagnosis:")
	assert.NotContains(t, userPrompt, "Medical History:")
	// Absent fields hit the template fallbacks instead.
	assert.Contains(t, userPrompt, "expand on: relevant complaint")
	assert.Contains(t, userPrompt, "centered around the primary diagnosis")
}

func TestComposeCaseWithoutDemographicsUsesGenericChecklist(t *testing.T) {
	t.Parallel()

	req := domain.GenerationRequest{
		ContentType: domain.ContentTypeCase,
		Difficulty:  domain.DifficultyIntermediate,
		Specialty:   "emergency medicine",
		Prompt:      "involving heart failure exacerbation",
	}

	_, userPrompt := prompt.Compose(req)

	assert.Contains(t, userPrompt, "Create a intermediate level clinical case for emergency medicine practice.")
	assert.Contains(t, userPrompt, "involving heart failure exacerbation")
	assert.Contains(t, userPrompt, "10. Learning objectives")
	assert.NotContains(t, userPrompt, "based on the following patient details")
}

func TestComposeAdditionalInstructionsIncluded(t *testing.T) {
	t.Parallel()

	req := domain.GenerationRequest{
		ContentType: domain.ContentTypeCase,
		Difficulty:  domain.DifficultyBasic,
		Specialty:   "general",
		Prompt:      "emphasize discharge planning",
		Demographics: domain.Demographics{
			Age: "60",
		},
	}

	_, userPrompt := prompt.Compose(req)
	assert.Contains(t, userPrompt, "Additional instructions: emphasize discharge planning")
}

func TestComposePerContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		contentType    domain.ContentType
		wantSystemFrag string
		wantUserFrag   string
	}{
		{
			name:           "soap",
			contentType:    domain.ContentTypeSOAP,
			wantSystemFrag: "clinical documentation expert",
			wantUserFrag:   "Generate a detailed SOAP note for:",
		},
		{
			name:           "assessment",
			contentType:    domain.ContentTypeAssessment,
			wantSystemFrag: "medical education specialist",
			wantUserFrag:   "Create a clinical assessment question about:",
		},
		{
			name:           "evidence",
			contentType:    domain.ContentTypeEvidence,
			wantSystemFrag: "evidence-based medicine specialist",
			wantUserFrag:   "Provide evidence-based information about:",
		},
		{
			name:           "drug_info",
			contentType:    domain.ContentTypeDrugInfo,
			wantSystemFrag: "clinical pharmacist",
			wantUserFrag:   "Provide comprehensive drug information about:",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := domain.GenerationRequest{
				ContentType: tc.contentType,
				Difficulty:  domain.DifficultyIntermediate,
				Specialty:   "general",
				Prompt:      "topic under test",
			}

			systemPrompt, userPrompt := prompt.Compose(req)
			assert.Contains(t, systemPrompt, tc.wantSystemFrag)
			assert.Contains(t, userPrompt, tc.wantUserFrag)
			assert.Contains(t, userPrompt, "topic under test")
		})
	}
}

func TestComposeUnknownTypePassesPromptThrough(t *testing.T) {
	t.Parallel()

	req := domain.GenerationRequest{
		ContentType: domain.ContentType("freeform"),
		Prompt:      "raw question text",
	}

	systemPrompt, userPrompt := prompt.Compose(req)
	assert.True(t, strings.HasPrefix(systemPrompt, "You are a clinical expert"))
	assert.Equal(t, "raw question text", userPrompt)
}

func TestComposeIsDeterministic(t *testing.T) {
	t.Parallel()

	req := domain.GenerationRequest{
		ContentType: domain.ContentTypeSOAP,
		Difficulty:  domain.DifficultyBasic,
		Specialty:   "psychiatry",
		Prompt:      "a 32-year-old with depression",
	}

	sys1, user1 := prompt.Compose(req)
	sys2, user2 := prompt.Compose(req)
	assert.Equal(t, sys1, sys2)
	assert.Equal(t, user1, user2)
}
