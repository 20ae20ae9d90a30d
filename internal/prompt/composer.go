package prompt

import (
	"fmt"
	"strings"

	"github.com/pharmed/clined-api/internal/domain"
)

// Compose turns a generation request into the (system, user) prompt pair for
// the completion provider. It is pure string construction and cannot fail:
// every supplied demographic field is included verbatim, and each content
// type carries its fixed checklist of sections the model is asked to produce.
//
// An unrecognized content type falls through to a generic clinical system
// prompt with the request's free text passed through unchanged, matching the
// gateway's historical behavior for direct callers.
func Compose(req domain.GenerationRequest) (systemPrompt, userPrompt string) {
	switch req.ContentType {
	case domain.ContentTypeCase:
		return systemPromptCase, caseUserPrompt(req)
	case domain.ContentTypeSOAP:
		return systemPromptSOAP, soapUserPrompt(req)
	case domain.ContentTypeAssessment:
		return systemPromptAssessment, assessmentUserPrompt(req)
	case domain.ContentTypeEvidence:
		return systemPromptEvidence, evidenceUserPrompt(req)
	case domain.ContentTypeDrugInfo:
		return systemPromptDrugInfo, drugInfoUserPrompt(req)
	default:
		return systemPromptDefault, req.Prompt
	}
}

// caseUserPrompt builds the clinical case request. When demographics are
// supplied it lists every provided field verbatim and pins the checklist
// items to those values; otherwise it uses the generic checklist.
func caseUserPrompt(req domain.GenerationRequest) string {
	d := req.Demographics

	if d.Empty() {
		return fmt.Sprintf(`Create a %s level clinical case for %s practice. %s

Please include:
1. Patient demographics and chief complaint
2. History of present illness with timeline
3. Past medical history, medications, allergies
4. Physical examination findings
5. Vital signs (realistic values)
6. Laboratory results and imaging (if applicable)
7. Assessment and differential diagnosis
8. Treatment plan with rationale
9. Follow-up recommendations
10. Learning objectives

Make it realistic and clinically accurate with proper medical terminology.`,
			req.Difficulty, req.Specialty, req.Prompt)
	}

	var details []string
	if d.Age != "" {
		details = append(details, "Age: "+d.Age)
	}
	if d.Gender != "" {
		details = append(details, "Gender: "+d.Gender)
	}
	if d.Diagnosis != "" {
		details = append(details, "Diagnosis: "+d.Diagnosis)
	}
	if d.ChiefComplaint != "" {
		details = append(details, "Chief Complaint: "+d.ChiefComplaint)
	}
	if d.MedicalHistory != "" {
		details = append(details, "Medical History: "+d.MedicalHistory)
	}

	extra := ""
	if req.Prompt != "" {
		extra = "Additional instructions: " + req.Prompt + "\n\n"
	}

	return fmt.Sprintf(`Create a %s level clinical case for %s practice based on the following patient details:

%s

%sPlease include:
1. Patient demographics (use the provided age: %s and gender: %s)
2. Chief complaint (expand on: %s)
3. History of present illness with timeline
4. Past medical history (incorporate: %s)
5. Current medications and allergies
6. Physical examination findings
7. Vital signs (realistic values for age %s)
8. Laboratory results and imaging (if applicable for %s)
9. Assessment and differential diagnosis (centered around %s)
10. Treatment plan with evidence-based rationale
11. Follow-up recommendations
12. Learning objectives

Make it realistic and clinically accurate with proper medical terminology. Ensure ALL the provided patient details (age, gender, diagnosis, chief complaint, medical history) are fully integrated into the case presentation.`,
		req.Difficulty, req.Specialty,
		strings.Join(details, "\n"),
		extra,
		orDefault(d.Age, "appropriate age"),
		orDefault(d.Gender, "appropriate gender"),
		orDefault(d.ChiefComplaint, "relevant complaint"),
		orDefault(d.MedicalHistory, "relevant history"),
		orDefault(d.Age, "adult"),
		orDefault(d.Diagnosis, "the condition"),
		orDefault(d.Diagnosis, "the primary diagnosis"))
}

func soapUserPrompt(req domain.GenerationRequest) string {
	return fmt.Sprintf(`Generate a detailed SOAP note for: %s
Difficulty level: %s
Specialty: %s

Include:
- Subjective: Chief complaint, HPI, ROS, PMH, medications, allergies, social history
- Objective: Vital signs, physical exam, diagnostic results
- Assessment: Primary/secondary diagnoses with ICD-10 codes, clinical reasoning
- Plan: Diagnostic tests, treatments, medications with dosing, follow-up, patient education

Use proper medical terminology and evidence-based recommendations.`,
		req.Prompt, req.Difficulty, req.Specialty)
}

func assessmentUserPrompt(req domain.GenerationRequest) string {
	return fmt.Sprintf(`Create a clinical assessment question about: %s
Difficulty: %s
Specialty: %s

Include:
1. Clinical scenario with patient presentation
2. Multiple choice options (4-5 choices)
3. Correct answer with detailed explanation
4. Clinical reasoning and evidence base
5. Key learning points
6. References to current guidelines

Make it challenging but fair, testing practical clinical knowledge.`,
		req.Prompt, req.Difficulty, req.Specialty)
}

func evidenceUserPrompt(req domain.GenerationRequest) string {
	return fmt.Sprintf(`Provide evidence-based information about: %s

Focus on:
1. Current research findings and clinical trials
2. Evidence quality and level (A, B, C, D)
3. Clinical practice guidelines
4. Systematic reviews and meta-analyses
5. Clinical recommendations with rationale
6. Limitations and areas needing more research
7. Practical clinical applications

Include proper medical references and evidence grading.`, req.Prompt)
}

func drugInfoUserPrompt(req domain.GenerationRequest) string {
	return fmt.Sprintf(`Provide comprehensive drug information about: %s

Include:
1. Mechanism of action
2. Clinical indications and evidence
3. Dosing and administration
4. Contraindications and precautions
5. Drug interactions (major ones)
6. Adverse effects and monitoring
7. Clinical pearls and considerations
8. Patient counseling points
9. Cost considerations if relevant

Focus on clinically relevant, evidence-based information.`, req.Prompt)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
