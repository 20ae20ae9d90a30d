package catalog

import (
	"fmt"

	"github.com/pharmed/clined-api/internal/domain"
)

var assessmentTemplates = []domain.AssessmentTemplate{
	{
		ID:          "drug-therapy-problems",
		Title:       "Drug Therapy Problems Assessment",
		Description: "Identify and resolve medication-related problems in patient care",
		Category:    "Clinical Pharmacy",
		Difficulty:  "Intermediate",
		Questions:   20,
		TimeLimit:   35,
	},
	{
		ID:          "medication-reconciliation",
		Title:       "Medication Reconciliation & Safety",
		Description: "Comprehensive medication history and safety evaluation",
		Category:    "Pharmaceutical Care",
		Difficulty:  "Advanced",
		Questions:   25,
		TimeLimit:   40,
	},
	{
		ID:          "pharmacokinetics-dosing",
		Title:       "Clinical Pharmacokinetics & Dosing",
		Description: "Dose optimization and therapeutic drug monitoring",
		Category:    "Clinical Pharmacology",
		Difficulty:  "Advanced",
		Questions:   18,
		TimeLimit:   45,
	},
	{
		ID:          "drug-interactions",
		Title:       "Drug Interactions & Contraindications",
		Description: "Identify and manage clinically significant drug interactions",
		Category:    "Drug Safety",
		Difficulty:  "Intermediate",
		Questions:   22,
		TimeLimit:   30,
	},
	{
		ID:          "patient-counseling",
		Title:       "Patient Counseling & Education",
		Description: "Effective pharmaceutical care communication skills",
		Category:    "Patient Care",
		Difficulty:  "Basic",
		Questions:   15,
		TimeLimit:   25,
	},
	{
		ID:          "specialty-pharmacy",
		Title:       "Specialty Pharmacy Practice",
		Description: "Complex disease state management and specialty medications",
		Category:    "Specialty Care",
		Difficulty:  "Extreme",
		Questions:   30,
		TimeLimit:   50,
	},
}

var sampleQuestions = []domain.AssessmentQuestion{
	{
		ID:       "1",
		Type:     domain.QuestionTypeMultipleChoice,
		Question: "A 65-year-old patient with heart failure is prescribed furosemide 40mg daily and lisinopril 10mg daily. Lab results show K+ 3.2 mEq/L, Cr 1.8 mg/dL, and BUN 45 mg/dL. What is the most appropriate pharmaceutical care intervention?",
		Options: []string{
			"Increase furosemide dose to 80mg daily",
			"Add potassium chloride 20 mEq daily and monitor electrolytes",
			"Discontinue lisinopril due to elevated creatinine",
			"Switch to hydrochlorothiazide for better potassium sparing",
		},
		CorrectAnswer: "Add potassium chloride 20 mEq daily and monitor electrolytes",
		Explanation:   "The patient has hypokalemia (K+ 3.2 mEq/L) likely due to furosemide therapy. Potassium supplementation is indicated with close monitoring. The elevated creatinine may be related to dehydration or ACE inhibitor therapy but discontinuation is not immediately warranted without further assessment.",
		Difficulty:    domain.DifficultyIntermediate,
		Category:      "Drug Therapy Problems",
	},
	{
		ID:            "2",
		Type:          domain.QuestionTypeCaseAnalysis,
		Question:      "A 45-year-old diabetic patient presents with the following medications: metformin 1000mg BID, glipizide 10mg BID, atorvastatin 40mg daily, lisinopril 20mg daily, and aspirin 81mg daily. Recent labs: HbA1c 9.2%, LDL 95 mg/dL, BP 145/90 mmHg, eGFR 55 mL/min/1.73m². Patient reports frequent hypoglycemic episodes. Identify drug therapy problems and provide pharmaceutical care recommendations.",
		CorrectAnswer: "Drug Therapy Problems: 1) Uncontrolled diabetes (HbA1c 9.2%) 2) Hypoglycemia risk with sulfonylurea 3) Uncontrolled hypertension 4) Potential need for renal dose adjustment. Recommendations: Consider reducing glipizide dose or switching to DPP-4 inhibitor, add long-acting insulin, increase lisinopril or add second antihypertensive, monitor renal function closely.",
		Explanation:   "Multiple drug therapy problems exist requiring comprehensive pharmaceutical care intervention including medication optimization, dose adjustments, and enhanced monitoring.",
		Difficulty:    domain.DifficultyAdvanced,
		Category:      "Chronic Disease Management",
	},
	{
		ID:       "3",
		Type:     domain.QuestionTypeMultipleChoice,
		Question: "A patient is prescribed warfarin 5mg daily with an INR goal of 2.0-3.0. Current INR is 4.2. The patient reports no bleeding symptoms. What is the most appropriate clinical pharmacy recommendation?",
		Options: []string{
			"Continue current dose and recheck INR in 1 week",
			"Hold warfarin for 1-2 doses, then resume at reduced dose",
			"Administer vitamin K 2.5mg orally",
			"Discontinue warfarin and start dabigatran",
		},
		CorrectAnswer: "Hold warfarin for 1-2 doses, then resume at reduced dose",
		Explanation:   "For INR 4.2 without bleeding, the appropriate management is to hold warfarin for 1-2 doses and resume at a lower dose. Vitamin K is reserved for higher INRs or bleeding complications.",
		Difficulty:    domain.DifficultyIntermediate,
		Category:      "Drug Safety & Monitoring",
	},
	{
		ID:            "4",
		Type:          domain.QuestionTypeDifferential,
		Question:      "A 72-year-old patient with multiple comorbidities is taking 12 different medications. During medication reconciliation, you identify several potential issues. List the top 5 drug-related problems you would prioritize for intervention.",
		CorrectAnswer: "Drug interactions, Inappropriate dosing for age/renal function, Duplicate therapy, Medication adherence issues, Adverse drug reactions",
		Explanation:   "In elderly patients with polypharmacy, these are the most common and clinically significant drug-related problems requiring immediate pharmaceutical care intervention.",
		Difficulty:    domain.DifficultyAdvanced,
		Category:      "Medication Reconciliation",
	},
}

// Question categories offered when authoring assessments.
var assessmentCategories = []string{
	"Drug Therapy Problems", "Medication Reconciliation", "Clinical Pharmacokinetics",
	"Drug Interactions", "Patient Counseling", "Specialty Pharmacy", "Pharmacoeconomics",
	"Drug Safety & Monitoring", "Chronic Disease Management", "Pain Management",
	"Infectious Diseases", "Cardiology Pharmacy", "Oncology Pharmacy", "Pediatric Pharmacy",
}

// AssessmentTemplates returns all prebuilt assessment templates.
func AssessmentTemplates() []domain.AssessmentTemplate {
	out := make([]domain.AssessmentTemplate, len(assessmentTemplates))
	copy(out, assessmentTemplates)
	return out
}

// SampleQuestions returns the bank of worked questions.
func SampleQuestions() []domain.AssessmentQuestion {
	out := make([]domain.AssessmentQuestion, len(sampleQuestions))
	copy(out, sampleQuestions)
	return out
}

// AssessmentCategories returns the authoring category list.
func AssessmentCategories() []string {
	out := make([]string, len(assessmentCategories))
	copy(out, assessmentCategories)
	return out
}

// BuildAssessment assembles a ready-to-take assessment from a template,
// populated with the sample question bank.
func BuildAssessment(templateID string) (domain.Assessment, error) {
	for _, t := range assessmentTemplates {
		if t.ID == templateID {
			return domain.Assessment{
				Title:       t.Title,
				Description: t.Description,
				TimeLimit:   t.TimeLimit,
				Difficulty:  t.Difficulty,
				Category:    t.Category,
				Questions:   SampleQuestions(),
			}, nil
		}
	}
	return domain.Assessment{}, fmt.Errorf("unknown assessment template %q", templateID)
}
