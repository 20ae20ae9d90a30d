package soap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pharmed/clined-api/internal/domain"
	"github.com/pharmed/clined-api/internal/soap"
)

func TestStaticSOAPDeterministic(t *testing.T) {
	t.Parallel()

	first := soap.StaticSOAP("45", "Male", "chest pain")
	second := soap.StaticSOAP("45", "Male", "chest pain")
	assert.Equal(t, first, second)

	assert.Contains(t, first.Subjective, "45-year-old male presents with chest pain.")
	assert.Contains(t, first.Objective, "Vital Signs: Age-appropriate vital signs")
	assert.Contains(t, first.Assessment, "Primary Diagnosis:")
	assert.Contains(t, first.Plan, "Follow-up:")
}

func TestStaticCasePerDifficulty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		difficulty domain.Difficulty
		age        int
		gender     string
		bp         string
		hr         int
	}{
		{domain.DifficultyBasic, 45, "Male", "150/95", 102},
		{domain.DifficultyIntermediate, 68, "Female", "110/70", 110},
		{domain.DifficultyAdvanced, 72, "Male", "90/60", 125},
		{domain.DifficultyExtreme, 55, "Female", "85/50", 135},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(string(tc.difficulty), func(t *testing.T) {
			t.Parallel()

			c := soap.StaticCase(tc.difficulty)
			assert.Equal(t, tc.age, c.PatientInfo.Age)
			assert.Equal(t, tc.gender, c.PatientInfo.Gender)
			assert.Equal(t, tc.bp, c.Vitals.BP)
			assert.Equal(t, tc.hr, c.Vitals.HR)
			assert.Equal(t, tc.difficulty, c.Difficulty)
			assert.NotEmpty(t, c.History)
			assert.NotEmpty(t, c.LabResults)
			assert.NotEmpty(t, c.Imaging)
		})
	}
}

func TestStaticCaseUnknownDifficultyFallsBackToBasic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, soap.StaticCase(domain.DifficultyBasic), soap.StaticCase("heroic"))
}

func TestCustomCaseMyocardialInfarctionBranch(t *testing.T) {
	t.Parallel()

	info := domain.Demographics{
		Age:            "58",
		Gender:         "Male",
		Diagnosis:      "Acute Myocardial Infarction",
		ChiefComplaint: "crushing chest pain",
		MedicalHistory: "hypertension",
	}

	c := soap.CustomCase(info, domain.DifficultyBasic)
	assert.Equal(t, 58, c.PatientInfo.Age)
	assert.Contains(t, c.History, "Past medical history significant for hypertension.")
	assert.Contains(t, c.History, "crushing and substernal")
	assert.Equal(t, "150/95", c.Vitals.BP)
	assert.Equal(t, 98, c.Vitals.SpO2)
	assert.Contains(t, c.LabResults, "Troponin I: 2.5 ng/mL")
	assert.Contains(t, c.Imaging, "ST elevation in leads II, III, aVF")
	assert.Contains(t, c.PhysicalExam, "No peripheral edema.")

	extreme := soap.CustomCase(info, domain.DifficultyExtreme)
	assert.Equal(t, "85/50", extreme.Vitals.BP)
	assert.Equal(t, 135, extreme.Vitals.HR)
	assert.Contains(t, extreme.LabResults, "Troponin I: 15.2 ng/mL")
	assert.Contains(t, extreme.LabResults, "BNP: elevated")
	assert.Contains(t, extreme.Imaging, "Extensive ST elevations")
	assert.Contains(t, extreme.PhysicalExam, "Mild peripheral edema noted.")

	// "heart attack" reaches the same branch.
	alias := info
	alias.Diagnosis = "suspected heart attack"
	assert.Contains(t, soap.CustomCase(alias, domain.DifficultyBasic).History, "crushing and substernal")
}

func TestCustomCasePneumoniaBranch(t *testing.T) {
	t.Parallel()

	info := domain.Demographics{
		Age:            "70",
		Gender:         "Female",
		Diagnosis:      "community-acquired pneumonia",
		ChiefComplaint: "productive cough and fever",
	}

	basic := soap.CustomCase(info, domain.DifficultyBasic)
	assert.Contains(t, basic.History, "No significant past medical history.")
	assert.Contains(t, basic.History, "Symptoms started 2 days ago")
	assert.NotContains(t, basic.History, "confusion")
	assert.Equal(t, "130/80", basic.Vitals.BP)
	assert.Equal(t, 101.2, basic.Vitals.Temp)
	assert.Contains(t, basic.LabResults, "WBC: 12,000")
	assert.Contains(t, basic.Imaging, "Right lower lobe consolidation")

	extreme := soap.CustomCase(info, domain.DifficultyExtreme)
	assert.Equal(t, "90/60", extreme.Vitals.BP)
	assert.Equal(t, 85, extreme.Vitals.SpO2)
	assert.Contains(t, extreme.History, "confusion and malaise")
	assert.Contains(t, extreme.PhysicalExam, "Altered mental status.")
	assert.Contains(t, extreme.Imaging, "CT chest: Extensive consolidation with complications")
}

func TestCustomCaseGenericBranch(t *testing.T) {
	t.Parallel()

	info := domain.Demographics{
		Age:            "33",
		Gender:         "Female",
		Diagnosis:      "Migraine",
		ChiefComplaint: "throbbing headache",
	}

	intermediate := soap.CustomCase(info, domain.DifficultyIntermediate)
	assert.Contains(t, intermediate.History, "gradually worsening")
	assert.Contains(t, intermediate.PhysicalExam, "moderately ill")
	assert.Contains(t, intermediate.PhysicalExam, "migraine")
	assert.Equal(t, "110/70", intermediate.Vitals.BP)
	assert.Contains(t, intermediate.LabResults, "demonstrate moderate abnormalities")
	assert.Contains(t, intermediate.Imaging, "are consistent with the diagnosis of migraine")
}

func TestCustomCaseDeterministic(t *testing.T) {
	t.Parallel()

	info := domain.Demographics{Age: "60", Gender: "Male", Diagnosis: "copd", ChiefComplaint: "dyspnea"}
	assert.Equal(t,
		soap.CustomCase(info, domain.DifficultyAdvanced),
		soap.CustomCase(info, domain.DifficultyAdvanced))
}

func TestExpertAnswerMatchesStaticCase(t *testing.T) {
	t.Parallel()

	for _, d := range []domain.Difficulty{
		domain.DifficultyBasic,
		domain.DifficultyIntermediate,
		domain.DifficultyAdvanced,
		domain.DifficultyExtreme,
	} {
		answer := soap.ExpertAnswer(d)
		assert.NotEmpty(t, answer.Subjective, d)
		assert.NotEmpty(t, answer.Objective, d)
		assert.NotEmpty(t, answer.Assessment, d)
		assert.NotEmpty(t, answer.Plan, d)
	}

	basic := soap.ExpertAnswer(domain.DifficultyBasic)
	assert.Contains(t, basic.Assessment, "ST-Elevation Myocardial Infarction")
	assert.Contains(t, soap.ExpertAnswer(domain.DifficultyExtreme).Assessment, "Severe acute pancreatitis")

	// Unknown difficulty mirrors StaticCase's basic fallback.
	assert.Equal(t, basic, soap.ExpertAnswer("unknown"))
}
