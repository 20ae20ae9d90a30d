package soap

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pharmed/clined-api/internal/domain"
)

// StaticSOAP builds the deterministic fallback note for a patient when no
// generated content is available. Equal inputs produce byte-identical notes.
func StaticSOAP(age, gender, chiefComplaint string) domain.SOAPNote {
	return domain.SOAPNote{
		Subjective: fmt.Sprintf(
			"Chief Complaint: %s-year-old %s presents with %s.\n\n"+
				"History of Present Illness: Detailed history of the presenting complaint with timeline, associated symptoms, and relevant context.\n\n"+
				"Past Medical History: Relevant medical history, medications, allergies, and social history.",
			age, strings.ToLower(gender), chiefComplaint),
		Objective: "Vital Signs: Age-appropriate vital signs\n" +
			"Physical Examination: Comprehensive physical examination findings relevant to the chief complaint and specialty focus.\n" +
			"Diagnostic Results: Relevant laboratory, imaging, and other diagnostic test results.",
		Assessment: "Primary Diagnosis: Clinical assessment based on presentation\n" +
			"Differential Diagnosis: Alternative diagnoses to consider\n" +
			"Clinical Reasoning: Evidence-based reasoning for the primary diagnosis.",
		Plan: "Diagnostic: Additional tests or studies needed\n" +
			"Therapeutic: Treatment plan including medications, procedures, or interventions\n" +
			"Education: Patient education and counseling\n" +
			"Follow-up: Monitoring and follow-up recommendations",
	}
}

// staticCases is the hand-written case bank, one case per difficulty.
var staticCases = map[domain.Difficulty]domain.ClinicalCase{
	domain.DifficultyBasic: {
		PatientInfo: domain.PatientInfo{
			Age:            45,
			Gender:         "Male",
			ChiefComplaint: "Chest pain for 2 hours",
		},
		History:      "Patient presents with sudden onset of crushing chest pain that started 2 hours ago while watching TV. Pain is substernal, radiates to left arm, associated with diaphoresis and nausea. No previous cardiac history. Smokes 1 pack per day for 20 years.",
		PhysicalExam: "Alert, anxious appearing male in mild distress. Diaphoretic. Heart sounds regular, no murmurs. Lungs clear bilaterally. No peripheral edema.",
		Vitals:       domain.VitalSigns{BP: "150/95", HR: 102, Temp: 98.6, RR: 20, SpO2: 98},
		LabResults:   "Troponin I: 2.5 ng/mL (elevated), CK-MB: 15 ng/mL (elevated), CBC: WNL, BMP: Glucose 140 mg/dL, otherwise normal",
		Imaging:      "ECG: ST elevation in leads II, III, aVF. Chest X-ray: Normal heart size, clear lungs",
		Difficulty:   domain.DifficultyBasic,
	},
	domain.DifficultyIntermediate: {
		PatientInfo: domain.PatientInfo{
			Age:            68,
			Gender:         "Female",
			ChiefComplaint: "Shortness of breath and leg swelling",
		},
		History:      "Patient with history of diabetes mellitus type 2, hypertension, and previous MI (2 years ago) presents with progressive dyspnea on exertion over 3 weeks, now occurring at rest. Reports 10-pound weight gain, bilateral leg swelling, and orthopnea. Takes metformin, lisinopril, and aspirin.",
		PhysicalExam: "Elderly female in moderate respiratory distress. JVD to 8 cm. Heart sounds: S3 gallop present, 2/6 systolic murmur. Lungs: bilateral crackles to mid-lung fields. Extremities: 2+ pitting edema to knees bilaterally.",
		Vitals:       domain.VitalSigns{BP: "110/70", HR: 110, Temp: 98.2, RR: 24, SpO2: 92},
		LabResults:   "BNP: 850 pg/mL (elevated), Creatinine: 1.8 mg/dL (elevated from baseline 1.2), HbA1c: 8.2%, Troponin: negative",
		Imaging:      "Chest X-ray: Cardiomegaly, bilateral pulmonary edema. Echo: EF 35%, regional wall motion abnormalities",
		Difficulty:   domain.DifficultyIntermediate,
	},
	domain.DifficultyAdvanced: {
		PatientInfo: domain.PatientInfo{
			Age:            72,
			Gender:         "Male",
			ChiefComplaint: "Confusion and difficulty breathing",
		},
		History:      "Patient with COPD, CHF (EF 30%), CKD stage 3, and recent pneumonia (treated 2 weeks ago) presents with altered mental status for 2 days. Family reports increased confusion, decreased oral intake, and worsening dyspnea. Recent medications include antibiotics, prednisone taper, and usual cardiac medications.",
		PhysicalExam: "Elderly male, lethargic but arousable. Dry mucous membranes. Heart: irregular rhythm, 3/6 systolic murmur. Lungs: decreased breath sounds at bases, scattered rhonchi. Abdomen: soft, non-tender. Extremities: 1+ edema, poor capillary refill.",
		Vitals:       domain.VitalSigns{BP: "90/60", HR: 125, Temp: 101.2, RR: 28, SpO2: 88},
		LabResults:   "WBC: 15,000, Creatinine: 2.8 mg/dL (baseline 1.8), BUN: 65 mg/dL, Na: 128 mEq/L, K: 5.2 mEq/L, Lactate: 2.8 mmol/L, Procalcitonin: 1.2 ng/mL, Chest X-ray: Bilateral lower lobe infiltrates, CT head: No acute findings",
		Imaging:      "Chest X-ray: Bilateral lower lobe infiltrates",
		Difficulty:   domain.DifficultyAdvanced,
	},
	domain.DifficultyExtreme: {
		PatientInfo: domain.PatientInfo{
			Age:            55,
			Gender:         "Female",
			ChiefComplaint: "Severe abdominal pain and vomiting",
		},
		History:      "Patient with history of alcohol use disorder presents with severe epigastric pain radiating to back, persistent vomiting, and inability to keep fluids down for 24 hours. Pain started suddenly after heavy drinking episode. Previous episode of pancreatitis 6 months ago.",
		PhysicalExam: "Ill-appearing female in severe distress. Tachycardic, hypotensive. Abdomen: severe epigastric tenderness with guarding, hypoactive bowel sounds. Skin: jaundiced, poor turgor. Neurologic: agitated, tremulous.",
		Vitals:       domain.VitalSigns{BP: "85/50", HR: 135, Temp: 102.8, RR: 32, SpO2: 94},
		LabResults:   "Lipase: 1200 U/L, AST: 180 U/L, ALT: 150 U/L, Total bilirubin: 4.2 mg/dL, WBC: 18,000, Hct: 45%, Platelets: 95,000, Creatinine: 2.1 mg/dL, Calcium: 7.8 mg/dL, Glucose: 250 mg/dL",
		Imaging:      "CT abdomen: Pancreatic edema and inflammation, peripancreatic fluid collections, no necrosis identified. Chest X-ray: bilateral pleural effusions",
		Difficulty:   domain.DifficultyExtreme,
	},
}

// StaticCase returns the fallback clinical case for the given difficulty.
// An unknown difficulty falls back to the basic case.
func StaticCase(difficulty domain.Difficulty) domain.ClinicalCase {
	if c, ok := staticCases[difficulty]; ok {
		return c
	}
	return staticCases[domain.DifficultyBasic]
}

// CustomCase builds a fallback case from caller-supplied patient details.
// The diagnosis picks the scenario branch; difficulty scales the vitals and
// findings.
func CustomCase(info domain.Demographics, difficulty domain.Difficulty) domain.ClinicalCase {
	age, _ := strconv.Atoi(info.Age)
	base := domain.ClinicalCase{
		PatientInfo: domain.PatientInfo{
			Age:            age,
			Gender:         info.Gender,
			ChiefComplaint: info.ChiefComplaint,
		},
		Difficulty: difficulty,
	}

	gender := strings.ToLower(info.Gender)
	diagnosis := strings.ToLower(info.Diagnosis)

	switch {
	case strings.Contains(diagnosis, "myocardial infarction") || strings.Contains(diagnosis, "heart attack"):
		history := fmt.Sprintf("%s-year-old %s presents with %s. ", info.Age, gender, info.ChiefComplaint)
		if info.MedicalHistory != "" {
			history += fmt.Sprintf("Past medical history significant for %s.", info.MedicalHistory)
		} else {
			history += "No significant past medical history."
		}
		history += " Patient reports the pain started suddenly and is described as crushing and substernal. Associated symptoms include diaphoresis, nausea, and shortness of breath."
		base.History = history

		edema := "No peripheral edema."
		if difficulty != domain.DifficultyBasic {
			edema = "Mild peripheral edema noted."
		}
		base.PhysicalExam = fmt.Sprintf(
			"Alert %s in %s distress. Diaphoretic. Heart sounds regular, no murmurs. Lungs clear bilaterally. %s",
			gender, distressLevel(difficulty), edema)

		base.Vitals = pickVitals(difficulty,
			domain.VitalSigns{BP: "150/95", HR: 102, Temp: 98.6, RR: 20, SpO2: 98},
			domain.VitalSigns{BP: "140/90", HR: 115, Temp: 98.6, RR: 24, SpO2: 94},
			domain.VitalSigns{BP: "85/50", HR: 135, Temp: 98.6, RR: 32, SpO2: 88})

		troponin := pick(difficulty, "2.5", "8.1", "15.2")
		extra := ""
		if difficulty != domain.DifficultyBasic {
			extra = "BNP: elevated, Creatinine: elevated, "
		}
		bmp := pick(difficulty,
			"Glucose mildly elevated, otherwise normal",
			"Glucose mildly elevated, otherwise normal",
			"Multiple abnormalities including hyperglycemia")
		base.LabResults = fmt.Sprintf(
			"Troponin I: %s ng/mL (elevated), CK-MB: elevated, %sCBC: WNL, BMP: %s",
			troponin, extra, bmp)

		base.Imaging = fmt.Sprintf("ECG: %s. Chest X-ray: %s",
			pick(difficulty,
				"ST elevation in leads II, III, aVF",
				"ST elevation with some reciprocal changes",
				"Extensive ST elevations with reciprocal changes"),
			pick(difficulty,
				"Normal heart size, clear lungs",
				"Mild cardiomegaly",
				"Cardiomegaly, pulmonary edema"))
		return base

	case strings.Contains(diagnosis, "pneumonia"):
		history := fmt.Sprintf("%s-year-old %s presents with %s. ", info.Age, gender, info.ChiefComplaint)
		if info.MedicalHistory != "" {
			history += fmt.Sprintf("Past medical history includes %s.", info.MedicalHistory)
		} else {
			history += "No significant past medical history."
		}
		confusion := ""
		if difficulty != domain.DifficultyBasic {
			confusion = "confusion and "
		}
		history += fmt.Sprintf(
			" Symptoms started %s ago with progressive worsening. Associated with productive cough, fever, and %smalaise.",
			pick(difficulty, "2 days", "3 days", "5 days"), confusion)
		base.History = history

		mental := ""
		if difficulty == domain.DifficultyExtreme {
			mental = "Altered mental status. "
		}
		tachy := ""
		if difficulty != domain.DifficultyBasic {
			tachy = "Tachycardic, "
		}
		base.PhysicalExam = fmt.Sprintf(
			"%s in %s respiratory distress. %sLungs: %s. Heart: %sregular rhythm.",
			info.Gender, distressLevel(difficulty), mental,
			pick(difficulty,
				"Right lower lobe crackles",
				"Bilateral lower lobe crackles",
				"Bilateral crackles, decreased breath sounds"),
			tachy)

		bp := "130/80"
		if difficulty == domain.DifficultyExtreme {
			bp = "90/60"
		}
		base.Vitals = pickVitals(difficulty,
			domain.VitalSigns{BP: bp, HR: 95, Temp: 101.2, RR: 22, SpO2: 94},
			domain.VitalSigns{BP: bp, HR: 110, Temp: 102.1, RR: 26, SpO2: 90},
			domain.VitalSigns{BP: bp, HR: 125, Temp: 103.5, RR: 30, SpO2: 85})

		sepsis := ""
		if difficulty != domain.DifficultyBasic {
			sepsis = "Procalcitonin: elevated, Lactate: elevated, "
		}
		base.LabResults = fmt.Sprintf(
			"WBC: %s (elevated), %sBlood cultures: pending, Sputum culture: pending",
			pick(difficulty, "12,000", "16,000", "20,000"), sepsis)

		imaging := fmt.Sprintf("Chest X-ray: %s",
			pick(difficulty,
				"Right lower lobe consolidation",
				"Bilateral lower lobe infiltrates",
				"Bilateral multilobar pneumonia with effusions"))
		if difficulty == domain.DifficultyExtreme {
			imaging += ". CT chest: Extensive consolidation with complications"
		}
		base.Imaging = imaging
		return base

	default:
		history := fmt.Sprintf("%s-year-old %s presents with %s. ", info.Age, gender, info.ChiefComplaint)
		if info.MedicalHistory != "" {
			history += fmt.Sprintf("Relevant medical history includes %s.", info.MedicalHistory)
		} else {
			history += "No significant past medical history."
		}
		history += fmt.Sprintf(" Symptoms have been %s.",
			pick(difficulty,
				"acute onset",
				"gradually worsening",
				"progressive over several days with recent deterioration"))
		base.History = history

		base.PhysicalExam = fmt.Sprintf(
			"%s appears %s. Vital signs as noted. Physical examination reveals findings consistent with %s.",
			info.Gender,
			pick(difficulty, "stable", "moderately ill", "critically ill"),
			diagnosis)

		base.Vitals = pickVitals(difficulty,
			domain.VitalSigns{BP: "125/80", HR: 85, Temp: 98.6, RR: 18, SpO2: 98},
			domain.VitalSigns{BP: "110/70", HR: 100, Temp: 98.6, RR: 22, SpO2: 95},
			domain.VitalSigns{BP: "95/55", HR: 120, Temp: 102.0, RR: 28, SpO2: 90})

		base.LabResults = fmt.Sprintf("Laboratory studies %s consistent with %s.",
			pick(difficulty,
				"show mild abnormalities",
				"demonstrate moderate abnormalities",
				"reveal multiple significant abnormalities"),
			diagnosis)
		base.Imaging = fmt.Sprintf("Imaging studies %s the diagnosis of %s.",
			pick(difficulty, "support", "are consistent with", "confirm with complications"),
			diagnosis)
		return base
	}
}

// distressLevel maps difficulty to the exam's severity adjective: basic is
// mild, extreme is severe, everything else moderate.
func distressLevel(difficulty domain.Difficulty) string {
	return pick(difficulty, "mild", "moderate", "severe")
}

// pick selects the basic, middle, or extreme variant of a finding. The
// middle value covers both intermediate and advanced, matching how the
// fallback scenarios were originally authored.
func pick(difficulty domain.Difficulty, basic, middle, extreme string) string {
	switch difficulty {
	case domain.DifficultyBasic:
		return basic
	case domain.DifficultyExtreme:
		return extreme
	default:
		return middle
	}
}

// pickVitals is pick for whole vital-sign sets.
func pickVitals(difficulty domain.Difficulty, basic, middle, extreme domain.VitalSigns) domain.VitalSigns {
	switch difficulty {
	case domain.DifficultyBasic:
		return basic
	case domain.DifficultyExtreme:
		return extreme
	default:
		return middle
	}
}
