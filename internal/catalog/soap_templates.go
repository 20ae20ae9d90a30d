package catalog

import "github.com/pharmed/clined-api/internal/domain"

var soapTemplates = []domain.SOAPTemplate{
	{
		ID:          "general-medicine",
		Title:       "General Medicine",
		Description: "Standard internal medicine SOAP note format",
		Specialty:   "Internal Medicine",
		Template: domain.SOAPNote{
			Subjective: "Chief Complaint:\nHistory of Present Illness:\nReview of Systems:\nPast Medical History:\nMedications:\nAllergies:\nSocial History:\nFamily History:",
			Objective:  "Vital Signs:\nGeneral Appearance:\nHEENT:\nCardiovascular:\nPulmonary:\nAbdomen:\nExtremities:\nNeurologic:\nSkin:\nLaboratory/Imaging:",
			Assessment: "Primary Diagnosis:\nSecondary Diagnoses:\nDifferential Diagnosis:\nClinical Reasoning:",
			Plan:       "Diagnostic:\nTherapeutic:\nMonitoring:\nPatient Education:\nFollow-up:\nDisposition:",
		},
		Example: domain.SOAPNote{
			Subjective: "Chief Complaint: 65-year-old male with chest pain for 3 hours.\n\nHistory of Present Illness: Patient reports sudden onset of crushing substernal chest pain that began 3 hours ago while climbing stairs. Pain is 8/10, radiates to left arm and jaw, associated with diaphoresis and nausea. No relief with rest.\n\nReview of Systems: Positive for dyspnea, diaphoresis, nausea. Negative for fever, palpitations, syncope.\n\nPast Medical History: Hypertension, hyperlipidemia, type 2 diabetes\nMedications: Metformin 1000mg BID, Lisinopril 10mg daily, Atorvastatin 40mg daily\nAllergies: NKDA\nSocial History: 30 pack-year smoking history, quit 5 years ago. Occasional alcohol use.\nFamily History: Father died of MI at age 58, mother with diabetes",
			Objective:  "Vital Signs: BP 160/95, HR 105, Temp 98.6°F, RR 22, SpO2 96% on RA\n\nGeneral Appearance: Anxious, diaphoretic male in moderate distress\nHEENT: Normocephalic, atraumatic, PERRLA, no JVD\nCardiovascular: Tachycardic, regular rhythm, no murmurs, rubs, or gallops\nPulmonary: Clear to auscultation bilaterally, no wheezes or crackles\nAbdomen: Soft, non-tender, non-distended, normal bowel sounds\nExtremities: No edema, pulses 2+ bilaterally\nNeurologic: Alert and oriented x3, no focal deficits\nSkin: Diaphoretic, no rashes\n\nLaboratory/Imaging:\n- Troponin I: 3.2 ng/mL (elevated)\n- CK-MB: 18 ng/mL (elevated)\n- ECG: ST elevation in leads V2-V6\n- Chest X-ray: Normal heart size, clear lungs",
			Assessment: "Primary Diagnosis: ST-Elevation Myocardial Infarction (STEMI) - Anterior wall\n\nSecondary Diagnoses:\n1. Hypertension\n2. Type 2 diabetes mellitus\n3. Hyperlipidemia\n\nDifferential Diagnosis: Unstable angina, aortic dissection, pulmonary embolism, pericarditis\n\nClinical Reasoning: Patient presents with classic symptoms of acute coronary syndrome. Elevated cardiac biomarkers and ST elevations in anterior leads confirm STEMI. Risk factors include diabetes, hypertension, hyperlipidemia, and smoking history.",
			Plan:       "Diagnostic:\n- Serial troponins and ECGs\n- Echoc cardiogram\n- Lipid panel, HbA1c\n\nTherapeutic:\n- Activate cardiac catheterization lab for primary PCI\n- Dual antiplatelet therapy: ASA 325mg chewed, Clopidogrel 600mg loading dose\n- Anticoagulation: Heparin per protocol\n- Beta-blocker: Metoprolol 25mg BID\n- Statin: Atorvastatin 80mg daily\n\nMonitoring:\n- Continuous cardiac monitoring\n- Hourly vital signs\n- Daily weights and I/Os\n\nPatient Education:\n- Smoking cessation counseling\n- Cardiac diet education\n- Activity restrictions\n\nFollow-up:\n- Cardiology consultation\n- Cardiac rehabilitation referral\n- Primary care follow-up in 1-2 weeks\n\nDisposition: Admit to CCU for monitoring and management",
		},
	},
	{
		ID:          "emergency-medicine",
		Title:       "Emergency Medicine",
		Description: "Emergency department focused SOAP note",
		Specialty:   "Emergency Medicine",
		Template: domain.SOAPNote{
			Subjective: "Chief Complaint:\nHistory of Present Illness:\nPertinent Review of Systems:\nPast Medical History:\nMedications:\nAllergies:\nSocial History:",
			Objective:  "Vital Signs:\nGeneral Appearance:\nPhysical Examination:\nDiagnostic Studies:",
			Assessment: "Emergency Department Diagnosis:\nDifferential Diagnosis:\nRisk Stratification:",
			Plan:       "ED Management:\nDisposition:\nDischarge Instructions:\nFollow-up:\nReturn Precautions:",
		},
		Example: domain.SOAPNote{
			Subjective: "Chief Complaint: 28-year-old female with severe abdominal pain.\n\nHistory of Present Illness: Patient reports sudden onset of severe right lower quadrant pain that began 4 hours ago. Pain is sharp, constant, 9/10 severity, with associated nausea and vomiting. No fever, no urinary symptoms. Last menstrual period 2 weeks ago.\n\nPertinent Review of Systems: Positive for nausea, vomiting, anorexia. Negative for fever, dysuria, vaginal bleeding.\n\nPast Medical History: None significant\nMedications: Oral contraceptive pills\nAllergies: NKDA\nSocial History: Non-smoker, occasional alcohol use, sexually active",
			Objective:  "Vital Signs: BP 110/70, HR 95, Temp 98.8°F, RR 18, SpO2 99%\n\nGeneral Appearance: Young female in moderate distress due to pain\n\nPhysical Examination:\n- Abdomen: Tender to palpation in RLQ with guarding, positive McBurney's point, negative Murphy's sign\n- Pelvic: Deferred pending imaging\n- Extremities: No edema\n\nDiagnostic Studies:\n- CBC: WBC 13,500 with left shift\n- BMP: Normal\n- Urinalysis: Normal\n- Beta-hCG: Negative\n- CT abdomen/pelvis: Appendiceal wall thickening with periappendiceal fat stranding",
			Assessment: "Emergency Department Diagnosis: Acute appendicitis\n\nDifferential Diagnosis: Ovarian cyst, ovarian torsion, PID, UTI, gastroenteritis\n\nRisk Stratification: Moderate risk for perforation given duration of symptoms",
			Plan:       "ED Management:\n- IV access and fluid resuscitation\n- Pain control with morphine\n- Antiemetics as needed\n- NPO status\n- Surgery consultation\n\nDisposition: Admit for appendectomy\n\nDischarge Instructions: N/A - admitted\n\nFollow-up: Post-operative care per surgery\n\nReturn Precautions: N/A - admitted",
		},
	},
	{
		ID:          "psychiatry",
		Title:       "Psychiatry",
		Description: "Mental health focused SOAP note format",
		Specialty:   "Psychiatry",
		Template: domain.SOAPNote{
			Subjective: "Chief Complaint:\nHistory of Present Illness:\nPsychiatric History:\nMedical History:\nMedications:\nSubstance Use:\nSocial History:\nFamily History:",
			Objective:  "Vital Signs:\nGeneral Appearance:\nMental Status Examination:\n- Appearance:\n- Behavior:\n- Speech:\n- Mood:\n- Affect:\n- Thought Process:\n- Thought Content:\n- Perceptions:\n- Cognition:\n- Insight:\n- Judgment:",
			Assessment: "Psychiatric Diagnosis:\nMedical Diagnoses:\nRisk Assessment:\nFunctional Assessment:",
			Plan:       "Psychopharmacology:\nPsychotherapy:\nSafety Planning:\nFollow-up:\nReferrals:",
		},
		Example: domain.SOAPNote{
			Subjective: "Chief Complaint: 32-year-old male with depression and anxiety.\n\nHistory of Present Illness: Patient reports 6-month history of persistent low mood, anhedonia, and excessive worry. Symptoms began after job loss. Reports difficulty sleeping, decreased appetite, fatigue, and concentration problems. Denies suicidal ideation currently but had passive thoughts 2 months ago.\n\nPsychiatric History: Previous episode of depression 5 years ago, treated with sertraline with good response. No hospitalizations.\nMedical History: None significant\nMedications: None currently\nSubstance Use: 2-3 beers on weekends, denies illicit drug use\nSocial History: Recently unemployed, lives alone, limited social support\nFamily History: Mother with depression, father with alcohol use disorder",
			Objective:  "Vital Signs: BP 125/80, HR 78, Temp 98.6°F\n\nGeneral Appearance: Well-groomed male appearing stated age\n\nMental Status Examination:\n- Appearance: Casually dressed, good hygiene\n- Behavior: Cooperative, minimal eye contact\n- Speech: Soft, slow rate, normal volume\n- Mood: \"Depressed and worried\"\n- Affect: Dysthymic, congruent with mood\n- Thought Process: Linear, goal-directed\n- Thought Content: No delusions, denies current SI/HI\n- Perceptions: No hallucinations\n- Cognition: Alert, oriented x3, intact memory\n- Insight: Good - recognizes need for treatment\n- Judgment: Fair - seeking appropriate help",
			Assessment: "Psychiatric Diagnosis: Major Depressive Disorder, recurrent episode, moderate severity with anxious distress\n\nMedical Diagnoses: None\n\nRisk Assessment: Low suicide risk - no current ideation, good insight, seeking treatment\n\nFunctional Assessment: Moderate impairment in occupational and social functioning",
			Plan:       "Psychopharmacology:\n- Restart sertraline 50mg daily (previously effective)\n- Monitor for side effects and efficacy\n- Consider dose adjustment in 4-6 weeks\n\nPsychotherapy:\n- Refer for cognitive behavioral therapy\n- Focus on coping skills and job search strategies\n\nSafety Planning:\n- Discussed warning signs and coping strategies\n- Emergency contacts provided\n- Crisis hotline numbers given\n\nFollow-up:\n- Return in 2 weeks for medication monitoring\n- Sooner if symptoms worsen\n\nReferrals:\n- Vocational rehabilitation services\n- Community mental health resources",
		},
	},
}

// SOAPTemplates returns every note template in catalog order.
func SOAPTemplates() []domain.SOAPTemplate {
	out := make([]domain.SOAPTemplate, len(soapTemplates))
	copy(out, soapTemplates)
	return out
}

// SOAPTemplateByID looks up a template by its identifier.
func SOAPTemplateByID(id string) (domain.SOAPTemplate, bool) {
	for _, t := range soapTemplates {
		if t.ID == id {
			return t, true
		}
	}
	return domain.SOAPTemplate{}, false
}
