package soap

import "github.com/pharmed/clined-api/internal/domain"

// expertAnswers holds the model SOAP note for each case in the static bank.
var expertAnswers = map[domain.Difficulty]domain.SOAPNote{
	domain.DifficultyBasic: {
		Subjective: `Chief Complaint: 45-year-old male with acute onset crushing chest pain for 2 hours.

History of Present Illness: Patient reports sudden onset of substernal chest pain that began 2 hours ago while at rest. Pain is described as crushing, 8/10 severity, radiating to left arm. Associated symptoms include diaphoresis and nausea. No previous cardiac history.

Past Medical History: No significant past medical history.
Social History: Tobacco use - 1 pack per day for 20 years (20 pack-year history).`,
		Objective: `Vital Signs: BP 150/95, HR 102, Temp 98.6°F, RR 20, SpO2 98%

Physical Examination:
- General: Alert, anxious appearing male in mild distress, diaphoretic
- Cardiovascular: Regular rate and rhythm, no murmurs, rubs, or gallops
- Pulmonary: Clear to auscultation bilaterally
- Extremities: No peripheral edema

Diagnostic Results:
- Troponin I: 2.5 ng/mL (elevated, normal <0.04)
- CK-MB: 15 ng/mL (elevated)
- ECG: ST elevation in leads II, III, aVF consistent with inferior STEMI
- Chest X-ray: Normal heart size, clear lung fields`,
		Assessment: `Primary Diagnosis: ST-Elevation Myocardial Infarction (STEMI) - Inferior wall

Clinical Reasoning: Patient presents with classic symptoms of acute coronary syndrome including crushing chest pain with radiation, associated diaphoresis and nausea. Elevated cardiac biomarkers (troponin I and CK-MB) confirm myocardial injury. ECG findings of ST elevation in inferior leads (II, III, aVF) indicate acute STEMI of the inferior wall, likely involving the right coronary artery.

Risk Factors: Significant tobacco use history (20 pack-years) is a major modifiable risk factor for coronary artery disease.`,
		Plan: `Immediate Management:
1. Activate cardiac catheterization lab for primary PCI (door-to-balloon time goal <90 minutes)
2. Dual antiplatelet therapy: Aspirin 325mg chewed, Clopidogrel 600mg loading dose
3. Anticoagulation: Heparin per protocol
4. Beta-blocker: Metoprolol 25mg BID if no contraindications
5. Statin: Atorvastatin 80mg daily
6. Continuous cardiac monitoring

Secondary Prevention:
1. Smoking cessation counseling and resources
2. Cardiac rehabilitation referral
3. Follow-up with cardiology in 1-2 weeks
4. Echo in 24-48 hours to assess LV function

Evidence Base: 2013 ACCF/AHA STEMI Guidelines recommend primary PCI as preferred reperfusion strategy when performed by experienced operators within 90 minutes of first medical contact.`,
	},
	domain.DifficultyIntermediate: {
		Subjective: `Chief Complaint: 68-year-old female with progressive dyspnea and bilateral leg swelling.

History of Present Illness: Patient reports 3-week history of progressive dyspnea on exertion, now occurring at rest. Associated with 10-pound weight gain, bilateral lower extremity swelling, and orthopnea requiring 3 pillows to sleep.

Past Medical History: Type 2 diabetes mellitus, hypertension, previous myocardial infarction 2 years ago
Medications: Metformin, lisinopril, aspirin
Allergies: NKDA`,
		Objective: `Vital Signs: BP 110/70, HR 110, Temp 98.2°F, RR 24, SpO2 92% on room air

Physical Examination:
- General: Elderly female in moderate respiratory distress
- Cardiovascular: Tachycardic, S3 gallop present, 2/6 systolic murmur, JVD to 8 cm
- Pulmonary: Bilateral crackles to mid-lung fields
- Extremities: 2+ pitting edema to knees bilaterally

Diagnostic Results:
- BNP: 850 pg/mL (elevated, normal <100)
- Creatinine: 1.8 mg/dL (elevated from baseline 1.2)
- HbA1c: 8.2% (poor glycemic control)
- Chest X-ray: Cardiomegaly, bilateral pulmonary edema
- Echocardiogram: EF 35% (reduced), regional wall motion abnormalities`,
		Assessment: `Primary Diagnosis: Acute decompensated heart failure with reduced ejection fraction (HFrEF)
Secondary Diagnoses:
1. Type 2 diabetes mellitus, poorly controlled
2. Chronic kidney disease stage 3
3. History of myocardial infarction with resultant cardiomyopathy

Clinical Reasoning: Patient presents with classic signs and symptoms of heart failure including dyspnea, orthopnea, weight gain, bilateral edema, and elevated JVD. Elevated BNP confirms diagnosis. Reduced EF of 35% indicates systolic dysfunction likely secondary to previous MI. Worsening renal function suggests cardiorenal syndrome.`,
		Plan: `Acute Management:
1. Diuresis: Furosemide 40mg IV BID, monitor daily weights and I/Os
2. ACE inhibitor: Continue lisinopril, monitor renal function
3. Beta-blocker: Initiate metoprolol succinate 25mg daily when stable
4. Aldosterone antagonist: Consider spironolactone if K+ and creatinine stable

Diabetes Management:
1. Diabetes consultation for optimization of glycemic control
2. Consider SGLT2 inhibitor (empagliflozin) for dual cardiac and renal benefits

Monitoring:
1. Daily weights, strict I/O monitoring
2. BMP daily while on IV diuretics
3. Repeat echo in 3 months to reassess EF

Discharge Planning:
1. Heart failure education and dietary counseling
2. Cardiology follow-up in 1-2 weeks
3. Home health for weight monitoring

Evidence Base: 2022 AHA/ACC/HFSA Heart Failure Guidelines recommend guideline-directed medical therapy with ACE inhibitor, beta-blocker, and aldosterone antagonist for HFrEF.`,
	},
	domain.DifficultyAdvanced: {
		Subjective: `Chief Complaint: 72-year-old male with altered mental status and worsening dyspnea.

History of Present Illness: Patient with multiple comorbidities presents with 2-day history of confusion and decreased oral intake. Family reports baseline cognitive function was normal. Recent treatment for pneumonia with antibiotics and prednisone taper completed 2 weeks ago.

Past Medical History: COPD, CHF (EF 30%), CKD stage 3, recent pneumonia
Medications: Albuterol, tiotropium, furosemide, lisinopril, metoprolol
Social History: Former smoker, lives with family`,
		Objective: `Vital Signs: BP 90/60, HR 125, Temp 101.2°F, RR 28, SpO2 88% on room air

Physical Examination:
- General: Elderly male, lethargic but arousable, appears dehydrated
- HEENT: Dry mucous membranes, poor skin turgor
- Cardiovascular: Tachycardic, irregular rhythm, 3/6 systolic murmur
- Pulmonary: Decreased breath sounds at bases, scattered rhonchi
- Abdomen: Soft, non-tender, hypoactive bowel sounds
- Extremities: 1+ edema, poor capillary refill
- Neurologic: Lethargic, oriented to person only

Diagnostic Results:
- WBC: 15,000 (elevated)
- Creatinine: 2.8 mg/dL (elevated from baseline 1.8)
- BUN: 65 mg/dL, Na: 128 mEq/L, K: 5.2 mEq/L
- Lactate: 2.8 mmol/L (elevated)
- Procalcitonin: 1.2 ng/mL (elevated)
- Chest X-ray: Bilateral lower lobe infiltrates
- CT head: No acute findings`,
		Assessment: `Primary Diagnosis: Sepsis secondary to healthcare-associated pneumonia
Secondary Diagnoses:
1. Acute kidney injury on chronic kidney disease (AKIN stage 2)
2. Hyponatremia, likely hypovolemic
3. Acute on chronic heart failure
4. COPD exacerbation
5. Delirium secondary to sepsis and metabolic derangements

Clinical Reasoning: Patient presents with systemic inflammatory response syndrome (SIRS) criteria with altered mental status, suggesting sepsis. Recent pneumonia treatment and current bilateral infiltrates suggest healthcare-associated pneumonia. Elevated lactate and hypotension indicate tissue hypoperfusion. AKI likely multifactorial from sepsis, dehydration, and cardiorenal syndrome.`,
		Plan: `Immediate Management (Sepsis Bundle):
1. Fluid resuscitation: 30mL/kg crystalloid (caution given CHF history)
2. Blood cultures x2, respiratory cultures
3. Broad-spectrum antibiotics: Piperacillin-tazobactam + vancomycin
4. Vasopressors if hypotension persists after fluid resuscitation

Supportive Care:
1. Oxygen therapy, consider BiPAP for respiratory support
2. Hold ACE inhibitor and diuretics given AKI
3. Nephrology consultation for AKI management
4. Electrolyte correction: cautious sodium correction

Monitoring:
1. Serial lactates, urine output monitoring
2. Daily BMP, CBC with differential
3. Cardiopulmonary monitoring in ICU setting
4. Delirium assessment and prevention measures

Evidence Base: Surviving Sepsis Campaign 2021 Guidelines recommend early recognition, appropriate antibiotics within 1 hour, and hemodynamic support as needed.`,
	},
	domain.DifficultyExtreme: {
		Subjective: `Chief Complaint: 55-year-old female with severe abdominal pain and persistent vomiting.

History of Present Illness: Patient with alcohol use disorder presents with sudden onset severe epigastric pain radiating to back, 10/10 severity, following heavy drinking episode. Persistent vomiting for 24 hours with inability to tolerate oral intake.

Past Medical History: Alcohol use disorder, previous acute pancreatitis
Social History: Heavy alcohol use, approximately 8-10 drinks daily
Family History: Non-contributory`,
		Objective: `Vital Signs: BP 85/50, HR 135, Temp 102.8°F, RR 32, SpO2 94% on room air

Physical Examination:
- General: Ill-appearing female in severe distress, jaundiced
- HEENT: Scleral icterus, dry mucous membranes
- Cardiovascular: Tachycardic, regular rhythm
- Pulmonary: Tachypneic, bilateral decreased breath sounds at bases
- Abdomen: Severe epigastric tenderness with guarding, hypoactive bowel sounds
- Extremities: Poor skin turgor, delayed capillary refill
- Neurologic: Agitated, tremulous, oriented x2

Diagnostic Results:
- Lipase: 1200 U/L (markedly elevated, normal <60)
- AST: 180 U/L, ALT: 150 U/L, Total bilirubin: 4.2 mg/dL
- WBC: 18,000, Hct: 45%, Platelets: 95,000
- Creatinine: 2.1 mg/dL, Calcium: 7.8 mg/dL
- Glucose: 250 mg/dL
- CT abdomen: Pancreatic edema and inflammation, peripancreatic fluid collections, no necrosis identified
- Chest X-ray: Bilateral pleural effusions`,
		Assessment: `Primary Diagnosis: Severe acute pancreatitis with systemic complications
Secondary Diagnoses:
1. Acute cholangitis (elevated bilirubin, fever, RUQ pain)
2. Systemic inflammatory response syndrome (SIRS)
3. Acute kidney injury
4. Hypocalcemia
5. Thrombocytopenia
6. Alcohol withdrawal syndrome
7. Acute respiratory failure with pleural effusions

Severity Assessment: Ranson criteria positive for multiple factors indicating severe pancreatitis with high mortality risk. APACHE II score likely >8 indicating severe disease.

Clinical Reasoning: Patient presents with severe acute pancreatitis evidenced by markedly elevated lipase, characteristic pain, and CT findings. Systemic complications include SIRS, AKI, hypocalcemia, and thrombocytopenia. Concurrent cholangitis suggested by Charcot's triad. High risk for necrotizing pancreatitis and multi-organ failure.`,
		Plan: `Critical Care Management:
1. ICU admission for close monitoring
2. Aggressive fluid resuscitation: LR 250-500mL/hr initially
3. Pain control: IV morphine or fentanyl
4. NPO status, nasogastric decompression if ileus
5. Nutritional support: Consider early enteral nutrition if tolerated

Specific Interventions:
1. ERCP consultation for possible cholangitis and biliary obstruction
2. Interventional radiology for possible drainage of fluid collections
3. Alcohol withdrawal prophylaxis: CIWA protocol, thiamine, folate
4. Calcium replacement for hypocalcemia
5. Insulin protocol for hyperglycemia

Monitoring:
1. Serial lipase, LFTs, CBC, BMP
2. Arterial blood gases for respiratory status
3. Urine output monitoring (goal >0.5mL/kg/hr)
4. Daily APACHE II scoring
5. Repeat CT in 48-72 hours if clinical deterioration

Complications Surveillance:
1. Pancreatic necrosis and infection
2. Pseudocyst formation
3. Multi-organ dysfunction syndrome
4. Respiratory failure requiring mechanical ventilation

Evidence Base: 2013 ACG Guidelines for acute pancreatitis emphasize early aggressive fluid resuscitation, pain control, and nutritional support. ERCP indicated for cholangitis or persistent biliary obstruction.`,
	},
}

// ExpertAnswer returns the model answer matching the static case for the
// given difficulty. Unknown difficulties fall back to basic, mirroring
// StaticCase.
func ExpertAnswer(difficulty domain.Difficulty) domain.SOAPNote {
	if answer, ok := expertAnswers[difficulty]; ok {
		return answer
	}
	return expertAnswers[domain.DifficultyBasic]
}
