package domain

// PatientInfo is the demographic header of a clinical case.
type PatientInfo struct {
	Age            int    `json:"age"`
	Gender         string `json:"gender"`
	ChiefComplaint string `json:"chiefComplaint"`
}

// VitalSigns holds one set of vital sign readings. Temperature is in
// degrees Fahrenheit, matching the source material.
type VitalSigns struct {
	BP   string  `json:"bp"`
	HR   int     `json:"hr"`
	Temp float64 `json:"temp"`
	RR   int     `json:"rr"`
	SpO2 int     `json:"spo2"`
}

// ClinicalCase is a complete case presentation used for practice sessions.
// AIGenerated distinguishes provider-generated cases from the deterministic
// fallback bank.
type ClinicalCase struct {
	PatientInfo  PatientInfo `json:"patientInfo"`
	History      string      `json:"history"`
	PhysicalExam string      `json:"physicalExam"`
	Vitals       VitalSigns  `json:"vitals"`
	LabResults   string      `json:"labResults"`
	Imaging      string      `json:"imaging"`
	Difficulty   Difficulty  `json:"difficulty"`
	AIGenerated  bool        `json:"aiGenerated,omitempty"`
	Citations    []string    `json:"citations,omitempty"`
}
