package catalog

import (
	"strings"

	"github.com/pharmed/clined-api/internal/domain"
)

// EvidenceLevelInfo pairs an evidence grade with its description.
type EvidenceLevelInfo struct {
	Level       domain.EvidenceLevel `json:"level"`
	Description string               `json:"description"`
}

var evidenceLevels = []EvidenceLevelInfo{
	{Level: domain.EvidenceLevelA, Description: "High-quality RCTs, systematic reviews, meta-analyses"},
	{Level: domain.EvidenceLevelB, Description: "Well-designed cohort studies, case-control studies"},
	{Level: domain.EvidenceLevelC, Description: "Case series, expert opinion, consensus statements"},
	{Level: domain.EvidenceLevelD, Description: "Anecdotal evidence, case reports"},
}

var studyTypes = []string{
	"Randomized Controlled Trial",
	"Systematic Review",
	"Meta-Analysis",
	"Cohort Study",
	"Case-Control Study",
	"Cross-Sectional Study",
	"Case Series",
	"Case Report",
	"Expert Opinion",
	"Clinical Practice Guideline",
}

var pharmacyCategories = []string{
	"Drug Therapy Problems",
	"Medication Safety",
	"Clinical Pharmacokinetics",
	"Drug Interactions",
	"Adverse Drug Reactions",
	"Pharmaceutical Care",
	"Chronic Disease Management",
	"Pain Management",
	"Infectious Diseases",
	"Cardiology Pharmacy",
	"Oncology Pharmacy",
	"Pediatric Pharmacy",
	"Geriatric Pharmacy",
	"Critical Care Pharmacy",
}

var sampleEvidence = []domain.EvidenceSource{
	{
		ID:                "1",
		Title:             "Clinical Pharmacist Interventions in Heart Failure Management: A Systematic Review",
		Authors:           "Johnson M, Smith K, Brown L, et al.",
		Journal:           "Journal of Clinical Pharmacy and Therapeutics",
		Year:              2023,
		DOI:               "10.1111/jcpt.13789",
		PMID:              "37123456",
		EvidenceLevel:     domain.EvidenceLevelA,
		StudyType:         "Systematic Review",
		Recommendation:    "Clinical pharmacist involvement in heart failure management significantly reduces hospital readmissions (RR 0.72, 95% CI 0.61-0.85) and improves medication adherence.",
		ClinicalRelevance: 9,
		Validated:         true,
		Notes:             "High-quality systematic review with 15 RCTs, n=3,247 patients. Strong evidence for pharmaceutical care interventions.",
	},
	{
		ID:                "2",
		Title:             "Drug-Related Problems in Elderly Patients: Impact of Comprehensive Medication Review",
		Authors:           "Anderson P, Wilson R, Davis C",
		Journal:           "American Journal of Geriatric Pharmacotherapy",
		Year:              2023,
		DOI:               "10.1016/j.amjopharm.2023.04.012",
		PMID:              "37234567",
		EvidenceLevel:     domain.EvidenceLevelB,
		StudyType:         "Cohort Study",
		Recommendation:    "Comprehensive medication reviews by clinical pharmacists reduce drug-related problems by 68% in elderly patients (p<0.001).",
		ClinicalRelevance: 8,
		Validated:         true,
		Notes:             "Large prospective cohort study (n=1,856) with 12-month follow-up. Significant reduction in adverse drug events.",
	},
	{
		ID:                "3",
		Title:             "Warfarin Dosing Algorithms vs Clinical Pharmacist Management: Randomized Trial",
		Authors:           "Thompson K, Lee S, Martinez A, et al.",
		Journal:           "Clinical Pharmacology & Therapeutics",
		Year:              2023,
		DOI:               "10.1002/cpt.2891",
		PMID:              "37345678",
		EvidenceLevel:     domain.EvidenceLevelA,
		StudyType:         "Randomized Controlled Trial",
		Recommendation:    "Clinical pharmacist-managed warfarin therapy achieves therapeutic INR faster (5.2 vs 8.1 days, p<0.001) with fewer bleeding complications compared to algorithm-based dosing.",
		ClinicalRelevance: 9,
		Validated:         true,
		Notes:             "Multi-center RCT (n=542) demonstrating superior outcomes with pharmacist-managed anticoagulation.",
	},
	{
		ID:                "4",
		Title:             "Medication Reconciliation in Emergency Departments: Impact on Patient Safety",
		Authors:           "Garcia R, Patel N, Johnson T",
		Journal:           "Emergency Medicine Journal",
		Year:              2023,
		DOI:               "10.1136/emermed-2023-213456",
		PMID:              "37456789",
		EvidenceLevel:     domain.EvidenceLevelB,
		StudyType:         "Case-Control Study",
		Recommendation:    "Pharmacist-led medication reconciliation in ED reduces medication errors by 73% and prevents potential adverse drug events.",
		ClinicalRelevance: 8,
		Validated:         true,
		Notes:             "Case-control study (n=1,200) showing significant improvement in medication accuracy and safety outcomes.",
	},
}

// EvidenceLevels returns the grading rubric, strongest first.
func EvidenceLevels() []EvidenceLevelInfo {
	out := make([]EvidenceLevelInfo, len(evidenceLevels))
	copy(out, evidenceLevels)
	return out
}

// StudyTypes returns the recognized study designs.
func StudyTypes() []string {
	out := make([]string, len(studyTypes))
	copy(out, studyTypes)
	return out
}

// PharmacyCategories returns the clinical pharmacy category list.
func PharmacyCategories() []string {
	out := make([]string, len(pharmacyCategories))
	copy(out, pharmacyCategories)
	return out
}

// SampleEvidence returns the built-in evidence base.
func SampleEvidence() []domain.EvidenceSource {
	out := make([]domain.EvidenceSource, len(sampleEvidence))
	copy(out, sampleEvidence)
	return out
}

// SearchEvidence returns the evidence entries whose title, authors, or
// journal contain the query, case-insensitively. An empty query matches
// everything.
func SearchEvidence(query string) []domain.EvidenceSource {
	q := strings.ToLower(query)
	out := make([]domain.EvidenceSource, 0, len(sampleEvidence))
	for _, e := range sampleEvidence {
		if strings.Contains(strings.ToLower(e.Title), q) ||
			strings.Contains(strings.ToLower(e.Authors), q) ||
			strings.Contains(strings.ToLower(e.Journal), q) {
			out = append(out, e)
		}
	}
	return out
}
