package domain

// EvidenceLevel is a letter grade (A-D) for the strength of a cited study.
type EvidenceLevel string

// Evidence grades, strongest first.
const (
	EvidenceLevelA EvidenceLevel = "A"
	EvidenceLevelB EvidenceLevel = "B"
	EvidenceLevelC EvidenceLevel = "C"
	EvidenceLevelD EvidenceLevel = "D"
)

// IsValidEvidenceLevel checks if the given value is a supported grade.
func IsValidEvidenceLevel(l EvidenceLevel) bool {
	switch l {
	case EvidenceLevelA, EvidenceLevelB, EvidenceLevelC, EvidenceLevelD:
		return true
	default:
		return false
	}
}

// EvidenceSource describes one study or guideline in the evidence base.
type EvidenceSource struct {
	ID                string        `json:"id"`
	Title             string        `json:"title"`
	Authors           string        `json:"authors"`
	Journal           string        `json:"journal"`
	Year              int           `json:"year"`
	DOI               string        `json:"doi,omitempty"`
	PMID              string        `json:"pmid,omitempty"`
	EvidenceLevel     EvidenceLevel `json:"evidenceLevel"`
	StudyType         string        `json:"studyType"`
	Recommendation    string        `json:"recommendation"`
	ClinicalRelevance int           `json:"clinicalRelevance"`
	Validated         bool          `json:"validated"`
	Notes             string        `json:"notes,omitempty"`
}

// ValidationCriteria are the six appraisal checks applied to an evidence
// source. A source is considered validated when at least four pass.
type ValidationCriteria struct {
	StudyDesign             bool `json:"studyDesign"`
	SampleSize              bool `json:"sampleSize"`
	Methodology             bool `json:"methodology"`
	StatisticalSignificance bool `json:"statisticalSignificance"`
	ClinicalSignificance    bool `json:"clinicalSignificance"`
	Applicability           bool `json:"applicability"`
}

// Score returns the number of criteria that passed.
func (c ValidationCriteria) Score() int {
	score := 0
	for _, ok := range []bool{
		c.StudyDesign, c.SampleSize, c.Methodology,
		c.StatisticalSignificance, c.ClinicalSignificance, c.Applicability,
	} {
		if ok {
			score++
		}
	}
	return score
}

// Passed reports whether the source meets the validation threshold.
func (c ValidationCriteria) Passed() bool {
	return c.Score() >= 4
}
