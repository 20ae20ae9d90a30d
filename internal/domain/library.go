package domain

// ResourceType identifies the kind of a library resource.
type ResourceType string

// Supported library resource types.
const (
	ResourceTypeCaseStudy    ResourceType = "case-study"
	ResourceTypeGuideline    ResourceType = "guideline"
	ResourceTypeAssessment   ResourceType = "assessment"
	ResourceTypeSOAPTemplate ResourceType = "soap-template"
	ResourceTypeEvidence     ResourceType = "evidence"
	ResourceTypeTutorial     ResourceType = "tutorial"
)

// LibraryItem is one entry in the resource library listing.
type LibraryItem struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Type        ResourceType `json:"type"`
	Category    string       `json:"category"`
	Difficulty  Difficulty   `json:"difficulty,omitempty"`
	Description string       `json:"description"`
	Tags        []string     `json:"tags"`
	LastUpdated string       `json:"lastUpdated"`
	Author      string       `json:"author"`
	Downloads   int          `json:"downloads"`
	Rating      float64      `json:"rating"`
}

// DifficultyLevel describes one difficulty tier for catalog display.
type DifficultyLevel struct {
	ID          Difficulty `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Features    []string   `json:"features"`
}

// Specialty is a selectable clinical specialty.
type Specialty struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
