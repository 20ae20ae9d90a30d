package catalog

import "github.com/pharmed/clined-api/internal/domain"

var difficultyLevels = []domain.DifficultyLevel{
	{
		ID:          domain.DifficultyBasic,
		Title:       "Basic",
		Description: "Straightforward presentations with clear diagnoses",
		Features:    []string{"Single diagnosis focus", "Standard treatment protocols", "Basic monitoring requirements"},
	},
	{
		ID:          domain.DifficultyIntermediate,
		Title:       "Intermediate",
		Description: "Multiple comorbidities with treatment considerations",
		Features:    []string{"2-3 active problems", "Drug interactions", "Adjusted monitoring"},
	},
	{
		ID:          domain.DifficultyAdvanced,
		Title:       "Advanced",
		Description: "Complex multi-system involvement with complications",
		Features:    []string{"Multiple organ systems", "Treatment complications", "Specialist coordination"},
	},
	{
		ID:          domain.DifficultyExtreme,
		Title:       "Extreme",
		Description: "Critical care scenarios with multiple competing priorities",
		Features:    []string{"Life-threatening conditions", "Conflicting treatment goals", "Intensive monitoring"},
	},
}

var specialties = []domain.Specialty{
	{Value: "internal-medicine", Label: "Internal Medicine"},
	{Value: "emergency-medicine", Label: "Emergency Medicine"},
	{Value: "cardiology", Label: "Cardiology"},
	{Value: "pulmonology", Label: "Pulmonology"},
	{Value: "gastroenterology", Label: "Gastroenterology"},
	{Value: "neurology", Label: "Neurology"},
	{Value: "psychiatry", Label: "Psychiatry"},
	{Value: "pediatrics", Label: "Pediatrics"},
	{Value: "geriatrics", Label: "Geriatrics"},
}

// DifficultyLevels returns the four tiers in ascending complexity.
func DifficultyLevels() []domain.DifficultyLevel {
	out := make([]domain.DifficultyLevel, len(difficultyLevels))
	copy(out, difficultyLevels)
	return out
}

// Specialties returns the selectable clinical specialties.
func Specialties() []domain.Specialty {
	out := make([]domain.Specialty, len(specialties))
	copy(out, specialties)
	return out
}
