package catalog

import (
	"sort"
	"strings"

	"github.com/pharmed/clined-api/internal/domain"
)

// LibraryFilter narrows and orders the library listing. Zero-value fields
// match everything; Sort defaults to "recent".
type LibraryFilter struct {
	Query      string
	Category   string
	Type       string
	Difficulty string
	Sort       string
}

var libraryCategories = []string{
	"Drug Therapy Problems",
	"Medication Safety",
	"Clinical Pharmacokinetics",
	"Drug Interactions",
	"Patient Counseling",
	"Chronic Disease Management",
	"Pain Management",
	"Infectious Diseases",
	"Cardiology Pharmacy",
	"Critical Care",
	"Geriatric Pharmacy",
	"Pediatric Pharmacy",
}

var libraryItems = []domain.LibraryItem{
	{
		ID:          "1",
		Title:       "Heart Failure Medication Management Case Series",
		Type:        domain.ResourceTypeCaseStudy,
		Category:    "Cardiology Pharmacy",
		Difficulty:  domain.DifficultyAdvanced,
		Description: "Comprehensive case studies covering ACE inhibitor optimization, diuretic management, and beta-blocker titration in heart failure patients.",
		Tags:        []string{"heart failure", "ACE inhibitors", "diuretics", "medication optimization"},
		LastUpdated: "2024-01-15",
		Author:      "Dr. Sarah Johnson, PharmD",
		Downloads:   1247,
		Rating:      4.8,
	},
	{
		ID:          "2",
		Title:       "Warfarin Dosing and Monitoring Protocol",
		Type:        domain.ResourceTypeGuideline,
		Category:    "Drug Therapy Problems",
		Difficulty:  domain.DifficultyIntermediate,
		Description: "Evidence-based protocol for warfarin initiation, dose adjustment, and INR monitoring with clinical decision trees.",
		Tags:        []string{"anticoagulation", "warfarin", "INR monitoring", "drug interactions"},
		LastUpdated: "2024-01-12",
		Author:      "Clinical Pharmacy Team",
		Downloads:   892,
		Rating:      4.9,
	},
	{
		ID:          "3",
		Title:       "Drug Therapy Problems Assessment Bank",
		Type:        domain.ResourceTypeAssessment,
		Category:    "Drug Therapy Problems",
		Difficulty:  domain.DifficultyIntermediate,
		Description: "Collection of 50 validated questions focusing on identification and resolution of drug-related problems in various clinical scenarios.",
		Tags:        []string{"drug therapy problems", "pharmaceutical care", "clinical assessment"},
		LastUpdated: "2024-01-10",
		Author:      "Dr. Michael Chen, PharmD",
		Downloads:   2156,
		Rating:      4.7,
	},
	{
		ID:          "4",
		Title:       "Emergency Medicine SOAP Note Templates",
		Type:        domain.ResourceTypeSOAPTemplate,
		Category:    "Clinical Documentation",
		Description: "Standardized SOAP note templates for common emergency department presentations with pharmaceutical care focus.",
		Tags:        []string{"emergency medicine", "SOAP notes", "documentation", "templates"},
		LastUpdated: "2024-01-08",
		Author:      "Dr. Lisa Rodriguez, PharmD",
		Downloads:   743,
		Rating:      4.6,
	},
	{
		ID:          "5",
		Title:       "Diabetes Medication Management Evidence Review",
		Type:        domain.ResourceTypeEvidence,
		Category:    "Chronic Disease Management",
		Difficulty:  domain.DifficultyAdvanced,
		Description: "Systematic review of clinical evidence for diabetes medication selection, dosing, and monitoring with pharmaceutical care outcomes.",
		Tags:        []string{"diabetes", "evidence-based medicine", "medication management", "outcomes"},
		LastUpdated: "2024-01-05",
		Author:      "Dr. Robert Kim, PharmD, PhD",
		Downloads:   1089,
		Rating:      4.9,
	},
	{
		ID:          "6",
		Title:       "Clinical Pharmacokinetics Tutorial Series",
		Type:        domain.ResourceTypeTutorial,
		Category:    "Clinical Pharmacokinetics",
		Difficulty:  domain.DifficultyBasic,
		Description: "Interactive tutorial series covering basic pharmacokinetic principles, dose calculations, and therapeutic drug monitoring.",
		Tags:        []string{"pharmacokinetics", "dose calculations", "TDM", "tutorial"},
		LastUpdated: "2024-01-03",
		Author:      "Dr. Amanda Foster, PharmD",
		Downloads:   1876,
		Rating:      4.8,
	},
	{
		ID:          "7",
		Title:       "Pediatric Dosing Guidelines and Safety Protocols",
		Type:        domain.ResourceTypeGuideline,
		Category:    "Pediatric Pharmacy",
		Difficulty:  domain.DifficultyAdvanced,
		Description: "Comprehensive guidelines for pediatric medication dosing, safety considerations, and age-appropriate pharmaceutical care.",
		Tags:        []string{"pediatrics", "dosing", "safety", "pharmaceutical care"},
		LastUpdated: "2024-01-01",
		Author:      "Dr. Jennifer Walsh, PharmD",
		Downloads:   654,
		Rating:      4.7,
	},
	{
		ID:          "8",
		Title:       "Pain Management Case Studies with Opioid Stewardship",
		Type:        domain.ResourceTypeCaseStudy,
		Category:    "Pain Management",
		Difficulty:  domain.DifficultyAdvanced,
		Description: "Complex pain management cases emphasizing multimodal approaches, opioid risk assessment, and stewardship principles.",
		Tags:        []string{"pain management", "opioid stewardship", "multimodal therapy", "risk assessment"},
		LastUpdated: "2023-12-28",
		Author:      "Dr. Thomas Lee, PharmD",
		Downloads:   987,
		Rating:      4.6,
	},
	{
		ID:          "9",
		Title:       "Drug Interaction Assessment Tools",
		Type:        domain.ResourceTypeAssessment,
		Category:    "Drug Interactions",
		Difficulty:  domain.DifficultyIntermediate,
		Description: "Interactive assessment tools for identifying, evaluating, and managing clinically significant drug interactions.",
		Tags:        []string{"drug interactions", "clinical significance", "assessment tools", "management"},
		LastUpdated: "2023-12-25",
		Author:      "Dr. Maria Gonzalez, PharmD",
		Downloads:   1432,
		Rating:      4.8,
	},
	{
		ID:          "10",
		Title:       "Critical Care Pharmacy Protocols",
		Type:        domain.ResourceTypeGuideline,
		Category:    "Critical Care",
		Difficulty:  domain.DifficultyExtreme,
		Description: "Evidence-based protocols for medication management in critical care settings including vasopressors, sedation, and renal replacement therapy.",
		Tags:        []string{"critical care", "vasopressors", "sedation", "protocols"},
		LastUpdated: "2023-12-22",
		Author:      "Dr. David Park, PharmD",
		Downloads:   567,
		Rating:      4.9,
	},
	{
		ID:          "11",
		Title:       "Geriatric Medication Review Tutorial",
		Type:        domain.ResourceTypeTutorial,
		Category:    "Geriatric Pharmacy",
		Difficulty:  domain.DifficultyIntermediate,
		Description: "Step-by-step tutorial for conducting comprehensive medication reviews in elderly patients with focus on deprescribing.",
		Tags:        []string{"geriatrics", "medication review", "deprescribing", "polypharmacy"},
		LastUpdated: "2023-12-20",
		Author:      "Dr. Helen Chang, PharmD",
		Downloads:   1123,
		Rating:      4.7,
	},
	{
		ID:          "12",
		Title:       "Infectious Disease Antimicrobial Stewardship Cases",
		Type:        domain.ResourceTypeCaseStudy,
		Category:    "Infectious Diseases",
		Difficulty:  domain.DifficultyAdvanced,
		Description: "Real-world cases demonstrating antimicrobial stewardship principles, culture-directed therapy, and resistance management.",
		Tags:        []string{"antimicrobial stewardship", "infectious diseases", "resistance", "culture-directed therapy"},
		LastUpdated: "2023-12-18",
		Author:      "Dr. Kevin Wu, PharmD",
		Downloads:   834,
		Rating:      4.8,
	},
}

// LibraryItems returns every resource in catalog order.
func LibraryItems() []domain.LibraryItem {
	out := make([]domain.LibraryItem, len(libraryItems))
	copy(out, libraryItems)
	return out
}

// LibraryCategories returns the category filter list.
func LibraryCategories() []string {
	out := make([]string, len(libraryCategories))
	copy(out, libraryCategories)
	return out
}

// FilterLibrary applies the filter and returns the matching resources in the
// requested order. Query matches title, description, or any tag,
// case-insensitively.
func FilterLibrary(f LibraryFilter) []domain.LibraryItem {
	q := strings.ToLower(f.Query)
	out := make([]domain.LibraryItem, 0, len(libraryItems))
	for _, item := range libraryItems {
		if q != "" && !matchesQuery(item, q) {
			continue
		}
		if f.Category != "" && item.Category != f.Category {
			continue
		}
		if f.Type != "" && string(item.Type) != f.Type {
			continue
		}
		if f.Difficulty != "" && string(item.Difficulty) != f.Difficulty {
			continue
		}
		out = append(out, item)
	}
	sortLibrary(out, f.Sort)
	return out
}

func matchesQuery(item domain.LibraryItem, q string) bool {
	if strings.Contains(strings.ToLower(item.Title), q) ||
		strings.Contains(strings.ToLower(item.Description), q) {
		return true
	}
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func sortLibrary(items []domain.LibraryItem, order string) {
	switch order {
	case "popular":
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Downloads > items[j].Downloads
		})
	case "rating":
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Rating > items[j].Rating
		})
	case "alphabetical":
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Title < items[j].Title
		})
	default:
		// recent: dates are ISO formatted so string order matches time order
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].LastUpdated > items[j].LastUpdated
		})
	}
}
