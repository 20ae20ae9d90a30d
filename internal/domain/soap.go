package domain

import (
	"fmt"
	"strings"
)

// SOAPNote is a four-section clinical note: Subjective, Objective,
// Assessment, Plan.
type SOAPNote struct {
	Subjective string `json:"subjective"`
	Objective  string `json:"objective"`
	Assessment string `json:"assessment"`
	Plan       string `json:"plan"`
}

// FormatText renders the note as a plain-text document with upper-case
// section headers, suitable for display or EMR import.
func (n SOAPNote) FormatText(title string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "SOAP NOTE - %s\n\n", title)
	fmt.Fprintf(&b, "SUBJECTIVE:\n%s\n\n", n.Subjective)
	fmt.Fprintf(&b, "OBJECTIVE:\n%s\n\n", n.Objective)
	fmt.Fprintf(&b, "ASSESSMENT:\n%s\n\n", n.Assessment)
	fmt.Fprintf(&b, "PLAN:\n%s\n", n.Plan)
	return b.String()
}

// SOAPTemplate is a reusable note skeleton for one specialty, paired with a
// fully worked example.
type SOAPTemplate struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Specialty   string   `json:"specialty"`
	Template    SOAPNote `json:"template"`
	Example     SOAPNote `json:"example"`
}
