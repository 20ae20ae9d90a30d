package api

import (
	"net/http"

	"github.com/pharmed/clined-api/internal/api/shared"
	"github.com/pharmed/clined-api/internal/domain"
	"github.com/pharmed/clined-api/internal/soap"
)

// CaseHandler serves the deterministic offline content: the static case
// bank, demographic-driven custom cases, and expert reference answers.
// Clients fall back to these when generation fails.
type CaseHandler struct{}

// NewCaseHandler creates a new CaseHandler.
func NewCaseHandler() *CaseHandler {
	return &CaseHandler{}
}

// StaticCase handles GET /api/cases/static. With demographic query
// parameters it builds a custom case; otherwise it returns the banked case
// for the requested difficulty.
func (h *CaseHandler) StaticCase(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	difficulty := parseDifficulty(q.Get("difficulty"))

	info := domain.Demographics{
		Age:            q.Get("age"),
		Gender:         q.Get("gender"),
		Diagnosis:      q.Get("diagnosis"),
		ChiefComplaint: q.Get("chiefComplaint"),
		MedicalHistory: q.Get("medicalHistory"),
	}

	var clinicalCase domain.ClinicalCase
	if info.Empty() {
		clinicalCase = soap.StaticCase(difficulty)
	} else {
		clinicalCase = soap.CustomCase(info, difficulty)
	}
	shared.RespondWithJSON(w, r, http.StatusOK, clinicalCase)
}

// ExpertAnswer handles GET /api/cases/expert. With format=text the note is
// rendered as a plain-text document instead of JSON.
func (h *CaseHandler) ExpertAnswer(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	note := soap.ExpertAnswer(parseDifficulty(q.Get("difficulty")))
	if q.Get("format") == "text" {
		respondWithNoteText(w, note, "Expert Analysis")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, note)
}

// StaticSOAP handles GET /api/soap/static. With format=text the note is
// rendered as a plain-text document suitable for download or EMR import.
func (h *CaseHandler) StaticSOAP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	note := soap.StaticSOAP(q.Get("age"), q.Get("gender"), q.Get("chiefComplaint"))
	if q.Get("format") == "text" {
		respondWithNoteText(w, note, noteTitle(q.Get("chiefComplaint")))
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, note)
}

func respondWithNoteText(w http.ResponseWriter, note domain.SOAPNote, title string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(note.FormatText(title)))
}

func noteTitle(chiefComplaint string) string {
	if chiefComplaint == "" {
		return "Clinical Documentation"
	}
	return chiefComplaint
}

// parseDifficulty maps a query value onto a difficulty tier, defaulting to
// basic for unknown or missing values like the fallback bank does.
func parseDifficulty(s string) domain.Difficulty {
	d := domain.Difficulty(s)
	if !domain.IsValidDifficulty(d) {
		return domain.DifficultyBasic
	}
	return d
}
