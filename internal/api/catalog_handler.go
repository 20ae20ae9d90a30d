package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pharmed/clined-api/internal/api/shared"
	"github.com/pharmed/clined-api/internal/catalog"
)

// CatalogHandler serves the immutable reference catalogs: SOAP templates,
// assessments, the evidence base, the resource library, and pick lists.
type CatalogHandler struct{}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// ListSOAPTemplates handles GET /api/templates/soap.
func (h *CatalogHandler) ListSOAPTemplates(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, catalog.SOAPTemplates())
}

// GetSOAPTemplate handles GET /api/templates/soap/{id}.
func (h *CatalogHandler) GetSOAPTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	template, ok := catalog.SOAPTemplateByID(id)
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, "SOAP template not found")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, template)
}

// ListAssessmentTemplates handles GET /api/assessments/templates. The
// category list rides along so authoring clients can filter without a
// second round trip.
func (h *CatalogHandler) ListAssessmentTemplates(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"templates":  catalog.AssessmentTemplates(),
		"categories": catalog.AssessmentCategories(),
	})
}

// BuildAssessment handles POST /api/assessments/from-template.
func (h *CatalogHandler) BuildAssessment(w http.ResponseWriter, r *http.Request) {
	var req BuildAssessmentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	assessment, err := catalog.BuildAssessment(req.TemplateID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Assessment template not found")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, assessment)
}

// SearchEvidence handles GET /api/evidence. Without a query it returns the
// whole built-in evidence base.
func (h *CatalogHandler) SearchEvidence(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		shared.RespondWithJSON(w, r, http.StatusOK, catalog.SampleEvidence())
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, catalog.SearchEvidence(query))
}

// ListEvidenceLevels handles GET /api/evidence/levels.
func (h *CatalogHandler) ListEvidenceLevels(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"levels":     catalog.EvidenceLevels(),
		"studyTypes": catalog.StudyTypes(),
		"categories": catalog.PharmacyCategories(),
	})
}

// ValidateEvidence handles POST /api/evidence/validate.
func (h *CatalogHandler) ValidateEvidence(w http.ResponseWriter, r *http.Request) {
	var req ValidateEvidenceRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ValidateEvidenceResponse{
		Score:     req.Criteria.Score(),
		Validated: req.Criteria.Passed(),
	})
}

// ListLibrary handles GET /api/library. The response pairs the filtered
// items with the full category list for the filter sidebar.
func (h *CatalogHandler) ListLibrary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items := catalog.FilterLibrary(catalog.LibraryFilter{
		Query:      q.Get("q"),
		Category:   q.Get("category"),
		Type:       q.Get("type"),
		Difficulty: q.Get("difficulty"),
		Sort:       q.Get("sort"),
	})
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"items":      items,
		"categories": catalog.LibraryCategories(),
	})
}

// ListDifficulties handles GET /api/catalog/difficulties.
func (h *CatalogHandler) ListDifficulties(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, catalog.DifficultyLevels())
}

// ListSpecialties handles GET /api/catalog/specialties.
func (h *CatalogHandler) ListSpecialties(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, catalog.Specialties())
}
