package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmed/clined-api/internal/domain"
)

// catalogRouter mounts the handler the same way the server does, so URL
// parameters resolve.
func catalogRouter() http.Handler {
	h := NewCatalogHandler()
	r := chi.NewRouter()
	r.Get("/api/templates/soap", h.ListSOAPTemplates)
	r.Get("/api/templates/soap/{id}", h.GetSOAPTemplate)
	r.Get("/api/assessments/templates", h.ListAssessmentTemplates)
	r.Post("/api/assessments/from-template", h.BuildAssessment)
	r.Get("/api/evidence", h.SearchEvidence)
	r.Get("/api/evidence/levels", h.ListEvidenceLevels)
	r.Post("/api/evidence/validate", h.ValidateEvidence)
	r.Get("/api/library", h.ListLibrary)
	r.Get("/api/catalog/difficulties", h.ListDifficulties)
	r.Get("/api/catalog/specialties", h.ListSpecialties)
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListSOAPTemplates(t *testing.T) {
	t.Parallel()

	w := doJSON(t, catalogRouter(), http.MethodGet, "/api/templates/soap", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var templates []domain.SOAPTemplate
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &templates))
	require.Len(t, templates, 3)
	assert.Equal(t, "general-medicine", templates[0].ID)
}

func TestGetSOAPTemplate(t *testing.T) {
	t.Parallel()

	w := doJSON(t, catalogRouter(), http.MethodGet, "/api/templates/soap/psychiatry", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var template domain.SOAPTemplate
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &template))
	assert.Equal(t, "Psychiatry", template.Title)
	assert.Contains(t, template.Template.Objective, "Mental Status Examination")
}

func TestGetSOAPTemplateNotFound(t *testing.T) {
	t.Parallel()

	w := doJSON(t, catalogRouter(), http.MethodGet, "/api/templates/soap/surgery", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListAssessmentTemplates(t *testing.T) {
	t.Parallel()

	w := doJSON(t, catalogRouter(), http.MethodGet, "/api/assessments/templates", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Templates  []domain.AssessmentTemplate `json:"templates"`
		Categories []string                    `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Templates, 6)
	assert.Len(t, resp.Categories, 14)
	assert.Contains(t, resp.Categories, "Drug Therapy Problems")
}

func TestBuildAssessmentEndpoint(t *testing.T) {
	t.Parallel()

	w := doJSON(t, catalogRouter(), http.MethodPost, "/api/assessments/from-template",
		map[string]string{"templateId": "drug-interactions"})
	require.Equal(t, http.StatusOK, w.Code)

	var assessment domain.Assessment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &assessment))
	assert.Equal(t, "Drug Interactions & Contraindications", assessment.Title)
	assert.Len(t, assessment.Questions, 4)
}

func TestBuildAssessmentEndpointErrors(t *testing.T) {
	t.Parallel()

	router := catalogRouter()

	w := doJSON(t, router, http.MethodPost, "/api/assessments/from-template",
		map[string]string{"templateId": "nope"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/assessments/from-template",
		map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchEvidenceEndpoint(t *testing.T) {
	t.Parallel()

	w := doJSON(t, catalogRouter(), http.MethodGet, "/api/evidence?q=warfarin", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var sources []domain.EvidenceSource
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sources))
	require.Len(t, sources, 1)
	assert.Contains(t, sources[0].Title, "Warfarin")
}

// TestSearchEvidenceEndpointNoQuery verifies the endpoint lists the whole
// evidence base when no query is supplied.
func TestSearchEvidenceEndpointNoQuery(t *testing.T) {
	t.Parallel()

	w := doJSON(t, catalogRouter(), http.MethodGet, "/api/evidence", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var sources []domain.EvidenceSource
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sources))
	assert.Len(t, sources, 4)
}

func TestListEvidenceLevelsEndpoint(t *testing.T) {
	t.Parallel()

	w := doJSON(t, catalogRouter(), http.MethodGet, "/api/evidence/levels", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Levels     []map[string]string `json:"levels"`
		StudyTypes []string            `json:"studyTypes"`
		Categories []string            `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Levels, 4)
	assert.Len(t, resp.StudyTypes, 10)
	assert.Len(t, resp.Categories, 14)
}

func TestValidateEvidenceEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		criteria      domain.ValidationCriteria
		wantScore     int
		wantValidated bool
	}{
		{
			name: "all criteria met",
			criteria: domain.ValidationCriteria{
				StudyDesign: true, SampleSize: true, Methodology: true,
				StatisticalSignificance: true, ClinicalSignificance: true, Applicability: true,
			},
			wantScore:     6,
			wantValidated: true,
		},
		{
			name: "exactly at threshold",
			criteria: domain.ValidationCriteria{
				StudyDesign: true, SampleSize: true, Methodology: true, Applicability: true,
			},
			wantScore:     4,
			wantValidated: true,
		},
		{
			name: "below threshold",
			criteria: domain.ValidationCriteria{
				StudyDesign: true, SampleSize: true, Methodology: true,
			},
			wantScore:     3,
			wantValidated: false,
		},
		{
			name:          "nothing met",
			criteria:      domain.ValidationCriteria{},
			wantScore:     0,
			wantValidated: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := doJSON(t, catalogRouter(), http.MethodPost, "/api/evidence/validate",
				map[string]interface{}{"criteria": tt.criteria})
			require.Equal(t, http.StatusOK, w.Code)

			var resp ValidateEvidenceResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantScore, resp.Score)
			assert.Equal(t, tt.wantValidated, resp.Validated)
		})
	}
}

func TestListLibraryEndpoint(t *testing.T) {
	t.Parallel()

	w := doJSON(t, catalogRouter(), http.MethodGet,
		"/api/library?type=guideline&difficulty=extreme", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items      []domain.LibraryItem `json:"items"`
		Categories []string             `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Critical Care Pharmacy Protocols", resp.Items[0].Title)
	assert.Len(t, resp.Categories, 12)
}

func TestListDifficultiesEndpoint(t *testing.T) {
	t.Parallel()

	w := doJSON(t, catalogRouter(), http.MethodGet, "/api/catalog/difficulties", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var levels []domain.DifficultyLevel
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &levels))
	require.Len(t, levels, 4)
	assert.Equal(t, domain.DifficultyBasic, levels[0].ID)
}

func TestListSpecialtiesEndpoint(t *testing.T) {
	t.Parallel()

	w := doJSON(t, catalogRouter(), http.MethodGet, "/api/catalog/specialties", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var specialties []domain.Specialty
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &specialties))
	assert.Len(t, specialties, 9)
}
