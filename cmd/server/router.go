package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pharmed/clined-api/internal/api"
	apiMiddleware "github.com/pharmed/clined-api/internal/api/middleware"
)

// setupRouter configures the application router with all routes and
// middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	generateHandler := api.NewGenerateHandler(app.generationService)
	catalogHandler := api.NewCatalogHandler()
	caseHandler := api.NewCaseHandler()

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", generateHandler.Generate)

		r.Get("/templates/soap", catalogHandler.ListSOAPTemplates)
		r.Get("/templates/soap/{id}", catalogHandler.GetSOAPTemplate)

		r.Get("/assessments/templates", catalogHandler.ListAssessmentTemplates)
		r.Post("/assessments/from-template", catalogHandler.BuildAssessment)

		r.Get("/evidence", catalogHandler.SearchEvidence)
		r.Get("/evidence/levels", catalogHandler.ListEvidenceLevels)
		r.Post("/evidence/validate", catalogHandler.ValidateEvidence)

		r.Get("/library", catalogHandler.ListLibrary)

		r.Get("/catalog/difficulties", catalogHandler.ListDifficulties)
		r.Get("/catalog/specialties", catalogHandler.ListSpecialties)

		r.Get("/cases/static", caseHandler.StaticCase)
		r.Get("/cases/expert", caseHandler.ExpertAnswer)
		r.Get("/soap/static", caseHandler.StaticSOAP)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
