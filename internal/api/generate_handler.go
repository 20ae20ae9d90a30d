package api

import (
	"net/http"

	"github.com/pharmed/clined-api/internal/api/shared"
	"github.com/pharmed/clined-api/internal/domain"
	"github.com/pharmed/clined-api/internal/service"
	"github.com/pharmed/clined-api/internal/soap"
)

// GenerateHandler handles content generation requests.
type GenerateHandler struct {
	generationService service.GenerationService
}

// NewGenerateHandler creates a new GenerateHandler.
func NewGenerateHandler(generationService service.GenerationService) *GenerateHandler {
	return &GenerateHandler{generationService: generationService}
}

// Generate handles POST /api/generate requests.
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	domainReq := req.ToDomain()
	result, err := h.generationService.Generate(r.Context(), domainReq)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	response := GenerateResponse{
		Success:   true,
		Content:   result.Content,
		Citations: citationsOrEmpty(result.Citations),
		Type:      req.Type,
		// defaults applied by the service are echoed back
		Difficulty: string(defaultDifficulty(domainReq.Difficulty)),
		Specialty:  defaultSpecialty(domainReq.Specialty),
	}
	if domainReq.ContentType == domain.ContentTypeSOAP {
		note := soap.ParseNote(result.Content)
		response.SOAPNote = &note
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// RespondWithMappedError translates an internal error into the matching
// HTTP status and sanitized message.
func RespondWithMappedError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
}

func citationsOrEmpty(citations []string) []string {
	if citations == nil {
		return []string{}
	}
	return citations
}

func defaultDifficulty(d domain.Difficulty) domain.Difficulty {
	if d == "" {
		return domain.DifficultyIntermediate
	}
	return d
}

func defaultSpecialty(s string) string {
	if s == "" {
		return "general"
	}
	return s
}
