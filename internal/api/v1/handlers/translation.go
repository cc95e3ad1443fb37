package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"groq-scribe/internal/api/middleware"
	"groq-scribe/internal/api/v1/dto"
	"groq-scribe/internal/api/v1/services"
	"groq-scribe/internal/app/language"
)

// TranslationHandler handles the translate-the-transcript endpoint
type TranslationHandler struct {
	service services.TranslationService
}

// NewTranslationHandler creates a new translation handler
func NewTranslationHandler(service services.TranslationService) *TranslationHandler {
	return &TranslationHandler{
		service: service,
	}
}

// Create handles POST /api/v1/translations
// Translates the session's current transcript into the requested target
// language and returns the translated text.
func (h *TranslationHandler) Create(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	var req dto.TranslationRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	// Validate() already guaranteed the name parses.
	target, _ := language.Parse(req.TargetLanguage)

	response, err := h.service.Translate(c.Request.Context(), sess, target)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
