package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"groq-scribe/internal/api/errors"
	"groq-scribe/internal/api/middleware"
	"groq-scribe/internal/api/v1/dto"
	"groq-scribe/internal/app/language"
)

// LanguagesHandler lists the closed language set
type LanguagesHandler struct{}

// NewLanguagesHandler creates a new languages handler
func NewLanguagesHandler() *LanguagesHandler {
	return &LanguagesHandler{}
}

// List handles GET /api/v1/languages?source=English
// Targets exclude the source language so the picker never offers a
// same-language translation.
func (h *LanguagesHandler) List(c *gin.Context) {
	source := language.English
	if name := c.Query("source"); name != "" {
		parsed, err := language.Parse(name)
		if err != nil {
			middleware.HandleError(c, errors.NewBadRequestError("unsupported source language"))
			return
		}
		source = parsed
	}

	response := dto.LanguagesResponse{}
	for _, l := range language.All() {
		response.Sources = append(response.Sources, dto.LanguageInfo{Name: l.String(), Code: l.Code()})
	}
	for _, l := range language.Targets(source) {
		response.Targets = append(response.Targets, dto.LanguageInfo{Name: l.String(), Code: l.Code()})
	}

	c.JSON(http.StatusOK, response)
}
