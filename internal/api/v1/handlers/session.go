package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"groq-scribe/internal/api/middleware"
	"groq-scribe/internal/api/v1/services"
	"groq-scribe/internal/app/session"
)

// SessionHandler exposes the current session state and the debug record
type SessionHandler struct {
	translation services.TranslationService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(translation services.TranslationService) *SessionHandler {
	return &SessionHandler{
		translation: translation,
	}
}

// sessionResponse is the session snapshot plus feature availability the page
// needs to decide which controls to enable.
type sessionResponse struct {
	session.State
	TranslationEnabled bool `json:"translation_enabled"`
}

// Get handles GET /api/v1/session
func (h *SessionHandler) Get(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	c.JSON(http.StatusOK, sessionResponse{
		State:              sess.Snapshot(),
		TranslationEnabled: h.translation.Enabled(),
	})
}
