package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"groq-scribe/internal/api/middleware"
	"groq-scribe/internal/api/v1/dto"
	"groq-scribe/internal/api/v1/services"
)

// ClipboardHandler handles copy-to-clipboard requests
type ClipboardHandler struct {
	service services.ClipboardService
}

// NewClipboardHandler creates a new clipboard handler
func NewClipboardHandler(service services.ClipboardService) *ClipboardHandler {
	return &ClipboardHandler{
		service: service,
	}
}

// Create handles POST /api/v1/clipboard
// Copies the transcript or translation to the host clipboard.
func (h *ClipboardHandler) Create(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	var req dto.ClipboardRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.Copy(sess, req.Source)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
