package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"groq-scribe/internal/api/errors"
	"groq-scribe/internal/api/middleware"
	"groq-scribe/internal/api/v1/services"
	"groq-scribe/internal/app/language"
)

// TranscriptionHandler handles the upload-and-transcribe endpoint
type TranscriptionHandler struct {
	service services.TranscriptionService
}

// NewTranscriptionHandler creates a new transcription handler
func NewTranscriptionHandler(service services.TranscriptionService) *TranscriptionHandler {
	return &TranscriptionHandler{
		service: service,
	}
}

// Create handles POST /api/v1/transcriptions
// Accepts a multipart form with an M4A file and a source language hint, runs
// one synchronous transcription call and returns the transcript.
func (h *TranscriptionHandler) Create(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	lang, err := language.Parse(c.PostForm("language"))
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("unsupported source language"))
		return
	}

	// A missing file part is handed to intake as a nil header so the empty
	// upload case gets the same typed validation error everywhere.
	file, err := c.FormFile("file")
	if err != nil {
		file = nil
	}

	response, err := h.service.Transcribe(c.Request.Context(), sess, file, lang)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
