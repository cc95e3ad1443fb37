package routes

import (
	"github.com/gin-gonic/gin"

	"groq-scribe/internal/api/v1/handlers"
	"groq-scribe/internal/api/v1/services"
)

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	TranscriptionService services.TranscriptionService
	TranslationService   services.TranslationService
	ClipboardService     services.ClipboardService
}

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	transcriptionHandler := handlers.NewTranscriptionHandler(container.TranscriptionService)
	router.POST("/transcriptions", transcriptionHandler.Create)

	translationHandler := handlers.NewTranslationHandler(container.TranslationService)
	router.POST("/translations", translationHandler.Create)

	clipboardHandler := handlers.NewClipboardHandler(container.ClipboardService)
	router.POST("/clipboard", clipboardHandler.Create)

	sessionHandler := handlers.NewSessionHandler(container.TranslationService)
	router.GET("/session", sessionHandler.Get)

	languagesHandler := handlers.NewLanguagesHandler()
	router.GET("/languages", languagesHandler.List)
}
