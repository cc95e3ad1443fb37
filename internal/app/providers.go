package app

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	v1routes "groq-scribe/internal/api/v1/routes"
	"groq-scribe/internal/api/v1/services"
	"groq-scribe/internal/app/api"
	"groq-scribe/internal/app/api/gemini"
	"groq-scribe/internal/app/api/groq"
	"groq-scribe/internal/app/clipboard"
	"groq-scribe/internal/app/metrics"
	"groq-scribe/internal/config"
)

// provideTranscriber builds the Groq-backed transcription client. The key may
// be empty here; the transcription service re-checks it before every call.
func provideTranscriber(cfg *config.Config) api.Transcriber {
	return groq.New(cfg.GroqAPIKey, groq.WithTimeout(cfg.CallTimeout))
}

// provideTranslator builds the Gemini-backed translation client, or nil when
// the optional credential is absent. A nil translator disables only the
// translation action.
func provideTranslator(cfg *config.Config) (api.Translator, error) {
	if !cfg.TranslationEnabled() {
		return nil, nil
	}
	return gemini.New(context.Background(), cfg.GeminiAPIKey, cfg.CallTimeout)
}

func provideCopier() clipboard.Copier {
	return clipboard.NewSystemCopier()
}

func provideRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

func provideMetrics(registry *prometheus.Registry) *metrics.Metrics {
	return metrics.New(registry)
}

func provideContainer(
	cfg *config.Config,
	transcriber api.Transcriber,
	translator api.Translator,
	m *metrics.Metrics,
	copier clipboard.Copier,
	logger *zap.Logger,
) *v1routes.ServiceContainer {
	return &v1routes.ServiceContainer{
		TranscriptionService: services.NewTranscriptionService(cfg, transcriber, m, logger),
		TranslationService:   services.NewTranslationService(translator, m, logger),
		ClipboardService:     services.NewClipboardService(copier, logger),
	}
}
