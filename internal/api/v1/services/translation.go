package services

import (
	"context"

	"go.uber.org/zap"

	apierrors "groq-scribe/internal/api/errors"
	"groq-scribe/internal/api/v1/dto"
	"groq-scribe/internal/app/api"
	"groq-scribe/internal/app/language"
	"groq-scribe/internal/app/metrics"
	"groq-scribe/internal/app/session"
)

// TranslationServiceImpl implements TranslationService
type TranslationServiceImpl struct {
	translator api.Translator
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewTranslationService creates a new translation service. translator is nil
// when the optional Gemini credential is absent; the service then reports
// itself disabled and rejects calls with a configuration error.
func NewTranslationService(
	translator api.Translator,
	m *metrics.Metrics,
	logger *zap.Logger,
) TranslationService {
	return &TranslationServiceImpl{
		translator: translator,
		metrics:    m,
		logger:     logger,
	}
}

// Enabled reports whether the translation credential is configured.
func (s *TranslationServiceImpl) Enabled() bool {
	return s.translator != nil
}

// Translate performs the single outbound translation call for the session's
// current transcript and, only on success, overwrites the translation slot.
// A failed call leaves the previous translation untouched.
func (s *TranslationServiceImpl) Translate(
	ctx context.Context,
	sess *session.Session,
	target language.Language,
) (*dto.TranslationResponse, error) {
	if !s.Enabled() {
		return nil, apierrors.NewConfigurationError(
			"GEMINI_API_KEY environment variable not found. Translation is disabled.")
	}

	transcript := sess.Transcript()
	if transcript == "" {
		return nil, apierrors.NewValidationError("nothing to translate", map[string]string{
			"transcript": "transcribe an audio file first",
		})
	}

	source := sess.SourceLanguage()
	if target == source {
		return nil, apierrors.NewValidationError("invalid target language", map[string]string{
			"target_language": "must differ from the source language",
		})
	}

	gate := sess.TranslateGate()
	if !gate.TryAcquire() {
		return nil, apierrors.NewConflictError("a translation is already in progress")
	}
	defer gate.Release()

	result, err := s.translator.Translate(ctx, &api.TranslationRequest{
		Text:   transcript,
		Source: source,
		Target: target,
	})
	if err != nil {
		s.metrics.Record(metrics.ServiceTranslation, 0, err)

		debug := map[string]any{
			"target_language":   target.String(),
			"translation_error": err.Error(),
		}
		if apiErr, ok := err.(*apierrors.APIError); ok {
			if status, exists := apiErr.Details["status"]; exists {
				debug["translation_status"] = status
			}
		}
		sess.RecordDebug(debug)

		s.logger.Warn("translation failed",
			zap.String("session_id", sess.ID),
			zap.String("target", target.Code()),
			zap.Error(err),
		)
		return nil, err
	}
	s.metrics.Record(metrics.ServiceTranslation, result.Elapsed, nil)

	sess.SetTranslation(result.Text)
	sess.RecordDebug(map[string]any{
		"target_language":    target.String(),
		"translation_length": len(result.Text),
		"translation_ms":     result.Elapsed.Milliseconds(),
		"translation_model":  result.Model,
	})

	s.logger.Info("translation completed",
		zap.String("session_id", sess.ID),
		zap.String("source", source.Code()),
		zap.String("target", target.Code()),
		zap.Int("translation_length", len(result.Text)),
		zap.Duration("elapsed", result.Elapsed),
	)

	return &dto.TranslationResponse{
		Translation:    result.Text,
		SourceLanguage: source.String(),
		TargetLanguage: target.String(),
		Model:          result.Model,
		DurationMs:     result.Elapsed.Milliseconds(),
	}, nil
}
