package services

import (
	"context"
	"mime/multipart"
	"strings"

	"go.uber.org/zap"

	apierrors "groq-scribe/internal/api/errors"
	"groq-scribe/internal/api/v1/dto"
	"groq-scribe/internal/app/api"
	"groq-scribe/internal/app/intake"
	"groq-scribe/internal/app/language"
	"groq-scribe/internal/app/metrics"
	"groq-scribe/internal/app/session"
	"groq-scribe/internal/config"
)

// TranscriptionServiceImpl implements TranscriptionService
type TranscriptionServiceImpl struct {
	cfg         *config.Config
	transcriber api.Transcriber
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewTranscriptionService creates a new transcription service
func NewTranscriptionService(
	cfg *config.Config,
	transcriber api.Transcriber,
	m *metrics.Metrics,
	logger *zap.Logger,
) TranscriptionService {
	return &TranscriptionServiceImpl{
		cfg:         cfg,
		transcriber: transcriber,
		metrics:     m,
		logger:      logger,
	}
}

// Transcribe validates the upload, performs the single outbound transcription
// call and, only on success, overwrites the session's transcript slot.
// Credential and intake checks run before the gate so a rejected upload never
// claims it, and before any network traffic.
func (s *TranscriptionServiceImpl) Transcribe(
	ctx context.Context,
	sess *session.Session,
	file *multipart.FileHeader,
	source language.Language,
) (*dto.TranscriptionResponse, error) {
	if err := s.cfg.RequireGroqKey(); err != nil {
		return nil, err
	}

	blob, err := intake.FromMultipart(file, s.cfg.MaxUploadBytes)
	if err != nil {
		return nil, err
	}

	gate := sess.TranscribeGate()
	if !gate.TryAcquire() {
		return nil, apierrors.NewConflictError("a transcription is already in progress")
	}
	defer gate.Release()

	result, err := s.transcriber.Transcribe(ctx, &api.TranscriptionRequest{
		Audio:    blob,
		Language: source,
	})
	if err != nil {
		s.recordFailure(sess, blob, source, err)
		return nil, err
	}
	s.metrics.Record(metrics.ServiceTranscription, result.Elapsed, nil)

	sess.SetAudio(blob, source)
	sess.SetTranscript(result.Text)
	sess.RecordDebug(map[string]any{
		"file_name":                blob.Filename,
		"file_size":                blob.Size,
		"transcription_language":   source.String(),
		"transcription_length":     len(result.Text),
		"transcription_word_count": len(strings.Fields(result.Text)),
		"transcription_status":     result.StatusCode,
		"transcription_ms":         result.Elapsed.Milliseconds(),
		"transcription_model":      result.Model,
	})

	s.logger.Info("transcription completed",
		zap.String("session_id", sess.ID),
		zap.String("file_name", blob.Filename),
		zap.Int64("file_size", blob.Size),
		zap.String("language", source.Code()),
		zap.Int("transcript_length", len(result.Text)),
		zap.Duration("elapsed", result.Elapsed),
	)

	return &dto.TranscriptionResponse{
		Transcript: result.Text,
		FileName:   blob.Filename,
		FileSize:   blob.Size,
		Language:   source.String(),
		Model:      result.Model,
		DurationMs: result.Elapsed.Milliseconds(),
		WordCount:  len(strings.Fields(result.Text)),
	}, nil
}

// recordFailure notes the failed call in the debug record. The transcript
// slot keeps its previous value.
func (s *TranscriptionServiceImpl) recordFailure(sess *session.Session, blob *intake.AudioBlob, source language.Language, err error) {
	s.metrics.Record(metrics.ServiceTranscription, 0, err)

	debug := map[string]any{
		"file_name":              blob.Filename,
		"file_size":              blob.Size,
		"transcription_language": source.String(),
		"transcription_error":    err.Error(),
	}
	if apiErr, ok := err.(*apierrors.APIError); ok {
		if status, exists := apiErr.Details["status"]; exists {
			debug["transcription_status"] = status
		}
		if cause, exists := apiErr.Details["cause"]; exists {
			debug["transcription_error"] = cause
		}
	}
	sess.RecordDebug(debug)

	s.logger.Warn("transcription failed",
		zap.String("session_id", sess.ID),
		zap.String("file_name", blob.Filename),
		zap.Error(err),
	)
}
