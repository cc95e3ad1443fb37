package services

import (
	"context"
	"mime/multipart"

	"groq-scribe/internal/api/v1/dto"
	"groq-scribe/internal/app/language"
	"groq-scribe/internal/app/session"
)

// TranscriptionService orchestrates one upload-and-transcribe interaction.
type TranscriptionService interface {
	Transcribe(ctx context.Context, sess *session.Session, file *multipart.FileHeader, source language.Language) (*dto.TranscriptionResponse, error)
}

// TranslationService orchestrates one translate-the-transcript interaction.
type TranslationService interface {
	Translate(ctx context.Context, sess *session.Session, target language.Language) (*dto.TranslationResponse, error)
	Enabled() bool
}

// ClipboardService copies one of the session's text slots to the host clipboard.
type ClipboardService interface {
	Copy(sess *session.Session, source string) (*dto.ClipboardResponse, error)
}
