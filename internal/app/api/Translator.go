package api

import (
	"context"
	"time"

	"groq-scribe/internal/app/language"
)

// TranslationRequest carries the transcript and the language pair for one
// translation call.
type TranslationRequest struct {
	Text   string
	Source language.Language
	Target language.Language
}

// TranslationResult is the translated text plus call metadata.
type TranslationResult struct {
	Text    string
	Model   string
	Elapsed time.Duration
}

// Translator defines a translation interface backed by a hosted
// text-generation API. Same single-call, no-retry discipline as Transcriber.
type Translator interface {
	Translate(ctx context.Context, req *TranslationRequest) (*TranslationResult, error)
}
