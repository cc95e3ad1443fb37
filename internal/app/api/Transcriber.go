package api

import (
	"context"
	"time"

	"groq-scribe/internal/app/intake"
	"groq-scribe/internal/app/language"
)

// TranscriptionRequest carries one uploaded audio blob and the user-declared
// spoken language passed to the speech API as a hint.
type TranscriptionRequest struct {
	Audio    *intake.AudioBlob
	Language language.Language
}

// TranscriptionResult is the verbatim transcript plus call metadata for the
// debug panel. Text is not post-processed or truncated.
type TranscriptionResult struct {
	Text       string
	Model      string
	StatusCode int
	Elapsed    time.Duration
}

// Transcriber defines a transcription interface for converting audio to text.
// Implementations perform exactly one outbound call per invocation, never
// retry, and convert failures into the typed API error taxonomy.
type Transcriber interface {
	Transcribe(ctx context.Context, req *TranscriptionRequest) (*TranscriptionResult, error)
}
