// Package groq implements transcription against Groq's hosted Whisper models.
// Groq exposes an OpenAI-compatible surface, so the client reuses the OpenAI
// SDK pointed at Groq's base URL.
package groq

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/sashabaranov/go-openai"

	apierrors "groq-scribe/internal/api/errors"
	"groq-scribe/internal/app/api"
)

const (
	// DefaultBaseURL is Groq's OpenAI-compatible endpoint.
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// Model is the Whisper variant Groq hosts for transcription.
	Model = "whisper-large-v3"

	transcriptionPrompt = "Transcribe the following audio"
)

// Transcriber calls the Groq audio transcription API.
type Transcriber struct {
	client  *openai.Client
	timeout time.Duration
}

// Option configures a Transcriber.
type Option func(*options)

type options struct {
	baseURL string
	timeout time.Duration
}

// WithBaseURL overrides the API endpoint, used by tests to point at a mock server.
func WithBaseURL(url string) Option {
	return func(o *options) { o.baseURL = url }
}

// WithTimeout bounds each transcription call.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// New creates a Transcriber for the given API key.
func New(apiKey string, opts ...Option) *Transcriber {
	o := options{
		baseURL: DefaultBaseURL,
		timeout: 60 * time.Second,
	}
	for _, opt := range opts {
		opt(&o)
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = o.baseURL

	return &Transcriber{
		client:  openai.NewClientWithConfig(cfg),
		timeout: o.timeout,
	}
}

// Transcribe performs one synchronous transcription call. The transcript is
// returned verbatim. Failures are converted into external-service errors
// carrying the upstream status and raw detail; there is no retry.
func (t *Transcriber) Transcribe(ctx context.Context, req *api.TranscriptionRequest) (*api.TranscriptionResult, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	start := time.Now()

	audioReq := openai.AudioRequest{
		Model:       Model,
		FilePath:    req.Audio.Filename,
		Reader:      bytes.NewReader(req.Audio.Data),
		Prompt:      transcriptionPrompt,
		Language:    req.Language.Code(),
		Temperature: 0.0,
		Format:      openai.AudioResponseFormatJSON,
	}

	resp, err := t.client.CreateTranscription(ctx, audioReq)
	elapsed := time.Since(start)
	if err != nil {
		return nil, convertError("transcription", err, elapsed)
	}

	return &api.TranscriptionResult{
		Text:       resp.Text,
		Model:      Model,
		StatusCode: http.StatusOK,
		Elapsed:    elapsed,
	}, nil
}

// convertError maps SDK and transport failures onto the API error taxonomy.
func convertError(operation string, err error, elapsed time.Duration) *apierrors.APIError {
	details := map[string]string{
		"provider":    "groq",
		"duration_ms": strconv.FormatInt(elapsed.Milliseconds(), 10),
		"cause":       err.Error(),
	}

	var openaiErr *openai.APIError
	var requestErr *openai.RequestError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		details["status"] = "timeout"
		return apierrors.NewExternalError(fmt.Sprintf("%s timed out", operation), details)
	case errors.As(err, &openaiErr):
		details["status"] = strconv.Itoa(openaiErr.HTTPStatusCode)
		return apierrors.NewExternalError(
			fmt.Sprintf("%s failed with status %d", operation, openaiErr.HTTPStatusCode), details)
	case errors.As(err, &requestErr):
		details["status"] = strconv.Itoa(requestErr.HTTPStatusCode)
		return apierrors.NewExternalError(
			fmt.Sprintf("%s failed with status %d", operation, requestErr.HTTPStatusCode), details)
	default:
		details["status"] = "network_error"
		return apierrors.NewExternalError(fmt.Sprintf("%s request failed", operation), details)
	}
}
