// Package gemini implements transcript translation against the Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"google.golang.org/genai"

	apierrors "groq-scribe/internal/api/errors"
	"groq-scribe/internal/app/api"
	"groq-scribe/internal/app/language"
)

// Model is the Gemini variant used for translation.
const Model = "gemini-1.5-flash-latest"

// Translator calls the Gemini text-generation API with a translation prompt.
type Translator struct {
	client  *genai.Client
	timeout time.Duration
}

// New creates a Translator for the given API key.
func New(ctx context.Context, apiKey string, timeout time.Duration) (*Translator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Translator{
		client:  client,
		timeout: timeout,
	}, nil
}

// SystemInstruction builds the translator persona for a language pair.
func SystemInstruction(source, target language.Language) string {
	return strings.Join([]string{
		"You are a helpful language translator.",
		fmt.Sprintf("Your mission is to translate text from %s to %s.", source, target),
		"Ensure that the translation maintains the original meaning, tone, and style as much as possible.",
		"If there are any cultural nuances or idiomatic expressions, try to find appropriate equivalents in the target language.",
	}, " ")
}

// Translate performs one synchronous translation call and returns the
// translated text with surrounding whitespace trimmed. No retry.
func (t *Translator) Translate(ctx context.Context, req *api.TranslationRequest) (*api.TranslationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	start := time.Now()

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(SystemInstruction(req.Source, req.Target), genai.RoleUser),
		Temperature:       genai.Ptr[float32](1),
		TopP:              genai.Ptr[float32](0.95),
		TopK:              genai.Ptr[float32](64),
		MaxOutputTokens:   8192,
		SafetySettings: []*genai.SafetySetting{
			{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockNone},
			{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockNone},
			{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockNone},
			{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockNone},
		},
	}

	resp, err := t.client.Models.GenerateContent(ctx, Model, genai.Text(req.Text), config)
	elapsed := time.Since(start)
	if err != nil {
		return nil, convertError(err, elapsed)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return nil, apierrors.NewExternalError("translation returned no text", map[string]string{
			"provider":    "gemini",
			"status":      "empty_response",
			"duration_ms": strconv.FormatInt(elapsed.Milliseconds(), 10),
		})
	}

	return &api.TranslationResult{
		Text:    text,
		Model:   Model,
		Elapsed: elapsed,
	}, nil
}

func convertError(err error, elapsed time.Duration) *apierrors.APIError {
	details := map[string]string{
		"provider":    "gemini",
		"duration_ms": strconv.FormatInt(elapsed.Milliseconds(), 10),
		"cause":       err.Error(),
	}

	if errors.Is(err, context.DeadlineExceeded) {
		details["status"] = "timeout"
		return apierrors.NewExternalError("translation timed out", details)
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		details["status"] = strconv.Itoa(apiErr.Code)
		return apierrors.NewExternalError(
			fmt.Sprintf("translation failed with status %d", apiErr.Code), details)
	}

	details["status"] = "network_error"
	return apierrors.NewExternalError("translation request failed", details)
}
