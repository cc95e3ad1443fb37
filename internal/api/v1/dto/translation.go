package dto

import (
	apierrors "groq-scribe/internal/api/errors"
	"groq-scribe/internal/app/language"
)

// TranslationRequest asks for the current transcript to be translated.
type TranslationRequest struct {
	TargetLanguage string `json:"target_language" binding:"required"`
}

// Validate checks the target against the closed language set.
func (r *TranslationRequest) Validate() error {
	if _, err := language.Parse(r.TargetLanguage); err != nil {
		return apierrors.NewValidationError("Validation failed", map[string]string{
			"target_language": "must be one of the supported languages",
		})
	}
	return nil
}

// TranslationResponse is returned after a successful translation call.
type TranslationResponse struct {
	Translation    string `json:"translation"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
	Model          string `json:"model"`
	DurationMs     int64  `json:"duration_ms"`
}
