package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		name     string
		err      *APIError
		expected int
	}{
		{
			name:     "configuration maps to service unavailable",
			err:      NewConfigurationError("GROQ_API_KEY is not set"),
			expected: http.StatusServiceUnavailable,
		},
		{
			name:     "validation maps to unprocessable entity",
			err:      NewValidationError("invalid upload", map[string]string{"file": "must be .m4a"}),
			expected: http.StatusUnprocessableEntity,
		},
		{
			name:     "oversized upload maps to request entity too large",
			err:      NewPayloadTooLargeError("file exceeds 25 MiB"),
			expected: http.StatusRequestEntityTooLarge,
		},
		{
			name:     "conflict maps to conflict",
			err:      NewConflictError("transcription already in progress"),
			expected: http.StatusConflict,
		},
		{
			name:     "external failure maps to bad gateway",
			err:      NewExternalError("transcription failed", map[string]string{"status": "500"}),
			expected: http.StatusBadGateway,
		},
		{
			name:     "clipboard maps to internal server error",
			err:      NewClipboardError("no clipboard available"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "bad request maps to bad request",
			err:      NewBadRequestError("unknown language"),
			expected: http.StatusBadRequest,
		},
		{
			name:     "internal maps to internal server error",
			err:      NewInternalError("boom"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.err.HTTPStatus())
		})
	}
}

func TestWrapError(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		assert.Nil(t, WrapError(nil, KindInternal, "ignored"))
	})

	t.Run("preserves details from wrapped APIError", func(t *testing.T) {
		orig := NewExternalError("upstream failed", map[string]string{"status": "503"})
		wrapped := WrapError(orig, KindExternal, "transcription failed")

		assert.Equal(t, KindExternal, wrapped.Kind)
		assert.Equal(t, "transcription failed", wrapped.Message)
		assert.Equal(t, "503", wrapped.Details["status"])
	})
}
