package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"groq-scribe/internal/api/errors"
	"groq-scribe/internal/api/v1/dto"
	"groq-scribe/internal/api/v1/handlers"
	"groq-scribe/internal/app/language"
)

func TestTranscriptionHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		filename       string
		content        string
		language       string
		setupMock      func(*mockTranscriptionService)
		expectedStatus int
		validateBody   func(*testing.T, map[string]interface{})
	}{
		{
			name:     "successful transcription",
			filename: "memo.m4a",
			content:  "fake-m4a-bytes",
			language: "English",
			setupMock: func(ms *mockTranscriptionService) {
				ms.On("Transcribe", mock.Anything, mock.Anything, mock.Anything, language.English).
					Return(&dto.TranscriptionResponse{
						Transcript: "hello world",
						FileName:   "memo.m4a",
						FileSize:   14,
						Language:   "English",
						Model:      "whisper-large-v3",
						WordCount:  2,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "hello world", body["transcript"])
				assert.Equal(t, "memo.m4a", body["file_name"])
				assert.Equal(t, float64(2), body["word_count"])
			},
		},
		{
			name:           "unsupported source language",
			filename:       "memo.m4a",
			content:        "fake-m4a-bytes",
			language:       "Klingon",
			setupMock:      func(ms *mockTranscriptionService) {},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "bad_request", body["kind"])
			},
		},
		{
			name:     "wrong file type is rejected",
			filename: "memo.wav",
			content:  "fake-wav-bytes",
			language: "English",
			setupMock: func(ms *mockTranscriptionService) {
				ms.On("Transcribe", mock.Anything, mock.Anything, mock.Anything, language.English).
					Return(nil, errors.NewValidationError("Please upload an M4A file", map[string]string{
						"file": "must have the .m4a extension",
					}))
			},
			expectedStatus: http.StatusUnprocessableEntity,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "validation", body["kind"])
				details := body["details"].(map[string]interface{})
				assert.Contains(t, details["file"], ".m4a")
			},
		},
		{
			name:     "call already in flight",
			filename: "memo.m4a",
			content:  "fake-m4a-bytes",
			language: "German",
			setupMock: func(ms *mockTranscriptionService) {
				ms.On("Transcribe", mock.Anything, mock.Anything, mock.Anything, language.German).
					Return(nil, errors.NewConflictError("A transcription is already in progress"))
			},
			expectedStatus: http.StatusConflict,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "conflict", body["kind"])
			},
		},
		{
			name:     "upstream failure",
			filename: "memo.m4a",
			content:  "fake-m4a-bytes",
			language: "English",
			setupMock: func(ms *mockTranscriptionService) {
				ms.On("Transcribe", mock.Anything, mock.Anything, mock.Anything, language.English).
					Return(nil, errors.NewExternalError("Transcription failed", map[string]string{
						"status": "500",
					}))
			},
			expectedStatus: http.StatusBadGateway,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "external_service", body["kind"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := setupRouter(t)
			service := new(mockTranscriptionService)
			tt.setupMock(service)

			handler := handlers.NewTranscriptionHandler(service)
			router.POST("/api/v1/transcriptions", handler.Create)

			body, contentType := multipartUpload(t, tt.filename, tt.content, tt.language)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/transcriptions", body)
			req.Header.Set("Content-Type", contentType)
			recorder := httptest.NewRecorder()

			router.ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)

			var responseBody map[string]interface{}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &responseBody))
			tt.validateBody(t, responseBody)

			service.AssertExpectations(t)
		})
	}
}

func TestTranscriptionHandler_MissingFilePart(t *testing.T) {
	router, _ := setupRouter(t)
	service := new(mockTranscriptionService)
	// A missing part reaches the service as a nil header so the intake layer
	// produces the typed validation error.
	service.On("Transcribe", mock.Anything, mock.Anything, mock.Anything, language.English).
		Return(nil, errors.NewValidationError("Please upload an M4A file", nil))

	handler := handlers.NewTranscriptionHandler(service)
	router.POST("/api/v1/transcriptions", handler.Create)

	body := &bytes.Buffer{}
	writer := newFormWithoutFile(t, body, "English")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transcriptions", body)
	req.Header.Set("Content-Type", writer)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	service.AssertExpectations(t)
}

func TestTranscriptionHandler_SetsSessionCookie(t *testing.T) {
	router, store := setupRouter(t)
	service := new(mockTranscriptionService)
	service.On("Transcribe", mock.Anything, mock.Anything, mock.Anything, language.English).
		Return(&dto.TranscriptionResponse{Transcript: "hello"}, nil)

	handler := handlers.NewTranscriptionHandler(service)
	router.POST("/api/v1/transcriptions", handler.Create)

	body, contentType := multipartUpload(t, "memo.m4a", "fake", "English")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transcriptions", body)
	req.Header.Set("Content-Type", contentType)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "scribe_session", cookies[0].Name)

	_, ok := store.Get(cookies[0].Value)
	assert.True(t, ok, "cookie should reference a stored session")
}
