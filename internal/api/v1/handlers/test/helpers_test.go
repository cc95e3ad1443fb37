package test

import (
	"bytes"
	"context"
	"mime/multipart"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"groq-scribe/internal/api/middleware"
	"groq-scribe/internal/api/v1/dto"
	"groq-scribe/internal/app/language"
	"groq-scribe/internal/app/session"
)

// mockTranscriptionService is a testify mock for services.TranscriptionService.
type mockTranscriptionService struct {
	mock.Mock
}

func (m *mockTranscriptionService) Transcribe(ctx context.Context, sess *session.Session, file *multipart.FileHeader, source language.Language) (*dto.TranscriptionResponse, error) {
	args := m.Called(ctx, sess, file, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TranscriptionResponse), args.Error(1)
}

// mockTranslationService is a testify mock for services.TranslationService.
type mockTranslationService struct {
	mock.Mock
}

func (m *mockTranslationService) Translate(ctx context.Context, sess *session.Session, target language.Language) (*dto.TranslationResponse, error) {
	args := m.Called(ctx, sess, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TranslationResponse), args.Error(1)
}

func (m *mockTranslationService) Enabled() bool {
	return m.Called().Bool(0)
}

// mockClipboardService is a testify mock for services.ClipboardService.
type mockClipboardService struct {
	mock.Mock
}

func (m *mockClipboardService) Copy(sess *session.Session, source string) (*dto.ClipboardResponse, error) {
	args := m.Called(sess, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ClipboardResponse), args.Error(1)
}

// setupRouter builds a test engine with the real session middleware so the
// handlers see the same context shape they see in production.
func setupRouter(t *testing.T) (*gin.Engine, *session.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	store := session.NewStore()
	router.Use(middleware.WithSession(store))
	return router, store
}

// newFormWithoutFile writes a multipart form carrying only the language
// field into body and returns its content type.
func newFormWithoutFile(t *testing.T, body *bytes.Buffer, lang string) string {
	t.Helper()
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("language", lang))
	require.NoError(t, writer.Close())
	return writer.FormDataContentType()
}

// multipartUpload builds a multipart body with a file part and a language
// field, mirroring what the page submits.
func multipartUpload(t *testing.T, filename, content, lang string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("language", lang))
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}
