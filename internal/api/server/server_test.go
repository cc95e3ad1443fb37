package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"groq-scribe/internal/api/errors"
	v1routes "groq-scribe/internal/api/v1/routes"
	"groq-scribe/internal/api/v1/services"
	"groq-scribe/internal/app/api"
	"groq-scribe/internal/app/metrics"
	"groq-scribe/internal/app/session"
	"groq-scribe/internal/app/testutil"
	"groq-scribe/internal/config"
)

// fixture wires real services and handlers behind mocked external clients so
// a request travels the full middleware and routing stack.
type fixture struct {
	server      *Server
	transcriber *testutil.MockTranscriber
	translator  *testutil.MockTranslator
	copier      *testutil.MockCopier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg := &config.Config{
		Environment:    "test",
		GroqAPIKey:     "gsk_test",
		GeminiAPIKey:   "test",
		MaxUploadBytes: config.DefaultMaxUploadBytes,
		CallTimeout:    config.DefaultCallTimeout,
	}

	logger := zap.NewNop()
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	transcriber := new(testutil.MockTranscriber)
	translator := new(testutil.MockTranslator)
	copier := new(testutil.MockCopier)

	container := &v1routes.ServiceContainer{
		TranscriptionService: services.NewTranscriptionService(cfg, transcriber, m, logger),
		TranslationService:   services.NewTranslationService(translator, m, logger),
		ClipboardService:     services.NewClipboardService(copier, logger),
	}

	srv := NewServer(cfg, container, session.NewStore(), registry, logger)
	return &fixture{server: srv, transcriber: transcriber, translator: translator, copier: copier}
}

func (f *fixture) do(req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	f.server.Router().ServeHTTP(recorder, req)
	return recorder
}

func uploadRequest(t *testing.T, filename, content, lang string) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("language", lang))
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transcriptions", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestServer_TranscribeThenTranslateThenCopy(t *testing.T) {
	f := newFixture(t)

	f.transcriber.On("Transcribe", mock.Anything, mock.Anything).
		Return(&api.TranscriptionResult{
			Text:       "hello world",
			Model:      "whisper-large-v3",
			StatusCode: http.StatusOK,
			Elapsed:    120 * time.Millisecond,
		}, nil)

	recorder := f.do(uploadRequest(t, "sample.m4a", "fake-audio", "English"))
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var transcription map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &transcription))
	assert.Equal(t, "hello world", transcription["transcript"])

	cookies := recorder.Result().Cookies()
	require.NotEmpty(t, cookies)
	sessionCookie := cookies[0]

	// Translation uses the transcript stored in the same session.
	f.translator.On("Translate", mock.Anything, mock.MatchedBy(func(req *api.TranslationRequest) bool {
		return req.Text == "hello world" && req.Target.String() == "German"
	})).Return(&api.TranslationResult{
		Text:    "hallo welt",
		Model:   "gemini-1.5-flash-latest",
		Elapsed: 80 * time.Millisecond,
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/translations",
		bytes.NewBufferString(`{"target_language":"German"}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(sessionCookie)
	recorder = f.do(req)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var translation map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &translation))
	assert.Equal(t, "hallo welt", translation["translation"])

	// Copy the translation from the same session.
	f.copier.On("Copy", "hallo welt").Return(nil)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/clipboard",
		bytes.NewBufferString(`{"source":"translation"}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(sessionCookie)
	recorder = f.do(req)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	// Session snapshot reflects both results.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
	req.AddCookie(sessionCookie)
	recorder = f.do(req)

	var state map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &state))
	assert.Equal(t, "hello world", state["transcript"])
	assert.Equal(t, "hallo welt", state["translation"])
	assert.Equal(t, true, state["translation_enabled"])

	f.transcriber.AssertExpectations(t)
	f.translator.AssertExpectations(t)
	f.copier.AssertExpectations(t)
}

func TestServer_RejectsNonM4AWithoutCallingOut(t *testing.T) {
	f := newFixture(t)

	recorder := f.do(uploadRequest(t, "sample.wav", "fake-audio", "English"))

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "validation", body["kind"])

	f.transcriber.AssertNotCalled(t, "Transcribe", mock.Anything, mock.Anything)
}

func TestServer_UpstreamFailureSurfacesAsBadGateway(t *testing.T) {
	f := newFixture(t)

	f.transcriber.On("Transcribe", mock.Anything, mock.Anything).
		Return(nil, errors.NewExternalError("Transcription failed", map[string]string{
			"status": "500",
			"cause":  "internal server error",
		}))

	recorder := f.do(uploadRequest(t, "sample.m4a", "fake-audio", "English"))

	assert.Equal(t, http.StatusBadGateway, recorder.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "external_service", body["kind"])
	details := body["details"].(map[string]interface{})
	assert.Equal(t, "500", details["status"])
}

func TestServer_HealthAndMetricsSkipSessions(t *testing.T) {
	f := newFixture(t)

	recorder := f.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, recorder.Result().Cookies(), "health probes must not create sessions")

	recorder = f.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, recorder.Result().Cookies())
}

func TestServer_RendersPage(t *testing.T) {
	f := newFixture(t)

	recorder := f.do(httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, recorder.Body.String(), "transcribe")
}
