// Package testutil provides shared mocks for the external call boundaries so
// service and handler tests run without any real network or clipboard access.
package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"groq-scribe/internal/app/api"
)

// MockTranscriber is a testify mock for api.Transcriber.
type MockTranscriber struct {
	mock.Mock
}

// Transcribe implements api.Transcriber.
func (m *MockTranscriber) Transcribe(ctx context.Context, req *api.TranscriptionRequest) (*api.TranscriptionResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.TranscriptionResult), args.Error(1)
}

// MockTranslator is a testify mock for api.Translator.
type MockTranslator struct {
	mock.Mock
}

// Translate implements api.Translator.
func (m *MockTranslator) Translate(ctx context.Context, req *api.TranslationRequest) (*api.TranslationResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.TranslationResult), args.Error(1)
}

// MockCopier is a testify mock for clipboard.Copier.
type MockCopier struct {
	mock.Mock
}

// Copy implements clipboard.Copier.
func (m *MockCopier) Copy(text string) error {
	args := m.Called(text)
	return args.Error(0)
}
