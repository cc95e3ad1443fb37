//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"groq-scribe/internal/api/server"
	"groq-scribe/internal/app/session"
	"groq-scribe/internal/config"
)

// InitializeServer assembles the API clients, services and server.
func InitializeServer(cfg *config.Config, logger *zap.Logger) (*server.Server, error) {
	wire.Build(
		provideTranscriber,
		provideTranslator,
		provideCopier,
		provideRegistry,
		provideMetrics,
		provideContainer,
		session.NewStore,
		server.NewServer,
	)
	return nil, nil
}
