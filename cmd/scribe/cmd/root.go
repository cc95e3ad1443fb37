package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"groq-scribe/internal/app"
	"groq-scribe/internal/config"
)

var (
	flagHost string
	flagPort string
	flagEnv  string
)

// rootCmd runs the server; there are no subcommands.
var rootCmd = &cobra.Command{
	Use:   "scribe",
	Short: "Web front-end for M4A transcription via Groq Whisper with optional Gemini translation",
	Long: `scribe serves a single-page web front-end that transcribes an uploaded
M4A audio file through Groq's hosted Whisper model, optionally translates the
transcript through the Gemini API, and copies either result to the clipboard.

Requires GROQ_API_KEY; set GEMINI_API_KEY to enable translation.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

// Execute runs the root command.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&flagHost, "host", "", "host to bind (defaults to SCRIBE_HOST or 0.0.0.0)")
	rootCmd.Flags().StringVar(&flagPort, "port", "", "port to bind (defaults to SCRIBE_PORT or 8080)")
	rootCmd.Flags().StringVar(&flagEnv, "env", "", "environment: development or production")
}

func runServer() error {
	cfg := config.Load()
	if flagHost != "" {
		cfg.Host = flagHost
	}
	if flagPort != "" {
		cfg.Port = flagPort
	}
	if flagEnv != "" {
		cfg.Environment = flagEnv
	}

	logger, err := newLogger(cfg.Environment)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	// Surface the configuration state up front; the missing-key error is
	// repeated per request so the user sees it in the page too.
	if err := cfg.RequireGroqKey(); err != nil {
		logger.Warn("transcription is not configured", zap.Error(err))
	}
	if !cfg.TranslationEnabled() {
		logger.Info("GEMINI_API_KEY not set, translation is disabled")
	}

	srv, err := app.InitializeServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if err := srv.Start(); err != nil {
		return err
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

func newLogger(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
