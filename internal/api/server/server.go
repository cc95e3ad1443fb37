package server

import (
	"context"
	"encoding/json"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"groq-scribe/internal/api/middleware"
	v1routes "groq-scribe/internal/api/v1/routes"
	"groq-scribe/internal/app/language"
	"groq-scribe/internal/app/session"
	"groq-scribe/internal/config"
	"groq-scribe/web"
)

// Server represents the web server: the rendered page, the JSON API and the
// operational endpoints.
type Server struct {
	cfg        *config.Config
	router     *gin.Engine
	httpServer *http.Server
	logger     *zap.Logger
}

// NewServer creates a new server
func NewServer(
	cfg *config.Config,
	container *v1routes.ServiceContainer,
	store *session.Store,
	registry *prometheus.Registry,
	logger *zap.Logger,
) *Server {
	// Set Gin mode based on environment
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogging(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
		})
	})

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// The page and the API share the cookie-backed session. Health and
	// metrics stay outside so probes never create sessions.
	tmpl := template.Must(template.ParseFS(web.Templates(), "templates/*.html"))
	router.SetHTMLTemplate(tmpl)
	router.StaticFS("/static", http.FS(web.Static()))

	page := router.Group("/", middleware.WithSession(store))
	page.GET("", pageHandler(cfg, container))

	api := router.Group("/api/v1", middleware.WithSession(store))
	v1routes.RegisterRoutes(api, container)

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.CallTimeout + 30*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		cfg:        cfg,
		router:     router,
		httpServer: httpServer,
		logger:     logger,
	}
}

// pageHandler renders the single interaction page from the session state.
func pageHandler(cfg *config.Config, container *v1routes.ServiceContainer) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.SessionFromContext(c)
		state := sess.Snapshot()

		debugJSON, _ := json.MarshalIndent(state.Debug, "", "  ")

		c.HTML(http.StatusOK, "index.html", gin.H{
			"State":              state,
			"Sources":            language.All(),
			"Targets":            language.Targets(state.SourceLanguage),
			"TranslationEnabled": container.TranslationService.Enabled(),
			"MaxUploadBytes":     cfg.MaxUploadBytes,
			"DebugJSON":          string(debugJSON),
		})
	}
}

// Start starts the server in a goroutine.
func (s *Server) Start() error {
	s.logger.Info("Starting server",
		zap.String("address", s.httpServer.Addr),
		zap.String("environment", s.cfg.Environment),
		zap.Bool("translation_enabled", s.cfg.TranslationEnabled()),
	)

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	s.logger.Info("Server shutdown complete")
	return nil
}

// Router returns the Gin router (useful for testing)
func (s *Server) Router() *gin.Engine {
	return s.router
}
