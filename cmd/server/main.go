package main

import (
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"commsagent/internal/audience"
	"commsagent/internal/collab/anthropic"
	"commsagent/internal/config"
	"commsagent/internal/handler"
	"commsagent/internal/middleware"
	"commsagent/internal/repository/jsonfile"
	"commsagent/internal/service"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Debug {
		logLevel = slog.LevelDebug
	}

	logOutput := io.Writer(os.Stdout)
	if cfg.LogDir != "" {
		logFile, err := config.SetupLogFile(cfg.LogDir, 10)
		if err != nil {
			log.Fatalf("Failed to setup log file: %v", err)
		}
		defer logFile.Close()
		logOutput = io.MultiWriter(os.Stdout, logFile)
	}

	logger := slog.New(slog.NewJSONHandler(logOutput, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"data_file", cfg.DataFile,
		"model", cfg.Model,
	)

	// Project store on a single JSON document
	store := jsonfile.New(cfg.DataFile, logger)

	// Audience profiles from embedded configuration
	audienceRegistry, err := audience.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to initialize audience registry: %v", err)
	}
	logger.Info("audience registry initialized", "profiles", len(audienceRegistry.List()))

	// AI collaborator for plan and draft generation
	collaborator, err := anthropic.New(cfg.AnthropicAPIKey, cfg.Model, audienceRegistry, logger)
	if err != nil {
		log.Fatalf("Failed to create collaborator: %v", err)
	}

	// Create services
	projectService := service.NewProjectService(store, logger)
	commsService := service.NewCommsService(store, collaborator, logger)

	// Create handlers
	projectHandler := handler.NewProjectHandler(projectService, logger)
	commsHandler := handler.NewCommsHandler(commsService, projectService, logger)
	audienceHandler := handler.NewAudienceHandler(audienceRegistry, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", projectHandler.HealthCheck)

	// Project routes
	mux.HandleFunc("GET /api/projects", projectHandler.ListProjects)
	mux.HandleFunc("POST /api/projects", projectHandler.CreateProject)
	mux.HandleFunc("GET /api/projects/{id}", projectHandler.GetProject)
	mux.HandleFunc("PATCH /api/projects/{id}", projectHandler.UpdateProject)

	// Communications plan routes
	mux.HandleFunc("POST /api/projects/{id}/plan", commsHandler.GeneratePlan)
	mux.HandleFunc("GET /api/projects/{id}/plan", commsHandler.GetPlan)

	// Drafting and sending
	mux.HandleFunc("POST /api/projects/{id}/communications/{commID}/drafts", commsHandler.GenerateDrafts)
	mux.HandleFunc("POST /api/communications/send", commsHandler.RecordSend)
	mux.HandleFunc("GET /api/communications/due", commsHandler.Due)

	// Manual history entries
	mux.HandleFunc("POST /api/projects/{id}/history", commsHandler.AddHistoryEntry)

	// Audience profiles
	mux.HandleFunc("GET /api/audiences", audienceHandler.ListAudiences)

	// Prometheus metrics
	mux.Handle("GET /metrics", promhttp.Handler())

	// Build middleware chain
	var h http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → Metrics → Routes
	h = middleware.Metrics(h)
	h = middleware.Recovery(logger)(h)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // Collaborator calls block for their duration
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
