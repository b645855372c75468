package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mediagent/mediagent/internal/config"
	"github.com/mediagent/mediagent/internal/domain/agent"
	"github.com/mediagent/mediagent/internal/domain/consult"
	"github.com/mediagent/mediagent/internal/domain/patient"
	"github.com/mediagent/mediagent/internal/domain/report"
	"github.com/mediagent/mediagent/internal/domain/workflow"
	"github.com/mediagent/mediagent/internal/nlp"
	"github.com/mediagent/mediagent/internal/platform/auth"
	"github.com/mediagent/mediagent/internal/platform/db"
	"github.com/mediagent/mediagent/internal/platform/middleware"
	"github.com/mediagent/mediagent/internal/platform/runner"
	"github.com/mediagent/mediagent/internal/platform/speech"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "mediagent-server",
		Short: "Medical AI assistant API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, _ := cmd.Flags().GetString("schema")
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			fmt.Printf("Running migrations on schema: %s\n", schema)

			count, err := migrator.Up(ctx, schema)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("schema", "public", "Target schema for migrations")
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, _ := cmd.Flags().GetString("schema")
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx, schema)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("Migration status for schema: %s\n", schema)
			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			fmt.Println("---------- ---------------------------------------- ---------- --------------------")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("schema", "public", "Target schema for migrations")
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}

// repos groups one repository per entity so storage backend selection
// happens in a single place.
type repos struct {
	patients  patient.Repository
	reports   report.Repository
	agents    agent.Repository
	workflows workflow.Repository
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx := context.Background()

	// Storage backend
	var r repos
	var pool *pgxpool.Pool
	switch cfg.StorageBackend {
	case "postgres":
		p, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer p.Close()
		pool = p
		r = repos{
			patients:  patient.NewRepoPG(p),
			reports:   report.NewRepoPG(p),
			agents:    agent.NewRepoPG(p),
			workflows: workflow.NewRepoPG(p),
		}
		logger.Info().Msg("connected to database")
	default:
		r = repos{
			patients:  patient.NewRepoMem(),
			reports:   report.NewRepoMem(),
			agents:    agent.NewRepoMem(),
			workflows: workflow.NewRepoMem(),
		}
		logger.Info().Msg("using in-memory storage")
	}

	// Speech-to-text provider
	var transcriber speech.Transcriber
	if cfg.SpeechProvider == "openai" {
		transcriber = speech.NewOpenAITranscriber(cfg.SpeechAPIKey)
		logger.Info().Msg("speech provider: openai")
	} else {
		transcriber = speech.NewMockTranscriber()
		logger.Info().Msg("speech provider: mock")
	}

	// Workflow runner client (optional)
	var runnerClient *runner.Client
	if cfg.RunnerBaseURL != "" {
		runnerClient = runner.NewClient(cfg.RunnerBaseURL, cfg.RunnerAPIKey)
		logger.Info().Str("base_url", cfg.RunnerBaseURL).Msg("workflow runner configured")
	} else {
		logger.Warn().Msg("RUNNER_BASE_URL not set; workflow activation runs locally only")
	}

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.BodyLimit(fmt.Sprintf("%d", cfg.MaxUploadBytes)))
	e.Use(middleware.RequestTimeout(60 * time.Second))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Auth middleware
	switch cfg.ResolvedAuthMode() {
	case "development":
		e.Use(auth.DevAuthMiddleware())
	case "static":
		e.Use(auth.JWTMiddleware(auth.JWTConfig{
			Issuer:     cfg.AuthIssuer,
			Audience:   cfg.AuthAudience,
			SigningKey: []byte(cfg.JWTSigningKey),
		}))
	default:
		e.Use(auth.JWTMiddleware(auth.JWTConfig{
			Issuer:   cfg.AuthIssuer,
			Audience: cfg.AuthAudience,
			JWKSURL:  cfg.AuthJWKSURL,
		}))
	}

	// API group with rate limiting
	apiV1 := e.Group("/api/v1")

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	apiV1.Use(middleware.RateLimit(rateLimitCfg))

	// Health check
	if pool != nil {
		e.GET("/health", db.HealthHandler(pool, version))
	} else {
		e.GET("/health", func(c echo.Context) error {
			return c.JSON(http.StatusOK, map[string]string{
				"status":  "ok",
				"storage": "memory",
				"version": version,
			})
		})
	}

	// -- Register Domain Handlers --

	// Patients
	patientSvc := patient.NewService(r.patients)
	patient.NewHandler(patientSvc).RegisterRoutes(apiV1)

	// Medical reports
	reportSvc := report.NewService(r.reports)
	report.NewHandler(reportSvc).RegisterRoutes(apiV1)

	// Agents
	agentSvc := agent.NewService(r.agents)
	agent.NewHandler(agentSvc).RegisterRoutes(apiV1)

	// Workflows
	workflowSvc := workflow.NewService(r.workflows, runnerClient)
	workflow.NewHandler(workflowSvc).RegisterRoutes(apiV1)

	// Consultation processing pipeline
	consultSvc := consult.NewService(
		nlp.NewExtractor(),
		nlp.NewConfidenceSource(0.85, 0.1),
		transcriber,
		cfg.MaxUploadBytes,
	)
	consult.NewHandler(consultSvc, reportSvc).RegisterRoutes(apiV1)

	// Start server
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("forced shutdown")
		return err
	}

	logger.Info().Msg("server stopped")
	return nil
}
