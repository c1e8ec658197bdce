// Command server is the Nandi AI gateway entrypoint.
//
// Startup sequence:
//  1. Load .env (best effort) and environment configuration.
//  2. Configure zerolog (level, optional pretty console output).
//  3. Set up OpenTelemetry tracing (no-op unless enabled).
//  4. Open the telemetry database and run migrations.
//  5. Load the prompt catalog and build the response cache.
//  6. Dial the completion provider and wrap it with retry.
//  7. Wire the Gin engine and serve until SIGINT/SIGTERM, then drain.
//
// @title        Nandi AI Gateway API
// @version      1.0
// @description  Persona chat orchestration, points, and companion wisdom for the Nandi spiritual wellness platform.
// @BasePath     /api
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nandi-platform/nandi-gateway/internal/cache"
	"github.com/nandi-platform/nandi-gateway/internal/config"
	httpapi "github.com/nandi-platform/nandi-gateway/internal/http"
	"github.com/nandi-platform/nandi-gateway/internal/llm"
	"github.com/nandi-platform/nandi-gateway/internal/observability"
	"github.com/nandi-platform/nandi-gateway/internal/prompts"
	"github.com/nandi-platform/nandi-gateway/internal/repo"
	"github.com/nandi-platform/nandi-gateway/internal/sysutil"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func main() {
	// Best-effort .env for local development; real deployments use the
	// process environment.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	// Logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	sysutil.SetLogLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Tracing
	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOTel(sctx); err != nil {
			log.Warn().Err(err).Msg("otel shutdown failed")
		}
	}()

	// Telemetry store
	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database failed")
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate database failed")
	}

	// Prompt catalog and response cache
	catalog := prompts.New(cfg.PromptsPath)
	respCache := cache.New(cache.Options{
		TTL:      cfg.CacheTTL,
		Disabled: cfg.DevMode(), // fresh responses on every dev request
	})

	// Completion provider, retry-decorated
	gemini, err := llm.NewGemini(ctx, cfg.GeminiAPIKey, cfg.ChatModel)
	if err != nil {
		log.Fatal().Err(err).Msg("provider setup failed")
	}
	defer func() { _ = gemini.Close() }()
	provider := llm.WithRetry(gemini, llm.RetryOptions{
		Attempts:  3,
		BaseDelay: 2 * time.Second,
		MaxDelay:  10 * time.Second,
	})

	// HTTP transport
	r := gin.New()
	httpapi.RegisterRoutes(r, db, provider, catalog, respCache, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	// Periodic cache sweep; Get already drops stale entries lazily, the
	// ticker just bounds memory between requests.
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				respCache.Cleanup()
			}
		}
	}()

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("env", cfg.Environment).
			Str("model", cfg.ChatModel).
			Str("version", version).
			Msg("gateway listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received, draining")

	sctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("gateway stopped")
}
