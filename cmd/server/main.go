// Command server runs the EvalAI backend HTTP API.
//
// Configuration is environment-driven (optionally via .env); see
// internal/config for every knob and its default.
//
//	@title						EvalAI Backend API
//	@version					1.0
//	@description				Corporate training evaluation backend: knowledge upload, AI-drafted exams, submissions, and reporting.
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the JWT.
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

	"github.com/evalai/evalai-backend/internal/ai"
	"github.com/evalai/evalai-backend/internal/config"
	"github.com/evalai/evalai-backend/internal/domain"
	httpapi "github.com/evalai/evalai-backend/internal/http"
	"github.com/evalai/evalai-backend/internal/observability"
	"github.com/evalai/evalai-backend/internal/repo"
	"github.com/evalai/evalai-backend/internal/services"
	"github.com/evalai/evalai-backend/internal/sysutil"
)

// version is stamped at build time via -ldflags.
var version = "dev"

// unavailableGenerator stands in when no Gemini API key is configured. Every
// generation attempt fails with a clear error instead of a transport panic.
type unavailableGenerator struct{}

func (unavailableGenerator) Generate(context.Context, string, string, int, string) ([]domain.Question, error) {
	return nil, errors.New("question generation is not configured (GEMINI_API_KEY is empty)")
}

func main() {
	// Load .env if present; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	sysutil.SetLogLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}
	defer func() {
		if err := shutdownOTel(context.Background()); err != nil {
			log.Warn().Err(err).Msg("otel shutdown")
		}
	}()

	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database")
	}
	if cfg.OTEL.Enabled {
		if err := repo.EnableTracing(db); err != nil {
			log.Warn().Err(err).Msg("gorm tracing plugin")
		}
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	var gen services.Generator
	if cfg.Gemini.APIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is empty; evaluation drafting is disabled")
		gen = unavailableGenerator{}
	} else {
		g, err := ai.NewGeminiGenerator(ctx, cfg.Gemini)
		if err != nil {
			log.Fatal().Err(err).Msg("gemini client")
		}
		gen = g
	}

	r := gin.New()
	httpapi.RegisterRoutes(r, db, gen, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("version", version).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
