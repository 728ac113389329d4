// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging, panic recovery, metrics, CORS,
// security headers, and rate limiting, and mounts the versioned API with its
// three access tiers (authenticated, manager, master).
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/evalai/evalai-backend/internal/config"
	_ "github.com/evalai/evalai-backend/internal/docs"
	"github.com/evalai/evalai-backend/internal/domain"
	"github.com/evalai/evalai-backend/internal/extract"
	"github.com/evalai/evalai-backend/internal/http/handlers"
	"github.com/evalai/evalai-backend/internal/http/middleware"
	"github.com/evalai/evalai-backend/internal/repo"
	"github.com/evalai/evalai-backend/internal/services"
)

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. The question generator is injected so deployments without a Gemini
// API key (and tests) can run with a stub.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Structured logging
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics
//  7. Replay detection, then the rate limiter (per user/IP)
//  8. CORS, security headers, gzip
func RegisterRoutes(r *gin.Engine, db *gorm.DB, gen services.Generator, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured request logging
	r.Use(middleware.Logger())

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit. Generous because knowledge uploads and
	// backup imports arrive through the same pipe; the handlers apply
	// their own tighter caps.
	r.Use(limitBody(64 << 20))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) Idempotency-Key validation + replay detection, then the token-bucket
	// rate limiter. Replays of an already-recorded finish skip the limiter so
	// client retries cannot 429 themselves.
	secret := []byte(cfg.Auth.JWTSecret)
	r.Use(middleware.ReplayDetector(secret, func(ctx context.Context, userID, evaluationID, key string, now time.Time) bool {
		rec, err := repo.GetSubmissionKey(ctx, db, userID, evaluationID, key, now)
		return err == nil && rec != nil
	}))
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())
	r.Use(rl.Handler())

	// 8) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header (helps tests and simple health checks).
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderIdempotencyKey},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length", "Content-Disposition"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		// Echo ACAO with the request Origin when it is in the allowlist (in addition to gin-contrib/cors).
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderIdempotencyKey},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length", "Content-Disposition"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Compress JSON responses; PDF and metrics payloads are left alone.
	r.Use(gzip.Gzip(gzip.DefaultCompression,
		gzip.WithExcludedPaths([]string{"/metrics"}),
		gzip.WithExcludedExtensions([]string{".pdf"}),
	))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Interactive API docs (opt-in)
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: services ← record store
	store := repo.NewStore(db)
	authSvc := services.NewAuthService(store, cfg.Master)
	orgSvc := services.NewOrgService(store)
	knowSvc := services.NewKnowledgeService(store, extract.New())
	evalSvc := services.NewEvaluationService(store, gen)
	subSvc := services.NewSubmissionService(store, db, cfg.IdempotencyTTL)
	reportSvc := services.NewReportService(store)

	h := handlers.New(authSvc, orgSvc, knowSvc, evalSvc, subSvc, reportSvc, store, secret, cfg.Auth.TokenTTL)

	api := groupWithPrefix(r, cfg.APIBasePath)

	// Public
	api.POST("/auth/login", h.Login)

	// Any authenticated user
	authed := api.Group("", middleware.RequireAuth(secret))
	{
		authed.POST("/auth/logout", h.Logout)
		authed.GET("/auth/me", h.Me)

		authed.GET("/evaluations/available", h.AvailableEvaluations)
		authed.POST("/evaluations/:id/submissions", h.Submit)
		authed.GET("/submissions/mine", h.MySubmissions)
		authed.GET("/submissions/:id/report.pdf", h.SubmissionReport)
	}

	// Managers (and the master admin)
	manager := authed.Group("", middleware.RequireRole(domain.RoleManager, domain.RoleMasterAdmin))
	{
		manager.GET("/reports/sector", h.ReportSector)
	}

	// Master admin only
	master := authed.Group("", middleware.RequireRole(domain.RoleMasterAdmin))
	{
		master.GET("/companies", h.ListCompanies)
		master.POST("/companies", h.CreateCompany)
		master.DELETE("/companies/:id", h.DeleteCompany)

		master.GET("/sectors", h.ListSectors)
		master.POST("/sectors", h.CreateSector)
		master.DELETE("/sectors/:id", h.DeleteSector)

		master.GET("/roles", h.ListRoles)
		master.POST("/roles", h.CreateRole)
		master.DELETE("/roles/:id", h.DeleteRole)

		master.GET("/users", h.ListUsers)
		master.POST("/users", h.CreateUser)
		master.DELETE("/users/:id", h.DeleteUser)

		master.GET("/knowledge", h.ListKnowledge)
		master.POST("/knowledge", h.CreateKnowledge)
		master.DELETE("/knowledge/:id", h.DeleteKnowledge)

		master.POST("/evaluations/generate", h.GenerateEvaluation)
		master.POST("/evaluations", h.PublishEvaluation)
		master.GET("/evaluations", h.ListEvaluations)
		master.DELETE("/evaluations/:id", h.DeleteEvaluation)

		master.GET("/reports/overview", h.ReportOverview)

		master.GET("/backup/export", h.ExportBackup)
		master.POST("/backup/import", h.ImportBackup)
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
