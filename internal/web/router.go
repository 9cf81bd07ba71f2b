package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jusunglee/chuvtranslit/internal/health"
	"github.com/jusunglee/chuvtranslit/internal/ratelimit"
	"github.com/jusunglee/chuvtranslit/internal/web/handlers"
	"github.com/jusunglee/chuvtranslit/internal/web/middleware"
)

const maxBodyBytes = 1 << 20

type Config struct {
	AllowedOrigins []string
	APIKey         string
	RateLimit      int
	RateWindow     time.Duration
	BatchWorkers   int
}

type Router struct {
	log     *slog.Logger
	config  Config
	limiter *ratelimit.Limiter
}

func NewRouter(log *slog.Logger, config Config) *Router {
	if config.RateLimit <= 0 {
		config.RateLimit = 60
	}
	if config.RateWindow <= 0 {
		config.RateWindow = time.Minute
	}
	if config.BatchWorkers <= 0 {
		config.BatchWorkers = 4
	}
	return &Router{
		log:     log,
		config:  config,
		limiter: ratelimit.New(config.RateLimit, config.RateWindow),
	}
}

// Limiter exposes the rate limiter so the caller can run its cleanup loop.
func (r *Router) Limiter() *ratelimit.Limiter {
	return r.limiter
}

func (r *Router) Handler() http.Handler {
	mux := http.NewServeMux()

	translationHandler := handlers.NewTranslationHandler(r.log, r.config.BatchWorkers)

	mux.Handle("GET /health", http.HandlerFunc(health.Handle))

	mux.Handle("GET /api/v1/directions",
		middleware.Chain(
			http.HandlerFunc(translationHandler.Directions),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.CacheControl("public, max-age=3600"),
		),
	)

	mux.Handle("GET /api/v1/tables",
		middleware.Chain(
			http.HandlerFunc(translationHandler.Table),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.CacheControl("public, max-age=3600"),
		),
	)

	mux.Handle("POST /api/v1/translate",
		middleware.Chain(
			http.HandlerFunc(translationHandler.Translate),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.APIKeyAuth(r.config.APIKey),
			middleware.RateLimit(r.limiter),
			middleware.MaxBody(maxBodyBytes),
		),
	)

	mux.Handle("POST /api/v1/translate/batch",
		middleware.Chain(
			http.HandlerFunc(translationHandler.Batch),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.APIKeyAuth(r.config.APIKey),
			middleware.RateLimit(r.limiter),
			middleware.MaxBody(maxBodyBytes),
		),
	)

	return middleware.CORS(r.config.AllowedOrigins)(mux)
}
