package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jusunglee/chuvtranslit/internal/logger"
	"github.com/jusunglee/chuvtranslit/internal/web"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/lo"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
	slog.Info("exiting without error")
}

func mainE() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("translit-web")

	var (
		port           = fs.Int64Long("port", 3000, "HTTP server port")
		allowedOrigins = fs.StringLong("allowed-origins", "", "Comma-separated list of allowed CORS origins (empty allows all)")
		apiKey         = fs.StringLong("api-key", "", "Require this X-API-Key on translate routes")
		rateLimit      = fs.IntLong("rate-limit", 60, "Translate requests allowed per client IP per window")
		rateWindow     = fs.DurationLong("rate-window", time.Minute, "Rate limit window")
		batchWorkers   = fs.IntLong("batch-workers", 4, "Concurrent workers per batch request")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	if *rateLimit <= 0 {
		return errors.New("rate-limit must be positive")
	}
	if *rateWindow <= 0 {
		return errors.New("rate-window must be positive")
	}

	log := logger.New()
	ctx, cancel := context.WithCancelCause(context.Background())

	origins := lo.Compact(lo.Map(strings.Split(*allowedOrigins, ","), func(o string, _ int) string {
		return strings.TrimSpace(o)
	}))

	router := web.NewRouter(log, web.Config{
		AllowedOrigins: origins,
		APIKey:         *apiKey,
		RateLimit:      *rateLimit,
		RateWindow:     *rateWindow,
		BatchWorkers:   *batchWorkers,
	})
	go router.Limiter().Run(ctx, *rateWindow)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router.Handler())

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", *port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.InfoContext(ctx, "received signal, shutting down gracefully", "signal", sig)
		cancel(errors.New("signal received"))

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.ErrorContext(ctx, "server shutdown error", "error", err)
		}
	}()

	log.InfoContext(ctx, "starting web server", "port", *port, "origins", len(origins), "api_key", *apiKey != "")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
