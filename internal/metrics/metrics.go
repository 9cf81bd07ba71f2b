package metrics

import (
	"errors"

	"github.com/jusunglee/chuvtranslit/internal/transliteration"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Web server metrics.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "translit_http_requests_total",
		Help: "Total HTTP requests by route, method, and status code",
	}, []string{"route", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "translit_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"route", "method"})

	RateLimitHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "translit_rate_limit_hits_total",
		Help: "Total rate limit rejections by surface",
	}, []string{"surface"})
)

// Transliteration metrics, shared by every surface.
var (
	TranslationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "translit_translations_total",
		Help: "Translate calls by surface, direction, and result",
	}, []string{"surface", "direction", "result"})

	InputRunes = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "translit_input_runes",
		Help:    "Input length in code points",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	}, []string{"surface"})

	BatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "translit_batch_size",
		Help:    "Number of items per batch request",
		Buckets: []float64{1, 2, 5, 10, 25, 50, 100},
	})
)

// Bot metrics.
var (
	BotCommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "translit_bot_commands_total",
		Help: "Discord slash commands by name and result",
	}, []string{"command", "result"})
)

// Result labels for TranslationsTotal.
const (
	ResultOK          = "ok"
	ResultNoInput     = "no_input"
	ResultNoDirection = "no_direction"
)

// RecordTranslation counts one Translate call. Unknown directions are folded
// into a single label value to bound cardinality.
func RecordTranslation(surface, direction string, inputRunes int, err error) {
	result := ResultOK
	switch {
	case errors.Is(err, transliteration.ErrNoInput):
		result = ResultNoInput
	case errors.Is(err, transliteration.ErrNoDirection):
		result = ResultNoDirection
	}
	if d, perr := transliteration.ParseDirection(direction); perr == nil {
		direction = d.String()
	} else {
		direction = "none"
	}

	TranslationsTotal.WithLabelValues(surface, direction, result).Inc()
	InputRunes.WithLabelValues(surface).Observe(float64(inputRunes))
}
