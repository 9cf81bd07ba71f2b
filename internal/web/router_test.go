package web

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, cfg Config) http.Handler {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(log, cfg).Handler()
}

func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, r)
	req.RemoteAddr = "203.0.113.7:4242"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestTranslate(t *testing.T) {
	h := newTestHandler(t, Config{})

	rec := do(t, h, http.MethodPost, "/api/v1/translate", map[string]string{
		"text":      "Чӑваш чӗлхи",
		"direction": "Cyrillic → Latin",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[map[string]string](t, rec)
	assert.Equal(t, "Çovaş çölxi", got["output"])
	assert.Equal(t, "Cyrillic → Latin", got["direction"])
}

func TestTranslateAlias(t *testing.T) {
	h := newTestHandler(t, Config{})

	rec := do(t, h, http.MethodPost, "/api/v1/translate", map[string]string{
		"text":      "سالام؟",
		"direction": "ar-lat",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[map[string]string](t, rec)
	assert.Equal(t, "salam؟", got["output"])
	assert.Equal(t, "Arabic → Latin", got["direction"])
}

func TestTranslateEmptyOutputIsKept(t *testing.T) {
	h := newTestHandler(t, Config{})

	rec := do(t, h, http.MethodPost, "/api/v1/translate", map[string]string{
		"text":      "ъ",
		"direction": "cyr-lat",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[map[string]any](t, rec)
	assert.Contains(t, got, "output")
	assert.Equal(t, "", got["output"])
}

func TestTranslatePreconditions(t *testing.T) {
	h := newTestHandler(t, Config{})

	tests := []struct {
		name string
		body map[string]string
		want string
	}{
		{"no text", map[string]string{"direction": "cyr-lat"}, "no input provided"},
		{"no direction", map[string]string{"text": "салам"}, "no direction selected"},
		{"unknown direction", map[string]string{"text": "салам", "direction": "up"}, "no direction selected"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/v1/translate", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.want, decode[map[string]string](t, rec)["error"])
		})
	}
}

func TestTranslateInvalidJSON(t *testing.T) {
	h := newTestHandler(t, Config{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/translate", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBatch(t *testing.T) {
	h := newTestHandler(t, Config{})

	rec := do(t, h, http.MethodPost, "/api/v1/translate/batch", map[string]any{
		"items": []map[string]string{
			{"text": "салам", "direction": "cyr-lat"},
			{"text": "", "direction": "cyr-lat"},
			{"text": "kaş", "direction": "Latin → Cyrillic"},
			{"text": "kaş", "direction": "up"},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[struct {
		Results []struct {
			Direction string `json:"direction"`
			Output    string `json:"output"`
			Error     string `json:"error"`
		} `json:"results"`
	}](t, rec)
	require.Len(t, got.Results, 4)
	assert.Equal(t, "salam", got.Results[0].Output)
	assert.Equal(t, "Cyrillic → Latin", got.Results[0].Direction)
	assert.Equal(t, "no input provided", got.Results[1].Error)
	assert.Empty(t, got.Results[1].Direction)
	assert.Equal(t, "каш", got.Results[2].Output)
	assert.Equal(t, "no direction selected", got.Results[3].Error)
	assert.Empty(t, got.Results[3].Direction)
}

func TestBatchLimits(t *testing.T) {
	h := newTestHandler(t, Config{})

	rec := do(t, h, http.MethodPost, "/api/v1/translate/batch", map[string]any{"items": []any{}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	items := make([]map[string]string, 101)
	for i := range items {
		items[i] = map[string]string{"text": "а", "direction": "cyr-lat"}
	}
	rec = do(t, h, http.MethodPost, "/api/v1/translate/batch", map[string]any{"items": items})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDirections(t *testing.T) {
	h := newTestHandler(t, Config{})

	rec := do(t, h, http.MethodGet, "/api/v1/directions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "public, max-age=3600", rec.Header().Get("Cache-Control"))

	got := decode[struct {
		Data []struct {
			Label     string `json:"label"`
			Alias     string `json:"alias"`
			Algorithm string `json:"algorithm"`
			TableSize int    `json:"table_size"`
		} `json:"data"`
	}](t, rec)
	require.Len(t, got.Data, 6)
	assert.Equal(t, "Cyrillic → Latin", got.Data[0].Label)
	assert.Equal(t, "cyr-lat", got.Data[0].Alias)
	assert.Equal(t, "forward", got.Data[0].Algorithm)
	assert.Equal(t, 82, got.Data[0].TableSize)
	assert.Equal(t, "reverse", got.Data[5].Algorithm)
}

func TestTable(t *testing.T) {
	h := newTestHandler(t, Config{})

	rec := do(t, h, http.MethodGet, "/api/v1/tables?direction="+url.QueryEscape("Latin → Arabic"), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[struct {
		Direction string `json:"direction"`
		Algorithm string `json:"algorithm"`
		Rows      []struct {
			Source string `json:"source"`
			Target string `json:"target"`
		} `json:"rows"`
	}](t, rec)
	assert.Equal(t, "Latin → Arabic", got.Direction)
	assert.Equal(t, "reverse", got.Algorithm)
	require.Len(t, got.Rows, 27)
	assert.Equal(t, "a", got.Rows[0].Source)
	assert.Equal(t, "أ", got.Rows[0].Target)

	rec = do(t, h, http.MethodGet, "/api/v1/tables", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t, Config{})
	rec := do(t, h, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIKey(t *testing.T) {
	h := newTestHandler(t, Config{APIKey: "secret"})
	body := map[string]string{"text": "а", "direction": "cyr-lat"}

	rec := do(t, h, http.MethodPost, "/api/v1/translate", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/translate", bytes.NewReader(b))
	req.Header.Set("X-API-Key", "secret")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// reads stay open
	rec = do(t, h, http.MethodGet, "/api/v1/directions", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit(t *testing.T) {
	h := newTestHandler(t, Config{RateLimit: 2})
	body := map[string]string{"text": "а", "direction": "cyr-lat"}

	assert.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/api/v1/translate", body).Code)
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/api/v1/translate", body).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(t, h, http.MethodPost, "/api/v1/translate", body).Code)
}

func TestDefaultRateWindowCleanup(t *testing.T) {
	router := NewRouter(slog.New(slog.NewTextHandler(io.Discard, nil)), Config{RateLimit: 10})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NotPanics(t, func() { router.Limiter().Run(ctx, 0) })
}

func TestCORSPreflight(t *testing.T) {
	h := newTestHandler(t, Config{AllowedOrigins: []string{"https://example.org"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/translate", nil)
	req.Header.Set("Origin", "https://example.org")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://example.org", rec.Header().Get("Access-Control-Allow-Origin"))
}
