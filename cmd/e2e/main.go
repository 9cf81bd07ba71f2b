// e2e smoke-tests a running web API: health, direction listing, one known
// transliteration per direction, the diagnostics, and a batch.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/jusunglee/chuvtranslit/internal/logger"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/samber/lo"
)

type sample struct {
	direction string
	input     string
	want      string
}

var samples = []sample{
	{"Cyrillic → Latin", "Чӑваш чӗлхи, салам?", "Çovaş çölxi, salam?"},
	{"Cyrillic → Arabic", "салам", "سالام"},
	{"Latin → Cyrillic", "salam ekerçi", "салам экэрчи"},
	{"Arabic → Cyrillic", "سالام؟", "САЛАМ?"},
	{"Arabic → Latin", "سالام؟", "salam؟"},
	{"Latin → Arabic", "salam", "صألأم"},
}

func main() {
	if err := run(); err != nil {
		slog.Error("E2E FAILED", "error", err)
		os.Exit(1)
	}
	slog.Info("E2E PASSED")
}

func run() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("translit-e2e")
	var (
		baseURL = fs.StringLong("e2e-base-url", "http://localhost:3000", "Base URL of the web API under test")
		apiKey  = fs.StringLong("api-key", "", "X-API-Key sent on translate routes")
		timeout = fs.DurationLong("timeout", 30*time.Second, "Overall timeout")
	)
	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	log := logger.New()
	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	c := &client{
		base:   strings.TrimRight(*baseURL, "/"),
		apiKey: *apiKey,
		http:   &http.Client{Timeout: 10 * time.Second},
	}

	log.Info("Phase 1: health and directions", "base_url", c.base)
	var health struct {
		Status     string `json:"status"`
		Directions int    `json:"directions"`
	}
	if err := c.get(ctx, "/health", &health); err != nil {
		return fmt.Errorf("health: %w", err)
	}
	if health.Status != "ok" || health.Directions != len(samples) {
		return fmt.Errorf("unexpected health %+v", health)
	}

	var directions struct {
		Data []direction `json:"data"`
	}
	if err := c.get(ctx, "/api/v1/directions", &directions); err != nil {
		return fmt.Errorf("directions: %w", err)
	}
	labels := lo.Map(directions.Data, func(d direction, _ int) string { return d.Label })
	wantLabels := lo.Map(samples, func(s sample, _ int) string { return s.direction })
	if !slices.Equal(labels, wantLabels) {
		return fmt.Errorf("directions = %v, want %v", labels, wantLabels)
	}

	log.Info("Phase 2: one transliteration per direction")
	for _, s := range samples {
		var resp translateResponse
		status, err := c.post(ctx, "/api/v1/translate", translateRequest{Text: s.input, Direction: s.direction}, &resp)
		if err != nil {
			return fmt.Errorf("translate %s: %w", s.direction, err)
		}
		if status != http.StatusOK || resp.Output != s.want {
			return fmt.Errorf("translate %s: status %d output %q, want %q", s.direction, status, resp.Output, s.want)
		}
		log.Info("ok", "direction", s.direction, "output", resp.Output)
	}

	log.Info("Phase 3: diagnostics")
	checks := []struct {
		req  translateRequest
		want string
	}{
		{translateRequest{Direction: samples[0].direction}, "no input provided"},
		{translateRequest{Text: "салам"}, "no direction selected"},
	}
	for _, check := range checks {
		var resp translateResponse
		status, err := c.post(ctx, "/api/v1/translate", check.req, &resp)
		if err != nil {
			return fmt.Errorf("diagnostic %q: %w", check.want, err)
		}
		if status != http.StatusBadRequest || resp.Error != check.want {
			return fmt.Errorf("diagnostic: status %d error %q, want %q", status, resp.Error, check.want)
		}
	}

	log.Info("Phase 4: batch")
	items := lo.Map(samples, func(s sample, _ int) translateRequest {
		return translateRequest{Text: s.input, Direction: s.direction}
	})
	var batch struct {
		Results []translateResponse `json:"results"`
	}
	if _, err := c.post(ctx, "/api/v1/translate/batch", map[string]any{"items": items}, &batch); err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	if len(batch.Results) != len(samples) {
		return fmt.Errorf("batch returned %d results, want %d", len(batch.Results), len(samples))
	}
	for i, s := range samples {
		if batch.Results[i].Output != s.want {
			return fmt.Errorf("batch item %d: %q, want %q", i, batch.Results[i].Output, s.want)
		}
	}

	return nil
}

type direction struct {
	Label string `json:"label"`
}

type translateRequest struct {
	Text      string `json:"text"`
	Direction string `json:"direction"`
}

type translateResponse struct {
	Direction string `json:"direction"`
	Output    string `json:"output"`
	Error     string `json:"error"`
}

type client struct {
	base   string
	apiKey string
	http   *http.Client
}

func (c *client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	status, err := c.do(req, out)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("GET %s: status %d", path, status)
	}
	return nil
}

func (c *client) post(ctx context.Context, path string, body, out any) (int, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(b))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}
	return c.do(req, out)
}

func (c *client) do(req *http.Request, out any) (int, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("reading body: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return resp.StatusCode, errors.Join(fmt.Errorf("decoding %s", req.URL.Path), err)
	}
	return resp.StatusCode, nil
}
