package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"github.com/jusunglee/chuvtranslit/internal/metrics"
	"github.com/jusunglee/chuvtranslit/internal/transliteration"
	"github.com/samber/lo"
)

const (
	surface      = "web"
	maxBatchSize = 100
)

type TranslationHandler struct {
	log          *slog.Logger
	batchWorkers int
}

func NewTranslationHandler(log *slog.Logger, batchWorkers int) *TranslationHandler {
	return &TranslationHandler{log: log, batchWorkers: batchWorkers}
}

type directionResponse struct {
	Label     string                    `json:"label"`
	Alias     string                    `json:"alias"`
	Algorithm transliteration.Algorithm `json:"algorithm"`
	TableSize int                       `json:"table_size"`
}

type tableResponse struct {
	Direction string                `json:"direction"`
	Algorithm string                `json:"algorithm"`
	Rows      []transliteration.Row `json:"rows"`
}

type translateRequest struct {
	Text      string `json:"text"`
	Direction string `json:"direction"`
}

type translateResponse struct {
	Direction string `json:"direction,omitempty"`
	Output    string `json:"output"`
	Error     string `json:"error,omitempty"`
}

type batchRequest struct {
	Items []translateRequest `json:"items"`
}

type batchResponse struct {
	Results []translateResponse `json:"results"`
}

func (h *TranslationHandler) Directions(w http.ResponseWriter, r *http.Request) {
	aliases := transliteration.Aliases()
	data := lo.Map(transliteration.Directions(), func(d transliteration.Direction, _ int) directionResponse {
		return directionResponse{
			Label:     d.String(),
			Alias:     aliases[d],
			Algorithm: d.Algorithm(),
			TableSize: d.TableSize(),
		}
	})
	writeJSON(w, http.StatusOK, map[string]any{"data": data})
}

// Table serves the rows bound to a direction. Labels contain spaces and
// arrows, so the direction comes from ?direction= and accepts aliases.
func (h *TranslationHandler) Table(w http.ResponseWriter, r *http.Request) {
	d, err := transliteration.ParseDirection(r.URL.Query().Get("direction"))
	if err != nil {
		writeError(w, http.StatusBadRequest, transliteration.ErrNoDirection.Error())
		return
	}
	writeJSON(w, http.StatusOK, tableResponse{
		Direction: d.String(),
		Algorithm: string(d.Algorithm()),
		Rows:      d.Rows(),
	})
}

func (h *TranslationHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	resp := translateOne(req.Text, req.Direction)
	if resp.Error != "" {
		writeJSON(w, http.StatusBadRequest, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *TranslationHandler) Batch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "items are required")
		return
	}
	if len(req.Items) > maxBatchSize {
		writeError(w, http.StatusBadRequest, "too many items")
		return
	}
	metrics.BatchSize.Observe(float64(len(req.Items)))

	reqs := lo.Map(req.Items, func(it translateRequest, _ int) transliteration.Request {
		return transliteration.Request{Text: it.Text, Direction: it.Direction}
	})
	results, err := transliteration.TranslateBatch(r.Context(), reqs, h.batchWorkers)
	if err != nil {
		h.log.WarnContext(r.Context(), "batch aborted", "error", err, "items", len(reqs))
		writeError(w, http.StatusServiceUnavailable, "request canceled")
		return
	}

	out := make([]translateResponse, len(results))
	for i, res := range results {
		metrics.RecordTranslation(surface, reqs[i].Direction, utf8.RuneCountInString(reqs[i].Text), res.Err)
		out[i] = toResponse(res.Direction, res.Output, res.Err)
	}
	writeJSON(w, http.StatusOK, batchResponse{Results: out})
}

func translateOne(text, label string) translateResponse {
	d, err := transliteration.Resolve(text, label)
	metrics.RecordTranslation(surface, label, utf8.RuneCountInString(text), err)
	if err != nil {
		return toResponse("", "", err)
	}
	return toResponse(d, d.Apply(text), nil)
}

// toResponse reports precondition failures with the bare sentinel message.
func toResponse(d transliteration.Direction, output string, err error) translateResponse {
	if errors.Is(err, transliteration.ErrNoInput) {
		return translateResponse{Error: transliteration.ErrNoInput.Error()}
	}
	if err != nil {
		return translateResponse{Error: transliteration.ErrNoDirection.Error()}
	}
	return translateResponse{Direction: d.String(), Output: output}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
