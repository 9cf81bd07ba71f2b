package health

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/jusunglee/chuvtranslit/internal/transliteration"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type status struct {
	Status     string `json:"status"`
	Directions int    `json:"directions"`
}

// Handle reports ok along with the number of directions the tables serve.
func Handle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(status{
		Status:     "ok",
		Directions: len(transliteration.Directions()),
	})
}

// Server is a small side server for processes without their own HTTP
// surface. It serves /health and /metrics.
type Server struct {
	httpServer *http.Server
}

func New(port int) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", Handle)
	mux.Handle("GET /metrics", promhttp.Handler())
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

func (s *Server) Start() error {
	l, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("health server: %w", err)
	}
	return s.serve(l)
}

func (s *Server) serve(l net.Listener) error {
	if err := s.httpServer.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("health server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
