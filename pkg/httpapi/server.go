package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/cuemby/ledgerd/pkg/metrics"
)

// Server is the daemon's HTTP surface: /healthz, /readyz, /livez, and
// /metrics.
type Server struct {
	mux *http.ServeMux
	srv *http.Server
}

// New builds a Server bound to addr. Call Start to begin serving.
func New(addr string) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", metrics.HealthHandler())
	mux.HandleFunc("/readyz", metrics.ReadyHandler())
	mux.HandleFunc("/livez", metrics.LivenessHandler())
	mux.Handle("/metrics", metrics.Handler())

	return &Server{
		mux: mux,
		srv: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Start blocks serving until the server errors or is shut down; callers
// typically run it with go server.Start().
func (s *Server) Start() error {
	err := s.srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Handler exposes the underlying mux, e.g. for httptest-driven tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}
