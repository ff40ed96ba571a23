package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"boxful-client/internal/api/handlers"

	"github.com/rs/zerolog/log"
)

// ReportServer serves the history exports on a local address until the
// first export has been delivered.
type ReportServer struct {
	srv    *http.Server
	ln     net.Listener
	served chan struct{}
	once   sync.Once
}

func NewReportServer(addr string, h handlers.History) (*ReportServer, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("report server: listen %q: %w", addr, err)
	}

	s := &ReportServer{ln: ln, served: make(chan struct{})}
	s.srv = &http.Server{
		Handler:           NewRouter(h, s.markServed),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s, nil
}

// URL is the base address the server listens on.
func (s *ReportServer) URL() string {
	return "http://" + s.ln.Addr().String()
}

func (s *ReportServer) markServed() {
	s.once.Do(func() { close(s.served) })
}

// Serve blocks until an export has been served or ctx ends, then shuts the
// server down. It returns nil after a served export and ctx.Err() otherwise.
func (s *ReportServer) Serve(ctx context.Context) error {
	log.Info().Str("url", s.URL()).Msg("report server listening")

	errc := make(chan error, 1)
	go func() { errc <- s.srv.Serve(s.ln) }()

	var result error
	select {
	case <-s.served:
	case <-ctx.Done():
		result = ctx.Err()
	case err := <-errc:
		return fmt.Errorf("report server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("report server: shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("report server: %w", err)
	}

	log.Info().Msg("report server stopped")
	return result
}
