// internal/common/metrics/server.go
package metrics

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"suada-mcp/internal/common/logger"
)

// Server exposes the prometheus registry on a side port. The MCP stdio
// channel never carries metrics.
type Server struct {
	httpServer *http.Server
	listener   net.Listener
	logger     logger.Logger
}

// NewServer binds the listener immediately so a port conflict surfaces at
// startup rather than on the first scrape.
func NewServer(port int, log logger.Logger) (*Server, error) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("failed to bind metrics listener: %w", err)
	}

	return &Server{
		httpServer: &http.Server{Handler: mux},
		listener:   listener,
		logger:     log.With(map[string]interface{}{"component": "metrics"}),
	}, nil
}

// Addr returns the bound listener address.
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Start serves in the background until Shutdown is called.
func (s *Server) Start() {
	s.logger.Info("metrics listener starting", map[string]interface{}{
		"addr": s.Addr(),
	})
	go func() {
		if err := s.httpServer.Serve(s.listener); err != nil && err != http.ErrServerClosed {
			s.logger.WithError(err).Error("metrics listener stopped", nil)
		}
	}()
}

// Shutdown drains in-flight scrapes and closes the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
