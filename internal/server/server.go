package server

import (
	"github.com/MKhiriev/go-form-sync/internal/config"
	"github.com/MKhiriev/go-form-sync/internal/logger"

	"github.com/go-chi/chi/v5"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer creates the trigger server for the given router. It returns an
// error when the configuration gives no address to listen on.
func NewServer(router *chi.Mux, cfg config.ClientTrigger, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating trigger server...")
	srv := new(server)

	if cfg.Address != "" {
		srv.httpServer = newHTTPServer(router, cfg, logger)
	}

	if srv.httpServer == nil {
		return nil, errNoServersAreCreated
	}

	srv.logger = logger

	return srv, nil
}

func (s *server) RunServer() {
	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("launching HTTP trigger server")
	s.httpServer.RunServer()
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
	s.logger.Info().Msg("trigger server shut down gracefully")
}
