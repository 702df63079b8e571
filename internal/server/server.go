package server

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-bank-validator/internal/config"
	"github.com/MKhiriev/go-bank-validator/internal/handler"
	"github.com/MKhiriev/go-bank-validator/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}

// run serves until ctx is done or the listener fails, then shuts down.
func (s *server) run(ctx context.Context) error {
	if s.httpServer == nil {
		return errors.New("no servers to run")
	}

	serveErr := make(chan error, 1)

	s.logger.Info().Str("address", s.httpServer.Addr()).Msg("launching HTTP server")
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()

	select {
	case <-ctx.Done():
		s.Shutdown()
		<-serveErr
		s.logger.Info().Msg("server shutdown gracefully")
		return nil
	case err := <-serveErr:
		return fmt.Errorf("http server stopped: %w", err)
	}
}
