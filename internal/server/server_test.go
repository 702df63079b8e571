package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-bank-validator/internal/config"
	"github.com/MKhiriev/go-bank-validator/internal/handler"
	"github.com/MKhiriev/go-bank-validator/internal/logger"
	"github.com/MKhiriev/go-bank-validator/internal/service"
	"github.com/MKhiriev/go-bank-validator/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func newTestServer(t *testing.T, addr string) *server {
	t.Helper()

	cfg := config.StructuredConfig{
		App:    config.App{Version: "test"},
		Server: config.Server{HTTPAddress: addr, RequestTimeout: time.Second},
	}
	services, err := service.NewServices(cfg, models.DefaultRegionSet(), logger.Nop())
	require.NoError(t, err)

	handlers, err := handler.NewHandlers(services, cfg.Server, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg.Server, logger.Nop())
	require.NoError(t, err)
	return srv.(*server)
}

func TestNewServer_NoHandlers(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	assert.Nil(t, srv)
	require.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_RunAndGracefulShutdown(t *testing.T) {
	addr := freeAddress(t)
	srv := newTestServer(t, addr)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/api/version/")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_ListenError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	srv := newTestServer(t, l.Addr().String())

	err = srv.run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http server stopped")
}
