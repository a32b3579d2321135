package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-cloud-editor/internal/config"
	"github.com/MKhiriev/go-cloud-editor/internal/handler"
	"github.com/MKhiriev/go-cloud-editor/internal/logger"
	"github.com/MKhiriev/go-cloud-editor/internal/service"
)

func newHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()

	h, err := handler.NewHandlers(&service.Services{}, config.StructuredConfig{Server: cfg}, logger.Nop())
	require.NoError(t, err)
	return h
}

func TestNewServer_NoServers(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestNewServer_InvalidGRPCAddress(t *testing.T) {
	cfg := config.Server{GRPCAddress: "not-an-address"}

	_, err := NewServer(newHandlers(t, cfg), cfg, logger.Nop())

	assert.Error(t, err)
}

func TestServer_RunServesHealthAndStopsOnCancel(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"}
	created, err := NewServer(newHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)
	srv := created.(*server)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.run(ctx)
		close(done)
	}()

	conn, err := grpc.NewClient(srv.gRPCServer.gRPCNetListener.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	checkCtx, checkCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer checkCancel()
	resp, err := healthpb.NewHealthClient(conn).Check(checkCtx, &healthpb.HealthCheckRequest{}, grpc.WaitForReady(true))
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestHTTPServer_ShutdownBeforeRun(t *testing.T) {
	s := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())

	assert.NotPanics(t, s.Shutdown)
}
