package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-cloud-editor/internal/logger"
	"github.com/MKhiriev/go-cloud-editor/internal/service"
)

// WorkspaceServiceName is the health-checked service name for the files
// and folders store. The empty name reports the server as a whole.
const WorkspaceServiceName = "editor.Workspace"

// Handler is the root gRPC transport handler. It serves
// grpc.health.v1.Health and keeps the workspace status in sync with the
// store through Probe.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(WorkspaceServiceName, healthpb.HealthCheckResponse_SERVING)

	return &Handler{
		services: services,
		health:   hs,
		logger:   logger,
	}
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Probe lists the folders and marks the workspace NOT_SERVING when the store
// cannot answer. It returns the store error so that callers can log it.
func (h *Handler) Probe(ctx context.Context) error {
	if _, err := h.services.FolderService.List(ctx); err != nil {
		h.health.SetServingStatus(WorkspaceServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
		return err
	}

	h.health.SetServingStatus(WorkspaceServiceName, healthpb.HealthCheckResponse_SERVING)
	return nil
}

// Shutdown flips every status to NOT_SERVING so that watchers see the
// server going away.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
