package service

import (
	"github.com/MKhiriev/go-cloud-editor/internal/adapter"
	"github.com/MKhiriev/go-cloud-editor/internal/logger"
)

type ClientServices struct {
	WorkspaceService WorkspaceService
}

func NewClientServices(remote adapter.RemoteStore, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		WorkspaceService: NewWorkspaceService(remote, logger),
	}
}
