package service

import (
	"fmt"

	"github.com/MKhiriev/go-cloud-editor/internal/config"
	"github.com/MKhiriev/go-cloud-editor/internal/logger"
	"github.com/MKhiriev/go-cloud-editor/internal/store"
	"github.com/MKhiriev/go-cloud-editor/internal/utils"
)

type Services struct {
	FileService    FileService
	FolderService  FolderService
	TreeService    TreeService
	AppInfoService AppInfoService
}

// NewServices wires the server services over repos. File and folder services
// are wrapped with input validation.
func NewServices(repos *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	ids := utils.NewUUIDGenerator()
	files := NewFileService(repos.FileRepository, repos.FolderRepository, ids, logger)
	folders := NewFolderService(repos.FolderRepository, repos.FileRepository, ids, logger)

	return &Services{
		FileService:    NewFileValidationService().Wrap(files),
		FolderService:  NewFolderValidationService().Wrap(folders),
		TreeService:    NewTreeService(repos.FileRepository, repos.FolderRepository, logger),
		AppInfoService: appInfo,
	}, nil
}
