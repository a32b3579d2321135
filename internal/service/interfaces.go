package service

import (
	"context"

	"github.com/MKhiriev/go-cloud-editor/models"
)

// FileService serves the "files" collection.
type FileService interface {
	List(ctx context.Context) ([]models.File, error)
	Create(ctx context.Context, req models.CreateFileRequest) (models.File, error)
	Update(ctx context.Context, update models.FileUpdate) (models.File, error)
	Delete(ctx context.Context, id string) error
}

// FolderService serves the "folders" collection. Update rejects moves that
// would make a folder its own ancestor.
type FolderService interface {
	List(ctx context.Context) ([]models.Folder, error)
	Create(ctx context.Context, req models.CreateFolderRequest) (models.Folder, error)
	Update(ctx context.Context, update models.FolderUpdate) (models.Folder, error)
	Delete(ctx context.Context, id string) error
}

// TreeService returns the nested view of both collections.
type TreeService interface {
	Tree(ctx context.Context) (models.Forest, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// FileServiceWrapper decorates a FileService, e.g. with validation.
type FileServiceWrapper interface {
	Wrap(FileService) FileService
}

// FolderServiceWrapper decorates a FolderService.
type FolderServiceWrapper interface {
	Wrap(FolderService) FolderService
}
