package store

import (
	"context"

	"github.com/MKhiriev/go-cloud-editor/models"
)

// FileRepository persists rows of the "files" collection.
type FileRepository interface {
	ListFiles(ctx context.Context) ([]models.File, error)
	CreateFile(ctx context.Context, file models.File) (models.File, error)
	UpdateFile(ctx context.Context, update models.FileUpdate) (models.File, error)
	DeleteFile(ctx context.Context, id string) error
}

// FolderRepository persists rows of the "folders" collection.
type FolderRepository interface {
	ListFolders(ctx context.Context) ([]models.Folder, error)
	GetFolder(ctx context.Context, id string) (models.Folder, error)
	CreateFolder(ctx context.Context, folder models.Folder) (models.Folder, error)
	UpdateFolder(ctx context.Context, update models.FolderUpdate) (models.Folder, error)
	DeleteFolder(ctx context.Context, id string) error
}

// ErrorClassificator decides whether a failed statement may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
