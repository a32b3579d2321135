package service

import (
	"context"

	"github.com/MKhiriev/go-cloud-editor/models"
)

type mockFileRepository struct {
	ListFilesFunc  func(ctx context.Context) ([]models.File, error)
	CreateFileFunc func(ctx context.Context, file models.File) (models.File, error)
	UpdateFileFunc func(ctx context.Context, update models.FileUpdate) (models.File, error)
	DeleteFileFunc func(ctx context.Context, id string) error
}

func (m *mockFileRepository) ListFiles(ctx context.Context) ([]models.File, error) {
	if m.ListFilesFunc == nil {
		return nil, nil
	}
	return m.ListFilesFunc(ctx)
}

func (m *mockFileRepository) CreateFile(ctx context.Context, file models.File) (models.File, error) {
	return m.CreateFileFunc(ctx, file)
}

func (m *mockFileRepository) UpdateFile(ctx context.Context, update models.FileUpdate) (models.File, error) {
	return m.UpdateFileFunc(ctx, update)
}

func (m *mockFileRepository) DeleteFile(ctx context.Context, id string) error {
	return m.DeleteFileFunc(ctx, id)
}

type mockFolderRepository struct {
	ListFoldersFunc  func(ctx context.Context) ([]models.Folder, error)
	GetFolderFunc    func(ctx context.Context, id string) (models.Folder, error)
	CreateFolderFunc func(ctx context.Context, folder models.Folder) (models.Folder, error)
	UpdateFolderFunc func(ctx context.Context, update models.FolderUpdate) (models.Folder, error)
	DeleteFolderFunc func(ctx context.Context, id string) error
}

func (m *mockFolderRepository) ListFolders(ctx context.Context) ([]models.Folder, error) {
	return m.ListFoldersFunc(ctx)
}

func (m *mockFolderRepository) GetFolder(ctx context.Context, id string) (models.Folder, error) {
	return m.GetFolderFunc(ctx, id)
}

func (m *mockFolderRepository) CreateFolder(ctx context.Context, folder models.Folder) (models.Folder, error) {
	return m.CreateFolderFunc(ctx, folder)
}

func (m *mockFolderRepository) UpdateFolder(ctx context.Context, update models.FolderUpdate) (models.Folder, error) {
	return m.UpdateFolderFunc(ctx, update)
}

func (m *mockFolderRepository) DeleteFolder(ctx context.Context, id string) error {
	return m.DeleteFolderFunc(ctx, id)
}

type fixedIDs struct{ id string }

func (f fixedIDs) Generate() string { return f.id }

func ptr(s string) *string { return &s }
