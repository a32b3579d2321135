package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-cloud-editor/internal/adapter"
	"github.com/MKhiriev/go-cloud-editor/internal/logger"
	"github.com/MKhiriev/go-cloud-editor/internal/search"
	"github.com/MKhiriev/go-cloud-editor/internal/tree"
	"github.com/MKhiriev/go-cloud-editor/internal/validators"
	"github.com/MKhiriev/go-cloud-editor/models"
)

type workspaceService struct {
	remote adapter.RemoteStore

	mu      sync.RWMutex
	files   []models.File
	folders []models.Folder
	forest  models.Forest

	logger *logger.Logger
}

func NewWorkspaceService(remote adapter.RemoteStore, logger *logger.Logger) WorkspaceService {
	return &workspaceService{remote: remote, logger: logger}
}

func (s *workspaceService) Reload(ctx context.Context) error {
	files, err := s.remote.ListFiles(ctx)
	if err != nil {
		return fmt.Errorf("list files: %w", mapAdapterError(err))
	}
	folders, err := s.remote.ListFolders(ctx)
	if err != nil {
		return fmt.Errorf("list folders: %w", mapAdapterError(err))
	}

	forest := tree.Build(files, folders)
	if len(forest.Broken) > 0 {
		s.logger.Warn().
			Str("func", "workspaceService.Reload").
			Strs("broken", forest.Broken).
			Msg("folder parent cycles promoted to roots")
	}

	s.mu.Lock()
	s.files, s.folders, s.forest = files, folders, forest
	s.mu.Unlock()

	s.logger.Debug().
		Str("func", "workspaceService.Reload").
		Int("files", len(files)).
		Int("folders", len(folders)).
		Msg("workspace reloaded")
	return nil
}

func (s *workspaceService) Snapshot() Workspace {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Workspace{
		Files:   append([]models.File(nil), s.files...),
		Folders: append([]models.Folder(nil), s.folders...),
		Forest:  s.forest,
	}
}

func (s *workspaceService) File(id string) (models.File, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, f := range s.files {
		if f.ID == id {
			return f, true
		}
	}
	return models.File{}, false
}

func (s *workspaceService) folder(id string) (models.Folder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, f := range tree.Folders(s.files, s.folders) {
		if f.ID == id {
			return f, true
		}
	}
	return models.Folder{}, false
}

// isFolderRow reports whether id is a folder stored as a file row. Such
// folders are renamed, moved and deleted through the file endpoints.
func (s *workspaceService) isFolderRow(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, f := range s.files {
		if f.ID == id {
			return f.IsFolder
		}
	}
	return false
}

// checkName validates name and rejects it when a sibling in parentID already
// uses it. excludeID skips the item being renamed or moved.
func (s *workspaceService) checkName(name string, parentID *string, excludeID string) (string, error) {
	if err := validators.ValidateName(name); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidName, err)
	}
	name = strings.TrimSpace(name)

	s.mu.RLock()
	taken := tree.NameTaken(s.files, s.folders, parentID, name, excludeID)
	s.mu.RUnlock()

	if taken {
		return "", fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	return name, nil
}

func (s *workspaceService) checkParent(parentID *string) error {
	if parentID == nil {
		return nil
	}
	if _, ok := s.folder(*parentID); !ok {
		return fmt.Errorf("%w: %s", tree.ErrParentNotFound, *parentID)
	}
	return nil
}

func (s *workspaceService) CreateFile(ctx context.Context, name string, parentID *string) (models.File, error) {
	if err := s.checkParent(parentID); err != nil {
		return models.File{}, err
	}
	name, err := s.checkName(name, parentID, "")
	if err != nil {
		return models.File{}, err
	}

	code, question := models.DefaultFileCode, ""
	created, err := s.remote.CreateFile(ctx, models.CreateFileRequest{
		Name:     name,
		Code:     &code,
		Question: &question,
		ParentID: parentID,
	})
	if err != nil {
		return models.File{}, fmt.Errorf("create file: %w", mapAdapterError(err))
	}

	return created, s.Reload(ctx)
}

func (s *workspaceService) CreateFolder(ctx context.Context, name string, parentID *string) (models.Folder, error) {
	if err := s.checkParent(parentID); err != nil {
		return models.Folder{}, err
	}
	name, err := s.checkName(name, parentID, "")
	if err != nil {
		return models.Folder{}, err
	}

	created, err := s.remote.CreateFolder(ctx, models.CreateFolderRequest{Name: name, ParentID: parentID})
	if err != nil {
		return models.Folder{}, fmt.Errorf("create folder: %w", mapAdapterError(err))
	}

	return created, s.Reload(ctx)
}

func (s *workspaceService) RenameFile(ctx context.Context, id, name string) (models.File, error) {
	file, ok := s.File(id)
	if !ok {
		return models.File{}, ErrFileNotFound
	}
	name, err := s.checkName(name, file.ParentID, id)
	if err != nil {
		return models.File{}, err
	}

	updated, err := s.remote.UpdateFile(ctx, models.FileUpdate{ID: id, Name: &name})
	if err != nil {
		return models.File{}, fmt.Errorf("rename file: %w", mapAdapterError(err))
	}

	return updated, s.Reload(ctx)
}

func (s *workspaceService) RenameFolder(ctx context.Context, id, name string) (models.Folder, error) {
	folder, ok := s.folder(id)
	if !ok {
		return models.Folder{}, ErrFolderNotFound
	}
	name, err := s.checkName(name, folder.ParentID, id)
	if err != nil {
		return models.Folder{}, err
	}

	if s.isFolderRow(id) {
		row, err := s.remote.UpdateFile(ctx, models.FileUpdate{ID: id, Name: &name})
		if err != nil {
			return models.Folder{}, fmt.Errorf("rename folder: %w", mapAdapterError(err))
		}
		return row.AsFolder(), s.Reload(ctx)
	}

	updated, err := s.remote.UpdateFolder(ctx, models.FolderUpdate{ID: id, Name: &name})
	if err != nil {
		return models.Folder{}, fmt.Errorf("rename folder: %w", mapAdapterError(err))
	}

	return updated, s.Reload(ctx)
}

func (s *workspaceService) DeleteFile(ctx context.Context, id string) error {
	if err := s.remote.DeleteFile(ctx, id); err != nil {
		return fmt.Errorf("delete file: %w", mapAdapterError(err))
	}
	return s.Reload(ctx)
}

// DeleteFolder removes the folder only. Its children become roots.
func (s *workspaceService) DeleteFolder(ctx context.Context, id string) error {
	remove := s.remote.DeleteFolder
	if s.isFolderRow(id) {
		remove = s.remote.DeleteFile
	}
	if err := remove(ctx, id); err != nil {
		return fmt.Errorf("delete folder: %w", mapAdapterError(err))
	}
	return s.Reload(ctx)
}

func (s *workspaceService) MoveFile(ctx context.Context, id string, parentID *string) (models.File, error) {
	file, ok := s.File(id)
	if !ok {
		return models.File{}, ErrFileNotFound
	}
	if err := s.checkParent(parentID); err != nil {
		return models.File{}, err
	}
	if _, err := s.checkName(file.Name, parentID, id); err != nil {
		return models.File{}, err
	}

	updated, err := s.remote.UpdateFile(ctx, moveFileUpdate(id, parentID))
	if err != nil {
		return models.File{}, fmt.Errorf("move file: %w", mapAdapterError(err))
	}

	return updated, s.Reload(ctx)
}

func (s *workspaceService) MoveFolder(ctx context.Context, id string, parentID *string) (models.Folder, error) {
	folder, ok := s.folder(id)
	if !ok {
		return models.Folder{}, ErrFolderNotFound
	}

	s.mu.RLock()
	err := tree.ValidateParent(tree.Folders(s.files, s.folders), id, parentID)
	s.mu.RUnlock()
	if err != nil {
		return models.Folder{}, err
	}
	if _, err = s.checkName(folder.Name, parentID, id); err != nil {
		return models.Folder{}, err
	}

	if s.isFolderRow(id) {
		row, err := s.remote.UpdateFile(ctx, moveFileUpdate(id, parentID))
		if err != nil {
			return models.Folder{}, fmt.Errorf("move folder: %w", mapAdapterError(err))
		}
		return row.AsFolder(), s.Reload(ctx)
	}

	update := models.FolderUpdate{ID: id, ParentID: parentID, MoveToRoot: parentID == nil}
	updated, err := s.remote.UpdateFolder(ctx, update)
	if err != nil {
		return models.Folder{}, fmt.Errorf("move folder: %w", mapAdapterError(err))
	}

	return updated, s.Reload(ctx)
}

func moveFileUpdate(id string, parentID *string) models.FileUpdate {
	return models.FileUpdate{ID: id, ParentID: parentID, MoveToRoot: parentID == nil}
}

// UpdateFile sends update as is and replaces the mirrored row with the
// stored one. No reload: a save touches a single row.
func (s *workspaceService) UpdateFile(ctx context.Context, update models.FileUpdate) (models.File, error) {
	updated, err := s.remote.UpdateFile(ctx, update)
	if err != nil {
		return models.File{}, fmt.Errorf("save file: %w", mapAdapterError(err))
	}

	s.mu.Lock()
	for i := range s.files {
		if s.files[i].ID == updated.ID {
			s.files[i] = updated
			break
		}
	}
	s.forest = tree.Build(s.files, s.folders)
	s.mu.Unlock()

	return updated, nil
}

func (s *workspaceService) Search(query string, limit int) []search.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return search.Files(s.files, query, limit)
}

func (s *workspaceService) ServerVersion(ctx context.Context) (string, error) {
	version, err := s.remote.Version(ctx)
	if err != nil {
		return "", fmt.Errorf("get server version: %w", mapAdapterError(err))
	}
	return version, nil
}
