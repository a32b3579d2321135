package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-cloud-editor/internal/logger"
	"github.com/MKhiriev/go-cloud-editor/internal/store"
	"github.com/MKhiriev/go-cloud-editor/internal/tree"
	"github.com/MKhiriev/go-cloud-editor/models"
)

type folderService struct {
	folders store.FolderRepository
	files   store.FileRepository
	ids     IDGenerator

	logger *logger.Logger
}

func NewFolderService(folders store.FolderRepository, files store.FileRepository, ids IDGenerator, logger *logger.Logger) FolderService {
	return &folderService{
		folders: folders,
		files:   files,
		ids:     ids,
		logger:  logger,
	}
}

func (s *folderService) List(ctx context.Context) ([]models.Folder, error) {
	return s.folders.ListFolders(ctx)
}

func (s *folderService) Create(ctx context.Context, req models.CreateFolderRequest) (models.Folder, error) {
	if err := checkParentExists(ctx, s.folders, s.files, req.ParentID); err != nil {
		return models.Folder{}, err
	}

	created, err := s.folders.CreateFolder(ctx, models.Folder{
		ID:       s.ids.Generate(),
		Name:     strings.TrimSpace(req.Name),
		ParentID: req.ParentID,
	})
	if err != nil {
		return models.Folder{}, fmt.Errorf("error creating folder: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "folderService.Create").
		Str("folder_id", created.ID).
		Msg("folder created")
	return created, nil
}

// Update renames and/or moves a folder. A move is checked against every
// stored folder, file rows flagged as folders included, so that no folder
// becomes its own ancestor.
func (s *folderService) Update(ctx context.Context, update models.FolderUpdate) (models.Folder, error) {
	log := logger.FromContext(ctx)

	if update.ParentID != nil && !update.MoveToRoot {
		folders, err := s.folders.ListFolders(ctx)
		if err != nil {
			return models.Folder{}, fmt.Errorf("error listing folders: %w", err)
		}
		files, err := s.files.ListFiles(ctx)
		if err != nil {
			return models.Folder{}, fmt.Errorf("error listing files: %w", err)
		}
		if err = tree.ValidateParent(tree.Folders(files, folders), update.ID, update.ParentID); err != nil {
			log.Warn().
				Err(err).
				Str("func", "folderService.Update").
				Str("folder_id", update.ID).
				Str("parent_id", *update.ParentID).
				Msg("rejected folder move")
			return models.Folder{}, err
		}
	}
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		update.Name = &name
	}

	return s.folders.UpdateFolder(ctx, update)
}

// Delete removes only the folder row; children keep their parent_id and
// show up as roots.
func (s *folderService) Delete(ctx context.Context, id string) error {
	return s.folders.DeleteFolder(ctx, id)
}
