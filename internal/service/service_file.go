package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-cloud-editor/internal/logger"
	"github.com/MKhiriev/go-cloud-editor/internal/store"
	"github.com/MKhiriev/go-cloud-editor/internal/tree"
	"github.com/MKhiriev/go-cloud-editor/models"
)

// IDGenerator issues ids for new rows.
type IDGenerator interface {
	Generate() string
}

type fileService struct {
	files   store.FileRepository
	folders store.FolderRepository
	ids     IDGenerator

	logger *logger.Logger
}

func NewFileService(files store.FileRepository, folders store.FolderRepository, ids IDGenerator, logger *logger.Logger) FileService {
	return &fileService{
		files:   files,
		folders: folders,
		ids:     ids,
		logger:  logger,
	}
}

func (s *fileService) List(ctx context.Context) ([]models.File, error) {
	return s.files.ListFiles(ctx)
}

// Create inserts a new file. A missing code defaults to [models.DefaultFileCode]
// and a missing question to an empty one.
func (s *fileService) Create(ctx context.Context, req models.CreateFileRequest) (models.File, error) {
	if err := checkParentExists(ctx, s.folders, s.files, req.ParentID); err != nil {
		return models.File{}, err
	}

	code := models.DefaultFileCode
	if req.Code != nil {
		code = *req.Code
	}
	question := ""
	if req.Question != nil {
		question = *req.Question
	}

	file := models.File{
		ID:       s.ids.Generate(),
		Name:     strings.TrimSpace(req.Name),
		Code:     code,
		Question: &question,
		ParentID: req.ParentID,
		IsFolder: req.IsFolder,
	}

	created, err := s.files.CreateFile(ctx, file)
	if err != nil {
		return models.File{}, fmt.Errorf("error creating file: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "fileService.Create").
		Str("file_id", created.ID).
		Msg("file created")
	return created, nil
}

func (s *fileService) Update(ctx context.Context, update models.FileUpdate) (models.File, error) {
	if !update.MoveToRoot && update.ParentID != nil {
		if err := checkParentExists(ctx, s.folders, s.files, update.ParentID); err != nil {
			return models.File{}, err
		}
		if err := s.checkFolderRowMove(ctx, update.ID, update.ParentID); err != nil {
			return models.File{}, err
		}
	}
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		update.Name = &name
	}

	return s.files.UpdateFile(ctx, update)
}

func (s *fileService) Delete(ctx context.Context, id string) error {
	return s.files.DeleteFile(ctx, id)
}

// checkFolderRowMove rejects moving a folder stored as a file row under
// itself or one of its descendants. Plain files pass.
func (s *fileService) checkFolderRowMove(ctx context.Context, id string, parentID *string) error {
	files, err := s.files.ListFiles(ctx)
	if err != nil {
		return fmt.Errorf("error listing files: %w", err)
	}
	isFolder := false
	for _, f := range files {
		if f.ID == id {
			isFolder = f.IsFolder
			break
		}
	}
	if !isFolder {
		return nil
	}

	folders, err := s.folders.ListFolders(ctx)
	if err != nil {
		return fmt.Errorf("error listing folders: %w", err)
	}
	if err = tree.ValidateParent(tree.Folders(files, folders), id, parentID); err != nil {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", "fileService.Update").
			Str("file_id", id).
			Str("parent_id", *parentID).
			Msg("rejected folder row move")
		return err
	}
	return nil
}

// checkParentExists returns [tree.ErrParentNotFound] when parentID names
// neither a stored folder nor a file row flagged as a folder.
func checkParentExists(ctx context.Context, folders store.FolderRepository, files store.FileRepository, parentID *string) error {
	if parentID == nil {
		return nil
	}

	_, err := folders.GetFolder(ctx, *parentID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrFolderNotFound) {
		return fmt.Errorf("error checking parent folder: %w", err)
	}

	rows, err := files.ListFiles(ctx)
	if err != nil {
		return fmt.Errorf("error checking parent folder: %w", err)
	}
	for _, f := range rows {
		if f.IsFolder && f.ID == *parentID {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", tree.ErrParentNotFound, *parentID)
}
