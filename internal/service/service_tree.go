package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cloud-editor/internal/logger"
	"github.com/MKhiriev/go-cloud-editor/internal/store"
	"github.com/MKhiriev/go-cloud-editor/internal/tree"
	"github.com/MKhiriev/go-cloud-editor/models"
)

type treeService struct {
	files   store.FileRepository
	folders store.FolderRepository

	logger *logger.Logger
}

func NewTreeService(files store.FileRepository, folders store.FolderRepository, logger *logger.Logger) TreeService {
	return &treeService{files: files, folders: folders, logger: logger}
}

func (s *treeService) Tree(ctx context.Context) (models.Forest, error) {
	files, err := s.files.ListFiles(ctx)
	if err != nil {
		return models.Forest{}, fmt.Errorf("error listing files: %w", err)
	}
	folders, err := s.folders.ListFolders(ctx)
	if err != nil {
		return models.Forest{}, fmt.Errorf("error listing folders: %w", err)
	}

	forest := tree.Build(files, folders)
	if len(forest.Broken) > 0 {
		logger.FromContext(ctx).Warn().
			Str("func", "treeService.Tree").
			Strs("broken", forest.Broken).
			Msg("folder parent cycles found")
	}
	return forest, nil
}
