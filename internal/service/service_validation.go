package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cloud-editor/internal/validators"
	"github.com/MKhiriev/go-cloud-editor/models"
)

type fileValidationService struct {
	inner     FileService
	validator validators.Validator
}

func NewFileValidationService() FileServiceWrapper {
	return &fileValidationService{
		validator: validators.NewEditorValidator(),
	}
}

func (v *fileValidationService) List(ctx context.Context) ([]models.File, error) {
	return v.inner.List(ctx)
}

func (v *fileValidationService) Create(ctx context.Context, req models.CreateFileRequest) (models.File, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.File{}, fmt.Errorf("error during file validation before saving: %w", err)
	}
	return v.inner.Create(ctx, req)
}

func (v *fileValidationService) Update(ctx context.Context, update models.FileUpdate) (models.File, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.File{}, fmt.Errorf("error during file validation before update: %w", err)
	}
	return v.inner.Update(ctx, update)
}

func (v *fileValidationService) Delete(ctx context.Context, id string) error {
	if err := v.validator.Validate(ctx, id); err != nil {
		return fmt.Errorf("error during file id validation: %w", err)
	}
	return v.inner.Delete(ctx, id)
}

func (v *fileValidationService) Wrap(inner FileService) FileService {
	v.inner = inner
	return v
}

type folderValidationService struct {
	inner     FolderService
	validator validators.Validator
}

func NewFolderValidationService() FolderServiceWrapper {
	return &folderValidationService{
		validator: validators.NewEditorValidator(),
	}
}

func (v *folderValidationService) List(ctx context.Context) ([]models.Folder, error) {
	return v.inner.List(ctx)
}

func (v *folderValidationService) Create(ctx context.Context, req models.CreateFolderRequest) (models.Folder, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Folder{}, fmt.Errorf("error during folder validation before saving: %w", err)
	}
	return v.inner.Create(ctx, req)
}

func (v *folderValidationService) Update(ctx context.Context, update models.FolderUpdate) (models.Folder, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Folder{}, fmt.Errorf("error during folder validation before update: %w", err)
	}
	return v.inner.Update(ctx, update)
}

func (v *folderValidationService) Delete(ctx context.Context, id string) error {
	if err := v.validator.Validate(ctx, id); err != nil {
		return fmt.Errorf("error during folder id validation: %w", err)
	}
	return v.inner.Delete(ctx, id)
}

func (v *folderValidationService) Wrap(inner FolderService) FolderService {
	v.inner = inner
	return v
}
