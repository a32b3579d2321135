package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-cloud-editor/internal/utils"
	"github.com/MKhiriev/go-cloud-editor/models"
)

// MaxNameLength is the longest accepted file or folder name, in runes.
const MaxNameLength = 255

// Field names accepted by [EditorValidator.Validate] to scope validation.
const (
	FieldID       = "id"
	FieldName     = "name"
	FieldParentID = "parent_id"
	FieldUpdate   = "update"
)

// EditorValidator checks files, folders and the requests that create or
// change them.
type EditorValidator struct{}

func NewEditorValidator() Validator {
	return &EditorValidator{}
}

func (v *EditorValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.File:
		return v.validateItem(value.ID, value.Name, value.ParentID, fields...)
	case *models.File:
		return v.validateItem(value.ID, value.Name, value.ParentID, fields...)

	case models.Folder:
		return v.validateItem(value.ID, value.Name, value.ParentID, fields...)
	case *models.Folder:
		return v.validateItem(value.ID, value.Name, value.ParentID, fields...)

	case models.CreateFileRequest:
		return v.validateCreate(value.Name, value.ParentID, fields...)
	case *models.CreateFileRequest:
		return v.validateCreate(value.Name, value.ParentID, fields...)

	case models.CreateFolderRequest:
		return v.validateCreate(value.Name, value.ParentID, fields...)
	case *models.CreateFolderRequest:
		return v.validateCreate(value.Name, value.ParentID, fields...)

	case models.FileUpdate:
		return v.validateUpdate(value.ID, value.Name, value.ParentID, value.IsEmpty(), fields...)
	case *models.FileUpdate:
		return v.validateUpdate(value.ID, value.Name, value.ParentID, value.IsEmpty(), fields...)

	case models.FolderUpdate:
		return v.validateUpdate(value.ID, value.Name, value.ParentID, value.IsEmpty(), fields...)
	case *models.FolderUpdate:
		return v.validateUpdate(value.ID, value.Name, value.ParentID, value.IsEmpty(), fields...)

	case string:
		return v.validateID(value)

	default:
		return ErrUnsupportedType
	}
}

func (v *EditorValidator) validateItem(id, name string, parentID *string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldParentID}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if err := v.validateID(id); err != nil {
				return err
			}
		case FieldName:
			if err := ValidateName(name); err != nil {
				return err
			}
		case FieldParentID:
			if parentID != nil && !utils.IsUUID(*parentID) {
				return ErrInvalidParentID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EditorValidator) validateCreate(name string, parentID *string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldParentID}
	}
	return v.validateItem("", name, parentID, fields...)
}

func (v *EditorValidator) validateUpdate(id string, name, parentID *string, empty bool, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUpdate, FieldName, FieldParentID}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if err := v.validateID(id); err != nil {
				return err
			}
		case FieldUpdate:
			if empty {
				return ErrNoFieldsToUpdate
			}
		case FieldName:
			if name == nil {
				continue
			}
			if err := ValidateName(*name); err != nil {
				return err
			}
		case FieldParentID:
			if parentID != nil && !utils.IsUUID(*parentID) {
				return ErrInvalidParentID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EditorValidator) validateID(id string) error {
	if !utils.IsUUID(id) {
		return ErrInvalidID
	}
	return nil
}

// ValidateName checks a file or folder name after trimming surrounding
// whitespace.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return ErrEmptyName
	case strings.Contains(name, "/"):
		return ErrNameHasSlash
	case utf8.RuneCountInString(name) > MaxNameLength:
		return ErrNameTooLong
	}
	return nil
}
