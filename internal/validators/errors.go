package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID        = errors.New("invalid id")
	ErrInvalidParentID  = errors.New("invalid parent id")
	ErrEmptyName        = errors.New("name is required")
	ErrNameTooLong      = errors.New("name is too long")
	ErrNameHasSlash     = errors.New("name must not contain '/'")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
