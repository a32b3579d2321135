package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("version is not specified")

	// ErrDuplicateName is returned before any write when a sibling already
	// uses the name.
	ErrDuplicateName = errors.New("an item with this name already exists here")
	ErrInvalidName   = errors.New("invalid name")

	ErrFileNotFound   = errors.New("file not found")
	ErrFolderNotFound = errors.New("folder not found")
)
