package tree

import "errors"

var (
	ErrParentCycle    = errors.New("folder cannot be moved into itself or one of its descendants")
	ErrParentNotFound = errors.New("parent folder not found")
)
