package store

import "errors"

// Sentinel errors returned by repository methods. Match with [errors.Is].
var (
	ErrFileNotFound   = errors.New("file was not found")
	ErrFolderNotFound = errors.New("folder was not found")
	ErrAlreadyExists  = errors.New("record with this id already exists")
	ErrEmptyUpdate    = errors.New("update has no fields to set")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to execute statement")
	ErrScanningRow        = errors.New("failed to scan row")
	ErrScanningRows       = errors.New("failed to scan rows")
	ErrUnsupportedDSN     = errors.New("unsupported database DSN")
)
