package editor

import "errors"

var (
	ErrNoActiveFile = errors.New("no active file")
	ErrSaveInFlight = errors.New("save already in progress")
)
