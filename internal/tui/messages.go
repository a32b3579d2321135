package tui

import (
	"github.com/MKhiriev/go-cloud-editor/models"
)

// workspaceLoadedMsg reports a reload of the workspace mirror. initial is set
// for the load issued on start.
type workspaceLoadedMsg struct {
	initial bool
	err     error
}

// workspaceRefreshedMsg is sent by the background refresh job after it
// reloaded the mirror.
type workspaceRefreshedMsg struct{}

type fileCreatedMsg struct {
	file models.File
	err  error
}

type folderCreatedMsg struct {
	folder models.Folder
	err    error
}

type renamedMsg struct {
	id       string
	name     string
	isFolder bool
	err      error
}

type movedMsg struct {
	id       string
	parentID *string
	isFolder bool
	err      error
}

type deletedMsg struct {
	id       string
	isFolder bool
	err      error
}

type fileSavedMsg struct {
	update models.FileUpdate
	file   models.File
	err    error
}

type runDoneMsg struct {
	result models.RunResult
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

type serverVersionMsg struct {
	version string
}
