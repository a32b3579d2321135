package tui

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-cloud-editor/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) cmdLoadWorkspace(initial bool) tea.Cmd {
	ctx := m.ctx
	svc := m.workspace
	return func() tea.Msg {
		err := svc.Reload(ctx)
		return workspaceLoadedMsg{initial: initial, err: err}
	}
}

func (m appModel) cmdCreateFile(name string, parentID *string) tea.Cmd {
	ctx := m.ctx
	svc := m.workspace
	return func() tea.Msg {
		file, err := svc.CreateFile(ctx, name, parentID)
		return fileCreatedMsg{file: file, err: err}
	}
}

func (m appModel) cmdCreateFolder(name string, parentID *string) tea.Cmd {
	ctx := m.ctx
	svc := m.workspace
	return func() tea.Msg {
		folder, err := svc.CreateFolder(ctx, name, parentID)
		return folderCreatedMsg{folder: folder, err: err}
	}
}

func (m appModel) cmdRename(id, name string, isFolder bool) tea.Cmd {
	ctx := m.ctx
	svc := m.workspace
	return func() tea.Msg {
		var err error
		if isFolder {
			var folder models.Folder
			folder, err = svc.RenameFolder(ctx, id, name)
			name = folder.Name
		} else {
			var file models.File
			file, err = svc.RenameFile(ctx, id, name)
			name = file.Name
		}
		return renamedMsg{id: id, name: name, isFolder: isFolder, err: err}
	}
}

func (m appModel) cmdMove(id string, parentID *string, isFolder bool) tea.Cmd {
	ctx := m.ctx
	svc := m.workspace
	return func() tea.Msg {
		var err error
		if isFolder {
			_, err = svc.MoveFolder(ctx, id, parentID)
		} else {
			_, err = svc.MoveFile(ctx, id, parentID)
		}
		return movedMsg{id: id, parentID: parentID, isFolder: isFolder, err: err}
	}
}

func (m appModel) cmdDelete(id string, isFolder bool) tea.Cmd {
	ctx := m.ctx
	svc := m.workspace
	return func() tea.Msg {
		var err error
		if isFolder {
			err = svc.DeleteFolder(ctx, id)
		} else {
			err = svc.DeleteFile(ctx, id)
		}
		return deletedMsg{id: id, isFolder: isFolder, err: err}
	}
}

func (m appModel) cmdSave(update models.FileUpdate) tea.Cmd {
	ctx := m.ctx
	svc := m.workspace
	return func() tea.Msg {
		file, err := svc.UpdateFile(ctx, update)
		return fileSavedMsg{update: update, file: file, err: err}
	}
}

func (m appModel) cmdRun(code string) tea.Cmd {
	ctx := m.ctx
	runner := m.runner
	return func() tea.Msg {
		return runDoneMsg{result: runner.Run(ctx, code)}
	}
}

func (m appModel) cmdServerVersion() tea.Cmd {
	ctx := m.ctx
	svc := m.workspace
	return func() tea.Msg {
		version, err := svc.ServerVersion(ctx)
		if err != nil {
			return serverVersionMsg{}
		}
		return serverVersionMsg{version: version}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
