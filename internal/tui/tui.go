// Package tui is the terminal editor built on bubbletea.
//
// The screen holds a file sidebar with breadcrumbs, the code buffer, the
// question field, a save/run bar and the output console. Overlays cover the
// name prompts, the move picker, the file search palette (ctrl+p), delete
// confirmation, errors and build information.
package tui

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-cloud-editor/internal/editor"
	"github.com/MKhiriev/go-cloud-editor/internal/logger"
	"github.com/MKhiriev/go-cloud-editor/internal/sandbox"
	"github.com/MKhiriev/go-cloud-editor/internal/service"
	"github.com/MKhiriev/go-cloud-editor/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	runner    *sandbox.Runner
	buildInfo models.AppBuildInfo

	mu      sync.Mutex
	program *tea.Program

	logger *logger.Logger
}

func New(services *service.ClientServices, runner *sandbox.Runner, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		runner:    runner,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run shows the editor and blocks until the user quits or ctx is canceled.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services.WorkspaceService, editor.NewSession(), t.runner, t.buildInfo, t.logger)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	t.mu.Lock()
	t.program = program
	t.mu.Unlock()
	defer func() {
		t.mu.Lock()
		t.program = nil
		t.mu.Unlock()
	}()

	_, err := program.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

// Refresh reloads the workspace mirror and tells a running editor to
// redraw from it. It is the job of the background refresh worker.
func (t *TUI) Refresh(ctx context.Context) error {
	if err := t.services.WorkspaceService.Reload(ctx); err != nil {
		return err
	}

	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(workspaceRefreshedMsg{})
	}
	return nil
}
