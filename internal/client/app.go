package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-cloud-editor/internal/config"
	"github.com/MKhiriev/go-cloud-editor/internal/logger"
	"github.com/MKhiriev/go-cloud-editor/internal/service"
	"github.com/MKhiriev/go-cloud-editor/internal/tui"
	"github.com/MKhiriev/go-cloud-editor/internal/workers"
)

type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	workers  *workers.Workers

	logger *logger.Logger
}

// NewApp wires the editor UI with the background refresh job. A zero
// refresh interval leaves the tree as loaded until the next action.
func NewApp(services *service.ClientServices, ui *tui.TUI, cfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, ErrNilDependency
	}

	refresh := workers.NewTicker("workspace-refresh", cfg.RefreshInterval, ui.Refresh, logger)

	return &App{
		services: services,
		ui:       ui,
		workers:  workers.NewWorkers(refresh),
		logger:   logger,
	}, nil
}

// Run shows the editor until the user quits or the process is signaled.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.workers.Run(ctx)
	defer a.workers.Stop()

	a.logger.Info().Str("func", "*App.Run").Msg("editor started")
	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	a.logger.Info().Str("func", "*App.Run").Msg("editor stopped")

	return nil
}
