package main

import (
	"fmt"

	"github.com/MKhiriev/go-cloud-editor/internal/adapter"
	"github.com/MKhiriev/go-cloud-editor/internal/client"
	"github.com/MKhiriev/go-cloud-editor/internal/config"
	"github.com/MKhiriev/go-cloud-editor/internal/logger"
	"github.com/MKhiriev/go-cloud-editor/internal/sandbox"
	"github.com/MKhiriev/go-cloud-editor/internal/service"
	"github.com/MKhiriev/go-cloud-editor/internal/tui"
	"github.com/MKhiriev/go-cloud-editor/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("editor-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.LogLevel)

	remote, err := adapter.NewHTTPRemoteStore(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create remote store adapter")
	}

	services := service.NewClientServices(remote, log)
	runner := sandbox.NewRunner(cfg.Sandbox.RunTimeout, log)
	ui := tui.New(services, runner, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
