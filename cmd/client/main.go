package main

import (
	"fmt"

	"github.com/agrodesk/agrodesk/internal/adapter"
	"github.com/agrodesk/agrodesk/internal/client"
	"github.com/agrodesk/agrodesk/internal/config"
	"github.com/agrodesk/agrodesk/internal/logger"
	"github.com/agrodesk/agrodesk/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("agrodesk-console")
	cfg, err := config.GetConsoleConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	session := client.NewSession()
	browser := client.NewBrowser(serverAdapter, log)

	ui, err := tui.New(session, browser, serverAdapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating terminal UI")
	}

	app := client.NewApp(ui, session, browser, cfg.Workers, log)
	if err := app.Run(); err != nil {
		log.Fatal().Err(err).Msg("console exited with error")
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
