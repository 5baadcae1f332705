package main

import (
	"context"
	"fmt"

	"github.com/agrodesk/agrodesk/internal/config"
	"github.com/agrodesk/agrodesk/internal/crypto"
	httphandler "github.com/agrodesk/agrodesk/internal/handler/http"
	"github.com/agrodesk/agrodesk/internal/logger"
	"github.com/agrodesk/agrodesk/internal/server"
	"github.com/agrodesk/agrodesk/internal/service"
	"github.com/agrodesk/agrodesk/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("agrodesk-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	cs, err := store.NewStore(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating collection store")
	}
	defer cs.Close()

	if err := service.Seed(ctx, cs, crypto.NewPasswordHasher(), cfg.App); err != nil {
		log.Fatal().Err(err).Msg("error seeding initial data")
	}

	services := service.NewServices(cs, *cfg, log)
	handler := httphandler.NewHandler(services, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
