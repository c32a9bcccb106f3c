package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-content-sync/internal/app"
	"github.com/MKhiriev/go-content-sync/internal/config"
	"github.com/MKhiriev/go-content-sync/internal/handler"
	"github.com/MKhiriev/go-content-sync/internal/logger"
	"github.com/MKhiriev/go-content-sync/internal/server"
	"github.com/MKhiriev/go-content-sync/internal/workers"
	"github.com/MKhiriev/go-content-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("nrsync-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = cfg.ValidateForServer(); err != nil {
		log.Fatal().Err(err).Msg("invalid server configuration")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	a, err := app.New(context.Background(), cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error initializing application")
	}
	defer a.Close()

	if err = a.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	handlers, err := handler.NewHandlers(a.Services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(a.Services, cfg.Workers, log), cfg.Server, log)
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
