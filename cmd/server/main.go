package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-bank-validator/internal/config"
	"github.com/MKhiriev/go-bank-validator/internal/handler"
	"github.com/MKhiriev/go-bank-validator/internal/logger"
	"github.com/MKhiriev/go-bank-validator/internal/server"
	"github.com/MKhiriev/go-bank-validator/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("bank-validator-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.Log.Level)

	if cfg.App.Version == config.DefaultVersion && buildVersion != "N/A" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	regions := config.LoadRegionSet(cfg.Rules, log)

	services, err := service.NewServices(*cfg, regions, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
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
