package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-bank-validator/internal/client"
	"github.com/MKhiriev/go-bank-validator/internal/config"
	"github.com/MKhiriev/go-bank-validator/internal/logger"
	"github.com/MKhiriev/go-bank-validator/internal/service"
	"github.com/MKhiriev/go-bank-validator/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewClientLogger("bank-validator-client", cfg.Log.File)
	logger.SetLevel(cfg.Log.Level)

	if cfg.App.Version == config.DefaultVersion && buildVersion != "N/A" {
		cfg.App.Version = buildVersion
	}

	services, err := service.NewClientServices(cfg, cfg.LocalRegionSet(log), log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	app, err := client.NewApp(cfg, services, buildInfo, os.Stdin, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err = app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		stop()
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
