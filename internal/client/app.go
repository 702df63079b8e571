package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-bank-validator/internal/config"
	"github.com/MKhiriev/go-bank-validator/internal/console"
	"github.com/MKhiriev/go-bank-validator/internal/logger"
	"github.com/MKhiriev/go-bank-validator/internal/service"
	"github.com/MKhiriev/go-bank-validator/internal/tui"
	"github.com/MKhiriev/go-bank-validator/models"
)

var ErrUnknownMode = errors.New("unknown client mode")

type App struct {
	mode      string
	version   string
	console   *console.Console
	front     frontEnd
	scenarios []console.Scenario

	logger *logger.Logger
}

// NewApp wires the front end selected by cfg.App.Mode. Console input is read
// from in and every report is written to out.
func NewApp(cfg *config.ClientConfig, services *service.ClientServices, buildInfo models.AppBuildInfo,
	in io.Reader, out io.Writer, logger *logger.Logger) (*App, error) {
	c := console.New(in, out, services.ValidationService, logger)

	app := &App{
		mode:      cfg.App.Mode,
		version:   cfg.App.Version,
		console:   c,
		scenarios: console.DefaultScenarios(),
		logger:    logger,
	}

	switch cfg.App.Mode {
	case config.ModeConsole:
		app.front = consoleFrontEnd{c}
	case config.ModeTUI:
		ui, err := tui.New(services, buildInfo, logger)
		if err != nil {
			return nil, fmt.Errorf("error creating tui: %w", err)
		}
		app.front = ui
	case config.ModeScenarios:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, cfg.App.Mode)
	}

	return app, nil
}

func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Str("mode", a.mode).Msg("client started")

	a.console.PrintHeader(a.version)
	if err := a.console.RunScenarios(ctx, a.scenarios); err != nil {
		return fmt.Errorf("error running scenarios: %w", err)
	}

	if a.front == nil {
		return nil
	}

	if err := a.front.Run(ctx); err != nil {
		return fmt.Errorf("error running %s mode: %w", a.mode, err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}

type consoleFrontEnd struct {
	*console.Console
}

func (c consoleFrontEnd) Run(ctx context.Context) error {
	return c.RunInteractive(ctx)
}
