// Package tui implements the full-screen terminal front end of the validator
// client on top of bubbletea.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-bank-validator/internal/logger"
	"github.com/MKhiriev/go-bank-validator/internal/service"
	"github.com/MKhiriev/go-bank-validator/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrNoValidationService = errors.New("tui requires a validation service")

type TUI struct {
	validation service.ValidationService
	buildInfo  models.AppBuildInfo

	logger *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.ValidationService == nil {
		return nil, ErrNoValidationService
	}

	return &TUI{
		validation: services.ValidationService,
		buildInfo:  buildInfo,
		logger:     logger,
	}, nil
}

// Run shows the transaction form until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	t.logger.Debug().Stringer("build", t.buildInfo).Msg("starting tui")

	model := newFormModel(ctx, t.validation, t.buildInfo)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}

	result, ok := finalModel.(formModel)
	if !ok {
		return tea.ErrProgramKilled
	}

	t.logger.Debug().Int("validated", result.validated).Msg("tui closed")
	return nil
}
