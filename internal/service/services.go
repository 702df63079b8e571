package service

import (
	"fmt"

	"github.com/MKhiriev/go-bank-validator/internal/adapter"
	"github.com/MKhiriev/go-bank-validator/internal/config"
	"github.com/MKhiriev/go-bank-validator/internal/logger"
	"github.com/MKhiriev/go-bank-validator/models"
)

// Services groups the server-side services exposed over HTTP.
type Services struct {
	ValidationService ValidationService
	AppInfoService    AppInfoService
}

func NewServices(cfg config.StructuredConfig, regions models.RegionSet, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	validation := NewValidationLoggingService(logger).Wrap(NewLocalValidationService(regions, logger))

	return &Services{
		ValidationService: validation,
		AppInfoService:    appInfo,
	}, nil
}

// ClientServices groups what the console and TUI front ends need.
type ClientServices struct {
	ValidationService ValidationService
}

// NewClientServices validates in-process when cfg has no remote address and
// through the HTTP adapter otherwise. regions is used only for local
// validation.
func NewClientServices(cfg *config.ClientConfig, regions models.RegionSet, logger *logger.Logger) (*ClientServices, error) {
	var validation ValidationService

	if cfg.Remote() {
		serverAdapter, err := adapter.NewHTTPValidationAdapter(cfg.Adapter, logger)
		if err != nil {
			return nil, fmt.Errorf("error creating validation adapter: %w", err)
		}
		validation = NewRemoteValidationService(serverAdapter, logger)
	} else {
		validation = NewLocalValidationService(regions, logger)
	}

	return &ClientServices{
		ValidationService: NewValidationLoggingService(logger).Wrap(validation),
	}, nil
}
