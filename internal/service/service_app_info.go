package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-bank-validator/internal/config"
	"github.com/MKhiriev/go-bank-validator/internal/logger"
)

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

// NewAppInfoService reports cfg.Version, trimmed, through the version
// endpoint. A blank version is a startup error.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", version).Msg("app info service created")

	return &appInfoService{
		appVersion: version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.appVersion
}
