package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-bank-validator/internal/logger"
	"github.com/MKhiriev/go-bank-validator/models"
	"github.com/rs/zerolog"
)

// ValidationLoggingService records every validation call with a masked
// request and its outcome.
type ValidationLoggingService struct {
	inner  ValidationService
	logger *logger.Logger
}

func NewValidationLoggingService(logger *logger.Logger) ValidationServiceWrapper {
	return &ValidationLoggingService{logger: logger}
}

func (v *ValidationLoggingService) ValidateTransaction(ctx context.Context, req models.TransactionRequest) (models.ValidationResult, error) {
	log := v.loggerFor(ctx)

	start := time.Now()
	result, err := v.inner.ValidateTransaction(ctx, req)

	event := log.Info()
	if err != nil {
		event = log.Error().Err(err)
	}
	event.
		Object("request", req).
		Bool("accepted", err == nil && result.Accepted()).
		Int("errors", len(result.Errors)).
		Dur("elapsed", time.Since(start)).
		Msg("transaction validated")

	return result, err
}

func (v *ValidationLoggingService) Regions(ctx context.Context) (models.RegionSet, error) {
	regions, err := v.inner.Regions(ctx)
	if err != nil {
		v.logger.Error().Err(err).Msg("failed to resolve branch regions")
	}
	return regions, err
}

// loggerFor prefers the request-scoped logger carrying the trace ID.
func (v *ValidationLoggingService) loggerFor(ctx context.Context) *logger.Logger {
	if l := logger.FromContext(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return v.logger
}

func (v *ValidationLoggingService) Wrap(wrapper ValidationService) ValidationService {
	v.inner = wrapper
	return v
}
