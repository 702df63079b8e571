package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bank-validator/internal/adapter"
	"github.com/MKhiriev/go-bank-validator/internal/logger"
	"github.com/MKhiriev/go-bank-validator/internal/utils"
	"github.com/MKhiriev/go-bank-validator/models"
)

type remoteValidationService struct {
	adapter adapter.ValidationAdapter
	traceID *utils.UUIDGenerator

	logger *logger.Logger
}

// NewRemoteValidationService returns a ValidationService that delegates to
// a validator server through a.
func NewRemoteValidationService(a adapter.ValidationAdapter, logger *logger.Logger) ValidationService {
	return &remoteValidationService{
		adapter: a,
		traceID: utils.NewUUIDGenerator(),
		logger:  logger,
	}
}

func (s *remoteValidationService) withTrace(ctx context.Context) context.Context {
	if _, ok := utils.GetTraceIDFromContext(ctx); ok {
		return ctx
	}
	return utils.WithTraceID(ctx, s.traceID.Generate())
}

func (s *remoteValidationService) ValidateTransaction(ctx context.Context, req models.TransactionRequest) (models.ValidationResult, error) {
	ctx = s.withTrace(ctx)

	result, err := s.adapter.ValidateTransaction(ctx, req)
	if err != nil {
		traceID, _ := utils.GetTraceIDFromContext(ctx)
		s.logger.Error().Err(err).Str("trace_id", traceID).Msg("remote validation failed")
		return models.ValidationResult{}, mapAdapterError(err)
	}

	return result, nil
}

func (s *remoteValidationService) Regions(ctx context.Context) (models.RegionSet, error) {
	regions, err := s.adapter.GetRegions(s.withTrace(ctx))
	if err != nil {
		return models.RegionSet{}, mapAdapterError(err)
	}
	return regions, nil
}

// mapAdapterError translates the adapter's transport error into a service
// error while keeping the underlying error in the chain.
func mapAdapterError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	case errors.Is(err, adapter.ErrRequestTimeout),
		errors.Is(err, adapter.ErrServiceUnavailable),
		errors.Is(err, adapter.ErrNotFound),
		errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrValidatorUnavailable, err)
	default:
		return err
	}
}
