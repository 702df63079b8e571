// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bank-validator/internal/logger"
	"github.com/MKhiriev/go-bank-validator/internal/validators"
	"github.com/MKhiriev/go-bank-validator/models"
)

type localValidationService struct {
	validator validators.Validator
	regions   models.RegionSet

	logger *logger.Logger
}

// NewLocalValidationService returns a ValidationService that validates
// in-process against regions.
func NewLocalValidationService(regions models.RegionSet, logger *logger.Logger) ValidationService {
	return &localValidationService{
		validator: validators.NewTransactionValidator(regions),
		regions:   regions,
		logger:    logger,
	}
}

func (s *localValidationService) ValidateTransaction(ctx context.Context, req models.TransactionRequest) (models.ValidationResult, error) {
	if err := ctx.Err(); err != nil {
		return models.ValidationResult{}, err
	}

	err := s.validator.Validate(ctx, req)
	if err == nil {
		order, _ := models.ParseOrderType(req.Order())
		return models.ValidationResult{
			Errors:    []string{},
			Operation: order.Description(),
		}, nil
	}

	messages := validators.ExtractMessages(err)
	if messages == nil {
		return models.ValidationResult{}, fmt.Errorf("%w: %w", ErrUnexpectedValidation, err)
	}

	s.logger.Debug().Strs("errors", messages).Msg("transaction rejected by rules")
	return models.ValidationResult{Errors: messages}, nil
}

func (s *localValidationService) Regions(_ context.Context) (models.RegionSet, error) {
	return s.regions, nil
}
