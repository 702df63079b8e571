package service

import (
	"context"

	"github.com/MKhiriev/go-bank-validator/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=ValidationServiceWrapper

// ValidationService checks banking transaction requests.
type ValidationService interface {
	// ValidateTransaction returns the verdict for req. A rejected request is
	// not an error: the result carries the messages in rule order. Errors are
	// reserved for failures to reach a verdict.
	ValidateTransaction(ctx context.Context, req models.TransactionRequest) (models.ValidationResult, error)

	// Regions returns the branch region whitelist in effect.
	Regions(ctx context.Context) (models.RegionSet, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ValidationServiceWrapper defines middleware composition for
// ValidationService. Implementations wrap an existing ValidationService to
// add behavior such as logging.
type ValidationServiceWrapper interface {
	Wrap(ValidationService) ValidationService // returns a decorated ValidationService applying additional behavior
}
