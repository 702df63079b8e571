// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// a remote validator server.
//
// The primary abstraction is [ValidationAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPValidationAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrBadRequest] for 400, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-bank-validator/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/validation_adapter_mock.go -package=mock

// ValidationAdapter defines transport-agnostic communication with the
// validator server.
type ValidationAdapter interface {
	// ValidateTransaction submits req and returns the server's verdict. A
	// rejected transaction is a successful call: the returned result carries
	// the messages and the error is nil.
	ValidateTransaction(ctx context.Context, req models.TransactionRequest) (models.ValidationResult, error)

	// GetRegions returns the branch region whitelist the server validates
	// against.
	GetRegions(ctx context.Context) (models.RegionSet, error)
}
