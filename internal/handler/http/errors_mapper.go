package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-bank-validator/internal/service"
)

// errorStatuses is matched in order; the first errors.Is hit wins.
var errorStatuses = []struct {
	err    error
	status int
}{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrValidatorUnavailable, http.StatusBadGateway},
	{service.ErrUnexpectedValidation, http.StatusInternalServerError},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
	{context.Canceled, http.StatusServiceUnavailable},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
