package http

import (
	"time"

	"github.com/MKhiriev/go-bank-validator/internal/logger"
	"github.com/MKhiriev/go-bank-validator/internal/service"
	"github.com/MKhiriev/go-bank-validator/internal/utils"
)

type Handler struct {
	services *service.Services

	requestTimeout time.Duration
	traceIDs       *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. A non-positive requestTimeout disables
// the per-request deadline.
func NewHandler(services *service.Services, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: requestTimeout,
		traceIDs:       utils.NewUUIDGenerator(),
		logger:         logger,
	}
}
