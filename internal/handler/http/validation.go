// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-bank-validator/internal/app"
	"github.com/MKhiriev/go-bank-validator/internal/logger"
	"github.com/MKhiriev/go-bank-validator/internal/utils"
	"github.com/MKhiriev/go-bank-validator/models"
)

const maxRequestBodySize = 1 << 16

// validateTransaction answers 200 with the operation for an accepted
// request and 422 with the ordered messages for a rejected one.
func (h *Handler) validateTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.TransactionRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodySize)).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	result, err := h.services.ValidationService.ValidateTransaction(ctx, req)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Int("status", status).Msg("transaction validation failed")
		http.Error(w, http.StatusText(status), status)
		return
	}

	if result.Errors == nil {
		result.Errors = []string{}
	}

	status := http.StatusOK
	if !result.Accepted() {
		status = http.StatusUnprocessableEntity
	}

	if _, err = utils.WriteJSON(w, result, status); err != nil {
		log.Err(err).Msg("error writing validation result")
	}
}

func (h *Handler) getRegions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	regions, err := h.services.ValidationService.Regions(r.Context())
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Msg("error getting branch regions")
		http.Error(w, http.StatusText(status), status)
		return
	}

	if _, err = utils.WriteJSON(w, models.RegionsResponse{Regions: regions}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing branch regions")
	}
}
