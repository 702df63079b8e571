// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-bank-validator/internal/config"
	"github.com/MKhiriev/go-bank-validator/internal/logger"
	"github.com/MKhiriev/go-bank-validator/internal/utils"
	"github.com/MKhiriev/go-bank-validator/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) ValidationAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}

	a, err := NewHTTPValidationAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a
}

func sampleRequest() models.TransactionRequest {
	return models.TransactionRequest{
		BankCode:      "001",
		BranchCode:    "N001",
		AccountNumber: "1234567890",
		PersonalKey:   "951753",
		OrderValue:    models.Order("CHECK"),
	}
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

// ── NewHTTPValidationAdapter ────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "host and port", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "with scheme", raw: "https://validator.bank", want: "https://validator.bank"},
		{name: "trailing slash", raw: " http://127.0.0.1:9000/ ", want: "http://127.0.0.1:9000"},
		{name: "empty", raw: "  ", wantErr: true},
		{name: "scheme only", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPValidationAdapter_InvalidAddress(t *testing.T) {
	a, err := NewHTTPValidationAdapter(config.ClientAdapter{}, logger.Nop())
	assert.Nil(t, a)
	require.Error(t, err)
}

// ── ValidateTransaction ─────────────────────────────────────────────────────

func TestValidateTransaction_Accepted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/transactions/validate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got models.TransactionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, sampleRequest(), got)

		writeJSON(t, w, http.StatusOK, models.ValidationResult{Errors: []string{}, Operation: "Checkbook request"})
	}))
	defer srv.Close()

	result, err := newTestAdapter(t, srv.URL).ValidateTransaction(context.Background(), sampleRequest())

	require.NoError(t, err)
	assert.True(t, result.Accepted())
	assert.Equal(t, []string{}, result.Errors)
	assert.Equal(t, "Checkbook request", result.Operation)
}

func TestValidateTransaction_Rejected(t *testing.T) {
	messages := []string{"Weak PIN.", "Invalid Order Value. Must be CHECK or STMT."}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnprocessableEntity, models.ValidationResult{Errors: messages})
	}))
	defer srv.Close()

	result, err := newTestAdapter(t, srv.URL).ValidateTransaction(context.Background(), sampleRequest())

	require.NoError(t, err)
	assert.False(t, result.Accepted())
	assert.Equal(t, messages, result.Errors)
	assert.Empty(t, result.Operation)
}

func TestValidateTransaction_ForwardsTraceID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "trace-42", r.Header.Get(utils.TraceIDHeader))
		writeJSON(t, w, http.StatusOK, models.ValidationResult{Errors: []string{}})
	}))
	defer srv.Close()

	ctx := utils.WithTraceID(context.Background(), "trace-42")
	_, err := newTestAdapter(t, srv.URL).ValidateTransaction(ctx, sampleRequest())

	require.NoError(t, err)
}

func TestValidateTransaction_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "bad request", status: http.StatusBadRequest, body: "invalid data provided", wantErr: ErrBadRequest},
		{name: "not found", status: http.StatusNotFound, body: "not found", wantErr: ErrNotFound},
		{name: "internal", status: http.StatusInternalServerError, body: "internal server error", wantErr: ErrInternalServerError},
		{name: "timeout", status: http.StatusServiceUnavailable, body: "", wantErr: ErrRequestTimeout},
		{name: "rejection without messages", status: http.StatusUnprocessableEntity, body: `{"errors":[]}`, wantErr: ErrUnexpectedResponse},
		{name: "garbage body", status: http.StatusOK, body: `not json`, wantErr: ErrUnexpectedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).ValidateTransaction(context.Background(), sampleRequest())

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateTransaction_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ValidateTransaction(context.Background(), sampleRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestValidateTransaction_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).ValidateTransaction(context.Background(), sampleRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate request")
}

// ── GetRegions ──────────────────────────────────────────────────────────────

func TestGetRegions_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/regions", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"regions":["A","B"]}`))
	}))
	defer srv.Close()

	regions, err := newTestAdapter(t, srv.URL).GetRegions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "A,B", regions.String())
}

func TestGetRegions_EmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"regions":[]}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetRegions(context.Background())

	require.Error(t, err)
}

func TestGetRegions_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetRegions(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}
