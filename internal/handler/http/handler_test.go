package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-bank-validator/internal/logger"
	"github.com/MKhiriev/go-bank-validator/internal/mock"
	"github.com/MKhiriev/go-bank-validator/internal/service"
	"github.com/MKhiriev/go-bank-validator/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	validation *mock.MockValidationService
	appInfo    *mock.MockAppInfoService
	router     http.Handler
}

func newTestRouter(t *testing.T, timeout time.Duration) testDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	deps := testDeps{
		validation: mock.NewMockValidationService(ctrl),
		appInfo:    mock.NewMockAppInfoService(ctrl),
	}
	services := &service.Services{
		ValidationService: deps.validation,
		AppInfoService:    deps.appInfo,
	}
	deps.router = NewHandler(services, timeout, logger.Nop()).Init()
	return deps
}

func transactionBody(t *testing.T, req models.TransactionRequest) io.Reader {
	t.Helper()
	b, err := json.Marshal(req)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func sampleTransaction() models.TransactionRequest {
	return models.TransactionRequest{
		BankCode:      "001",
		BranchCode:    "N001",
		AccountNumber: "1234567890",
		PersonalKey:   "951753",
		OrderValue:    models.Order("CHECK"),
	}
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, time.Second, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, time.Second, h.requestTimeout)
	assert.NotNil(t, h.traceIDs)
}

// ─────────────────────────────────────────────
// POST /api/transactions/validate
// ─────────────────────────────────────────────

func TestValidateTransaction_Accepted(t *testing.T) {
	deps := newTestRouter(t, time.Second)

	deps.validation.EXPECT().
		ValidateTransaction(gomock.Any(), sampleTransaction()).
		Return(models.ValidationResult{Operation: "Checkbook request"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/transactions/validate", transactionBody(t, sampleTransaction()))
	rec := httptest.NewRecorder()
	deps.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
	assert.JSONEq(t, `{"errors":[],"operation":"Checkbook request"}`, rec.Body.String())
}

func TestValidateTransaction_Rejected(t *testing.T) {
	deps := newTestRouter(t, time.Second)

	messages := []string{"Invalid Bank Code. Must be 3 digits.", "Weak PIN."}
	deps.validation.EXPECT().
		ValidateTransaction(gomock.Any(), gomock.Any()).
		Return(models.ValidationResult{Errors: messages}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/transactions/validate", transactionBody(t, sampleTransaction()))
	rec := httptest.NewRecorder()
	deps.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var got models.ValidationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, messages, got.Errors)
	assert.Empty(t, got.Operation)
}

func TestValidateTransaction_MissingAndEmptyOrderValue(t *testing.T) {
	services := &service.Services{
		ValidationService: service.NewLocalValidationService(models.DefaultRegionSet(), logger.Nop()),
	}
	router := NewHandler(services, time.Second, logger.Nop()).Init()

	const fields = `"bank_code":"001","branch_code":"N001","account_number":"1234567890","personal_key":"951753"`

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "key missing", body: `{` + fields + `}`, want: "Order Value is required."},
		{name: "null", body: `{` + fields + `,"order_value":null}`, want: "Order Value is required."},
		{name: "empty string", body: `{` + fields + `,"order_value":""}`, want: "Invalid Order. Allowed values: 'CHECK' or 'STMT'."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/transactions/validate", strings.NewReader(tt.body)))

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

			var got models.ValidationResult
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, []string{tt.want}, got.Errors)
		})
	}
}

func TestValidateTransaction_MalformedJSON(t *testing.T) {
	deps := newTestRouter(t, time.Second)

	req := httptest.NewRequest(http.MethodPost, "/api/transactions/validate", strings.NewReader(`{"bank_code":`))
	rec := httptest.NewRecorder()
	deps.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid data provided")
}

func TestValidateTransaction_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid data", err: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest},
		{name: "validator unavailable", err: service.ErrValidatorUnavailable, wantStatus: http.StatusBadGateway},
		{name: "deadline", err: context.DeadlineExceeded, wantStatus: http.StatusGatewayTimeout},
		{name: "unknown", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := newTestRouter(t, time.Second)
			deps.validation.EXPECT().
				ValidateTransaction(gomock.Any(), gomock.Any()).
				Return(models.ValidationResult{}, tt.err)

			req := httptest.NewRequest(http.MethodPost, "/api/transactions/validate", transactionBody(t, sampleTransaction()))
			rec := httptest.NewRecorder()
			deps.router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestValidateTransaction_ContextHasDeadline(t *testing.T) {
	deps := newTestRouter(t, 50*time.Millisecond)

	deps.validation.EXPECT().
		ValidateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ models.TransactionRequest) (models.ValidationResult, error) {
			_, ok := ctx.Deadline()
			assert.True(t, ok, "request timeout must set a deadline")
			return models.ValidationResult{Errors: []string{}}, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/api/transactions/validate", transactionBody(t, sampleTransaction()))
	rec := httptest.NewRecorder()
	deps.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestValidateTransaction_GzipResponse(t *testing.T) {
	deps := newTestRouter(t, time.Second)

	deps.validation.EXPECT().
		ValidateTransaction(gomock.Any(), gomock.Any()).
		Return(models.ValidationResult{Errors: []string{}, Operation: "Checkbook request"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/transactions/validate", transactionBody(t, sampleTransaction()))
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	deps.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"errors":[],"operation":"Checkbook request"}`, string(body))
}

func TestValidateTransaction_PanicRecovered(t *testing.T) {
	deps := newTestRouter(t, time.Second)

	deps.validation.EXPECT().
		ValidateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.TransactionRequest) (models.ValidationResult, error) {
			panic("boom")
		})

	req := httptest.NewRequest(http.MethodPost, "/api/transactions/validate", transactionBody(t, sampleTransaction()))
	rec := httptest.NewRecorder()

	assert.NotPanics(t, func() { deps.router.ServeHTTP(rec, req) })
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// GET /api/regions and /api/version/
// ─────────────────────────────────────────────

func TestGetRegions(t *testing.T) {
	deps := newTestRouter(t, time.Second)
	deps.validation.EXPECT().Regions(gomock.Any()).Return(models.DefaultRegionSet(), nil)

	rec := httptest.NewRecorder()
	deps.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/regions", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"regions":["N","S","E","O"]}`, rec.Body.String())
}

func TestGetRegions_Error(t *testing.T) {
	deps := newTestRouter(t, time.Second)
	deps.validation.EXPECT().Regions(gomock.Any()).Return(models.RegionSet{}, service.ErrValidatorUnavailable)

	rec := httptest.NewRecorder()
	deps.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/regions", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestGetServerVersion(t *testing.T) {
	deps := newTestRouter(t, time.Second)
	deps.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rec := httptest.NewRecorder()
	deps.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.3", rec.Body.String())
}

// ─────────────────────────────────────────────
// Unknown routes and methods
// ─────────────────────────────────────────────

func TestInit_UnknownRouteAndMethods(t *testing.T) {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/nonexistent"},
		{http.MethodGet, "/api/transactions/validate"},
		{http.MethodPost, "/api/regions"},
		{http.MethodPost, "/api/version/"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			deps := newTestRouter(t, time.Second)

			rec := httptest.NewRecorder()
			deps.router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}
