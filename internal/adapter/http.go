package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-bank-validator/internal/config"
	"github.com/MKhiriev/go-bank-validator/internal/logger"
	"github.com/MKhiriev/go-bank-validator/internal/utils"
	"github.com/MKhiriev/go-bank-validator/models"
	"github.com/go-resty/resty/v2"
)

const (
	validatePath = "/api/transactions/validate"
	regionsPath  = "/api/regions"
)

type httpValidationAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPValidationAdapter constructs an HTTP/REST implementation of
// [ValidationAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPValidationAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ValidationAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpValidationAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// request builds a resty request bound to ctx that forwards the trace ID
// stored in ctx, if any.
func (h *httpValidationAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(utils.TraceIDHeader, traceID)
	}
	return req
}

// ValidateTransaction implements [ValidationAdapter]. It POSTs req to
// POST /api/transactions/validate. Both 200 (accepted) and 422 (rejected)
// carry a [models.ValidationResult] body; any other status is mapped to a
// sentinel error.
func (h *httpValidationAdapter) ValidateTransaction(ctx context.Context, req models.TransactionRequest) (models.ValidationResult, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(validatePath)
	if err != nil {
		return models.ValidationResult{}, fmt.Errorf("validate request: %w", err)
	}

	h.logger.Debug().
		Object("request", req).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("remote validation finished")

	if resp.StatusCode() != http.StatusUnprocessableEntity {
		if err = mapHTTPError(resp); err != nil {
			return models.ValidationResult{}, err
		}
	}

	var result models.ValidationResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.ValidationResult{}, fmt.Errorf("%w: decode validation result: %v", ErrUnexpectedResponse, err)
	}

	if resp.StatusCode() == http.StatusUnprocessableEntity && result.Accepted() {
		return models.ValidationResult{}, fmt.Errorf("%w: rejection without messages", ErrUnexpectedResponse)
	}

	if result.Errors == nil {
		result.Errors = []string{}
	}

	return result, nil
}

// GetRegions implements [ValidationAdapter]. It fetches GET /api/regions.
func (h *httpValidationAdapter) GetRegions(ctx context.Context) (models.RegionSet, error) {
	var regions models.RegionsResponse

	resp, err := h.request(ctx).
		SetResult(&regions).
		Get(regionsPath)
	if err != nil {
		return models.RegionSet{}, fmt.Errorf("regions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegionSet{}, err
	}

	if regions.Regions.Len() == 0 {
		return models.RegionSet{}, fmt.Errorf("%w: empty region list", ErrUnexpectedResponse)
	}

	return regions.Regions, nil
}
