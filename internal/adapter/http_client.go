package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-diary-keeper/internal/config"
	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpAnalysisAdapter struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPAnalysisAdapter constructs an HTTP implementation of
// [AnalysisAdapter]. It normalises and validates the base URL from
// adapterCfg.AIServiceURL and configures the underlying client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.AIServiceURL is empty or cannot be parsed as
// a valid URL.
func NewHTTPAnalysisAdapter(adapterCfg config.Adapter, logger *logger.Logger) (AnalysisAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.AIServiceURL)
	if err != nil {
		return nil, fmt.Errorf("invalid AI service address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpAnalysisAdapter{client: client, logger: logger}, nil
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

// AnalyzeAsset implements [AnalysisAdapter]. It POSTs the asset as the "file"
// part of a multipart request to POST /analyze and decodes the analysis
// result from the JSON response body. Returns an error if the request fails,
// the service returns a non-2xx status, or the body cannot be decoded.
func (h *httpAnalysisAdapter) AnalyzeAsset(ctx context.Context, fileName string, data []byte) (models.AssetAnalysis, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFileReader("file", fileName, bytes.NewReader(data)).
		Post("/analyze")
	if err != nil {
		return models.AssetAnalysis{}, fmt.Errorf("analyze request: %w", err)
	}

	if resp.IsError() {
		return models.AssetAnalysis{}, fmt.Errorf("%w: status %d", ErrAnalysisFailed, resp.StatusCode())
	}

	var analysis models.AssetAnalysis
	if err := json.Unmarshal(resp.Body(), &analysis); err != nil {
		return models.AssetAnalysis{}, fmt.Errorf("analyze decode response: %w", err)
	}

	return analysis, nil
}
