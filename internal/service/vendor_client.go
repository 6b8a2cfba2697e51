package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"pdf-tools-server/internal/domain"
)

const vendorCallTimeout = 120 * time.Second

// HTTPVendorClient calls the third-party PDF API. It only moves JSON: payload
// construction and response interpretation live in the tool service.
type HTTPVendorClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  domain.Logger
}

// NewVendorClient creates a vendor API client from configuration.
func NewVendorClient(config domain.Config, logger domain.Logger) *HTTPVendorClient {
	return &HTTPVendorClient{
		baseURL: strings.TrimRight(config.GetVendorBaseURL(), "/"),
		apiKey:  config.GetVendorAPIKey(),
		client:  &http.Client{Timeout: vendorCallTimeout},
		logger:  logger,
	}
}

// vendorEnvelope covers every reply shape the vendor is known to produce.
// The output URL appears under different names per operation.
type vendorEnvelope struct {
	Error       bool            `json:"error"`
	Message     string          `json:"message"`
	URL         string          `json:"url"`
	ResultURL   string          `json:"resultUrl"`
	DownloadURL string          `json:"downloadUrl"`
	URLs        []string        `json:"urls"`
	JobID       string          `json:"jobId"`
	Status      string          `json:"status"`
	Body        json.RawMessage `json:"body"`
	Info        json.RawMessage `json:"info"`
}

// Call issues one POST against the vendor endpoint and parses the reply.
// A non-JSON reply is not an error at this level; the raw text is carried
// back so callers can mirror the vendor's status and message verbatim.
func (c *HTTPVendorClient) Call(ctx context.Context, endpoint string, payload map[string]interface{}) (*domain.VendorResponse, error) {
	if c.apiKey == "" {
		return nil, domain.ErrVendorUnconfigured
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal vendor payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to build vendor request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vendor request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read vendor response: %w", err)
	}

	result := &domain.VendorResponse{StatusCode: resp.StatusCode}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		result.RawBody = string(body)
		c.logger.Warn("Vendor returned non-JSON response", "endpoint", endpoint, "status", resp.StatusCode, "contentType", contentType)
		return result, nil
	}

	var envelope vendorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		result.RawBody = string(body)
		c.logger.Warn("Vendor returned unparseable JSON", "endpoint", endpoint, "status", resp.StatusCode)
		return result, nil
	}

	result.IsJSON = true
	result.Error = envelope.Error
	result.Message = envelope.Message
	result.URLs = envelope.URLs
	result.JobID = envelope.JobID
	result.Status = envelope.Status
	result.Body = envelope.Body
	if result.Body == nil {
		result.Body = envelope.Info
	}

	// Coalesce the singular output URL variants.
	switch {
	case envelope.URL != "":
		result.URL = envelope.URL
	case envelope.ResultURL != "":
		result.URL = envelope.ResultURL
	case envelope.DownloadURL != "":
		result.URL = envelope.DownloadURL
	}

	return result, nil
}
