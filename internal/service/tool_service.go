package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"pdf-tools-server/internal/domain"
	apperrors "pdf-tools-server/pkg/errors"
)

// ProxyToolService is the generic proxy engine. Every registered operation
// runs through the same pipeline: required-field validation, rate limiting,
// payload construction, vendor call, response normalization and best-effort
// cleanup of the uploaded source files.
type ProxyToolService struct {
	vendor  domain.VendorClient
	cleanup domain.CleanupService
	limiter domain.Limiter
	logger  domain.Logger
	specs   map[string]*domain.OperationSpec
}

// NewToolService creates the proxy engine over the built-in operation registry.
func NewToolService(
	vendor domain.VendorClient,
	cleanup domain.CleanupService,
	limiter domain.Limiter,
	logger domain.Logger,
) *ProxyToolService {
	return &ProxyToolService{
		vendor:  vendor,
		cleanup: cleanup,
		limiter: limiter,
		logger:  logger,
		specs:   operationRegistry,
	}
}

// Operations returns the registered operation names, sorted.
func (s *ProxyToolService) Operations() []string {
	names := make([]string, 0, len(s.specs))
	for name := range s.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute runs one operation end to end.
func (s *ProxyToolService) Execute(ctx context.Context, operation string, body map[string]interface{}) (*domain.ToolResult, error) {
	spec, ok := s.specs[operation]
	if !ok {
		return nil, apperrors.NewNotFoundError("Unknown operation: " + operation)
	}

	if err := validateRequired(spec, body); err != nil {
		return nil, err
	}

	if !s.limiter.Allow(spec.Name) {
		s.logger.Warn("Vendor call rate limited", "operation", spec.Name)
		return nil, apperrors.NewRateLimitError("Too many requests, try again shortly")
	}

	payload := buildPayload(spec, body)

	resp, err := s.vendor.Call(ctx, spec.Endpoint, payload)
	if err != nil {
		if err == domain.ErrVendorUnconfigured {
			return nil, apperrors.NewInternalError("PDF API key is not configured", err)
		}
		s.logger.Error("Vendor call failed", err, "operation", spec.Name)
		return nil, apperrors.NewInternalError("Internal server error", err)
	}

	result, err := normalize(spec, resp)
	if err != nil {
		return nil, err
	}

	// Source files are consumed once; on a verified success delete each
	// distinct one. NotFound means nothing was produced, so the source stays.
	if !result.NotFound {
		if sources := cleanupSources(spec, body); len(sources) > 0 {
			s.cleanup.Remove(ctx, sources...)
		}
	}

	return result, nil
}

func validateRequired(spec *domain.OperationSpec, body map[string]interface{}) error {
	for _, field := range spec.Required {
		value, present := body[field]
		if !present || value == nil {
			return apperrors.NewValidationError(field + " is required")
		}
		if str, ok := value.(string); ok && strings.TrimSpace(str) == "" {
			return apperrors.NewValidationError(field + " is required")
		}
	}
	return nil
}

func buildPayload(spec *domain.OperationSpec, body map[string]interface{}) map[string]interface{} {
	payload := make(map[string]interface{}, len(spec.Defaults)+len(body)+1)
	for key, value := range spec.Defaults {
		payload[key] = value
	}
	for key, value := range body {
		payload[key] = value
	}
	// Synchronous processing only; the one async flow has its own service.
	payload["async"] = false
	return payload
}

func normalize(spec *domain.OperationSpec, resp *domain.VendorResponse) (*domain.ToolResult, error) {
	if !resp.IsJSON {
		return nil, apperrors.NewVendorRawError(resp.RawBody, resp.StatusCode)
	}

	if !resp.Ok() {
		message := resp.Message
		if message == "" {
			message = "PDF processing failed"
		}
		return nil, apperrors.NewVendorError(message, resp.StatusCode)
	}

	switch spec.Mode {
	case domain.ResultModeURL:
		if resp.URL == "" {
			return nil, apperrors.NewVendorError(spec.FallbackMessage, 0)
		}
		return &domain.ToolResult{URL: resp.URL}, nil

	case domain.ResultModeURLs:
		if len(resp.URLs) == 0 {
			return nil, apperrors.NewVendorError(spec.FallbackMessage, 0)
		}
		return &domain.ToolResult{URLs: resp.URLs}, nil

	case domain.ResultModeURLsOrNotFound:
		if len(resp.URLs) == 0 {
			return &domain.ToolResult{NotFound: true}, nil
		}
		return &domain.ToolResult{URLs: resp.URLs}, nil

	case domain.ResultModeBody:
		if len(resp.Body) == 0 {
			return nil, apperrors.NewVendorError(spec.FallbackMessage, 0)
		}
		return &domain.ToolResult{Body: resp.Body}, nil

	default:
		return nil, apperrors.NewInternalError(fmt.Sprintf("unknown result mode %q", spec.Mode), nil)
	}
}

// cleanupSources collects the distinct source file URLs named by the
// operation's cleanup fields. A field may hold a single URL, a comma-separated list, or
// a JSON array of URLs (merge operations accept both list forms).
func cleanupSources(spec *domain.OperationSpec, body map[string]interface{}) []string {
	seen := make(map[string]struct{})
	var sources []string

	add := func(raw string) {
		url := strings.TrimSpace(raw)
		if url == "" {
			return
		}
		if _, dup := seen[url]; dup {
			return
		}
		seen[url] = struct{}{}
		sources = append(sources, url)
	}

	for _, field := range spec.CleanupFields {
		switch value := body[field].(type) {
		case string:
			for _, part := range strings.Split(value, ",") {
				add(part)
			}
		case []interface{}:
			for _, item := range value {
				if str, ok := item.(string); ok {
					add(str)
				}
			}
		case []string:
			for _, str := range value {
				add(str)
			}
		}
	}
	return sources
}
