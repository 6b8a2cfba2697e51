package service

import (
	"context"
	"net/http"
	"testing"

	"pdf-tools-server/internal/domain"
	apperrors "pdf-tools-server/pkg/errors"
)

type mockVendor struct {
	response *domain.VendorResponse
	err      error
	calls    int
	endpoint string
	payload  map[string]interface{}
}

func (m *mockVendor) Call(ctx context.Context, endpoint string, payload map[string]interface{}) (*domain.VendorResponse, error) {
	m.calls++
	m.endpoint = endpoint
	m.payload = payload
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

type mockCleanup struct {
	removed [][]string
}

func (m *mockCleanup) Remove(ctx context.Context, urls ...string) {
	m.removed = append(m.removed, urls)
}

type allowAllLimiter struct{}

func (allowAllLimiter) Allow(string) bool { return true }

type denyLimiter struct{}

func (denyLimiter) Allow(string) bool { return false }

func newToolService(vendor *mockVendor, cleanup *mockCleanup, limiter domain.Limiter) *ProxyToolService {
	return &ProxyToolService{
		vendor:  vendor,
		cleanup: cleanup,
		limiter: limiter,
		logger:  nopLogger{},
		specs:   operationRegistry,
	}
}

const sourceURL = "https://x.supabase.co/storage/v1/object/public/server/uploads/1-doc.pdf"

func jsonOK(fields *domain.VendorResponse) *domain.VendorResponse {
	fields.StatusCode = http.StatusOK
	fields.IsJSON = true
	return fields
}

func TestExecuteMissingRequiredField(t *testing.T) {
	vendor := &mockVendor{}
	svc := newToolService(vendor, &mockCleanup{}, allowAllLimiter{})

	_, err := svc.Execute(context.Background(), "compresspdf", map[string]interface{}{})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if apperrors.GetStatusCode(err) != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", apperrors.GetStatusCode(err))
	}
	if vendor.calls != 0 {
		t.Fatalf("expected no vendor call, got %d", vendor.calls)
	}
}

func TestExecuteEmptyRequiredField(t *testing.T) {
	vendor := &mockVendor{}
	svc := newToolService(vendor, &mockCleanup{}, allowAllLimiter{})

	_, err := svc.Execute(context.Background(), "rotatepdf", map[string]interface{}{
		"url":   sourceURL,
		"angle": "  ",
	})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if vendor.calls != 0 {
		t.Fatalf("expected no vendor call, got %d", vendor.calls)
	}
}

func TestExecuteUnknownOperation(t *testing.T) {
	vendor := &mockVendor{}
	svc := newToolService(vendor, &mockCleanup{}, allowAllLimiter{})

	_, err := svc.Execute(context.Background(), "nosuchtool", map[string]interface{}{"url": sourceURL})
	if apperrors.GetStatusCode(err) != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", apperrors.GetStatusCode(err))
	}
	if vendor.calls != 0 {
		t.Fatalf("expected no vendor call, got %d", vendor.calls)
	}
}

func TestExecuteRateLimited(t *testing.T) {
	vendor := &mockVendor{}
	svc := newToolService(vendor, &mockCleanup{}, denyLimiter{})

	_, err := svc.Execute(context.Background(), "compresspdf", map[string]interface{}{"url": sourceURL})
	if apperrors.GetStatusCode(err) != http.StatusTooManyRequests {
		t.Fatalf("expected status 429, got %d", apperrors.GetStatusCode(err))
	}
	if vendor.calls != 0 {
		t.Fatalf("expected no vendor call, got %d", vendor.calls)
	}
}

func TestExecuteSuccessCleansUpSource(t *testing.T) {
	vendor := &mockVendor{response: jsonOK(&domain.VendorResponse{URL: "https://vendor/out.pdf"})}
	cleanup := &mockCleanup{}
	svc := newToolService(vendor, cleanup, allowAllLimiter{})

	result, err := svc.Execute(context.Background(), "compresspdf", map[string]interface{}{"url": sourceURL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.URL != "https://vendor/out.pdf" {
		t.Fatalf("unexpected result url: %s", result.URL)
	}
	if len(cleanup.removed) != 1 || len(cleanup.removed[0]) != 1 || cleanup.removed[0][0] != sourceURL {
		t.Fatalf("expected one cleanup call for source, got %v", cleanup.removed)
	}
	if async, ok := vendor.payload["async"].(bool); !ok || async {
		t.Fatalf("expected async=false in vendor payload, got %v", vendor.payload["async"])
	}
}

func TestExecuteMergesDefaultsUnderCallerValues(t *testing.T) {
	vendor := &mockVendor{response: jsonOK(&domain.VendorResponse{URL: "https://vendor/out.pdf"})}
	svc := newToolService(vendor, &mockCleanup{}, allowAllLimiter{})

	_, err := svc.Execute(context.Background(), "addpassword", map[string]interface{}{
		"url":           sourceURL,
		"ownerPassword": "hunter2",
		"printQuality":  "HighResolution",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vendor.payload["encryptionAlgorithm"] != "AES_128bit" {
		t.Fatalf("expected default encryption algorithm, got %v", vendor.payload["encryptionAlgorithm"])
	}
	if vendor.payload["printQuality"] != "HighResolution" {
		t.Fatalf("expected caller value to win over default, got %v", vendor.payload["printQuality"])
	}
}

func TestExecuteSuccessWithoutURLFails(t *testing.T) {
	vendor := &mockVendor{response: jsonOK(&domain.VendorResponse{})}
	cleanup := &mockCleanup{}
	svc := newToolService(vendor, cleanup, allowAllLimiter{})

	_, err := svc.Execute(context.Background(), "compresspdf", map[string]interface{}{"url": sourceURL})
	if apperrors.GetStatusCode(err) != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", apperrors.GetStatusCode(err))
	}
	if len(cleanup.removed) != 0 {
		t.Fatalf("expected no cleanup on failure, got %v", cleanup.removed)
	}
}

func TestExecuteVendorLogicalError(t *testing.T) {
	vendor := &mockVendor{response: jsonOK(&domain.VendorResponse{Error: true, Message: "file is corrupted"})}
	svc := newToolService(vendor, &mockCleanup{}, allowAllLimiter{})

	_, err := svc.Execute(context.Background(), "compresspdf", map[string]interface{}{"url": sourceURL})
	appErr, ok := err.(*apperrors.AppError)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", appErr.StatusCode)
	}
	if appErr.Message != "file is corrupted" {
		t.Fatalf("expected vendor message, got %q", appErr.Message)
	}
}

func TestExecuteNonJSONVendorReply(t *testing.T) {
	vendor := &mockVendor{response: &domain.VendorResponse{
		StatusCode: http.StatusBadGateway,
		RawBody:    "upstream unavailable",
	}}
	svc := newToolService(vendor, &mockCleanup{}, allowAllLimiter{})

	_, err := svc.Execute(context.Background(), "compresspdf", map[string]interface{}{"url": sourceURL})
	appErr, ok := err.(*apperrors.AppError)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected mirrored vendor status 502, got %d", appErr.StatusCode)
	}
	if appErr.Message != "upstream unavailable" {
		t.Fatalf("expected raw vendor body as message, got %q", appErr.Message)
	}
}

func TestExecuteSplitByTextNotFound(t *testing.T) {
	vendor := &mockVendor{response: jsonOK(&domain.VendorResponse{URLs: []string{}})}
	cleanup := &mockCleanup{}
	svc := newToolService(vendor, cleanup, allowAllLimiter{})

	result, err := svc.Execute(context.Background(), "splitbytext", map[string]interface{}{
		"url":          sourceURL,
		"searchString": "invoice",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.NotFound {
		t.Fatalf("expected NotFound result")
	}
	if len(cleanup.removed) != 0 {
		t.Fatalf("expected no cleanup when nothing was produced, got %v", cleanup.removed)
	}
}

func TestExecuteMergeCleansUpEachDistinctSource(t *testing.T) {
	vendor := &mockVendor{response: jsonOK(&domain.VendorResponse{URL: "https://vendor/merged.pdf"})}
	cleanup := &mockCleanup{}
	svc := newToolService(vendor, cleanup, allowAllLimiter{})

	first := "https://x.supabase.co/storage/v1/object/public/server/uploads/1-a.pdf"
	second := "https://x.supabase.co/storage/v1/object/public/server/uploads/2-b.pdf"

	_, err := svc.Execute(context.Background(), "mergepdf", map[string]interface{}{
		"url": first + "," + second + "," + first,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cleanup.removed) != 1 {
		t.Fatalf("expected one cleanup call, got %d", len(cleanup.removed))
	}
	urls := cleanup.removed[0]
	if len(urls) != 2 || urls[0] != first || urls[1] != second {
		t.Fatalf("expected distinct sources %v, got %v", []string{first, second}, urls)
	}
}

func TestExecuteMergeAcceptsURLArray(t *testing.T) {
	vendor := &mockVendor{response: jsonOK(&domain.VendorResponse{URL: "https://vendor/merged.pdf"})}
	cleanup := &mockCleanup{}
	svc := newToolService(vendor, cleanup, allowAllLimiter{})

	first := "https://x.supabase.co/storage/v1/object/public/server/uploads/1-a.pdf"
	second := "https://x.supabase.co/storage/v1/object/public/server/uploads/2-b.pdf"

	_, err := svc.Execute(context.Background(), "mergepdf", map[string]interface{}{
		"url": []interface{}{first, second},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cleanup.removed) != 1 || len(cleanup.removed[0]) != 2 {
		t.Fatalf("expected cleanup of both sources, got %v", cleanup.removed)
	}
}

func TestExecuteVendorUnconfigured(t *testing.T) {
	vendor := &mockVendor{err: domain.ErrVendorUnconfigured}
	svc := newToolService(vendor, &mockCleanup{}, allowAllLimiter{})

	_, err := svc.Execute(context.Background(), "compresspdf", map[string]interface{}{"url": sourceURL})
	if apperrors.GetStatusCode(err) != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", apperrors.GetStatusCode(err))
	}
}

func TestOperationsListsRegistry(t *testing.T) {
	svc := newToolService(&mockVendor{}, &mockCleanup{}, allowAllLimiter{})

	ops := svc.Operations()
	if len(ops) != len(operationRegistry) {
		t.Fatalf("expected %d operations, got %d", len(operationRegistry), len(ops))
	}
	for i := 1; i < len(ops); i++ {
		if ops[i-1] >= ops[i] {
			t.Fatalf("expected sorted operation names, got %v", ops)
		}
	}
}
