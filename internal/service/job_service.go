package service

import (
	"context"
	"sync"
	"time"

	"pdf-tools-server/internal/domain"
	apperrors "pdf-tools-server/pkg/errors"
)

// The vendor requires a callback URL on job creation, but job completion is
// observed purely by client polling; the webhook is never received.
const placeholderCallbackURL = "https://example.com/callback"

const jobEntryTTL = time.Hour

type jobEntry struct {
	polls    int
	lastSeen time.Time
}

// InvoiceJobService drives the asynchronous invoice-parser flow: submit a
// vendor job, then answer client polls against the vendor's job-check
// endpoint. Poll counts are capped server-side so an abandoned or stuck job
// cannot be polled forever.
type InvoiceJobService struct {
	vendor   domain.VendorClient
	cleanup  domain.CleanupService
	maxPolls int
	logger   domain.Logger

	mu   sync.Mutex
	jobs map[string]*jobEntry
}

// NewJobService creates the invoice-parser job service.
func NewJobService(
	vendor domain.VendorClient,
	cleanup domain.CleanupService,
	maxPolls int,
	logger domain.Logger,
) *InvoiceJobService {
	s := &InvoiceJobService{
		vendor:   vendor,
		cleanup:  cleanup,
		maxPolls: maxPolls,
		logger:   logger,
		jobs:     make(map[string]*jobEntry),
	}
	go s.pruneLoop()
	return s
}

func (s *InvoiceJobService) pruneLoop() {
	ticker := time.NewTicker(jobEntryTTL)
	for range ticker.C {
		cutoff := time.Now().Add(-jobEntryTTL)
		s.mu.Lock()
		for id, entry := range s.jobs {
			if entry.lastSeen.Before(cutoff) {
				delete(s.jobs, id)
			}
		}
		s.mu.Unlock()
	}
}

// Submit creates a vendor parsing job for the uploaded invoice.
func (s *InvoiceJobService) Submit(ctx context.Context, url string) (*domain.JobSubmission, error) {
	if url == "" {
		return nil, apperrors.NewValidationError("url is required")
	}

	payload := map[string]interface{}{
		"url":      url,
		"async":    true,
		"callback": placeholderCallbackURL,
	}

	resp, err := s.vendor.Call(ctx, invoiceParserEndpoint, payload)
	if err != nil {
		if err == domain.ErrVendorUnconfigured {
			return nil, apperrors.NewInternalError("PDF API key is not configured", err)
		}
		s.logger.Error("Invoice job submission failed", err)
		return nil, apperrors.NewInternalError("Internal server error", err)
	}

	if !resp.IsJSON {
		return nil, apperrors.NewVendorRawError(resp.RawBody, resp.StatusCode)
	}
	if !resp.Ok() || resp.JobID == "" {
		message := resp.Message
		if message == "" {
			message = "Failed to start invoice parsing job"
		}
		return nil, apperrors.NewVendorError(message, resp.StatusCode)
	}

	s.logger.Info("Invoice parsing job submitted", "jobId", resp.JobID)
	return &domain.JobSubmission{JobID: resp.JobID, OriginalURL: url}, nil
}

// Poll checks one job against the vendor. On vendor status "success" the
// original upload is deleted (once) and the result forwarded. Any other
// status is forwarded untouched so the client decides whether to keep
// polling, except past the poll cap, where a terminal timeout is reported.
func (s *InvoiceJobService) Poll(ctx context.Context, jobID string, originalURL string) (*domain.JobStatus, error) {
	if jobID == "" {
		return nil, apperrors.NewValidationError("jobId is required")
	}

	if s.exhausted(jobID) {
		s.forget(jobID)
		return &domain.JobStatus{
			Status:  domain.JobStatusTimeout,
			Message: "Job polling limit reached, please retry the upload",
		}, nil
	}

	resp, err := s.vendor.Call(ctx, jobCheckEndpoint, map[string]interface{}{"jobid": jobID})
	if err != nil {
		if err == domain.ErrVendorUnconfigured {
			return nil, apperrors.NewInternalError("PDF API key is not configured", err)
		}
		s.logger.Error("Job status check failed", err, "jobId", jobID)
		return nil, apperrors.NewInternalError("Internal server error", err)
	}

	if !resp.IsJSON {
		return nil, apperrors.NewVendorRawError(resp.RawBody, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := resp.Message
		if message == "" {
			message = "Failed to check job status"
		}
		return nil, apperrors.NewVendorError(message, resp.StatusCode)
	}

	status := &domain.JobStatus{
		Status:  resp.Status,
		URL:     resp.URL,
		Body:    resp.Body,
		Message: resp.Message,
	}

	if resp.Status == domain.JobStatusSuccess {
		s.forget(jobID)
		if originalURL != "" {
			s.cleanup.Remove(ctx, originalURL)
		}
	}

	return status, nil
}

// exhausted increments the per-job poll counter and reports whether the cap
// has been passed.
func (s *InvoiceJobService) exhausted(jobID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.jobs[jobID]
	if !ok {
		entry = &jobEntry{}
		s.jobs[jobID] = entry
	}
	entry.polls++
	entry.lastSeen = time.Now()
	return entry.polls > s.maxPolls
}

func (s *InvoiceJobService) forget(jobID string) {
	s.mu.Lock()
	delete(s.jobs, jobID)
	s.mu.Unlock()
}
