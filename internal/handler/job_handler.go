package handler

import (
	"encoding/json"
	"net/http"

	"pdf-tools-server/internal/domain"
)

// JobHandler drives the asynchronous invoice-parser flow: POST submits a
// vendor job, GET answers the client's polling loop.
type JobHandler struct {
	jobs   domain.JobService
	logger domain.Logger
}

// NewJobHandler creates a new job handler
func NewJobHandler(jobs domain.JobService, logger domain.Logger) *JobHandler {
	return &JobHandler{
		jobs:   jobs,
		logger: logger,
	}
}

// Submit handles POST /api/aiinvoiceparser
func (h *JobHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var body struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	submission, err := h.jobs.Submit(r.Context(), body.URL)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Error       bool   `json:"error"`
		JobID       string `json:"jobId"`
		OriginalURL string `json:"originalUrl"`
	}{
		JobID:       submission.JobID,
		OriginalURL: submission.OriginalURL,
	})
}

// Poll handles GET /api/aiinvoiceparser?jobId=...&originalUrl=...
func (h *JobHandler) Poll(w http.ResponseWriter, r *http.Request) {
	jobID := r.URL.Query().Get("jobId")
	originalURL := r.URL.Query().Get("originalUrl")

	status, err := h.jobs.Poll(r.Context(), jobID, originalURL)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Error   bool            `json:"error"`
		Status  string          `json:"status"`
		URL     string          `json:"url,omitempty"`
		Body    json.RawMessage `json:"body,omitempty"`
		Message string          `json:"message,omitempty"`
	}{
		Error:   status.Status == domain.JobStatusTimeout,
		Status:  status.Status,
		URL:     status.URL,
		Body:    status.Body,
		Message: status.Message,
	})
}
