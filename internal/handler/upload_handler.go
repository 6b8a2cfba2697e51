package handler

import (
	"net/http"
	"time"

	"pdf-tools-server/internal/domain"
	"pdf-tools-server/internal/service"
)

// UploadHandler accepts multipart source-file uploads and stores them under
// a timestamped key in the public bucket.
type UploadHandler struct {
	storage     domain.StorageService
	maxFileSize int64
	logger      domain.Logger
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(storage domain.StorageService, maxFileSize int64, logger domain.Logger) *UploadHandler {
	return &UploadHandler{
		storage:     storage,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// Upload handles POST /api/upload
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)

	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	if header.Size > h.maxFileSize {
		writeError(w, http.StatusRequestEntityTooLarge, "File too large")
		return
	}

	key := service.UploadKey(header.Filename, time.Now())
	contentType := header.Header.Get("Content-Type")

	result, err := h.storage.Upload(r.Context(), key, contentType, file)
	if err != nil {
		h.logger.Error("Upload failed", err, "key", key)
		writeError(w, http.StatusInternalServerError, "Failed to store file")
		return
	}

	h.logger.Info("Stored upload", "path", result.Path, "size", header.Size)

	writeJSON(w, http.StatusOK, struct {
		Error bool   `json:"error"`
		URL   string `json:"url"`
		Path  string `json:"path"`
	}{
		URL:  result.URL,
		Path: result.Path,
	})
}
