package domain

import (
	"context"
	"io"
)

// UploadResult describes a stored source file.
type UploadResult struct {
	// Path is the bucket-relative object key, e.g. "uploads/1693400000000-doc.pdf".
	Path string `json:"path"`
	// URL is the public URL clients hand to the proxy operations.
	URL string `json:"url"`
}

// StorageService abstracts the object storage backend holding uploaded source files.
type StorageService interface {
	Upload(ctx context.Context, path string, contentType string, file io.Reader) (*UploadResult, error)
	Remove(ctx context.Context, path string) error
	PublicURL(path string) string
}
