package service

import (
	"context"
	"net/url"
	"strings"

	"pdf-tools-server/internal/domain"
)

// StorageKeyFromPublicURL recovers the bucket-relative object key from a
// public storage URL. The key is everything after the bucket's path segment,
// e.g. ".../object/public/server/uploads/1-doc.pdf" -> "uploads/1-doc.pdf".
// The second return value is false when the URL does not point into the bucket.
func StorageKeyFromPublicURL(rawURL string, bucket string) (string, bool) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", false
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	for i, segment := range segments {
		if segment == bucket && i+1 < len(segments) {
			key := strings.Join(segments[i+1:], "/")
			if key == "" {
				return "", false
			}
			return key, true
		}
	}
	return "", false
}

// StorageCleanup deletes uploaded source files after successful processing.
// Best effort, at most once per URL: every failure is logged and swallowed,
// never surfaced to the request that triggered it.
type StorageCleanup struct {
	storage domain.StorageService
	bucket  string
	logger  domain.Logger
}

// NewCleanupService creates the shared cleanup component.
func NewCleanupService(storage domain.StorageService, bucket string, logger domain.Logger) *StorageCleanup {
	return &StorageCleanup{
		storage: storage,
		bucket:  bucket,
		logger:  logger,
	}
}

// Remove deletes each source file referenced by the given public URLs,
// continuing past individual failures.
func (c *StorageCleanup) Remove(ctx context.Context, urls ...string) {
	for _, raw := range urls {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		key, ok := StorageKeyFromPublicURL(raw, c.bucket)
		if !ok {
			c.logger.Warn("Skipping cleanup for URL outside storage bucket", "url", raw)
			continue
		}
		if err := c.storage.Remove(ctx, key); err != nil {
			c.logger.Warn("Failed to delete source file", "path", key, "reason", err.Error())
			continue
		}
		c.logger.Debug("Deleted source file", "path", key)
	}
}
