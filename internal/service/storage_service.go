package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"pdf-tools-server/internal/domain"
)

// SupabaseStorage talks to the Supabase storage REST API for the bucket
// holding uploaded source files.
type SupabaseStorage struct {
	baseURL string
	apiKey  string
	bucket  string
	client  *http.Client
	logger  domain.Logger
}

// NewStorageService creates a storage service bound to the configured bucket.
func NewStorageService(config domain.Config, logger domain.Logger) *SupabaseStorage {
	return &SupabaseStorage{
		baseURL: strings.TrimRight(config.GetSupabaseURL(), "/"),
		apiKey:  config.GetSupabaseKey(),
		bucket:  config.GetStorageBucket(),
		client:  http.DefaultClient,
		logger:  logger,
	}
}

// Upload stores a file under the given bucket-relative path. Existing objects
// are never overwritten (the storage API rejects duplicate keys by default).
func (s *SupabaseStorage) Upload(
	ctx context.Context,
	path string,
	contentType string,
	file io.Reader,
) (*domain.UploadResult, error) {

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.baseURL+"/storage/v1/object/"+s.bucket+"/"+path,
		file,
	)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("storage upload failed: %d %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return &domain.UploadResult{
		Path: path,
		URL:  s.PublicURL(path),
	}, nil
}

// Remove deletes one object by its bucket-relative path. Deleting a missing
// key is reported as an error by the storage API; callers treat removal as
// best effort and decide what to do with it.
func (s *SupabaseStorage) Remove(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodDelete,
		s.baseURL+"/storage/v1/object/"+s.bucket+"/"+path,
		nil,
	)
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("storage delete failed: %d %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

// PublicURL returns the public download URL for a stored object.
func (s *SupabaseStorage) PublicURL(path string) string {
	return s.baseURL + "/storage/v1/object/public/" + s.bucket + "/" + path
}
