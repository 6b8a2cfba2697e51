package domain

import "errors"

// Domain errors
var (
	ErrArticleNotFound    = errors.New("article not found")
	ErrSlugAlreadyExists  = errors.New("slug already exists")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidFile        = errors.New("invalid file")
	ErrRateLimited        = errors.New("rate limit exceeded")
	ErrVendorUnconfigured = errors.New("vendor API key not configured")
)

// ValidationError represents a validation error with field and message information.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}
