package domain

import "context"

// VendorClient issues calls against the third-party PDF processing API.
// The vendor is an opaque collaborator; this client only moves JSON and
// parses the reply envelope, it never interprets PDF content.
type VendorClient interface {
	Call(ctx context.Context, endpoint string, payload map[string]interface{}) (*VendorResponse, error)
}

// ToolService runs one registered PDF operation end to end: validation,
// vendor call, response normalization and source-file cleanup.
type ToolService interface {
	Execute(ctx context.Context, operation string, body map[string]interface{}) (*ToolResult, error)
	Operations() []string
}

// JobService drives the asynchronous vendor job flow (AI invoice parsing).
type JobService interface {
	Submit(ctx context.Context, url string) (*JobSubmission, error)
	Poll(ctx context.Context, jobID string, originalURL string) (*JobStatus, error)
}

// CleanupService deletes uploaded source files after successful processing.
// Best effort: failures are logged, never propagated.
type CleanupService interface {
	Remove(ctx context.Context, urls ...string)
}

// ArticleRepository persists blog articles.
type ArticleRepository interface {
	List(ctx context.Context) ([]*Article, error)
	GetBySlug(ctx context.Context, slug string) (*Article, error)
	Create(ctx context.Context, article *Article) (*Article, error)
	Update(ctx context.Context, id string, article *Article) (*Article, error)
	Delete(ctx context.Context, id string) error
}

// SessionService issues and verifies the signed first-party session cookie value.
type SessionService interface {
	Issue(user *SupabaseUser) (string, error)
	Verify(token string) (*Session, error)
}

// SupabaseClient wraps the managed auth/storage/database backend.
type SupabaseClient interface {
	Initialize() error
	ValidateToken(token string) (*SupabaseUser, error)
}

// Limiter bounds the rate of outbound vendor calls per key.
type Limiter interface {
	Allow(key string) bool
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetLogLevel() string
	GetMaxFileSize() int64
	GetSupabaseURL() string
	GetSupabaseKey() string
	GetStorageBucket() string
	GetVendorAPIKey() string
	GetVendorBaseURL() string
	GetJWTSecret() string
	GetSessionMaxAge() int
	GetMaxJobPolls() int
	GetVendorRateMax() int
	GetVendorRateWindowSeconds() int
	IsProduction() bool
}
