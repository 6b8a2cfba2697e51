package config

import "testing"

const defaultMaxFileSize int64 = 50 * 1024 * 1024

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("MAX_FILE_SIZE", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_ANON_KEY", "")
	t.Setenv("STORAGE_BUCKET", "")
	t.Setenv("PDF_API_KEY", "")
	t.Setenv("PDF_API_BASE_URL", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("SESSION_MAX_AGE", "")
	t.Setenv("MAX_JOB_POLLS", "")
	t.Setenv("VENDOR_RATE_MAX", "")
	t.Setenv("VENDOR_RATE_WINDOW_SECONDS", "")

	cfg := NewConfig()

	if cfg.GetServerPort() != "8080" {
		t.Fatalf("expected default server port 8080, got %s", cfg.GetServerPort())
	}
	if cfg.GetMaxFileSize() != defaultMaxFileSize {
		t.Fatalf("expected default max file size %d, got %d", defaultMaxFileSize, cfg.GetMaxFileSize())
	}
	if cfg.GetLogLevel() != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.GetLogLevel())
	}
	if cfg.GetStorageBucket() != "server" {
		t.Fatalf("expected default storage bucket server, got %s", cfg.GetStorageBucket())
	}
	if cfg.GetVendorAPIKey() != "" {
		t.Fatalf("expected default vendor api key empty, got %s", cfg.GetVendorAPIKey())
	}
	if cfg.GetVendorBaseURL() != "https://api.pdf.co" {
		t.Fatalf("expected default vendor base url, got %s", cfg.GetVendorBaseURL())
	}
	if cfg.GetJWTSecret() != "your-secret-key-change-in-production" {
		t.Fatalf("expected default jwt secret, got %s", cfg.GetJWTSecret())
	}
	if cfg.GetSessionMaxAge() != 7*24*60*60 {
		t.Fatalf("expected default session max age of seven days, got %d", cfg.GetSessionMaxAge())
	}
	if cfg.GetMaxJobPolls() != 120 {
		t.Fatalf("expected default job poll cap 120, got %d", cfg.GetMaxJobPolls())
	}
	if cfg.GetVendorRateMax() != 60 {
		t.Fatalf("expected default vendor rate max 60, got %d", cfg.GetVendorRateMax())
	}
	if cfg.GetVendorRateWindowSeconds() != 60 {
		t.Fatalf("expected default vendor rate window 60, got %d", cfg.GetVendorRateWindowSeconds())
	}
	if cfg.IsProduction() {
		t.Fatal("expected development mode by default")
	}
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("MAX_FILE_SIZE", "12345")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SUPABASE_URL", "http://localhost:54321")
	t.Setenv("SUPABASE_ANON_KEY", "test-key")
	t.Setenv("STORAGE_BUCKET", "files")
	t.Setenv("PDF_API_KEY", "vendor-key")
	t.Setenv("PDF_API_BASE_URL", "http://localhost:9999")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("SESSION_MAX_AGE", "3600")
	t.Setenv("MAX_JOB_POLLS", "5")
	t.Setenv("VENDOR_RATE_MAX", "10")
	t.Setenv("VENDOR_RATE_WINDOW_SECONDS", "30")

	cfg := NewConfig()

	if cfg.GetServerPort() != "9090" {
		t.Fatalf("expected server port 9090, got %s", cfg.GetServerPort())
	}
	if cfg.GetMaxFileSize() != 12345 {
		t.Fatalf("expected max file size 12345, got %d", cfg.GetMaxFileSize())
	}
	if cfg.GetLogLevel() != "debug" {
		t.Fatalf("expected log level debug, got %s", cfg.GetLogLevel())
	}
	if cfg.GetSupabaseURL() != "http://localhost:54321" {
		t.Fatalf("expected supabase url http://localhost:54321, got %s", cfg.GetSupabaseURL())
	}
	if cfg.GetSupabaseKey() != "test-key" {
		t.Fatalf("expected supabase key test-key, got %s", cfg.GetSupabaseKey())
	}
	if cfg.GetStorageBucket() != "files" {
		t.Fatalf("expected storage bucket files, got %s", cfg.GetStorageBucket())
	}
	if cfg.GetVendorAPIKey() != "vendor-key" {
		t.Fatalf("expected vendor api key vendor-key, got %s", cfg.GetVendorAPIKey())
	}
	if cfg.GetVendorBaseURL() != "http://localhost:9999" {
		t.Fatalf("expected vendor base url http://localhost:9999, got %s", cfg.GetVendorBaseURL())
	}
	if cfg.GetJWTSecret() != "secret" {
		t.Fatalf("expected jwt secret secret, got %s", cfg.GetJWTSecret())
	}
	if cfg.GetSessionMaxAge() != 3600 {
		t.Fatalf("expected session max age 3600, got %d", cfg.GetSessionMaxAge())
	}
	if cfg.GetMaxJobPolls() != 5 {
		t.Fatalf("expected job poll cap 5, got %d", cfg.GetMaxJobPolls())
	}
	if cfg.GetVendorRateMax() != 10 {
		t.Fatalf("expected vendor rate max 10, got %d", cfg.GetVendorRateMax())
	}
	if cfg.GetVendorRateWindowSeconds() != 30 {
		t.Fatalf("expected vendor rate window 30, got %d", cfg.GetVendorRateWindowSeconds())
	}
	if !cfg.IsProduction() {
		t.Fatal("expected production mode")
	}
}

func TestNewConfig_Fallbacks(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SERVER_PORT", "9091")
	t.Setenv("MAX_FILE_SIZE", "not-a-number")
	t.Setenv("MAX_JOB_POLLS", "not-a-number")

	cfg := NewConfig()

	if cfg.GetServerPort() != "9091" {
		t.Fatalf("expected server port 9091, got %s", cfg.GetServerPort())
	}
	if cfg.GetMaxFileSize() != defaultMaxFileSize {
		t.Fatalf("expected default max file size %d, got %d", defaultMaxFileSize, cfg.GetMaxFileSize())
	}
	if cfg.GetMaxJobPolls() != 120 {
		t.Fatalf("expected default job poll cap 120, got %d", cfg.GetMaxJobPolls())
	}
}
