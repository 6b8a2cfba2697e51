package config

import (
	"os"
	"strconv"

	"pdf-tools-server/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort        string
	LogLevel          string
	MaxFileSize       int64
	Environment       string
	SupabaseURL       string
	SupabaseKey       string
	StorageBucket     string
	VendorAPIKey      string
	VendorBaseURL     string
	JWTSecret         string
	SessionMaxAge     int
	MaxJobPolls       int
	VendorRateMax     int
	VendorRateWindowS int
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:        getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		LogLevel:          getEnvOrDefault("LOG_LEVEL", "info"),
		MaxFileSize:       getEnvInt64OrDefault("MAX_FILE_SIZE", 50*1024*1024), // 50MB default
		Environment:       getEnvOrDefault("APP_ENV", "development"),
		SupabaseURL:       getEnvOrDefault("SUPABASE_URL", ""),
		SupabaseKey:       getEnvOrDefault("SUPABASE_ANON_KEY", ""),
		StorageBucket:     getEnvOrDefault("STORAGE_BUCKET", "server"),
		VendorAPIKey:      getEnvOrDefault("PDF_API_KEY", ""),
		VendorBaseURL:     getEnvOrDefault("PDF_API_BASE_URL", "https://api.pdf.co"),
		JWTSecret:         getEnvOrDefault("JWT_SECRET", "your-secret-key-change-in-production"),
		SessionMaxAge:     getEnvIntOrDefault("SESSION_MAX_AGE", 7*24*60*60), // 7 days
		MaxJobPolls:       getEnvIntOrDefault("MAX_JOB_POLLS", 120),
		VendorRateMax:     getEnvIntOrDefault("VENDOR_RATE_MAX", 60),
		VendorRateWindowS: getEnvIntOrDefault("VENDOR_RATE_WINDOW_SECONDS", 60),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetMaxFileSize returns the maximum allowed upload size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetSupabaseURL returns the Supabase URL
func (c *AppConfig) GetSupabaseURL() string {
	return c.SupabaseURL
}

// GetSupabaseKey returns the Supabase anon key
func (c *AppConfig) GetSupabaseKey() string {
	return c.SupabaseKey
}

// GetStorageBucket returns the storage bucket holding uploaded source files
func (c *AppConfig) GetStorageBucket() string {
	return c.StorageBucket
}

// GetVendorAPIKey returns the vendor PDF API key
func (c *AppConfig) GetVendorAPIKey() string {
	return c.VendorAPIKey
}

// GetVendorBaseURL returns the vendor PDF API base URL
func (c *AppConfig) GetVendorBaseURL() string {
	return c.VendorBaseURL
}

// GetJWTSecret returns the session signing secret
func (c *AppConfig) GetJWTSecret() string {
	return c.JWTSecret
}

// GetSessionMaxAge returns the session cookie lifetime in seconds
func (c *AppConfig) GetSessionMaxAge() int {
	return c.SessionMaxAge
}

// GetMaxJobPolls returns the per-job cap on vendor status polls
func (c *AppConfig) GetMaxJobPolls() int {
	return c.MaxJobPolls
}

// GetVendorRateMax returns the max outbound vendor calls per window per operation
func (c *AppConfig) GetVendorRateMax() int {
	return c.VendorRateMax
}

// GetVendorRateWindowSeconds returns the rate limit window length
func (c *AppConfig) GetVendorRateWindowSeconds() int {
	return c.VendorRateWindowS
}

// IsProduction reports whether the app runs in production mode
func (c *AppConfig) IsProduction() bool {
	return c.Environment == "production"
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
