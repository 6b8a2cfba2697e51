package config

import (
	"time"

	"pdf-tools-server/internal/domain"
	"pdf-tools-server/internal/repository"
	"pdf-tools-server/internal/service"
	"pdf-tools-server/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config            domain.Config
	Logger            domain.Logger
	SupabaseClient    *repository.SupabaseClient
	StorageService    domain.StorageService
	ArticleRepository domain.ArticleRepository
	VendorClient      domain.VendorClient
	VendorLimiter     domain.Limiter
	CleanupService    domain.CleanupService
	ToolService       domain.ToolService
	JobService        domain.JobService
	SessionService    domain.SessionService
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	// Supabase-backed collaborators
	supabaseClient := repository.NewSupabaseClient(config, appLogger)
	if err := supabaseClient.Initialize(); err != nil {
		appLogger.Warn("Supabase client not initialized; auth and storage calls will fail", "reason", err.Error())
	}
	storageService := service.NewStorageService(config, appLogger)
	articleRepo := repository.NewArticleRepository(supabaseClient, appLogger)

	// Vendor proxy pipeline
	vendorClient := service.NewVendorClient(config, appLogger)
	vendorLimiter := service.NewSlidingLimiter(
		config.GetVendorRateMax(),
		time.Duration(config.GetVendorRateWindowSeconds())*time.Second,
	)
	cleanupService := service.NewCleanupService(storageService, config.GetStorageBucket(), appLogger)
	toolService := service.NewToolService(vendorClient, cleanupService, vendorLimiter, appLogger)
	jobService := service.NewJobService(vendorClient, cleanupService, config.GetMaxJobPolls(), appLogger)

	sessionService := service.NewSessionService(config.GetJWTSecret(), config.GetSessionMaxAge())

	return &Container{
		Config:            config,
		Logger:            appLogger,
		SupabaseClient:    supabaseClient,
		StorageService:    storageService,
		ArticleRepository: articleRepo,
		VendorClient:      vendorClient,
		VendorLimiter:     vendorLimiter,
		CleanupService:    cleanupService,
		ToolService:       toolService,
		JobService:        jobService,
		SessionService:    sessionService,
	}
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}
