package handler

import (
	"net/http"

	"pdf-tools-server/internal/config"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()

	router.Use(RequestIDMiddleware)
	router.Use(RecoveryMiddleware(container.Logger))

	// Health check endpoint (no auth required)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"pdf-tools-server"}`))
	}).Methods("GET")

	// API prefix
	api := router.PathPrefix("/api").Subrouter()

	// Initialize handlers
	toolHandler := NewToolHandler(container.ToolService, container.Logger)
	jobHandler := NewJobHandler(container.JobService, container.Logger)
	uploadHandler := NewUploadHandler(container.StorageService, container.Config.GetMaxFileSize(), container.Logger)
	articleHandler := NewArticleHandler(container.ArticleRepository, container.Logger)
	authHandler := NewAuthHandler(container.SupabaseClient, container.SessionService, container.Config, container.Logger)

	// Auth cookie routes
	api.HandleFunc("/auth/set-cookie", authHandler.SetCookie).Methods("POST")
	api.HandleFunc("/auth/clear-cookie", authHandler.ClearCookie).Methods("POST")

	// Upload and async job routes
	api.HandleFunc("/upload", uploadHandler.Upload).Methods("POST")
	api.HandleFunc("/aiinvoiceparser", jobHandler.Submit).Methods("POST")
	api.HandleFunc("/aiinvoiceparser", jobHandler.Poll).Methods("GET")

	// Public blog reads
	api.HandleFunc("/articles", articleHandler.List).Methods("GET")
	api.HandleFunc("/articles/{slug}", articleHandler.GetBySlug).Methods("GET")

	// Blog mutations require a valid session cookie
	sessionMiddleware := SessionMiddleware(container.SessionService, container.Logger)
	admin := api.PathPrefix("/articles").Subrouter()
	admin.Use(sessionMiddleware)
	admin.HandleFunc("", articleHandler.Create).Methods("POST")
	admin.HandleFunc("/{id}", articleHandler.Update).Methods("PUT")
	admin.HandleFunc("/{id}", articleHandler.Delete).Methods("DELETE")

	// Generic per-operation proxy; must be registered after the named routes
	api.HandleFunc("/{operation}", toolHandler.Execute).Methods("POST")

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:3000", // Next.js dev server
			"http://localhost:3001", // Alternative dev port
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-Request-ID",
		},
		ExposedHeaders: []string{
			"X-Request-ID",
		},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
