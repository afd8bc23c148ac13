package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"bimsite/internal/auth"
	"bimsite/internal/config"
	"bimsite/internal/domain/repositories"
	"bimsite/internal/handler"
	"bimsite/internal/httputil"
	"bimsite/internal/middleware"
	"bimsite/internal/providers"
	"bimsite/internal/repository/postgres"
	"bimsite/internal/repository/sqlite"
	serviceAI "bimsite/internal/service/ai"
	serviceContent "bimsite/internal/service/content"
	"bimsite/internal/storage"
	"bimsite/internal/store"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
	)

	ctx := context.Background()

	// Pick the persistence backend: remote Postgres when DATABASE_URL is
	// set, embedded SQLite otherwise.
	var repo repositories.ContentRepository
	if cfg.DatabaseURL != "" {
		pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to create connection pool: %v", err)
		}
		repo = postgres.NewRepository(&postgres.RepositoryConfig{
			Pool:   pool,
			Tables: postgres.NewTableNames(cfg.TablePrefix),
			Logger: logger,
		})
		logger.Info("database connected", "backend", "postgres", "table_prefix", cfg.TablePrefix)
	} else {
		db, err := sqlite.Open(filepath.Join(cfg.DataDir, "content.db"))
		if err != nil {
			log.Fatalf("Failed to open sqlite database: %v", err)
		}
		repo = db
		logger.Info("database connected", "backend", "sqlite", "data_dir", cfg.DataDir)
	}
	defer repo.Close()

	// Hydrate the in-memory content store
	contentStore := store.New(repo, logger)
	if err := contentStore.Load(ctx); err != nil {
		log.Fatalf("Failed to load content: %v", err)
	}

	// Admin session tokens
	jwtSecret := cfg.JWTSecret
	if jwtSecret == "" {
		if cfg.Environment != "dev" {
			log.Fatalf("JWT_SECRET must be set outside dev")
		}
		jwtSecret = "dev-only-secret"
		logger.Warn("JWT_SECRET not set, using dev fallback")
	}
	tokens, err := auth.NewTokenManager(jwtSecret, cfg.TokenTTL, logger)
	if err != nil {
		log.Fatalf("Failed to create token manager: %v", err)
	}

	// Provider preset catalog
	registry, err := providers.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load provider catalog: %v", err)
	}

	// Upload storage
	files, err := storage.NewFileStore(cfg.DataDir, logger)
	if err != nil {
		log.Fatalf("Failed to create file store: %v", err)
	}

	// Services
	contentService := serviceContent.NewService(contentStore, logger)
	chatService := serviceAI.NewService(contentStore, cfg.ChatTimeout, logger)
	extractor := serviceAI.NewExtractor()

	// Handlers
	contentHandler := handler.NewContentHandler(contentService, logger)
	adminHandler := handler.NewAdminHandler(contentService, registry, logger)
	chatHandler := handler.NewChatHandler(chatService, logger)
	authHandler := handler.NewAuthHandler(cfg.AdminPassword, tokens, logger)
	uploadHandler := handler.NewUploadHandler(files, extractor, contentService, logger)
	eventsHandler := handler.NewEventsHandler(contentStore, logger)

	if cfg.AdminPassword == "" {
		logger.Warn("ADMIN_PASSWORD not set, admin login disabled")
	}

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Public content routes
	mux.HandleFunc("GET /api/content", contentHandler.GetAll)
	mux.HandleFunc("GET /api/content/project-info", contentHandler.GetProjectInfo)
	mux.HandleFunc("GET /api/content/highlights", contentHandler.GetHighlights)
	mux.HandleFunc("GET /api/content/highlights/{id}", contentHandler.GetHighlight)
	mux.HandleFunc("GET /api/content/achievements", contentHandler.GetAchievements)
	mux.HandleFunc("GET /api/content/team-members", contentHandler.GetTeamMembers)
	mux.HandleFunc("GET /api/content/team-tree", contentHandler.GetTeamTree)
	mux.HandleFunc("GET /api/content/location-slides", contentHandler.GetLocationSlides)
	mux.HandleFunc("GET /api/content/site-slides", contentHandler.GetSiteSlides)
	mux.HandleFunc("GET /api/content/hero-videos", contentHandler.GetHeroVideos)
	mux.HandleFunc("GET /api/content/participating-units", contentHandler.GetParticipatingUnits)
	mux.HandleFunc("GET /api/content/events", eventsHandler.Stream)

	// Visitor chat
	mux.HandleFunc("POST /api/chat", chatHandler.Chat)

	// Admin login
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Admin routes, wrapped with the bearer token guard
	admin := http.NewServeMux()
	admin.HandleFunc("PUT /api/admin/project-info", adminHandler.UpdateProjectInfo)
	admin.HandleFunc("PUT /api/admin/highlights", adminHandler.SaveHighlight)
	admin.HandleFunc("DELETE /api/admin/highlights/{id}", adminHandler.DeleteHighlight)
	admin.HandleFunc("PUT /api/admin/achievements", adminHandler.SaveAchievement)
	admin.HandleFunc("DELETE /api/admin/achievements/{id}", adminHandler.DeleteAchievement)
	admin.HandleFunc("PUT /api/admin/team-members", adminHandler.SaveTeamMember)
	admin.HandleFunc("DELETE /api/admin/team-members/{id}", adminHandler.DeleteTeamMember)
	admin.HandleFunc("PUT /api/admin/location-slides", adminHandler.SaveLocationSlide)
	admin.HandleFunc("DELETE /api/admin/location-slides/{id}", adminHandler.DeleteLocationSlide)
	admin.HandleFunc("PUT /api/admin/site-slides", adminHandler.SaveSiteSlide)
	admin.HandleFunc("DELETE /api/admin/site-slides/{id}", adminHandler.DeleteSiteSlide)
	admin.HandleFunc("PUT /api/admin/hero-videos", adminHandler.SaveHeroVideo)
	admin.HandleFunc("DELETE /api/admin/hero-videos/{id}", adminHandler.DeleteHeroVideo)
	admin.HandleFunc("PUT /api/admin/participating-units", adminHandler.SaveParticipatingUnit)
	admin.HandleFunc("DELETE /api/admin/participating-units/{id}", adminHandler.DeleteParticipatingUnit)
	admin.HandleFunc("GET /api/admin/ai-config", adminHandler.GetAIConfig)
	admin.HandleFunc("PUT /api/admin/ai-config", adminHandler.UpdateAIConfig)
	admin.HandleFunc("GET /api/admin/ai-providers", adminHandler.ListProviders)
	admin.HandleFunc("POST /api/admin/knowledge-documents", uploadHandler.UploadKnowledgeDocuments)
	admin.HandleFunc("DELETE /api/admin/knowledge-documents/{id}", adminHandler.DeleteKnowledgeDocument)
	admin.HandleFunc("POST /api/admin/uploads", uploadHandler.UploadMedia)
	mux.Handle("/api/admin/", middleware.RequireAdmin(tokens)(admin))

	// Uploaded media
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(files.Root()))))

	// Build middleware chain
	var root http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → Routes
	root = middleware.Recovery(logger)(root)

	// CORS - Must be outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization", "Last-Event-ID"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // Disabled to allow long-lived SSE streams
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
