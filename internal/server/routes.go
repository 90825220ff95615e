package server

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dsanotes/internal/db"
	"dsanotes/internal/email"
	"dsanotes/internal/handlers"
	"dsanotes/internal/handlers/api"
	"dsanotes/internal/middleware"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(ctx context.Context, database *db.DB, notifier *email.Notifier) error {
	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(s.Cfg)

	// Initialize handlers
	noteHandler := api.NewNoteHandler(database, s.Cfg)
	linkHandler := api.NewLinkHandler(database, s.Cfg)
	suggestionHandler := api.NewSuggestionHandler(database, notifier)
	progressHandler := api.NewProgressHandler(database)
	userHandler := api.NewUserHandler(database)
	healthHandler := api.NewHealthHandler(database)

	// Auth routes - only wired when OIDC is configured. Without it the
	// whole API runs visitor-only, which is enough for local development.
	if s.Cfg.OIDCIssuer != "" {
		authHandler, err := handlers.NewAuthHandler(ctx, s.Cfg, database)
		if err != nil {
			return err
		}

		s.App.Get("/auth/login", authHandler.Login)
		s.App.Get("/auth/callback", authHandler.Callback)
		s.App.Get("/auth/logout", authHandler.Logout)
	} else {
		log.Println("OIDC authentication is disabled. Set OIDC_ISSUER to enable.")
	}

	apiGroup := s.App.Group("/api", authMiddleware.OptionalAuth)

	// Notes: reads are public, writes are admin-only
	apiGroup.Get("/notes", noteHandler.List)
	apiGroup.Get("/notes/:id", noteHandler.Get)
	apiGroup.Post("/notes", authMiddleware.RequireAdmin, noteHandler.Create)
	apiGroup.Put("/notes/:id", authMiddleware.RequireAdmin, noteHandler.Update)
	apiGroup.Delete("/notes/:id", authMiddleware.RequireAdmin, noteHandler.Delete)
	apiGroup.Post("/notes/migrate-difficulty", authMiddleware.RequireAdmin, noteHandler.MigrateDifficulty)
	apiGroup.Post("/seed-notes", authMiddleware.RequireAdmin, noteHandler.Seed)

	// Links: reads are public, writes are admin-only
	apiGroup.Get("/links", linkHandler.List)
	apiGroup.Post("/links", authMiddleware.RequireAdmin, linkHandler.Create)
	apiGroup.Put("/links/:id", authMiddleware.RequireAdmin, linkHandler.Update)
	apiGroup.Delete("/links/:id", authMiddleware.RequireAdmin, linkHandler.Delete)
	apiGroup.Post("/seed-links", authMiddleware.RequireAdmin, linkHandler.Seed)

	// Suggestions: anyone may submit, only admins review
	apiGroup.Post("/suggestions", suggestionHandler.Submit)
	apiGroup.Get("/suggestions", authMiddleware.RequireAdmin, suggestionHandler.ListPending)
	apiGroup.Post("/suggestions/:id/resolve", authMiddleware.RequireAdmin, suggestionHandler.Resolve)

	// Progress requires a signed-in user
	apiGroup.Get("/progress", authMiddleware.RequireAuth, progressHandler.Get)
	apiGroup.Post("/progress", authMiddleware.RequireAuth, progressHandler.SetCompletion)

	// User registry (admin only)
	apiGroup.Get("/users", authMiddleware.RequireAdmin, userHandler.List)

	// Operational endpoints
	s.App.Get("/healthz", healthHandler.Check)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return nil
}
