package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"dsanotes/internal/config"
	"dsanotes/internal/db"
	"dsanotes/internal/email"
	"dsanotes/internal/jobs"
	"dsanotes/internal/metrics"
	"dsanotes/internal/server"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	// Register content metrics
	metrics.Init(database)

	// Email notifications (no-op unless SMTP is configured)
	notifier := email.NewNotifier(email.NewService(cfg), cfg)

	// Initialize server and routes
	srv := server.New(cfg)
	if err := srv.RegisterRoutes(ctx, database, notifier); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	// Background link health checker
	if cfg.LinkCheckInterval > 0 {
		checker := jobs.NewLinkChecker(database, cfg.LinkCheckInterval, cfg.LinkCheckMaxAge)
		go checker.Start(ctx)
	}

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
