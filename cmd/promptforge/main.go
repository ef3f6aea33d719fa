// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the PromptForge API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"promptforge/internal/cache"
	"promptforge/internal/config"
	"promptforge/internal/database"
	"promptforge/internal/generator"
	"promptforge/internal/handlers"
	"promptforge/internal/history"
	"promptforge/internal/router"
	"promptforge/internal/session"
	"promptforge/internal/store"
)

func main() {
	// Structured logger — outputs JSON in production, text in development.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (sessions + prompt history).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// Initialize session store backed by Valkey.
	// In non-development environments, mark session cookies as Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)

	// Initialize data stores.
	userStore := store.NewUserStore(db)
	bookmarkStore := store.NewBookmarkStore(db)
	settingsStore := store.NewSettingsStore(db)

	// Prompt history lives in Valkey, capped per user.
	historyLog := history.NewLog(valkeyClient)

	// Initialize the generation service. The gateway key stays server-side;
	// without it the generate endpoint answers 503.
	gen := generator.New(generator.Config{
		APIKey:  cfg.GatewayKey,
		BaseURL: cfg.GatewayURL,
		Model:   cfg.GatewayModel,
	})
	if cfg.GatewayKey == "" {
		slog.Warn("AI_GATEWAY_KEY not set — prompt generation disabled")
	}

	// Create handler groups with their dependencies.
	h := router.Handlers{
		Auth:      handlers.NewAuth(sessionStore, userStore),
		Generate:  handlers.NewGenerate(gen, historyLog),
		Bookmarks: handlers.NewBookmarks(bookmarkStore),
		History:   handlers.NewHistory(historyLog),
		Profile:   handlers.NewProfile(sessionStore, userStore),
		Settings:  handlers.NewSettings(settingsStore),
	}

	// Set up the Chi router with all middleware and routes.
	r, generateLimiter := router.New(sessionStore, h)
	defer generateLimiter.Stop()

	// Create the HTTP server with sensible timeouts.
	// WriteTimeout must accommodate the generate endpoint, which waits on
	// LLM responses (typically 10-30s, up to 60s for complex prompts).
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
