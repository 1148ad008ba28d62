package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"wedding-planner/internal/auth"
	"wedding-planner/internal/blob"
	"wedding-planner/internal/config"
	"wedding-planner/internal/imagesearch"
	"wedding-planner/internal/logging"
	"wedding-planner/internal/store"
	"wedding-planner/internal/web"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"db_max_conns", cfg.Database.MaxConns,
		"blob_bucket", cfg.Blob.Bucket,
	)

	ctx := context.Background()

	// Connect to database
	st, err := store.New(ctx, cfg.Database)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	// Log which database we connected to
	if u, err := url.Parse(cfg.Database.URL); err == nil {
		dbName := strings.TrimPrefix(u.Path, "/")
		slog.Info("connected to database", "name", dbName)
	} else {
		slog.Info("connected to database")
	}

	// Create schema if it does not exist yet
	if err := st.Bootstrap(ctx); err != nil {
		slog.Error("failed to bootstrap schema", "error", err)
		os.Exit(1)
	}

	// Seed the initial account if configured and missing
	if cfg.Auth.BootstrapUsername != "" {
		if err := bootstrapUser(ctx, st, cfg.Auth); err != nil {
			slog.Error("failed to bootstrap user", "error", err)
			os.Exit(1)
		}
	}

	authMgr := auth.New(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	images := imagesearch.New(cfg.ImageSearch)

	// Image uploads are optional; without a bucket the endpoint reports 503
	var blobs *blob.Uploader
	if cfg.Blob.Bucket != "" {
		blobs, err = blob.New(ctx, cfg.Blob)
		if err != nil {
			slog.Error("failed to configure blob storage", "error", err)
			os.Exit(1)
		}
	} else {
		slog.Info("blob storage not configured, image uploads disabled")
	}

	server := web.NewServer(cfg, st, authMgr, images, blobs)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil && err != http.ErrServerClosed {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// bootstrapUser creates the configured initial account unless it
// already exists.
func bootstrapUser(ctx context.Context, st *store.Store, cfg config.AuthConfig) error {
	_, err := st.GetUserByUsername(ctx, cfg.BootstrapUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	hash, err := auth.HashPassword(cfg.BootstrapPassword)
	if err != nil {
		return err
	}

	if _, err := st.CreateUser(ctx, cfg.BootstrapUsername, hash, cfg.BootstrapName, "planner"); err != nil {
		return err
	}
	slog.Info("created initial account", "username", cfg.BootstrapUsername)
	return nil
}
