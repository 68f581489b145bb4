// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Command biominimal runs the profile editor: a JSON editing API, the live
// preview and the static export of a single link-in-bio page.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"biominimal/internal/cache"
	"biominimal/internal/config"
	"biominimal/internal/editor"
	"biominimal/internal/export"
	"biominimal/internal/handlers"
	"biominimal/internal/middleware"
	"biominimal/internal/models"
	"biominimal/internal/router"
	"biominimal/internal/storage"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	if err := config.LoadDotEnv(); err != nil {
		slog.Error("failed to load .env", "error", err)
		os.Exit(1)
	}

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"profile", cfg.ProfilePath,
	)

	// Load the profile being edited. Without a path the session lives in
	// memory only.
	profile := models.DefaultProfile()
	var opts []editor.Option
	if cfg.ProfilePath != "" {
		var found bool
		profile, found, err = models.LoadProfileFile(cfg.ProfilePath)
		if err != nil {
			slog.Error("failed to load profile", "error", err)
			os.Exit(1)
		}
		if !found {
			slog.Info("profile file not found, starting from the default profile", "path", cfg.ProfilePath)
		}
		path := cfg.ProfilePath
		opts = append(opts, editor.OnChange(func(p models.Profile) {
			if err := models.SaveProfileFile(path, p); err != nil {
				slog.Error("failed to save profile", "error", err, "path", path)
			}
		}))
	}

	session, err := editor.NewSession(profile, opts...)
	if err != nil {
		slog.Error("failed to start editor session", "error", err)
		os.Exit(1)
	}

	// Optional Valkey-backed export cache.
	exporter := export.NewExporter(nil)
	if cfg.CacheEnabled() {
		rdb, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword, cfg.ValkeyDB)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer rdb.Close()
		exporter = export.NewExporter(cache.NewExportCache(rdb, cfg.ExportCacheTTL))
		slog.Info("export cache enabled", "host", cfg.ValkeyHost, "ttl", cfg.ExportCacheTTL)
	} else {
		slog.Info("export cache disabled")
	}

	// Optional S3 publishing target.
	publisher, err := storage.New(storage.Config{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Bucket:    cfg.S3Bucket,
		Prefix:    cfg.S3Prefix,
		PublicURL: cfg.S3PublicURL,
	})
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if publisher != nil {
		slog.Info("publishing enabled", "bucket", publisher.Bucket(), "key", publisher.Key(export.Filename))
	} else {
		slog.Warn("s3 storage not configured, publishing disabled")
	}

	exportLimiter := middleware.NewRateLimiter(cfg.ExportRatePerMinute, time.Minute)
	defer exportLimiter.Stop()

	editorHandlers := handlers.NewEditor(session, exporter, handlers.Options{
		Publisher: publisher,
		ExportDir: cfg.ExportDir,
		PublicURL: cfg.PublicURL,
	})

	r := router.New(editorHandlers, exportLimiter)

	// Asset fields carry data URIs, so reads get more time than a plain
	// form post would.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
