package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"jyotish/api/internal/app"
	"jyotish/api/internal/config"
	"jyotish/api/internal/objstore"
	"jyotish/api/internal/sheets"
	"jyotish/api/internal/store"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	if cfg.AdminToken == "" {
		log.Printf("WARNING: ADMIN_TOKEN not set; admin endpoints will reject all requests")
	}

	var contentStore store.ContentStore
	if strings.TrimSpace(cfg.DatabaseURL) != "" {
		log.Printf("Using Postgres for content storage")
		pgStore, err := store.NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("postgres connection failed: %v", err)
		}
		contentStore = pgStore
	} else {
		log.Printf("Using Redis for content storage")
		redisStore, err := store.NewRedisStore(cfg.RedisURL)
		if err != nil {
			log.Fatalf("redis connection failed: %v", err)
		}
		contentStore = redisStore
	}
	defer contentStore.Close()

	bannerStore, err := objstore.NewMinioStore(ctx, cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)
	if err != nil {
		log.Fatalf("object storage connection failed: %v", err)
	}

	var sheetSource app.SheetSource
	if strings.TrimSpace(cfg.SpreadsheetID) != "" {
		sheetSource = sheets.New(cfg.SpreadsheetID, cfg.SheetsBaseURL, cfg.SheetTimeout)
	} else {
		log.Printf("SHEET_ID not set; /api/config/live disabled")
	}

	service := app.New(cfg, contentStore, bannerStore, sheetSource)

	httpServer := app.NewHTTPServer(service, cfg.CORSOrigin)
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpServer.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Jyotish API listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
