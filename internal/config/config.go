package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr       string
	CORSOrigin string
	AdminToken string
	// Content store. DATABASE_URL takes precedence over Redis when set.
	RedisURL    string
	DatabaseURL string
	// Object storage for banner uploads
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3UseSSL    bool
	CDNBaseURL  string
	// Spreadsheet-backed live content
	SpreadsheetID   string
	SheetsBaseURL   string
	SheetTimeout    time.Duration
	LiveCacheMaxAge int
}

func Load() Config {
	// .env is optional; real deployments use process env.
	_ = godotenv.Load()

	return Config{
		Addr:            getenv("API_ADDR", ":8788"),
		CORSOrigin:      getenv("JYOTISH_CORS_ORIGIN", "*"),
		AdminToken:      getenv("ADMIN_TOKEN", ""),
		RedisURL:        getenv("REDIS_URL", "redis://localhost:6379/0"),
		DatabaseURL:     getenv("DATABASE_URL", ""),
		S3Endpoint:      getenv("S3_ENDPOINT", "localhost:9000"),
		S3AccessKey:     getenv("S3_ACCESS_KEY", ""),
		S3SecretKey:     getenv("S3_SECRET_KEY", ""),
		S3Bucket:        getenv("S3_BUCKET", "jyotish-assets"),
		S3UseSSL:        getenvBool("S3_USE_SSL", false),
		CDNBaseURL:      getenv("CDN_BASE_URL", "https://cdn.apkajyotish.com"),
		SpreadsheetID:   getenv("SHEET_ID", ""),
		SheetsBaseURL:   getenv("SHEETS_BASE_URL", ""),
		SheetTimeout:    time.Duration(getenvInt("SHEET_TIMEOUT_SECONDS", 10)) * time.Second,
		LiveCacheMaxAge: getenvInt("LIVE_CACHE_MAX_AGE", 60),
	}
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getenvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
