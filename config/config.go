// Package config provides runtime configuration values for the service.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Store drivers
const (
	DriverPostgres = "postgres"
	DriverBolt     = "bolt"
)

// Config holds configuration knobs for the HTTP server, the store and the quote renderer.
type Config struct {
	HTTPAddr          string
	ShutdownTimeout   time.Duration
	StoreDriver       string
	DatabaseURL       string
	BoltPath          string
	PriceSchedulePath string
	LogMode           string
	LogFile           string
	ChromePath        string
	BaseURL           string
	ImageCacheDir     string
	ClearConcurrency  int
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return def
	}
	return n
}

func durenvs(key string, defSec int) time.Duration {
	sec := atoienv(key, defSec)
	return time.Duration(sec) * time.Second
}

// databaseURL returns DATABASE_URL or builds a DSN from the DB_* variables
func databaseURL() string {
	if url := getenv("DATABASE_URL", ""); url != "" {
		return url
	}
	host := getenv("DB_HOST", "")
	user := getenv("DB_USER", "")
	dbname := getenv("DB_NAME", "")
	if host == "" || user == "" || dbname == "" {
		return ""
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, getenv("DB_PORT", "5432"), user, os.Getenv("DB_PASSWORD"), dbname, getenv("DB_SSLMODE", "disable"))
}

// Load collects configuration from environment with defaults.
func Load() Config {
	driver := strings.ToLower(getenv("STORE_DRIVER", DriverPostgres))
	if driver != DriverBolt {
		driver = DriverPostgres
	}
	return Config{
		HTTPAddr:          getenv("HTTP_ADDR", ":8080"),
		ShutdownTimeout:   durenvs("SHUTDOWN_TIMEOUT", 15),
		StoreDriver:       driver,
		DatabaseURL:       databaseURL(),
		BoltPath:          getenv("BOLT_PATH", "oakframe.db"),
		PriceSchedulePath: getenv("PRICE_SCHEDULE_PATH", ""),
		LogMode:           getenv("LOG_MODE", "development"),
		LogFile:           getenv("LOG_FILE", ""),
		ChromePath:        getenv("CHROME_PATH", ""),
		BaseURL:           getenv("BASE_URL", "http://localhost:8080"),
		ImageCacheDir:     getenv("IMAGE_CACHE_DIR", filepath.Join(os.TempDir(), "oakframe-images")),
		ClearConcurrency:  atoienv("CLEAR_CONCURRENCY", 8),
	}
}

// Validate reports configuration that cannot start the service
func (c Config) Validate() error {
	if c.StoreDriver == DriverPostgres && c.DatabaseURL == "" {
		return fmt.Errorf("database connection variables not set. Set DATABASE_URL or DB_HOST, DB_USER, DB_NAME")
	}
	if c.StoreDriver == DriverBolt && c.BoltPath == "" {
		return fmt.Errorf("BOLT_PATH is required for the bolt store")
	}
	if c.ClearConcurrency < 1 {
		return fmt.Errorf("CLEAR_CONCURRENCY must be at least 1")
	}
	return nil
}

// IsProduction reports whether the service runs with production logging
func (c Config) IsProduction() bool {
	return c.LogMode == "production"
}
