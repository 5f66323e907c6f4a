package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/technotes/backend/internal/common/constants"
	commonerrors "github.com/technotes/backend/internal/common/errors"
)

// Config is loaded once at startup and treated as immutable afterwards. The
// CORS allow-list in particular is injected into the pipeline at construction
// and never mutated per request.
type Config struct {
	HTTPPort       string
	DatabaseURI    string
	DatabaseName   string
	AllowedOrigins []string
	LogDir         string
	LogLevel       string
	RequestTimeout time.Duration
}

var defaultAllowedOrigins = []string{
	"http://localhost:3500",
	"https://www.google.com",
}

func Load() (Config, error) {
	databaseURI, err := mustEnv("DATABASE_URI")
	if err != nil {
		return Config{}, err
	}

	return Config{
		HTTPPort:       getEnv("PORT", constants.DefaultHTTPPort),
		DatabaseURI:    databaseURI,
		DatabaseName:   getEnv("DATABASE_NAME", constants.DefaultDatabaseName),
		AllowedOrigins: getListEnv("CORS_ORIGINS", defaultAllowedOrigins),
		LogDir:         getEnv("LOG_DIR", ""),
		LogLevel:       getEnv("LOG_LEVEL", "INFO"),
		RequestTimeout: getDurationEnv("REQUEST_TIMEOUT", constants.DefaultRequestTimeout),
	}, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func mustEnv(key string) (string, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", fmt.Errorf("%w: %s", commonerrors.ErrMissingRequiredEnv, key)
	}
	return v, nil
}

func getListEnv(key string, fallback []string) []string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}

	var out []string
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
