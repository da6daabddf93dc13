package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables consulted after the config file is parsed.
const (
	EnvDocsDir  = "SITEHOOKS_DOCS_DIR"
	EnvSiteDir  = "SITEHOOKS_SITE_DIR"
	EnvLogLevel = "SITEHOOKS_LOG_LEVEL"
)

var envFiles = []string{".env", ".env.local"}

// loadEnvFile loads the first readable .env file. Existing process
// environment variables are not overwritten.
func loadEnvFile() {
	for _, envPath := range envFiles {
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err != nil {
			slog.Warn("Failed to load env file", "path", envPath, "error", err)
			continue
		}
		slog.Debug("Loaded environment variables", "path", envPath)
		return
	}
}

func applyEnvOverrides(cfg *BuildConfig) {
	if v := os.Getenv(EnvDocsDir); v != "" {
		cfg.DocsDir = v
	}
	if v := os.Getenv(EnvSiteDir); v != "" {
		cfg.SiteDir = v
	}
}

// LogLevel parses SITEHOOKS_LOG_LEVEL. ok is false when the variable is unset.
func LogLevel() (level slog.Level, ok bool, err error) {
	raw := strings.TrimSpace(os.Getenv(EnvLogLevel))
	if raw == "" {
		return slog.LevelInfo, false, nil
	}
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug, true, nil
	case "info":
		return slog.LevelInfo, true, nil
	case "warn", "warning":
		return slog.LevelWarn, true, nil
	case "error":
		return slog.LevelError, true, nil
	}
	return slog.LevelInfo, false, fmt.Errorf("invalid %s value %q", EnvLogLevel, raw)
}
