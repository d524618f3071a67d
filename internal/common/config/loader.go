// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	// Load .env from multiple possible locations
	loadEnvFile()

	v := viper.New()

	// Base config
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../../configs")
	v.AddConfigPath(".")

	// Enable ENV override like SUADA_API_KEY -> suada.api_key
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Viper only consults the environment for keys it has seen, so every
	// config key gets a typed default here.
	defaults := map[string]interface{}{
		"server.name":                    "",
		"server.version":                 "",
		"suada.api_key":                  "",
		"suada.base_url":                 "",
		"suada.external_user_identifier": "",
		"suada.timeout":                  time.Duration(0),
		"logging.level":                  "",
		"logging.format":                 "",
		"logging.file":                   "",
		"metrics.enabled":                false,
		"metrics.port":                   0,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// loadEnvFile tries .env from several locations so the server behaves the
// same when launched from the repo root, a host's working dir, or tests.
// Diagnostics go to stderr: stdout carries the MCP stream.
func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				fmt.Fprintf(os.Stderr, "loaded .env from: %s\n", path)
				return
			}
		}
	}
}

// findProjectRoot walks up directories looking for go.mod.
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
