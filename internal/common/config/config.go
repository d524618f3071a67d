// internal/common/config/config.go
package config

import (
	"strings"
	"time"

	"suada-mcp/internal/common/errors"
)

// Config is the main application configuration struct.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Suada   SuadaConfig   `mapstructure:"suada"`
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// ServerConfig identifies the MCP server to connecting hosts.
type ServerConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

// SuadaConfig holds the outbound Suada API surface.
type SuadaConfig struct {
	APIKey                 string        `mapstructure:"api_key"`
	BaseURL                string        `mapstructure:"base_url"`
	ExternalUserIdentifier string        `mapstructure:"external_user_identifier"`
	Timeout                time.Duration `mapstructure:"timeout"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// MetricsConfig controls the optional prometheus side-port listener. It is
// off by default; the stdio channel itself carries no metrics.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port"`
}

const (
	DefaultBaseURL  = "https://suada.ai/api/public"
	DefaultLogFile  = "suada_mcp_server.log"
	defaultName     = "suada"
	defaultVersion  = "1.0.0"
	defaultTimeout  = 60 * time.Second
	defaultMetrics  = 9105
	defaultLogLevel = "info"
)

func applyDefaults(cfg *Config) {
	if cfg.Server.Name == "" {
		cfg.Server.Name = defaultName
	}
	if cfg.Server.Version == "" {
		cfg.Server.Version = defaultVersion
	}
	if cfg.Suada.BaseURL == "" {
		cfg.Suada.BaseURL = DefaultBaseURL
	}
	cfg.Suada.BaseURL = strings.TrimRight(cfg.Suada.BaseURL, "/")
	if cfg.Suada.Timeout <= 0 {
		cfg.Suada.Timeout = defaultTimeout
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
	if cfg.Logging.File == "" {
		cfg.Logging.File = DefaultLogFile
	}
	if cfg.Metrics.Port == 0 {
		cfg.Metrics.Port = defaultMetrics
	}
}

// Validate fails fast on configuration without which no call can succeed.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Suada.APIKey) == "" {
		return errors.NewConfigurationError("suada.api_key is empty")
	}
	return nil
}
