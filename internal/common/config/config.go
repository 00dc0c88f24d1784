// internal/common/config/config.go
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the main portal configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	API     APIConfig     `mapstructure:"api"`
	Session SessionConfig `mapstructure:"session"`
	Upload  UploadConfig  `mapstructure:"upload"`
	Export  ExportConfig  `mapstructure:"export"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// APIConfig points the portal at the scholarship backend.
type APIConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	Timeout        int    `mapstructure:"timeout"`         // milliseconds
	UploadTimeout  int    `mapstructure:"upload_timeout"`  // milliseconds
	DownloadTimeout int   `mapstructure:"download_timeout"` // milliseconds
}

func (a APIConfig) RequestTimeout() time.Duration {
	return time.Duration(a.Timeout) * time.Millisecond
}

func (a APIConfig) UploadRequestTimeout() time.Duration {
	return time.Duration(a.UploadTimeout) * time.Millisecond
}

func (a APIConfig) DownloadRequestTimeout() time.Duration {
	return time.Duration(a.DownloadTimeout) * time.Millisecond
}

// SessionConfig controls where the bearer credential is kept between runs.
type SessionConfig struct {
	TokenFile string `mapstructure:"token_file"`
	LoginHint string `mapstructure:"login_hint"`
}

type UploadConfig struct {
	AllowedTypes []string `mapstructure:"allowed_types"`
	MaxSizeMB    int      `mapstructure:"max_size_mb"`
}

type ExportConfig struct {
	OutputDir string `mapstructure:"output_dir"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func validateConfig(cfg *Config) error {
	if cfg.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if !strings.HasPrefix(cfg.API.BaseURL, "http://") && !strings.HasPrefix(cfg.API.BaseURL, "https://") {
		return fmt.Errorf("api.base_url must be an http(s) URL, got %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive")
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "scholar-portal"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}
	if cfg.API.Timeout == 0 {
		cfg.API.Timeout = 15000
	}
	if cfg.API.UploadTimeout == 0 {
		cfg.API.UploadTimeout = 60000
	}
	if cfg.API.DownloadTimeout == 0 {
		cfg.API.DownloadTimeout = 120000
	}
	if cfg.Session.TokenFile == "" {
		cfg.Session.TokenFile = defaultTokenFile()
	}
	if len(cfg.Upload.AllowedTypes) == 0 {
		cfg.Upload.AllowedTypes = []string{"pdf", "jpg", "jpeg", "png"}
	}
	if cfg.Upload.MaxSizeMB == 0 {
		cfg.Upload.MaxSizeMB = 10
	}
	if cfg.Export.OutputDir == "" {
		cfg.Export.OutputDir = "."
	}
	if cfg.Metrics.Address == "" {
		cfg.Metrics.Address = ":9105"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
}
