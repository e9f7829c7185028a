package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr            string        `yaml:"addr"`
		StaticDir       string        `yaml:"static_dir"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Data struct {
		// File replaces the embedded billionaire table when set.
		File string `yaml:"file"`
	} `yaml:"data"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

const (
	defaultAddr            = ":8787"
	defaultShutdownTimeout = 10 * time.Second
	defaultLogLevel        = "info"
)

// Load reads config from a YAML file, then applies environment variable overrides and
// defaults. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Addr = ":" + v
	}
	if v := os.Getenv("ELONULATOR_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("STATIC_DIR"); v != "" {
		cfg.Server.StaticDir = v
	}
	if v := os.Getenv("DATA_FILE"); v != "" {
		cfg.Data.File = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = defaultAddr
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = defaultShutdownTimeout
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultLogLevel
	}
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)

	return cfg, nil
}

// Validate checks that all settings are usable.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive")
	}
	if c.Server.StaticDir != "" {
		info, err := os.Stat(c.Server.StaticDir)
		if err != nil {
			return fmt.Errorf("server.static_dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("server.static_dir %s is not a directory", c.Server.StaticDir)
		}
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	return nil
}
