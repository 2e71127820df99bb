// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for kural configuration.
	DefaultConfigDir = ".kural"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultEnvFile is loaded into the environment before overrides are applied.
	DefaultEnvFile = ".env"

	// DefaultSourcePath is the source table read by the builder.
	DefaultSourcePath = "kural.csv"
	// DefaultGraphPath is the graph artifact written by the builder and read by queries.
	DefaultGraphPath = "kural_knowledge_graph.ttl"
	// DefaultServerAddr is the listen address of the web page.
	DefaultServerAddr = ":8080"
	// DefaultLogMode selects the development logger.
	DefaultLogMode = "dev"
)

// Environment variables that override file values.
const (
	EnvSource  = "KURAL_SOURCE"
	EnvGraph   = "KURAL_GRAPH"
	EnvAddr    = "KURAL_ADDR"
	EnvLogMode = "KURAL_LOG_MODE"
)

var validate = validator.New()

// Config holds static configuration (read-only after load).
type Config struct {
	Source SourceConfig `yaml:"source,omitempty"`
	Graph  GraphConfig  `yaml:"graph,omitempty"`
	Server ServerConfig `yaml:"server,omitempty"`
	Log    LogConfig    `yaml:"log,omitempty"`
}

// SourceConfig locates the source table.
type SourceConfig struct {
	Path string `yaml:"path,omitempty" validate:"required"`
}

// GraphConfig locates the serialized graph artifact.
type GraphConfig struct {
	Path string `yaml:"path,omitempty" validate:"required"`
}

// ServerConfig holds configuration for the web page.
type ServerConfig struct {
	Addr string `yaml:"addr,omitempty" validate:"required"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Mode string `yaml:"mode,omitempty" validate:"oneof=dev prod production"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Source: SourceConfig{Path: DefaultSourcePath},
		Graph:  GraphConfig{Path: DefaultGraphPath},
		Server: ServerConfig{Addr: DefaultServerAddr},
		Log:    LogConfig{Mode: DefaultLogMode},
	}
}

// Load loads configuration from the .kural directory in the given path.
// A missing config file yields the defaults. Relative paths are resolved against basePath.
func Load(basePath string) (*Config, error) {
	if err := loadDotEnv(basePath); err != nil {
		return nil, err
	}

	cfg := Default()

	data, err := os.ReadFile(ConfigFilePath(basePath))
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.Source.Path = resolvePath(basePath, cfg.Source.Path)
	cfg.Graph.Path = resolvePath(basePath, cfg.Graph.Path)

	return cfg, nil
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvSource); v != "" {
		c.Source.Path = v
	}
	if v := os.Getenv(EnvGraph); v != "" {
		c.Graph.Path = v
	}
	if v := os.Getenv(EnvAddr); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(EnvLogMode); v != "" {
		c.Log.Mode = v
	}
}

// loadDotEnv loads basePath/.env without overriding variables already set.
func loadDotEnv(basePath string) error {
	envFile := filepath.Join(basePath, DefaultEnvFile)
	if _, err := os.Stat(envFile); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("loading %s: %w", envFile, err)
	}
	return nil
}

func resolvePath(basePath, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(basePath, p)
}

// ConfigDir returns the path to the .kural config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// Exists checks if a kural config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
