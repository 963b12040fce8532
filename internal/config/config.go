package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds tool configuration. Secrets never live here; they come
// from the environment at call time.
type Config struct {
	// Storage paths
	Storage StorageConfig `mapstructure:"storage" json:"storage"`

	// Audit trail
	Audit AuditConfig `mapstructure:"audit" json:"audit"`

	// Logging
	Log LogConfig `mapstructure:"log" json:"log"`
}

// StorageConfig for local file paths.
type StorageConfig struct {
	DataDir   string `mapstructure:"data_dir" json:"data_dir"`     // Base directory
	VaultPath string `mapstructure:"vault_path" json:"vault_path"` // Default vault path
}

// AuditConfig selects the audit backend.
type AuditConfig struct {
	Backend string `mapstructure:"backend" json:"backend"` // none, jsonl, sqlite
	Path    string `mapstructure:"path" json:"path"`       // log file or database path
}

// LogConfig for logging behavior.
type LogConfig struct {
	Level  string `mapstructure:"level" json:"level"`   // debug, info, warn, error
	Format string `mapstructure:"format" json:"format"` // text, json
	File   string `mapstructure:"file" json:"file"`     // empty = stderr
}

// DefaultConfig returns config with sensible defaults.
func DefaultConfig() *Config {
	dataDir := ".troyvault"

	return &Config{
		Storage: StorageConfig{
			DataDir:   dataDir,
			VaultPath: filepath.Join(dataDir, "config.json"),
		},
		Audit: AuditConfig{
			Backend: "jsonl",
			Path:    filepath.Join(dataDir, "audit.log"),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate checks configuration validity.
func (c *Config) Validate() error {
	if c.Storage.DataDir == "" {
		return errors.New("storage.data_dir is required")
	}
	if c.Storage.VaultPath == "" {
		return errors.New("storage.vault_path is required")
	}

	validBackends := map[string]bool{"none": true, "jsonl": true, "sqlite": true}
	if !validBackends[c.Audit.Backend] {
		return fmt.Errorf("invalid audit backend: %s", c.Audit.Backend)
	}
	if c.Audit.Backend != "none" && c.Audit.Path == "" {
		return errors.New("audit.path is required when auditing is enabled")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[c.Log.Format] {
		return fmt.Errorf("invalid log format: %s", c.Log.Format)
	}

	return nil
}

// EnsureDirectories creates required directories.
func (c *Config) EnsureDirectories() error {
	dirs := []string{
		c.Storage.DataDir,
		filepath.Dir(c.Storage.VaultPath),
	}
	if c.Audit.Backend != "none" {
		dirs = append(dirs, filepath.Dir(c.Audit.Path))
	}
	if c.Log.File != "" {
		dirs = append(dirs, filepath.Dir(c.Log.File))
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
