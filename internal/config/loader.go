package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loader reads configuration from file and environment. Environment
// variables override file values using the TROYVAULT_ prefix, e.g.
// TROYVAULT_LOG_LEVEL=debug.
type Loader struct {
	configPath string
}

// NewLoader creates a config loader. An empty path searches the default
// locations.
func NewLoader(configPath string) *Loader {
	return &Loader{configPath: configPath}
}

// Load resolves the final configuration.
func (l *Loader) Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("json")

	v.SetEnvPrefix("TROYVAULT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultConfig()
	v.SetDefault("storage.data_dir", defaults.Storage.DataDir)
	v.SetDefault("storage.vault_path", defaults.Storage.VaultPath)
	v.SetDefault("audit.backend", defaults.Audit.Backend)
	v.SetDefault("audit.path", defaults.Audit.Path)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("log.file", defaults.Log.File)

	if l.configPath != "" {
		v.SetConfigFile(l.configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	} else {
		for _, path := range defaultPaths() {
			if _, err := os.Stat(path); err == nil {
				v.SetConfigFile(path)
				if err := v.ReadInConfig(); err != nil {
					return nil, fmt.Errorf("load config file %s: %w", path, err)
				}
				break
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	normalize(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// defaultPaths returns default config file locations.
func defaultPaths() []string {
	paths := []string{
		"troyvault.json",
		".troyvault.json",
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(homeDir, ".config", "troyvault", "config.json"),
			filepath.Join(homeDir, ".troyvault", "config.json"),
		)
	}

	return paths
}

func normalize(cfg *Config) {
	cfg.Audit.Backend = strings.ToLower(cfg.Audit.Backend)
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)
}

// SaveExample writes an example config file with the defaults.
func SaveExample(path string) error {
	if path == "" {
		return errors.New("path is required")
	}

	v := viper.New()
	cfg := DefaultConfig()
	v.Set("storage.data_dir", cfg.Storage.DataDir)
	v.Set("storage.vault_path", cfg.Storage.VaultPath)
	v.Set("audit.backend", cfg.Audit.Backend)
	v.Set("audit.path", cfg.Audit.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.format", cfg.Log.Format)

	v.SetConfigType("json")
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write example config: %w", err)
	}
	return nil
}
