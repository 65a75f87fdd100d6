package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	configPathEnv     = "CONFIG_PATH"
	defaultConfigPath = "./config.yaml"

	// SourceEnv is Config.Source when no YAML file was read.
	SourceEnv = "env"
)

// Load builds the configuration from env variables layered over an optional
// YAML file, then normalizes and validates it.
//
// The file is CONFIG_PATH, or ./config.yaml when that is unset. A missing
// default file is fine and leaves env plus env-default tags. A missing
// explicit file is an error.
func Load() (*Config, error) {
	path, explicit := configPath()

	var cfg Config
	source, err := read(&cfg, path, explicit)
	if err != nil {
		return nil, err
	}
	cfg.Source = source

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config from %s: %w", source, err)
	}

	return &cfg, nil
}

func configPath() (string, bool) {
	if path := strings.TrimSpace(os.Getenv(configPathEnv)); path != "" {
		return path, true
	}
	return defaultConfigPath, false
}

// read fills cfg and reports where the values came from.
func read(cfg *Config, path string, explicit bool) (string, error) {
	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return "", fmt.Errorf("config: read %s (sections: server, database, auth, log, srs, ai, cors): %w", path, err)
		}
		return path, nil
	case explicit:
		return "", fmt.Errorf("config: %s=%s: %w", configPathEnv, path, statErr)
	case !errors.Is(statErr, fs.ErrNotExist):
		return "", fmt.Errorf("config: stat %s: %w", path, statErr)
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return "", fmt.Errorf("config: read env: %w", err)
	}
	return SourceEnv, nil
}

// normalize folds case and whitespace on enum-like settings so that
// "INFO" or " Text " validate the same as their canonical forms.
func (c *Config) normalize() {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	c.AI.CacheBackend = strings.ToLower(strings.TrimSpace(c.AI.CacheBackend))
	c.AI.Model = strings.TrimSpace(c.AI.Model)
}
