package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	configPathEnv     = "CONFIG_PATH"
	defaultConfigPath = "./config.yaml"
)

// Load reads the server configuration and validates it.
//
// Sources, highest priority first: environment variables, the YAML file, then
// env-default tags. The file is CONFIG_PATH, or ./config.yaml when unset; a
// missing default file is not an error, a missing CONFIG_PATH file is.
func Load() (*Config, error) {
	var cfg Config
	if err := read(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// LoadTool reads the subset of settings offline commands need, from the same
// sources as Load. Media and token settings are neither read nor required.
func LoadTool() (*ToolConfig, error) {
	var cfg ToolConfig
	if err := read(&cfg); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.Database.URL) == "" {
		return nil, fmt.Errorf("config: validate: database.url is required")
	}

	return &cfg, nil
}

func read(cfg any) error {
	path, explicit := os.LookupEnv(configPathEnv)
	if !explicit || path == "" {
		path, explicit = defaultConfigPath, false
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit:
		return fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return fmt.Errorf("config: read env: %w", err)
		}
	}
	return nil
}
