package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LoadEnv loads variables from the given .env files. Missing files are
// ignored; existing environment variables are not overridden.
func LoadEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load env file %s: %w", f, err)
		}
	}
	return nil
}

// Load reads a YAML config file and expands environment variables.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML config data after expanding ${VAR} references.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}
	return &cfg, nil
}

// LoadWithDefaults loads config from path, or the defaults when path is
// empty, then applies defaults and validates.
func LoadWithDefaults(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		var err error
		cfg, err = Load(path)
		if err != nil {
			return nil, err
		}
	}
	cfg.applyDefaults()
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Addr = ":" + port
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
