// Package config provides the configuration loader for texd.
package config

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up when no --config
// flag is given.
const DefaultFilename = "texd.yaml"

// Default returns the built-in configuration used when no file exists.
func Default() *Config {
	return &Config{
		Typesetter: []string{"tex2svg"},
		Rasterizer: []string{"rsvg-convert", "--format", "png"},
	}
}

// Load reads the configuration file at path. A missing file yields the
// defaults; any other read or parse failure is an error, since a partially
// applied configuration must not start serving.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	if len(cfg.Typesetter) == 0 {
		return nil, zerr.New("config: typesetter command must not be empty")
	}
	if len(cfg.Rasterizer) == 0 {
		return nil, zerr.New("config: rasterizer command must not be empty")
	}

	return cfg, nil
}
