// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds flag defaults read from a YAML file. Zero values mean "unset";
// explicitly passed flags always win.
//
//	workers: 4
//	format: json
//	order: pre
//	strict: true
//	verbose: false
type Config struct {
	Workers int    `yaml:"workers"`
	Format  string `yaml:"format"`
	Order   string `yaml:"order"`
	Strict  bool   `yaml:"strict"`
	Verbose bool   `yaml:"verbose"`
}

// LoadConfig reads path; an empty path yields an empty Config.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("config %s: workers must be >= 0, got %d", path, cfg.Workers)
	}

	return cfg, nil
}
