// SPDX-FileCopyrightText: © 2021 The sml authors <https://github.com/golangee/sml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package config loads the smlc settings from .smlc.yaml or .smlc.json.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golangee/sml/internal/log"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// FileNames are looked up in this order, the first existing file wins.
var FileNames = []string{".smlc.yaml", ".smlc.yml", ".smlc.json"}

// Config holds the smlc settings. Command line flags override them.
type Config struct {
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level" json:"log_level"`
	// Format of the build output, yaml or json.
	Format string `yaml:"format" json:"format"`
	// Indent is the indentation used by fmt. An integer n in the file means n spaces.
	Indent string `yaml:"indent" json:"indent"`
	// Include are doublestar globs of the files which check and fmt process when no files are given.
	Include []string `yaml:"include" json:"include"`
	// Strict makes check fail on warnings.
	Strict bool `yaml:"strict" json:"strict"`
}

// Default returns the configuration used without a config file.
func Default() Config {
	return Config{
		LogLevel: "warn",
		Format:   "yaml",
		Indent:   "    ",
		Include:  []string{"**/*.sml"},
	}
}

// Find returns the path of the first config file in dir, or "" if there is none.
func Find(dir string) string {
	for _, name := range FileNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// Load reads the config file at path. Keys missing in the file keep their default.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	var raw rawConfig
	if filepath.Ext(path) == ".json" {
		if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := raw.apply(&cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	log.Debug("loaded config %s", path)

	return cfg, nil
}

// LoadDir loads the config file of dir, or returns the defaults if there is none.
func LoadDir(dir string) (Config, error) {
	p := Find(dir)
	if p == "" {
		return Default(), nil
	}

	return Load(p)
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	switch c.Format {
	case "yaml", "json":
	default:
		return fmt.Errorf("unknown format '%s', expected yaml or json", c.Format)
	}

	return nil
}

// rawConfig distinguishes absent keys from zero values.
type rawConfig struct {
	LogLevel *string  `yaml:"log_level" json:"log_level"`
	Format   *string  `yaml:"format" json:"format"`
	Indent   any      `yaml:"indent" json:"indent"`
	Include  []string `yaml:"include" json:"include"`
	Strict   *bool    `yaml:"strict" json:"strict"`
}

func (r rawConfig) apply(c *Config) error {
	if r.LogLevel != nil {
		c.LogLevel = *r.LogLevel
	}

	if r.Format != nil {
		c.Format = *r.Format
	}

	if r.Include != nil {
		c.Include = r.Include
	}

	if r.Strict != nil {
		c.Strict = *r.Strict
	}

	switch v := r.Indent.(type) {
	case nil:
	case string:
		c.Indent = v
	case int:
		c.Indent = spaces(v)
	case float64:
		c.Indent = spaces(int(v))
	default:
		return fmt.Errorf("indent must be a string or a number of spaces, got %v", v)
	}

	return c.Validate()
}

func spaces(n int) string {
	if n < 0 {
		n = 0
	}

	return strings.Repeat(" ", n)
}
