// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shapeshyft

// Package config handles shapeshyft configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// FileName is the config file looked up in the working directory.
const FileName = "shapeshyft.yaml"

// Document formats accepted by Editor.Format.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// DefaultExpandDepth is the number of tree levels shown expanded.
const DefaultExpandDepth = 2

// Config represents the shapeshyft.yaml configuration file.
type Config struct {
	Version  int          `yaml:"version"`
	LogLevel string       `yaml:"log_level,omitempty"`
	Editor   EditorConfig `yaml:"editor"`
}

// EditorConfig holds presentation settings of the schema editor.
type EditorConfig struct {
	// ExpandDepth is how many levels of the tree start expanded.
	ExpandDepth int `yaml:"expand_depth"`

	// Format is the file format used by "schema init" when the file name
	// has no recognised extension.
	Format string `yaml:"format,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version:  CurrentConfigVersion,
		LogLevel: "info",
		Editor: EditorConfig{
			ExpandDepth: DefaultExpandDepth,
			Format:      FormatJSON,
		},
	}
}

// Load reads a Config from a file path. Fields missing from the file keep
// their defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	cfg := Default()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.Editor.ExpandDepth < 0 {
		return fmt.Errorf("editor.expand_depth must not be negative, got %d", c.Editor.ExpandDepth)
	}
	switch c.Editor.Format {
	case "", FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("editor.format must be %q or %q, got %q", FormatJSON, FormatYAML, c.Editor.Format)
	}
	if c.LogLevel != "" {
		if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("log_level: %w", err)
		}
	}
	return nil
}
