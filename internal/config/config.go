// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides configuration management for saveg with
// support for multiple configuration sources and a well-defined precedence
// order.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables
//  3. Per-file configuration
//  4. Global configuration file
//  5. Built-in defaults
//
// The package supports YAML configuration files and provides automatic
// discovery of configuration in standard locations.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// maxLineLengthLimit bounds max_line_length so a typo cannot make a line
// scan buffer an entire save file.
const maxLineLengthLimit = 1 << 16

// LoadConfig loads configuration from multiple sources and applies them in
// the correct precedence order. If configPath is provided, it loads from
// that specific file. Otherwise, it searches standard locations:
//   - .saveg.yaml (current directory)
//   - .saveg.yml (current directory)
//   - ~/.saveg/config.yaml
//   - ~/.saveg/config.yml
//
// Environment variables are applied after loading the config file, allowing
// runtime overrides. Path expansion (~ and environment variables) is
// performed on the diagnostics sink.
//
// Returns an error if the specified config file cannot be loaded, but will
// succeed with defaults if no config file is found in standard locations.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		defaultPaths := []string{
			".saveg.yaml",
			".saveg.yml",
			filepath.Join(os.Getenv("HOME"), ".saveg", "config.yaml"),
			filepath.Join(os.Getenv("HOME"), ".saveg", "config.yml"),
		}

		for _, path := range defaultPaths {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	applyEnvOverrides(cfg)

	cfg.Diagnostics.Sink = expandPath(cfg.Diagnostics.Sink)

	return cfg, nil
}

// LoadConfigForFile loads configuration and applies the overrides for one
// save file, identified by its base name.
func LoadConfigForFile(configPath, saveFile string) (*Config, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	cfg.Stream.MaxLineLength = cfg.GetMaxLineLength(saveFile)

	// Environment variables still win over per-file settings.
	applyEnvOverrides(cfg)

	return cfg, nil
}

// loadConfigFile reads and parses a YAML config file
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if maxLine := os.Getenv("SAVEG_MAX_LINE"); maxLine != "" {
		if n, err := parsePositiveInt(maxLine); err == nil {
			cfg.Stream.MaxLineLength = n
		}
	}
	if buffered := os.Getenv("SAVEG_BUFFERED"); buffered != "" {
		cfg.Stream.Buffered = parseBool(buffered)
	}
	if size := os.Getenv("SAVEG_BUFFER_SIZE"); size != "" {
		if n, err := parsePositiveInt(size); err == nil {
			cfg.Stream.BufferSize = n
		}
	}

	if sink := os.Getenv("SAVEG_DIAG_SINK"); sink != "" {
		cfg.Diagnostics.Sink = sink
	}
	if verbose := os.Getenv("SAVEG_VERBOSE"); verbose != "" {
		cfg.Diagnostics.Verbose = parseBool(verbose)
	}
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home := os.Getenv("HOME")
		if home == "" {
			home = os.Getenv("USERPROFILE") // Windows
		}
		path = filepath.Join(home, path[2:])
	}
	return os.ExpandEnv(path)
}

// parsePositiveInt parses a string to a positive integer
func parsePositiveInt(s string) (int, error) {
	var i int
	_, err := fmt.Sscanf(s, "%d", &i)
	if err != nil {
		return 0, fmt.Errorf("failed to parse integer from '%s': %w", s, err)
	}
	if i <= 0 {
		return 0, fmt.Errorf("value must be positive, got: %d", i)
	}
	return i, nil
}

// parseBool parses various boolean representations
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "yes" || s == "1" || s == "on"
}

// GetMaxLineLength returns the effective line cap for a save file, taking
// into account per-file overrides.
func (c *Config) GetMaxLineLength(saveFile string) int {
	if fileConfig, ok := c.Files[filepath.Base(saveFile)]; ok && fileConfig.MaxLineLength > 0 {
		return fileConfig.MaxLineLength
	}
	return c.Stream.MaxLineLength
}

// Validate checks if the configuration contains valid values. This should
// be called after loading configuration to catch invalid settings early.
func (c *Config) Validate() error {
	if c.Stream.MaxLineLength < 2 {
		return fmt.Errorf("max line length must be at least 2, got: %d", c.Stream.MaxLineLength)
	}
	if c.Stream.MaxLineLength > maxLineLengthLimit {
		return fmt.Errorf("max line length %d exceeds limit of %d", c.Stream.MaxLineLength, maxLineLengthLimit)
	}
	if c.Stream.BufferSize < 0 {
		return fmt.Errorf("buffer size cannot be negative, got: %d", c.Stream.BufferSize)
	}
	if c.Diagnostics.Sink == "" {
		return fmt.Errorf("diagnostics sink cannot be empty")
	}
	for name, fc := range c.Files {
		if fc.MaxLineLength != 0 && fc.MaxLineLength < 2 {
			return fmt.Errorf("max line length for %s must be at least 2, got: %d", name, fc.MaxLineLength)
		}
	}
	return nil
}
