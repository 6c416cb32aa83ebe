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

// Package config types define the configuration structures used throughout
// saveg. These types represent settings that can be loaded from YAML
// configuration files, environment variables, or command-line flags.
package config

// Config represents the complete configuration for saveg.
// It consolidates settings from various sources and provides a unified
// interface for accessing configuration values throughout the application.
type Config struct {
	Stream      StreamConfig          `yaml:"stream"`
	Diagnostics DiagnosticsConfig     `yaml:"diagnostics"`
	Output      OutputConfig          `yaml:"output"`
	Files       map[string]FileConfig `yaml:"files"`
}

// StreamConfig controls how save files are bound to stream handles.
type StreamConfig struct {
	MaxLineLength int  `yaml:"max_line_length"`
	Buffered      bool `yaml:"buffered"`
	BufferSize    int  `yaml:"buffer_size"`
}

// DiagnosticsConfig selects where the fixed save game diagnostic lines go
// and whether debug logging is enabled. Sink is "stderr", "stdout" or a
// file path that is appended to.
type DiagnosticsConfig struct {
	Sink    string `yaml:"sink"`
	Verbose bool   `yaml:"verbose"`
}

// OutputConfig controls NDJSON output of the inspection commands.
type OutputConfig struct {
	Pretty bool `yaml:"pretty"`
}

// FileConfig contains per-save-file overrides keyed by file base name. Some
// source ports write longer description lines than the legacy cap.
type FileConfig struct {
	MaxLineLength int `yaml:"max_line_length"`
}

// DefaultConfig returns a Config with the legacy save game settings.
func DefaultConfig() *Config {
	return &Config{
		Stream: StreamConfig{
			MaxLineLength: 260,
			Buffered:      false,
			BufferSize:    4096,
		},
		Diagnostics: DiagnosticsConfig{
			Sink: "stderr",
		},
		Files: make(map[string]FileConfig),
	}
}
