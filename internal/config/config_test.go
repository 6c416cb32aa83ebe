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

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Stream.MaxLineLength != 260 {
		t.Errorf("MaxLineLength = %d, want 260", cfg.Stream.MaxLineLength)
	}
	if cfg.Stream.Buffered {
		t.Error("Buffered = true, want false")
	}
	if cfg.Stream.BufferSize != 4096 {
		t.Errorf("BufferSize = %d, want 4096", cfg.Stream.BufferSize)
	}
	if cfg.Diagnostics.Sink != "stderr" {
		t.Errorf("Sink = %s, want stderr", cfg.Diagnostics.Sink)
	}
	if cfg.Diagnostics.Verbose {
		t.Error("Verbose = true, want false")
	}
	if cfg.Files == nil {
		t.Error("Files map is nil")
	}
}

func TestLoadConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
stream:
  max_line_length: 512
  buffered: true
  buffer_size: 8192

diagnostics:
  sink: /var/log/saveg.log
  verbose: true

output:
  pretty: true

files:
  "doomsav0.dsg":
    max_line_length: 128
`
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Stream.MaxLineLength != 512 {
		t.Errorf("MaxLineLength = %d, want 512", cfg.Stream.MaxLineLength)
	}
	if !cfg.Stream.Buffered {
		t.Error("Buffered = false, want true")
	}
	if cfg.Stream.BufferSize != 8192 {
		t.Errorf("BufferSize = %d, want 8192", cfg.Stream.BufferSize)
	}
	if cfg.Diagnostics.Sink != "/var/log/saveg.log" {
		t.Errorf("Sink = %s, want /var/log/saveg.log", cfg.Diagnostics.Sink)
	}
	if !cfg.Diagnostics.Verbose {
		t.Error("Verbose = false, want true")
	}
	if !cfg.Output.Pretty {
		t.Error("Pretty = false, want true")
	}

	if fileConfig, ok := cfg.Files["doomsav0.dsg"]; !ok {
		t.Error("File doomsav0.dsg not found")
	} else if fileConfig.MaxLineLength != 128 {
		t.Errorf("File MaxLineLength = %d, want 128", fileConfig.MaxLineLength)
	}
}

func TestLoadConfigFile_Invalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("stream: [not, a, map"), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	if _, err := LoadConfig(configPath); err == nil {
		t.Error("LoadConfig succeeded on invalid YAML, want error")
	}
	if _, err := LoadConfig(filepath.Join(tmpDir, "missing.yaml")); err == nil {
		t.Error("LoadConfig succeeded on missing file, want error")
	}
}

func TestLoadConfigForFile(t *testing.T) {
	t.Setenv("SAVEG_MAX_LINE", "")
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
files:
  "doomsav3.dsg":
    max_line_length: 64
`
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadConfigForFile(configPath, "/games/doom/doomsav3.dsg")
	if err != nil {
		t.Fatalf("LoadConfigForFile failed: %v", err)
	}
	if cfg.Stream.MaxLineLength != 64 {
		t.Errorf("MaxLineLength = %d, want 64", cfg.Stream.MaxLineLength)
	}

	cfg, err = LoadConfigForFile(configPath, "doomsav4.dsg")
	if err != nil {
		t.Fatalf("LoadConfigForFile failed: %v", err)
	}
	if cfg.Stream.MaxLineLength != 260 {
		t.Errorf("MaxLineLength = %d, want 260", cfg.Stream.MaxLineLength)
	}

	t.Setenv("SAVEG_MAX_LINE", "100")
	cfg, err = LoadConfigForFile(configPath, "doomsav3.dsg")
	if err != nil {
		t.Fatalf("LoadConfigForFile failed: %v", err)
	}
	if cfg.Stream.MaxLineLength != 100 {
		t.Errorf("MaxLineLength = %d, want env value 100 over per-file 64", cfg.Stream.MaxLineLength)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	// Keep a developer's own config out of the way.
	t.Setenv("HOME", t.TempDir())

	t.Setenv("SAVEG_MAX_LINE", "1024")
	t.Setenv("SAVEG_BUFFERED", "yes")
	t.Setenv("SAVEG_BUFFER_SIZE", "65536")
	t.Setenv("SAVEG_DIAG_SINK", "/env/diag.log")
	t.Setenv("SAVEG_VERBOSE", "on")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Stream.MaxLineLength != 1024 {
		t.Errorf("MaxLineLength = %d, want 1024", cfg.Stream.MaxLineLength)
	}
	if !cfg.Stream.Buffered {
		t.Error("Buffered = false, want true")
	}
	if cfg.Stream.BufferSize != 65536 {
		t.Errorf("BufferSize = %d, want 65536", cfg.Stream.BufferSize)
	}
	if cfg.Diagnostics.Sink != "/env/diag.log" {
		t.Errorf("Sink = %s, want /env/diag.log", cfg.Diagnostics.Sink)
	}
	if !cfg.Diagnostics.Verbose {
		t.Error("Verbose = false, want true")
	}
}

func TestEnvironmentOverrides_InvalidNumbersIgnored(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SAVEG_MAX_LINE", "-5")
	t.Setenv("SAVEG_BUFFER_SIZE", "lots")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Stream.MaxLineLength != 260 {
		t.Errorf("MaxLineLength = %d, want 260", cfg.Stream.MaxLineLength)
	}
	if cfg.Stream.BufferSize != 4096 {
		t.Errorf("BufferSize = %d, want 4096", cfg.Stream.BufferSize)
	}
}

func TestGetMaxLineLength(t *testing.T) {
	cfg := &Config{
		Stream: StreamConfig{
			MaxLineLength: 260,
		},
		Files: map[string]FileConfig{
			"doomsav1.dsg": {MaxLineLength: 80},
			"doomsav2.dsg": {MaxLineLength: 0}, // No override
		},
	}

	tests := []struct {
		file string
		want int
	}{
		{"doomsav1.dsg", 80},       // Has override
		{"saves/doomsav1.dsg", 80}, // Matched by base name
		{"doomsav2.dsg", 260},      // No override (0 means use default)
		{"doomsav3.dsg", 260},      // Not in map
	}

	for _, tt := range tests {
		if got := cfg.GetMaxLineLength(tt.file); got != tt.want {
			t.Errorf("GetMaxLineLength(%s) = %d, want %d", tt.file, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr string
	}{
		{
			name:    "valid config",
			config:  DefaultConfig(),
			wantErr: "",
		},
		{
			name: "line cap too small",
			config: &Config{
				Stream:      StreamConfig{MaxLineLength: 1},
				Diagnostics: DiagnosticsConfig{Sink: "stderr"},
			},
			wantErr: "max line length must be at least 2",
		},
		{
			name: "line cap too large",
			config: &Config{
				Stream:      StreamConfig{MaxLineLength: 1 << 20},
				Diagnostics: DiagnosticsConfig{Sink: "stderr"},
			},
			wantErr: "exceeds limit",
		},
		{
			name: "negative buffer size",
			config: &Config{
				Stream:      StreamConfig{MaxLineLength: 260, BufferSize: -1},
				Diagnostics: DiagnosticsConfig{Sink: "stderr"},
			},
			wantErr: "buffer size cannot be negative",
		},
		{
			name: "empty sink",
			config: &Config{
				Stream: StreamConfig{MaxLineLength: 260},
			},
			wantErr: "diagnostics sink cannot be empty",
		},
		{
			name: "bad per-file cap",
			config: &Config{
				Stream:      StreamConfig{MaxLineLength: 260},
				Diagnostics: DiagnosticsConfig{Sink: "stderr"},
				Files:       map[string]FileConfig{"doomsav0.dsg": {MaxLineLength: 1}},
			},
			wantErr: "max line length for doomsav0.dsg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
			} else {
				if err == nil {
					t.Errorf("Validate() error = nil, want %s", tt.wantErr)
				} else if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("Validate() error = %v, want containing %s", err, tt.wantErr)
				}
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home := os.Getenv("HOME")
	if home == "" {
		home = os.Getenv("USERPROFILE")
	}

	tests := []struct {
		input string
		want  string
	}{
		{"~/test", filepath.Join(home, "test")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}

	for _, tt := range tests {
		if got := expandPath(tt.input); got != tt.want {
			t.Errorf("expandPath(%s) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"True", true},
		{"yes", true},
		{"YES", true},
		{"1", true},
		{"on", true},
		{"ON", true},
		{"false", false},
		{"FALSE", false},
		{"no", false},
		{"0", false},
		{"off", false},
		{"", false},
		{"random", false},
	}

	for _, tt := range tests {
		if got := parseBool(tt.input); got != tt.want {
			t.Errorf("parseBool(%s) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParsePositiveInt(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"50", 50, false},
		{"1", 1, false},
		{"0", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := parsePositiveInt(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("parsePositiveInt(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parsePositiveInt(%s) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
