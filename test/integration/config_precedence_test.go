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

package integration

import (
	"strings"
	"testing"

	"github.com/sirseerhq/saveg/internal/savegame"
	"github.com/sirseerhq/saveg/test/testutil"
)

func TestConfigPrecedence_MaxLine(t *testing.T) {
	dir := t.TempDir()
	save := testutil.CreateSaveFile(t, dir, "doomsav0.dsg", []byte("abcdefghij\n"))
	configPath := testutil.WriteConfig(t, dir, "stream:\n  max_line_length: 6\n")

	tests := []struct {
		name  string
		args  []string
		env   map[string]string
		first string
	}{
		{
			name:  "default",
			args:  []string{"lines", save},
			first: "abcdefghij",
		},
		{
			name:  "config file",
			args:  []string{"--config", configPath, "lines", save},
			first: "abcde",
		},
		{
			name:  "env beats config file",
			args:  []string{"--config", configPath, "lines", save},
			env:   map[string]string{"SAVEG_MAX_LINE": "4"},
			first: "abc",
		},
		{
			name:  "flag beats env",
			args:  []string{"--config", configPath, "lines", save, "--max-line", "3"},
			env:   map[string]string{"SAVEG_MAX_LINE": "4"},
			first: "ab",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := testutil.RunCLI(t, tt.args, tt.env)
			testutil.AssertCLISuccess(t, result)

			records := testutil.ParseLineRecords(t, result.Stdout)
			if len(records) == 0 {
				t.Fatal("no lines returned")
			}
			if records[0].Text != tt.first {
				t.Errorf("first line = %q, want %q", records[0].Text, tt.first)
			}
		})
	}
}

func TestConfigPrecedence_PerFile(t *testing.T) {
	dir := t.TempDir()
	save := testutil.CreateSaveFile(t, dir, "doomsav7.dsg", []byte("abcdefghij\n"))
	other := testutil.CreateSaveFile(t, dir, "doomsav8.dsg", []byte("abcdefghij\n"))
	configPath := testutil.WriteConfig(t, dir, `
stream:
  max_line_length: 260
files:
  "doomsav7.dsg":
    max_line_length: 5
`)

	result := testutil.RunCLI(t, []string{"--config", configPath, "lines", save}, nil)
	testutil.AssertCLISuccess(t, result)
	if got := testutil.ParseLineRecords(t, result.Stdout)[0].Text; got != "abcd" {
		t.Errorf("overridden file first line = %q, want abcd", got)
	}

	result = testutil.RunCLI(t, []string{"--config", configPath, "lines", other}, nil)
	testutil.AssertCLISuccess(t, result)
	if got := testutil.ParseLineRecords(t, result.Stdout)[0].Text; got != "abcdefghij" {
		t.Errorf("other file first line = %q, want abcdefghij", got)
	}
}

func TestConfigPrecedence_DiagnosticSink(t *testing.T) {
	dir := t.TempDir()
	save := testutil.CreateSaveFile(t, dir, "doomsav9.dsg", nil)
	sink := dir + "/diag.log"

	result := testutil.RunCLI(t, []string{"dump", save, "--count", "1"}, map[string]string{"SAVEG_DIAG_SINK": sink})
	testutil.AssertExitCode(t, result, 2)
	if strings.Contains(result.Stderr, savegame.ReadFailureMessage) {
		t.Error("diagnostic written to stderr instead of the configured sink")
	}
	testutil.AssertFileBytes(t, sink, []byte(savegame.ReadFailureMessage))
}

func TestConfigPrecedence_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	save := testutil.CreateSaveFile(t, dir, "doomsav0.dsg", []byte{1})
	configPath := testutil.WriteConfig(t, dir, "stream:\n  max_line_length: 1\n")

	result := testutil.RunCLI(t, []string{"--config", configPath, "dump", save}, nil)
	testutil.AssertCLIError(t, result, "max line length must be at least 2")
	testutil.AssertExitCode(t, result, 1)
}
