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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirseerhq/saveg/internal/metadata"
	"github.com/sirseerhq/saveg/test/testutil"
)

func TestSummary_Stderr(t *testing.T) {
	dir := t.TempDir()
	save := testutil.CreateSaveFile(t, dir, "doomsav0.dsg", testutil.NewSaveBuilder().U16(1).U16(2).Build())

	result := testutil.RunCLI(t, []string{"--summary", "dump", save, "--width", "16"}, nil)
	testutil.AssertCLISuccess(t, result)

	if !strings.Contains(result.Stderr, `"command": "dump"`) {
		t.Errorf("summary missing from stderr: %s", result.Stderr)
	}
	if !strings.Contains(result.Stderr, `"bytes_read": 4`) {
		t.Errorf("summary has wrong byte count: %s", result.Stderr)
	}
}

func TestSummary_SavedFile(t *testing.T) {
	dir := t.TempDir()
	summaryDir := filepath.Join(dir, "summaries")
	save := filepath.Join(dir, "doomsav1.dsg")

	result := testutil.RunCLI(t, []string{"--summary-dir", summaryDir, "write", "--width", "16", save, "1", "2", "3"}, nil)
	testutil.AssertCLISuccess(t, result)

	files, err := filepath.Glob(filepath.Join(summaryDir, "run-summary-*.json"))
	if err != nil {
		t.Fatalf("glob failed: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("found %d summary files, want 1", len(files))
	}

	var summary metadata.RunSummary
	testutil.ReadJSON(t, files[0], &summary)

	if summary.Command != "write" {
		t.Errorf("Command = %s, want write", summary.Command)
	}
	if summary.Results.BytesWritten != 6 {
		t.Errorf("BytesWritten = %d, want 6", summary.Results.BytesWritten)
	}
	if summary.Parameters.File != save {
		t.Errorf("File = %s, want %s", summary.Parameters.File, save)
	}

	leftovers, _ := filepath.Glob(filepath.Join(summaryDir, "*.tmp"))
	if len(leftovers) != 0 {
		t.Errorf("temporary files left behind: %v", leftovers)
	}
}

func TestSummary_RecordsError(t *testing.T) {
	dir := t.TempDir()
	save := testutil.CreateSaveFile(t, dir, "doomsav2.dsg", []byte{0x01})
	summaryDir := t.TempDir()

	result := testutil.RunCLI(t, []string{"--summary-dir", summaryDir, "dump", save, "--width", "16", "--count", "1"}, nil)
	testutil.AssertExitCode(t, result, 2)

	entries, err := os.ReadDir(summaryDir)
	if err != nil {
		t.Fatalf("failed to list summaries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("found %d summaries, want 1", len(entries))
	}

	var summary metadata.RunSummary
	testutil.ReadJSON(t, filepath.Join(summaryDir, entries[0].Name()), &summary)
	if !summary.Results.Errored {
		t.Error("Errored = false, want true")
	}
	if summary.Results.Operations != 0 {
		t.Errorf("Operations = %d, want 0", summary.Results.Operations)
	}
}
