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

package testutil

import (
	"bufio"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirseerhq/saveg/internal/output"
)

// ParseIntegerRecords decodes the NDJSON output of saveg dump.
func ParseIntegerRecords(t *testing.T, ndjson string) []output.IntegerRecord {
	t.Helper()

	var records []output.IntegerRecord
	scanner := bufio.NewScanner(strings.NewReader(ndjson))
	for n := 1; scanner.Scan(); n++ {
		line := scanner.Text()
		if line == "" {
			continue
		}

		var rec output.IntegerRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("Line %d: invalid JSON: %v", n, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("Failed to scan output: %v", err)
	}
	return records
}

// ParseLineRecords decodes the NDJSON output of saveg lines.
func ParseLineRecords(t *testing.T, ndjson string) []output.LineRecord {
	t.Helper()

	var records []output.LineRecord
	scanner := bufio.NewScanner(strings.NewReader(ndjson))
	for n := 1; scanner.Scan(); n++ {
		line := scanner.Text()
		if line == "" {
			continue
		}

		var rec output.LineRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("Line %d: invalid JSON: %v", n, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("Failed to scan output: %v", err)
	}
	return records
}

// AssertIntegerValues checks the decoded values of a dump, in order.
func AssertIntegerValues(t *testing.T, records []output.IntegerRecord, want ...uint32) {
	t.Helper()

	if len(records) != len(want) {
		t.Fatalf("Record count mismatch: got %d, want %d", len(records), len(want))
	}
	for i, rec := range records {
		if rec.Value != want[i] {
			t.Errorf("Record %d: value = %#x, want %#x", i, rec.Value, want[i])
		}
	}
}

// AssertDiagnosticOnce checks that message appears exactly once in output.
func AssertDiagnosticOnce(t *testing.T, output, message string) {
	t.Helper()

	if n := strings.Count(output, message); n != 1 {
		t.Errorf("Diagnostic %q appeared %d times, want 1\nOutput: %s", strings.TrimSpace(message), n, output)
	}
}
