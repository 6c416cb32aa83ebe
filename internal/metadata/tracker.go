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

// Package metadata tracks what a saveg command did to a save file and
// turns it into a RunSummary. The summary can be printed for the user or
// persisted as a JSON file next to the save games, written atomically
// through the same savefile store the commands use.
package metadata

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/sirseerhq/saveg/internal/savefile"
)

// Tracker collects statistics while a command drives a save game stream.
// Create one at the start of the command and feed it every operation.
type Tracker struct {
	startTime time.Time
	stats     OpStats
}

// OpStats is the running tally kept by a Tracker.
type OpStats struct {
	Operations   int
	BytesRead    int64
	BytesWritten int64
	FirstOffset  int64 // -1 until the first operation
	LastOffset   int64
	Errored      bool
}

// New creates a new tracker and stamps it with the current time.
func New() *Tracker {
	return &Tracker{
		startTime: time.Now(),
		stats:     OpStats{FirstOffset: -1, LastOffset: -1},
	}
}

// RecordRead records a read of n bytes that started at offset.
func (t *Tracker) RecordRead(offset int64, n int) {
	t.record(offset)
	t.stats.BytesRead += int64(n)
}

// RecordWrite records a write of n bytes that started at offset.
func (t *Tracker) RecordWrite(offset int64, n int) {
	t.record(offset)
	t.stats.BytesWritten += int64(n)
}

func (t *Tracker) record(offset int64) {
	t.stats.Operations++
	if t.stats.FirstOffset < 0 {
		t.stats.FirstOffset = offset
	}
	t.stats.LastOffset = offset
}

// SetErrored records the final state of the stream's error flag.
func (t *Tracker) SetErrored(errored bool) {
	t.stats.Errored = errored
}

// Stats returns a copy of the running tally.
func (t *Tracker) Stats() OpStats {
	return t.stats
}

// GenerateSummary creates the RunSummary for the tracked command.
func (t *Tracker) GenerateSummary(version, command string, params RunParams) *RunSummary {
	completedAt := time.Now()

	return &RunSummary{
		Version:    version,
		RunID:      fmt.Sprintf("%s-%d", command, t.startTime.UnixNano()),
		Command:    command,
		Parameters: params,
		Results: RunResults{
			Operations:   t.stats.Operations,
			BytesRead:    t.stats.BytesRead,
			BytesWritten: t.stats.BytesWritten,
			FirstOffset:  t.stats.FirstOffset,
			LastOffset:   t.stats.LastOffset,
			Errored:      t.stats.Errored,
			Duration:     completedAt.Sub(t.startTime).String(),
			StartedAt:    t.startTime,
			CompletedAt:  completedAt,
		},
	}
}

// SummaryFileName is the name SaveSummary uses for a summary.
func SummaryFileName(summary *RunSummary) string {
	return fmt.Sprintf("run-summary-%d.json", summary.Results.StartedAt.UnixNano())
}

// SaveSummary persists summary as indented JSON in the store's root. The
// file is committed atomically; on any failure nothing is left behind.
// It returns the name of the written file.
func SaveSummary(store *savefile.Store, summary *RunSummary) (string, error) {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode summary: %w", err)
	}
	data = append(data, '\n')

	name := SummaryFileName(summary)
	pending, err := store.Create(name)
	if err != nil {
		return "", fmt.Errorf("failed to create summary file: %w", err)
	}

	w := pending.Handle()
	w.WriteText(string(data))
	if w.Failed() {
		err := w.Err()
		_ = pending.Abort()
		return "", fmt.Errorf("failed to write summary: %w", err)
	}

	if err := pending.Commit(); err != nil {
		return "", fmt.Errorf("failed to save summary file: %w", err)
	}
	return name, nil
}

// WriteSummaryToWriter writes summary as indented JSON to w.
func WriteSummaryToWriter(summary *RunSummary, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(summary)
}
