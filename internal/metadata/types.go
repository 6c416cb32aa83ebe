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

// Package metadata types describe the run summary a saveg command can
// emit: what was asked for and what the save game stream actually did.
package metadata

import (
	"time"
)

// RunSummary is the complete record for a single saveg command.
type RunSummary struct {
	Version    string     `json:"version"`
	RunID      string     `json:"run_id"`
	Command    string     `json:"command"`
	Parameters RunParams  `json:"parameters"`
	Results    RunResults `json:"results"`
}

// RunParams captures the inputs of a run so it can be reproduced.
type RunParams struct {
	File          string `json:"file"`
	Width         int    `json:"width,omitempty"`
	Offset        int64  `json:"offset,omitempty"`
	Count         int    `json:"count,omitempty"`
	FromEnd       bool   `json:"from_end,omitempty"`
	MaxLineLength int    `json:"max_line_length,omitempty"`
	Buffered      bool   `json:"buffered"`
}

// RunResults holds the counters collected while the stream was in use.
// Errored mirrors the sticky error flag at the end of the run.
type RunResults struct {
	Operations   int       `json:"operations"`
	BytesRead    int64     `json:"bytes_read"`
	BytesWritten int64     `json:"bytes_written"`
	FirstOffset  int64     `json:"first_offset"`
	LastOffset   int64     `json:"last_offset"`
	Errored      bool      `json:"errored"`
	Duration     string    `json:"duration"`
	StartedAt    time.Time `json:"started_at"`
	CompletedAt  time.Time `json:"completed_at"`
}
