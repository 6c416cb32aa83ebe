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

// Package output writes CLI results as NDJSON (Newline Delimited JSON).
// Each record produced by the saveg commands is encoded on its own line so
// a dump of a large save file can be piped straight into jq or similar
// tools without buffering the whole result.
//
// The record shapes live in records.go. Writer is safe for concurrent use
// and never accumulates records in memory.
//
// Example usage:
//
//	w, err := output.NewFileWriter("dump.ndjson")
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//
//	rec := output.NewIntegerRecord(0, 16, 0x1234)
//	if err := w.Write(rec); err != nil {
//	    return err
//	}
package output
