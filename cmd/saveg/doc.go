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

// Package main implements the saveg command-line interface, a small
// toolkit for looking inside and producing save game files.
//
// The CLI supports:
//   - Decoding little-endian 8, 16 and 32 bit integers as NDJSON (dump)
//   - Listing the text lines of a save (lines)
//   - Writing integers or a text line to a new save atomically (write, text)
//   - Reporting size, digest and first line of a save (inspect)
//
// Usage:
//
//	saveg dump <file> [flags]
//
// Example:
//
//	saveg dump doomsav0.dsg --width 16 --count 4
//	saveg write doomsav1.dsg --width 32 109 0x1f
//
// Exit codes:
//   - 0: Success
//   - 1: General error
//   - 2: Save game stream error (read past end, failed write)
//   - 3: Save file could not be opened or created
package main
