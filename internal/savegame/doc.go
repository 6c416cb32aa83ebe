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

// Package savegame implements the save game stream: a little-endian integer
// codec, line access and positioning over exactly one handle, with a sticky
// error flag and fixed diagnostic lines.
//
// Ordinary I/O failures never surface as Go errors. The first failure after
// a clean state sets the ErrorFlag and appends one fixed line to the
// diagnostic sink:
//
//	saveg_read8: Unexpected end of file while reading save game
//	saveg_write8: Error while writing save game
//
// Those lines are matched verbatim by existing log tooling and must not
// change. Further failures leave the flag set and write nothing until the
// flag is reset.
//
// Multi-byte values are composed of single-byte primitives in increasing
// significance, so a 16-bit value is stored as [low, high] on every
// backend.
//
// Calling a read operation on a writer, a write operation on a reader, or
// any codec operation on a closed handle is a programming error and panics
// with a *errors.MisuseError.
//
// Example usage:
//
//	flag := savegame.NewErrorFlag(false)
//	s := savegame.New(handle.NewReader(f), savegame.WithErrorFlag(flag))
//
//	version := s.ReadU8()
//	gameskill := s.ReadU32()
//	if s.Error() {
//	    return fmt.Errorf("bad save game: %w", errors.ErrSaveFile)
//	}
package savegame
