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

// Package savefile opens save game files on a go-billy filesystem and binds
// them to stream handles.
//
// Reading binds the file as a handle.Reader. Writing never touches the
// target directly: bytes go to a temporary file next to it, and Commit
// flushes, syncs and renames it into place so a crash or a failed save
// cannot leave a half-written save game behind.
//
// The package works on any billy.Filesystem. The CLI uses osfs rooted at
// the save directory; tests use memfs.
//
// Example usage:
//
//	store := savefile.NewOS("/home/player/.crispy-doom", savefile.Options{})
//	p, err := store.Create("doomsav0.dsg")
//	if err != nil {
//	    return err
//	}
//	s := savegame.New(p.Handle())
//	s.WriteText("description\n")
//	s.WriteU8(version)
//	if s.Error() {
//	    _ = p.Abort()
//	    return errors.ErrSaveFile
//	}
//	return p.Commit()
package savefile
