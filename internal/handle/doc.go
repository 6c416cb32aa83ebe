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

// Package handle provides the primitive byte-level I/O handle used by the
// save game stream layer.
//
// A Handle is a closed sum type with exactly three variants:
//
//   - Closed: no resource is bound. Every query fails predictably.
//   - *Reader: owns an io.ReadSeeker and exposes GetByte and ReadLine.
//   - *Writer: owns an io.WriteSeeker and exposes PutByte and WriteText.
//
// The variant is fixed at construction. Reader and Writer are separate
// types, so a handle that is "both" or that flips from reading to writing
// cannot be built. Higher layers that only hold the Handle interface must
// type-switch to reach the I/O primitives.
//
// Any backend that satisfies io.ReadSeeker or io.WriteSeeker can be bound:
// *os.File, a go-billy File, or an in-memory *bytes.Reader. The buffered
// constructors wrap the backend in bufio and keep Tell and the seeks
// consistent with the logical position.
//
// Example usage:
//
//	f, err := os.Open("doomsav0.dsg")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	r := handle.NewReader(f)
//	b := r.GetByte()
//	if r.Failed() {
//	    // end of data
//	}
package handle
