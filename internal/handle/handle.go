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

package handle

import (
	saveerrors "github.com/sirseerhq/saveg/internal/errors"
)

// EOFByte is returned by GetByte when no byte could be read.
const EOFByte byte = 0xFF

// Handle is the common contract of every handle variant. It is sealed:
// only Closed, *Reader and *Writer implement it.
type Handle interface {
	// IsOpen reports whether a resource is bound (Reader or Writer).
	IsOpen() bool

	// Failed reports whether any primitive since the last Clear did not
	// fully succeed.
	Failed() bool

	// Clear resets the failure bit.
	Clear()

	// Err returns the backend error behind the most recent failure, if any.
	Err() error

	// Tell returns the absolute offset, or -1 if it cannot be determined.
	Tell() int64

	// SeekFromStart moves to offset bytes after the start.
	SeekFromStart(offset int64)

	// SeekFromEnd moves relative to the end. Offset is usually zero or
	// negative. Out-of-range positions are left to the backend.
	SeekFromEnd(offset int64)

	// String names the variant for diagnostics.
	String() string

	sealed()
}

// Closed is the variant with no bound resource.
type Closed struct{}

var _ Handle = Closed{}

func (Closed) IsOpen() bool          { return false }
func (Closed) Failed() bool          { return true }
func (Closed) Clear()                {}
func (Closed) Err() error            { return saveerrors.ErrClosed }
func (Closed) Tell() int64           { return -1 }
func (Closed) SeekFromStart(_ int64) {}
func (Closed) SeekFromEnd(_ int64)   {}
func (Closed) String() string        { return "closed" }
func (Closed) sealed()               {}

// state is the failure bookkeeping shared by Reader and Writer.
type state struct {
	failed bool
	err    error
}

func (s *state) fail(err error) {
	s.failed = true
	s.err = err
}

// Failed implements Handle.Failed.
func (s *state) Failed() bool { return s.failed }

// Clear implements Handle.Clear. The last backend error is kept for Err.
func (s *state) Clear() { s.failed = false }

// Err implements Handle.Err.
func (s *state) Err() error { return s.err }
