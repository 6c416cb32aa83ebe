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

package savegame

import (
	"errors"
	"io"
	"log/slog"

	saveerrors "github.com/sirseerhq/saveg/internal/errors"
	"github.com/sirseerhq/saveg/internal/handle"
	"github.com/sirseerhq/saveg/internal/ioerror"
)

// Diagnostic lines written to the sink on the first failure. Log scrapers
// match them byte for byte.
const (
	ReadFailureMessage  = "saveg_read8: Unexpected end of file while reading save game\n"
	WriteFailureMessage = "saveg_write8: Error while writing save game\n"
)

// Mode is the direction of an open stream.
type Mode int

const (
	ModeRead Mode = iota
	ModeWrite
)

func (m Mode) String() string {
	if m == ModeWrite {
		return "Write"
	}
	return "Read"
}

// Stream is a save game stream bound to one handle for its whole lifetime.
// It never closes or flushes the handle on its own.
type Stream struct {
	h       handle.Handle
	flag    *ErrorFlag
	sink    io.Writer
	maxLine int
	logger  *slog.Logger
}

// New binds a stream to h. A nil h is treated as handle.Closed.
func New(h handle.Handle, opts ...Option) *Stream {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.flag == nil {
		o.flag = NewErrorFlag(false)
	}
	if h == nil {
		h = handle.Closed{}
	}

	return &Stream{
		h:       h,
		flag:    o.flag,
		sink:    o.sink,
		maxLine: o.maxLineLength,
		logger:  o.logger,
	}
}

// OpenMode reports the direction of the bound handle. It panics on a closed
// handle, where a mode has no meaning.
func (s *Stream) OpenMode() Mode {
	switch s.h.(type) {
	case *handle.Reader:
		return ModeRead
	case *handle.Writer:
		return ModeWrite
	default:
		panic(saveerrors.NewMisuseError("OpenMode", saveerrors.ErrClosed))
	}
}

// IsOpen reports whether the bound handle is open.
func (s *Stream) IsOpen() bool {
	return s.h.IsOpen()
}

// Handle returns the bound handle.
func (s *Stream) Handle() handle.Handle {
	return s.h
}

// ErrorFlag returns the flag the stream records failures into.
func (s *Stream) ErrorFlag() *ErrorFlag {
	return s.flag
}

// CurrentPosition returns the absolute offset of the handle, or -1 when it
// is unknown.
func (s *Stream) CurrentPosition() int64 {
	return s.h.Tell()
}

// SeekFromStart moves to offset bytes after the start. Seeking does not
// touch the error flag.
func (s *Stream) SeekFromStart(offset int64) {
	s.h.SeekFromStart(offset)
}

// SeekFromEnd moves relative to the end; pass a negative offset to land
// before the end. Seeking does not touch the error flag.
func (s *Stream) SeekFromEnd(offset int64) {
	s.h.SeekFromEnd(offset)
}

// Error reports the sticky error state.
func (s *Stream) Error() bool {
	return s.flag.IsSet()
}

// ResetError clears the sticky error state.
func (s *Stream) ResetError() {
	s.flag.Reset()
}

func (s *Stream) reader(op string) *handle.Reader {
	if !s.h.IsOpen() {
		panic(saveerrors.NewMisuseError(op, saveerrors.ErrClosed))
	}
	r, ok := s.h.(*handle.Reader)
	if !ok {
		panic(saveerrors.NewMisuseError(op, saveerrors.ErrInvalidAccess))
	}
	r.Clear()
	return r
}

func (s *Stream) writer(op string) *handle.Writer {
	if !s.h.IsOpen() {
		panic(saveerrors.NewMisuseError(op, saveerrors.ErrClosed))
	}
	w, ok := s.h.(*handle.Writer)
	if !ok {
		panic(saveerrors.NewMisuseError(op, saveerrors.ErrInvalidAccess))
	}
	w.Clear()
	return w
}

// check runs once after the primitives of one operation. Only the
// Clean to Errored transition writes to the sink.
func (s *Stream) check(op, message string) {
	if !s.h.Failed() {
		return
	}
	if !s.flag.raise() {
		return
	}

	_, _ = io.WriteString(s.sink, message)
	s.logger.Debug("save game stream failed",
		"op", op,
		"handle", s.h.String(),
		"position", s.h.Tell(),
		"cause", failureCause(s.h.Err()),
		"error", s.h.Err())
}

var inspector = ioerror.NewErrorChainInspector(ioerror.NewInspector())

// failureCause classifies a backend error for the debug log.
func failureCause(err error) string {
	switch {
	case err == nil:
		return "unknown"
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return "eof"
	case inspector.IsClosedError(err):
		return "closed"
	case inspector.IsPermissionError(err):
		return "permission"
	case inspector.IsNoSpaceError(err):
		return "no_space"
	case inspector.IsNotFoundError(err):
		return "not_found"
	default:
		return "io"
	}
}
