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
	"bufio"
	"io"
)

// Writer is the write-only handle variant.
type Writer struct {
	state
	dst io.WriteSeeker
	buf *bufio.Writer
}

var _ Handle = (*Writer)(nil)

// NewWriter binds dst without buffering. Every PutByte is one Write call on
// the backend, so a failing backend is detected on the byte that fails.
func NewWriter(dst io.WriteSeeker) *Writer {
	return &Writer{dst: dst}
}

// NewBufferedWriter binds dst behind a bufio.Writer of the given size.
// Backend failures surface when the buffer is flushed, either by Flush, a
// seek, or the buffer filling up. A size <= 0 selects the bufio default.
func NewBufferedWriter(dst io.WriteSeeker, size int) *Writer {
	if size <= 0 {
		return &Writer{dst: dst, buf: bufio.NewWriter(dst)}
	}
	return &Writer{dst: dst, buf: bufio.NewWriterSize(dst, size)}
}

// IsOpen implements Handle.IsOpen.
func (w *Writer) IsOpen() bool { return true }

// String implements Handle.String.
func (w *Writer) String() string {
	if w.buf != nil {
		return "buffered writer"
	}
	return "writer"
}

func (w *Writer) sealed() {}

func (w *Writer) target() io.Writer {
	if w.buf != nil {
		return w.buf
	}
	return w.dst
}

// PutByte writes one byte. On failure the handle is marked failed; whatever
// the backend did with the byte is left as is.
func (w *Writer) PutByte(b byte) {
	if w.buf != nil {
		if err := w.buf.WriteByte(b); err != nil {
			w.fail(err)
		}
		return
	}

	n, err := w.dst.Write([]byte{b})
	if err == nil && n < 1 {
		err = io.ErrShortWrite
	}
	if err != nil {
		w.fail(err)
	}
}

// WriteText writes text in one bulk call.
func (w *Writer) WriteText(text string) {
	n, err := io.WriteString(w.target(), text)
	if err == nil && n < len(text) {
		err = io.ErrShortWrite
	}
	if err != nil {
		w.fail(err)
	}
}

// Flush pushes buffered bytes to the backend. It is a no-op on an
// unbuffered writer.
func (w *Writer) Flush() error {
	if w.buf == nil {
		return nil
	}
	if err := w.buf.Flush(); err != nil {
		w.fail(err)
		return err
	}
	return nil
}

// Tell implements Handle.Tell. Buffered bytes count as written.
func (w *Writer) Tell() int64 {
	pos, err := w.dst.Seek(0, io.SeekCurrent)
	if err != nil {
		return -1
	}
	if w.buf != nil {
		pos += int64(w.buf.Buffered())
	}
	return pos
}

// SeekFromStart implements Handle.SeekFromStart.
func (w *Writer) SeekFromStart(offset int64) { w.seek(offset, io.SeekStart) }

// SeekFromEnd implements Handle.SeekFromEnd.
func (w *Writer) SeekFromEnd(offset int64) { w.seek(offset, io.SeekEnd) }

func (w *Writer) seek(offset int64, whence int) {
	if w.Flush() != nil {
		return
	}
	if _, err := w.dst.Seek(offset, whence); err != nil {
		w.err = err
	}
}
