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

// Reader is the read-only handle variant.
type Reader struct {
	state
	src io.ReadSeeker
	buf *bufio.Reader
}

var _ Handle = (*Reader)(nil)

// NewReader binds src without buffering. Every GetByte is one Read call on
// the backend.
func NewReader(src io.ReadSeeker) *Reader {
	return &Reader{src: src}
}

// NewBufferedReader binds src behind a bufio.Reader of the given size.
// A size <= 0 selects the bufio default.
func NewBufferedReader(src io.ReadSeeker, size int) *Reader {
	if size <= 0 {
		return &Reader{src: src, buf: bufio.NewReader(src)}
	}
	return &Reader{src: src, buf: bufio.NewReaderSize(src, size)}
}

// IsOpen implements Handle.IsOpen.
func (r *Reader) IsOpen() bool { return true }

// String implements Handle.String.
func (r *Reader) String() string {
	if r.buf != nil {
		return "buffered reader"
	}
	return "reader"
}

func (r *Reader) sealed() {}

// GetByte returns the next byte. At end of data, or if the backend fails,
// the handle is marked failed and EOFByte is returned.
func (r *Reader) GetByte() byte {
	c, ok := r.next()
	if !ok {
		return EOFByte
	}
	return c
}

func (r *Reader) next() (byte, bool) {
	if r.buf != nil {
		c, err := r.buf.ReadByte()
		if err != nil {
			r.fail(err)
			return 0, false
		}
		return c, true
	}

	var b [1]byte
	if _, err := io.ReadFull(r.src, b[:]); err != nil {
		r.fail(err)
		return 0, false
	}
	return b[0], true
}

// ReadLine reads up to and including the next '\n', storing at most
// maxLen-1 bytes. The terminator is consumed but not returned. When the
// cap is reached first, the rest of the line is left for the next call,
// unless the rest is only the terminator, which is consumed as well.
//
// The boolean is false only when nothing at all could be consumed, which
// is the normal end-of-data condition. Reaching end of data after some
// bytes still marks the handle failed; callers that treat that as benign
// should Clear afterwards.
func (r *Reader) ReadLine(maxLen int) ([]byte, bool) {
	if maxLen < 2 {
		return nil, false
	}

	var (
		line     []byte
		consumed bool
	)
	for len(line) < maxLen-1 {
		c, ok := r.next()
		if !ok {
			break
		}
		consumed = true
		if c == '\n' {
			break
		}
		line = append(line, c)
		if len(line) == maxLen-1 {
			r.skipNewline()
		}
	}
	return line, consumed
}

// skipNewline consumes the next byte if it is '\n' and otherwise leaves
// it unread. End of data here does not fail the handle.
func (r *Reader) skipNewline() {
	if r.buf != nil {
		c, err := r.buf.ReadByte()
		if err != nil {
			if err != io.EOF {
				r.fail(err)
			}
			return
		}
		if c != '\n' {
			_ = r.buf.UnreadByte()
		}
		return
	}

	var b [1]byte
	n, err := r.src.Read(b[:])
	if n == 1 && b[0] != '\n' {
		if _, serr := r.src.Seek(-1, io.SeekCurrent); serr != nil {
			r.fail(serr)
		}
		return
	}
	if n == 0 && err != nil && err != io.EOF {
		r.fail(err)
	}
}

// Tell implements Handle.Tell. Bytes held in the read buffer are not yet
// consumed, so they are subtracted from the backend position.
func (r *Reader) Tell() int64 {
	pos, err := r.src.Seek(0, io.SeekCurrent)
	if err != nil {
		return -1
	}
	if r.buf != nil {
		pos -= int64(r.buf.Buffered())
	}
	return pos
}

// SeekFromStart implements Handle.SeekFromStart.
func (r *Reader) SeekFromStart(offset int64) { r.seek(offset, io.SeekStart) }

// SeekFromEnd implements Handle.SeekFromEnd.
func (r *Reader) SeekFromEnd(offset int64) { r.seek(offset, io.SeekEnd) }

func (r *Reader) seek(offset int64, whence int) {
	if _, err := r.src.Seek(offset, whence); err != nil {
		r.err = err
		return
	}
	if r.buf != nil {
		r.buf.Reset(r.src)
	}
}
