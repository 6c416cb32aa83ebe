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

// ReadU8 reads one byte. On failure it returns 0xFF.
func (s *Stream) ReadU8() uint8 {
	r := s.reader("ReadU8")
	v := r.GetByte()
	s.check("ReadU8", ReadFailureMessage)
	return v
}

// ReadU16 reads a little-endian 16-bit value.
func (s *Stream) ReadU16() uint16 {
	r := s.reader("ReadU16")
	v := uint16(r.GetByte())
	v |= uint16(r.GetByte()) << 8
	s.check("ReadU16", ReadFailureMessage)
	return v
}

// ReadU32 reads a little-endian 32-bit value. If every byte fails the
// result is 0xFFFFFFFF.
func (s *Stream) ReadU32() uint32 {
	r := s.reader("ReadU32")
	v := uint32(r.GetByte())
	v |= uint32(r.GetByte()) << 8
	v |= uint32(r.GetByte()) << 16
	v |= uint32(r.GetByte()) << 24
	s.check("ReadU32", ReadFailureMessage)
	return v
}

// ReadInt16 reads a little-endian signed 16-bit value.
func (s *Stream) ReadInt16() int16 {
	return int16(s.ReadU16())
}

// ReadInt32 reads a little-endian signed 32-bit value.
func (s *Stream) ReadInt32() int32 {
	return int32(s.ReadU32())
}

// WriteU8 writes one byte.
func (s *Stream) WriteU8(v uint8) {
	w := s.writer("WriteU8")
	w.PutByte(v)
	s.check("WriteU8", WriteFailureMessage)
}

// WriteU16 writes v as [low, high].
func (s *Stream) WriteU16(v uint16) {
	w := s.writer("WriteU16")
	w.PutByte(byte(v))
	w.PutByte(byte(v >> 8))
	s.check("WriteU16", WriteFailureMessage)
}

// WriteU32 writes v least significant byte first.
func (s *Stream) WriteU32(v uint32) {
	w := s.writer("WriteU32")
	w.PutByte(byte(v))
	w.PutByte(byte(v >> 8))
	w.PutByte(byte(v >> 16))
	w.PutByte(byte(v >> 24))
	s.check("WriteU32", WriteFailureMessage)
}

// WriteInt16 writes a signed 16-bit value.
func (s *Stream) WriteInt16(v int16) {
	s.WriteU16(uint16(v))
}

// WriteInt32 writes a signed 32-bit value.
func (s *Stream) WriteInt32(v int32) {
	s.WriteU32(uint32(v))
}

// WriteText writes text in one bulk call, bypassing the byte codec.
func (s *Stream) WriteText(text string) {
	w := s.writer("WriteText")
	w.WriteText(text)
	s.check("WriteText", WriteFailureMessage)
}

// Flush pushes buffered bytes to the backend. A failed flush is recorded
// like any other write failure. It is a no-op on an unbuffered writer.
func (s *Stream) Flush() {
	w := s.writer("Flush")
	_ = w.Flush()
	s.check("Flush", WriteFailureMessage)
}

// ReadRawByte reads one byte and reports whether it was actually read. It
// never touches the error flag or the sink.
func (s *Stream) ReadRawByte() (byte, bool) {
	r := s.reader("ReadRawByte")
	b := r.GetByte()
	ok := !r.Failed()
	r.Clear()
	return b, ok
}

// ReadLine reads the next line without its terminator, up to the
// configured cap. It returns false only when no byte could be consumed.
// Running out of data is a normal way for a scan to end, so it never sets
// the error flag.
func (s *Stream) ReadLine() (string, bool) {
	r := s.reader("ReadLine")
	line, ok := r.ReadLine(s.maxLine)
	r.Clear()
	return string(line), ok
}

// ReadLineInto reads the next line into buf and returns the number of
// bytes stored. At most min(len(buf), cap-1) bytes are read.
func (s *Stream) ReadLineInto(buf []byte) (int, bool) {
	limit := s.maxLine
	if len(buf)+1 < limit {
		limit = len(buf) + 1
	}

	r := s.reader("ReadLineInto")
	line, ok := r.ReadLine(limit)
	r.Clear()
	return copy(buf, line), ok
}
