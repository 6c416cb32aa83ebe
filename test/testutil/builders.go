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

package testutil

// SaveBuilder provides a fluent API for composing save file contents in
// the little-endian layout the save game stream reads.
type SaveBuilder struct {
	data []byte
}

// NewSaveBuilder creates an empty SaveBuilder.
func NewSaveBuilder() *SaveBuilder {
	return &SaveBuilder{}
}

// U8 appends one byte.
func (b *SaveBuilder) U8(v uint8) *SaveBuilder {
	b.data = append(b.data, v)
	return b
}

// U16 appends v least significant byte first.
func (b *SaveBuilder) U16(v uint16) *SaveBuilder {
	b.data = append(b.data, byte(v), byte(v>>8))
	return b
}

// U32 appends v least significant byte first.
func (b *SaveBuilder) U32(v uint32) *SaveBuilder {
	b.data = append(b.data, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	return b
}

// Line appends text and a newline.
func (b *SaveBuilder) Line(text string) *SaveBuilder {
	b.data = append(b.data, text...)
	b.data = append(b.data, '\n')
	return b
}

// Raw appends bytes verbatim.
func (b *SaveBuilder) Raw(p ...byte) *SaveBuilder {
	b.data = append(b.data, p...)
	return b
}

// Build returns a copy of the composed bytes.
func (b *SaveBuilder) Build() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

// Len returns the number of bytes composed so far.
func (b *SaveBuilder) Len() int {
	return len(b.data)
}
