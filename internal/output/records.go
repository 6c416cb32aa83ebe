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

package output

import "fmt"

// IntegerRecord is one decoded little-endian integer from a save file.
type IntegerRecord struct {
	Offset int64  `json:"offset"`
	Width  int    `json:"width"`
	Value  uint32 `json:"value"`
	Hex    string `json:"hex"`
}

// NewIntegerRecord builds an IntegerRecord, rendering the value as hex
// zero-padded to the width of the field.
func NewIntegerRecord(offset int64, width int, value uint32) IntegerRecord {
	digits := width / 4
	if digits < 1 {
		digits = 1
	}
	return IntegerRecord{
		Offset: offset,
		Width:  width,
		Value:  value,
		Hex:    fmt.Sprintf("0x%0*x", digits, value),
	}
}

// LineRecord is one text line read from a save file. Offset is the
// position of the first byte of the line.
type LineRecord struct {
	Line   int    `json:"line"`
	Offset int64  `json:"offset"`
	Text   string `json:"text"`
}

// InspectRecord summarizes a save file.
type InspectRecord struct {
	File      string `json:"file"`
	Size      int64  `json:"size"`
	SHA256    string `json:"sha256"`
	FirstLine string `json:"first_line,omitempty"`
}
