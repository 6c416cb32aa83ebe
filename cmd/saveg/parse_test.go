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

package main

import (
	"errors"
	"testing"

	saveerrors "github.com/sirseerhq/saveg/internal/errors"
)

func TestParseWidth(t *testing.T) {
	tests := []struct {
		input   int
		wantErr bool
	}{
		{8, false},
		{16, false},
		{32, false},
		{0, true},
		{24, true},
		{64, true},
		{-8, true},
	}

	for _, tt := range tests {
		got, err := parseWidth(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseWidth(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			if !errors.Is(err, saveerrors.ErrInvalidArgument) {
				t.Errorf("parseWidth(%d) error = %v, want ErrInvalidArgument", tt.input, err)
			}
			continue
		}
		if got != tt.input {
			t.Errorf("parseWidth(%d) = %d", tt.input, got)
		}
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input   string
		width   int
		want    uint32
		wantErr bool
	}{
		{input: "0", width: 8, want: 0},
		{input: "255", width: 8, want: 255},
		{input: "256", width: 8, wantErr: true},
		{input: "0xff", width: 8, want: 0xff},
		{input: "0x1234", width: 16, want: 0x1234},
		{input: "0x10000", width: 16, wantErr: true},
		{input: "4294967295", width: 32, want: 0xffffffff},
		{input: "0xdeadbeef", width: 32, want: 0xdeadbeef},
		{input: "-1", width: 8, want: 0xff},
		{input: "-1", width: 16, want: 0xffff},
		{input: "-2", width: 32, want: 0xfffffffe},
		{input: "-128", width: 8, want: 0x80},
		{input: "-129", width: 8, wantErr: true},
		{input: " 7 ", width: 8, want: 7},
		{input: "", width: 8, wantErr: true},
		{input: "seven", width: 8, wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseValue(tt.input, tt.width)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseValue(%q, %d) error = %v, wantErr %v", tt.input, tt.width, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseValue(%q, %d) = %#x, want %#x", tt.input, tt.width, got, tt.want)
		}
	}
}

func TestParseValues(t *testing.T) {
	got, err := parseValues([]string{"1", "0x02", "-1"}, 16)
	if err != nil {
		t.Fatalf("parseValues failed: %v", err)
	}
	want := []uint32{1, 2, 0xffff}
	if len(got) != len(want) {
		t.Fatalf("parseValues returned %d values, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value %d = %#x, want %#x", i, got[i], want[i])
		}
	}

	if _, err := parseValues([]string{"1", "nope"}, 8); err == nil {
		t.Error("parseValues accepted an invalid value")
	}
}
