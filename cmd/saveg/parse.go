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
	"fmt"
	"strconv"
	"strings"

	saveerrors "github.com/sirseerhq/saveg/internal/errors"
)

// parseWidth validates an integer width in bits.
func parseWidth(width int) (int, error) {
	switch width {
	case 8, 16, 32:
		return width, nil
	default:
		return 0, fmt.Errorf("%w: width must be 8, 16 or 32, got %d", saveerrors.ErrInvalidArgument, width)
	}
}

// parseValue parses a decimal, 0x hex or negative decimal integer and
// checks that it fits in width bits. Negative values are stored in two's
// complement, the way the game's signed fields are.
func parseValue(s string, width int) (uint32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", saveerrors.ErrInvalidArgument)
	}

	if strings.HasPrefix(s, "-") {
		v, err := strconv.ParseInt(s, 10, width)
		if err != nil {
			return 0, fmt.Errorf("%w: %q does not fit in %d signed bits", saveerrors.ErrInvalidArgument, s, width)
		}
		return uint32(v) & mask(width), nil
	}

	v, err := strconv.ParseUint(s, 0, width)
	if err != nil {
		return 0, fmt.Errorf("%w: %q does not fit in %d bits", saveerrors.ErrInvalidArgument, s, width)
	}
	return uint32(v), nil
}

// parseValues parses every value in args for the given width.
func parseValues(args []string, width int) ([]uint32, error) {
	values := make([]uint32, 0, len(args))
	for _, arg := range args {
		v, err := parseValue(arg, width)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func mask(width int) uint32 {
	if width >= 32 {
		return 0xffffffff
	}
	return 1<<width - 1
}
