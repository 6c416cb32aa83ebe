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
	"io"
	"log/slog"
	"os"
)

// DefaultMaxLineLength is the legacy line cap, terminator included.
const DefaultMaxLineLength = 260

// Option configures a Stream.
type Option func(*options)

type options struct {
	flag          *ErrorFlag
	sink          io.Writer
	maxLineLength int
	logger        *slog.Logger
}

func defaultOptions() options {
	return options{
		sink:          os.Stderr,
		maxLineLength: DefaultMaxLineLength,
		logger:        slog.New(slog.DiscardHandler),
	}
}

// WithErrorFlag binds the stream to a flag shared with other streams.
func WithErrorFlag(flag *ErrorFlag) Option {
	return func(o *options) {
		if flag != nil {
			o.flag = flag
		}
	}
}

// WithInitialError starts the stream with a privately owned flag in the
// given state. It is ignored when WithErrorFlag supplies a shared flag.
func WithInitialError(set bool) Option {
	return func(o *options) {
		if o.flag == nil {
			o.flag = NewErrorFlag(set)
		}
	}
}

// WithSink sets the destination of diagnostic lines. Defaults to os.Stderr.
func WithSink(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.sink = w
		}
	}
}

// WithMaxLineLength sets the ReadLine cap, terminator included. Values
// below 2 are ignored.
func WithMaxLineLength(n int) Option {
	return func(o *options) {
		if n >= 2 {
			o.maxLineLength = n
		}
	}
}

// WithLogger sets a structured logger for debug events. It never receives
// the diagnostic lines themselves.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
