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

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
)

// Writer handles streaming NDJSON output to a file or io.Writer.
type Writer struct {
	mu        sync.Mutex
	output    io.Writer
	encoder   *json.Encoder
	count     int
	closeFunc func() error
}

// Option configures a Writer.
type Option func(*Writer)

// WithIndent pretty-prints each record. The output is then no longer
// strict NDJSON, which is why the CLI only enables it on request.
func WithIndent(indent string) Option {
	return func(w *Writer) {
		if indent != "" {
			w.encoder.SetIndent("", indent)
		}
	}
}

// NewWriter creates a new NDJSON writer that writes to the specified output.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	writer := &Writer{
		output:  w,
		encoder: json.NewEncoder(w),
	}
	writer.encoder.SetEscapeHTML(false)
	for _, opt := range opts {
		opt(writer)
	}
	return writer
}

// NewFileWriter creates a new NDJSON writer that writes to a file.
// The caller must call Close() when done to ensure the file is properly closed.
func NewFileWriter(filename string, opts ...Option) (*Writer, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	writer := NewWriter(file, opts...)
	writer.closeFunc = file.Close
	return writer, nil
}

// Write writes a single record as NDJSON.
func (w *Writer) Write(record any) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.encoder.Encode(record); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}

	w.count++
	return nil
}

// Count returns the number of records written.
func (w *Writer) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}

// Close closes the underlying writer if it's a file. Calling it again is
// a no-op.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closeFunc != nil {
		closeFunc := w.closeFunc
		w.closeFunc = nil
		return closeFunc()
	}
	return nil
}
