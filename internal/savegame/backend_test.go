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
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/require"

	"github.com/sirseerhq/saveg/internal/handle"
)

// backend builds handles over one kind of storage so every codec test runs
// against each of them.
type backend struct {
	name string

	// newWriter returns a writer on empty storage and a func returning
	// everything written so far.
	newWriter func(t *testing.T) (*handle.Writer, func() []byte)

	// newReader returns a reader over data.
	newReader func(t *testing.T, data []byte) *handle.Reader
}

func backends() []backend {
	return []backend{
		{
			name: "os",
			newWriter: func(t *testing.T) (*handle.Writer, func() []byte) {
				f, path := createTemp(t)
				return handle.NewWriter(f), func() []byte { return readFile(t, path) }
			},
			newReader: func(t *testing.T, data []byte) *handle.Reader {
				return handle.NewReader(openTemp(t, data))
			},
		},
		{
			name: "buffered",
			newWriter: func(t *testing.T) (*handle.Writer, func() []byte) {
				f, path := createTemp(t)
				w := handle.NewBufferedWriter(f, 8)
				return w, func() []byte {
					require.NoError(t, w.Flush())
					return readFile(t, path)
				}
			},
			newReader: func(t *testing.T, data []byte) *handle.Reader {
				return handle.NewBufferedReader(openTemp(t, data), 8)
			},
		},
		{
			name: "memfs",
			newWriter: func(t *testing.T) (*handle.Writer, func() []byte) {
				fs := memfs.New()
				f, err := fs.Create("save.dsg")
				require.NoError(t, err)
				t.Cleanup(func() { _ = f.Close() })
				return handle.NewWriter(f), func() []byte {
					r, err := fs.Open("save.dsg")
					require.NoError(t, err)
					defer r.Close()
					data, err := io.ReadAll(r)
					require.NoError(t, err)
					return data
				}
			},
			newReader: func(t *testing.T, data []byte) *handle.Reader {
				fs := memfs.New()
				f, err := fs.Create("save.dsg")
				require.NoError(t, err)
				_, err = f.Write(data)
				require.NoError(t, err)
				require.NoError(t, f.Close())

				r, err := fs.Open("save.dsg")
				require.NoError(t, err)
				t.Cleanup(func() { _ = r.Close() })
				return handle.NewReader(r)
			},
		},
	}
}

func createTemp(t *testing.T) (*os.File, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "save.dsg")
	f, err := os.Create(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f, path
}

func openTemp(t *testing.T, data []byte) *os.File {
	t.Helper()

	path := filepath.Join(t.TempDir(), "save.dsg")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}
