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

package savefile

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	saveerrors "github.com/sirseerhq/saveg/internal/errors"
	"github.com/sirseerhq/saveg/internal/handle"
	"github.com/sirseerhq/saveg/internal/ioerror"
)

var inspector = ioerror.NewErrorChainInspector(ioerror.NewInspector())

// openError wraps a failure to open or create name. Refused access is
// additionally marked with ErrPermission.
func openError(name string, err error) error {
	if inspector.IsPermissionError(err) {
		return fmt.Errorf("%w %s: %w: %w", saveerrors.ErrOpenFailed, name, saveerrors.ErrPermission, err)
	}
	return fmt.Errorf("%w %s: %w", saveerrors.ErrOpenFailed, name, err)
}

// tempSuffix is appended to the target name while a save is in progress.
const tempSuffix = ".tmp"

// Options controls how files are bound to handles.
type Options struct {
	// Buffered selects the bufio-backed handle constructors.
	Buffered bool

	// BufferSize is the bufio size when Buffered is set. Zero means the
	// bufio default.
	BufferSize int
}

// Store opens save files on one filesystem.
type Store struct {
	fs   billy.Filesystem
	opts Options
}

// New creates a Store on fs.
func New(fs billy.Filesystem, opts Options) *Store {
	return &Store{fs: fs, opts: opts}
}

// NewOS creates a Store on the host filesystem rooted at dir.
func NewOS(dir string, opts Options) *Store {
	return New(osfs.New(dir), opts)
}

// ReadFile is a save file open for reading.
type ReadFile struct {
	file   billy.File
	handle *handle.Reader
}

// Open opens name for reading.
func (s *Store) Open(name string) (*ReadFile, error) {
	f, err := s.fs.Open(name)
	if err != nil {
		return nil, openError(name, err)
	}

	var h *handle.Reader
	if s.opts.Buffered {
		h = handle.NewBufferedReader(f, s.opts.BufferSize)
	} else {
		h = handle.NewReader(f)
	}
	return &ReadFile{file: f, handle: h}, nil
}

// Handle returns the reader bound to the file.
func (r *ReadFile) Handle() *handle.Reader {
	return r.handle
}

// Name returns the file name.
func (r *ReadFile) Name() string {
	return r.file.Name()
}

// Digest returns the size and hex SHA-256 of the open file. Both come
// from the same descriptor, so a concurrent replace of the name cannot mix
// two versions. The handle is rewound to the start afterwards.
func (r *ReadFile) Digest() (int64, string, error) {
	if _, err := r.file.Seek(0, io.SeekStart); err != nil {
		return 0, "", fmt.Errorf("failed to rewind save file %s: %w", r.file.Name(), err)
	}

	hash := sha256.New()
	n, err := io.Copy(hash, r.file)
	if err != nil {
		return 0, "", fmt.Errorf("failed to hash save file %s: %w", r.file.Name(), err)
	}

	r.handle.SeekFromStart(0)
	if pos := r.handle.Tell(); pos != 0 {
		return 0, "", fmt.Errorf("failed to rewind save file %s: at offset %d", r.file.Name(), pos)
	}
	return n, hex.EncodeToString(hash.Sum(nil)), nil
}

// Close closes the file.
func (r *ReadFile) Close() error {
	if err := r.file.Close(); err != nil {
		return fmt.Errorf("failed to close save file: %w", err)
	}
	return nil
}

// PendingFile is a save in progress. Exactly one of Commit or Abort must be
// called.
type PendingFile struct {
	fs     billy.Filesystem
	target string
	temp   string
	file   billy.File
	handle *handle.Writer
	done   bool
}

// Create starts a new save that will replace name on Commit.
func (s *Store) Create(name string) (*PendingFile, error) {
	if dir := path.Dir(name); dir != "." && dir != "/" {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w %s: failed to create save directory: %w", saveerrors.ErrOpenFailed, name, err)
		}
	}

	temp := name + tempSuffix
	f, err := s.fs.OpenFile(temp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return nil, openError(name, err)
	}

	var h *handle.Writer
	if s.opts.Buffered {
		h = handle.NewBufferedWriter(f, s.opts.BufferSize)
	} else {
		h = handle.NewWriter(f)
	}

	return &PendingFile{
		fs:     s.fs,
		target: name,
		temp:   temp,
		file:   f,
		handle: h,
	}, nil
}

// Handle returns the writer bound to the temporary file.
func (p *PendingFile) Handle() *handle.Writer {
	return p.handle
}

// Name returns the final name of the save.
func (p *PendingFile) Name() string {
	return p.target
}

// Commit flushes and syncs the temporary file and atomically renames it to
// the target name.
func (p *PendingFile) Commit() error {
	if p.done {
		return fmt.Errorf("save %s already finished: %w", p.target, saveerrors.ErrClosed)
	}
	p.done = true

	if err := p.handle.Flush(); err != nil {
		_ = p.file.Close()
		_ = p.fs.Remove(p.temp)
		return fmt.Errorf("failed to flush save file: %w", err)
	}

	// billy.File has no Sync; os-backed files do.
	if syncer, ok := p.file.(interface{ Sync() error }); ok {
		if err := syncer.Sync(); err != nil {
			_ = p.file.Close()
			_ = p.fs.Remove(p.temp)
			return fmt.Errorf("failed to sync save file: %w", err)
		}
	}

	if err := p.file.Close(); err != nil {
		_ = p.fs.Remove(p.temp)
		return fmt.Errorf("failed to close save file: %w", err)
	}

	if err := p.fs.Rename(p.temp, p.target); err != nil {
		_ = p.fs.Remove(p.temp)
		return fmt.Errorf("failed to rename save file: %w", err)
	}

	return nil
}

// Abort discards the temporary file and leaves any existing save untouched.
func (p *PendingFile) Abort() error {
	if p.done {
		return nil
	}
	p.done = true

	_ = p.file.Close()
	if err := p.fs.Remove(p.temp); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove temporary save file: %w", err)
	}
	return nil
}

// Size returns the size of name in bytes.
func (s *Store) Size(name string) (int64, error) {
	info, err := s.fs.Stat(name)
	if err != nil {
		return 0, openError(name, err)
	}
	return info.Size(), nil
}
