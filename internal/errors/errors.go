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

// Package errors defines sentinel errors for consistent error handling across the application.
// Recoverable save game failures map to specific exit codes in the CLI for proper scripting
// support; misuse of a stream is reported through MisuseError panics instead.
package errors

import "errors"

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrSaveFile indicates the sticky stream error was set while reading or
	// writing a save game. Maps to exit code 2.
	ErrSaveFile = errors.New("save game stream error")

	// ErrOpenFailed indicates a save game could not be opened or created.
	// Maps to exit code 3.
	ErrOpenFailed = errors.New("failed to open save game")

	// ErrPermission indicates the backend refused access to the save game.
	// Maps to exit code 3.
	ErrPermission = errors.New("permission denied")

	// ErrInvalidArgument indicates a malformed command-line value.
	// Maps to exit code 1.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidAccess indicates a read on a write handle or a write on a
	// read handle. It is never returned; it travels inside a MisuseError panic.
	ErrInvalidAccess = errors.New("invalid access")

	// ErrClosed indicates an operation on a handle that is not open.
	ErrClosed = errors.New("save game not open")
)

// MisuseError reports a contract violation by the caller of a stream, such
// as reading from a writer. It is raised with panic, not returned.
type MisuseError struct {
	Op  string
	Err error
}

// NewMisuseError creates a MisuseError for the named operation.
func NewMisuseError(op string, err error) *MisuseError {
	return &MisuseError{Op: op, Err: err}
}

func (e *MisuseError) Error() string {
	return "saveg: " + e.Op + ": " + e.Err.Error()
}

func (e *MisuseError) Unwrap() error {
	return e.Err
}
