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

	saveerrors "github.com/sirseerhq/saveg/internal/errors"
	"github.com/sirseerhq/saveg/internal/ioerror"
)

const (
	exitOK       = 0
	exitGeneral  = 1
	exitSaveFile = 2
	exitOpen     = 3
)

var inspector = ioerror.NewErrorChainInspector(ioerror.NewInspector())

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return exitOK
	}

	if errors.Is(err, saveerrors.ErrSaveFile) {
		return exitSaveFile
	}

	if errors.Is(err, saveerrors.ErrOpenFailed) ||
		errors.Is(err, saveerrors.ErrPermission) ||
		inspector.IsPermissionError(err) ||
		inspector.IsNotFoundError(err) {
		return exitOpen
	}

	return exitGeneral
}
