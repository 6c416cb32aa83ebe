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

// ErrorFlag is the sticky error cell of one logical save session. Several
// streams may share one flag; the handles behind them are never shared.
// It performs no locking.
type ErrorFlag struct {
	set bool
}

// NewErrorFlag returns a flag in the given initial state.
func NewErrorFlag(initial bool) *ErrorFlag {
	return &ErrorFlag{set: initial}
}

// IsSet reports whether an error has been recorded since the last Reset.
func (f *ErrorFlag) IsSet() bool {
	return f.set
}

// Reset clears the flag unconditionally.
func (f *ErrorFlag) Reset() {
	f.set = false
}

// raise sets the flag and reports whether this call made the transition.
func (f *ErrorFlag) raise() bool {
	if f.set {
		return false
	}
	f.set = true
	return true
}
