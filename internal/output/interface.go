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

// RecordWriter is the sink the saveg commands emit their records into.
// Implementations must write each record as soon as Write is called.
type RecordWriter interface {
	// Write writes a single record to the output.
	Write(record any) error

	// Close releases the underlying writer, if the RecordWriter owns it.
	Close() error
}
