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
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := newRootCommand()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(mapErrorToExitCode(err))
	}
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "saveg",
		Short: "Read and write byte-exact save game files",
		Long: `saveg reads and writes save game files through the same stream layer
the game uses: little-endian integers composed byte by byte, raw text lines,
absolute seeks and a sticky error flag that reports the first failure once.`,
		Version:       version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
	}

	addGlobalFlags(rootCmd.PersistentFlags(), opts)

	rootCmd.AddCommand(
		newDumpCommand(opts),
		newLinesCommand(opts),
		newWriteCommand(opts),
		newTextCommand(opts),
		newInspectCommand(opts),
	)

	return rootCmd
}
