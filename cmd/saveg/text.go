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

	"github.com/sirseerhq/saveg/internal/metadata"
	"github.com/sirseerhq/saveg/internal/savegame"
	"github.com/spf13/cobra"
)

func newTextCommand(global *globalOptions) *cobra.Command {
	var noNewline bool

	cmd := &cobra.Command{
		Use:   "text <file> <text>",
		Short: "Write a text line to a new save file",
		Long: `Write a text line to a new save file.

The text is written as raw bytes followed by a newline, unless --no-newline is
given. The file is replaced atomically.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := args[1]
			if !noNewline {
				text += "\n"
			}
			return runText(cmd, global, args[0], text)
		},
	}

	cmd.Flags().BoolVar(&noNewline, "no-newline", false, "Do not append a newline")

	return cmd
}

func runText(cmd *cobra.Command, global *globalOptions, file, text string) error {
	sess, err := newSession(cmd, global, file)
	if err != nil {
		return err
	}
	defer sess.Close()

	err = commitSave(sess, func(stream *savegame.Stream) {
		pos := stream.CurrentPosition()
		stream.WriteText(text)
		if !stream.Error() {
			sess.tracker.RecordWrite(pos, len(text))
		}
	})
	if err != nil {
		return err
	}

	if !sess.flag.IsSet() {
		fmt.Fprintf(sess.stderr, "Wrote %d bytes to %s\n", len(text), file)
	}
	return sess.finish("text", metadata.RunParams{})
}
