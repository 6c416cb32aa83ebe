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

	saveerrors "github.com/sirseerhq/saveg/internal/errors"
	"github.com/sirseerhq/saveg/internal/metadata"
	"github.com/sirseerhq/saveg/internal/output"
	"github.com/spf13/cobra"
)

func newLinesCommand(global *globalOptions) *cobra.Command {
	var (
		maxLine    int
		offset     int64
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "lines <file>",
		Short: "List the text lines of a save file",
		Long: `List the text lines of a save file in NDJSON format.

Lines are read the way the game reads them: up to a newline or the line
length cap, whichever comes first. A line longer than the cap continues in
the next record. Reaching the end of the file is not an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxLine != 0 && maxLine < 2 {
				return fmt.Errorf("%w: --max-line must be at least 2", saveerrors.ErrInvalidArgument)
			}
			if offset < 0 {
				return fmt.Errorf("%w: offset cannot be negative", saveerrors.ErrInvalidArgument)
			}
			return runLines(cmd, global, args[0], maxLine, offset, outputFile)
		},
	}

	cmd.Flags().IntVar(&maxLine, "max-line", 0, "Line length cap including the terminator (default: from config, 260)")
	cmd.Flags().Int64Var(&offset, "offset", 0, "Byte offset to start at")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file path (default: stdout)")

	return cmd
}

func runLines(cmd *cobra.Command, global *globalOptions, file string, maxLine int, offset int64, outputFile string) error {
	sess, err := newSession(cmd, global, file)
	if err != nil {
		return err
	}
	defer sess.Close()

	rf, err := sess.store.Open(sess.name)
	if err != nil {
		return err
	}
	defer rf.Close()

	stream := sess.stream(rf.Handle(), maxLine)
	stream.SeekFromStart(offset)

	writer, err := sess.recordWriter(outputFile)
	if err != nil {
		return err
	}
	defer writer.Close()

	for n := 1; ; n++ {
		pos := stream.CurrentPosition()
		text, ok := stream.ReadLine()
		if !ok {
			break
		}
		sess.tracker.RecordRead(pos, int(stream.CurrentPosition()-pos))

		if err := writer.Write(output.LineRecord{Line: n, Offset: pos, Text: text}); err != nil {
			return err
		}
	}

	if maxLine == 0 {
		maxLine = sess.cfg.Stream.MaxLineLength
	}
	return sess.finish("lines", metadata.RunParams{
		Offset:        offset,
		MaxLineLength: maxLine,
	})
}
