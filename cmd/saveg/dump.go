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
	"github.com/sirseerhq/saveg/internal/savegame"
	"github.com/spf13/cobra"
)

type dumpOptions struct {
	width      int
	offset     int64
	count      int
	fromEnd    bool
	outputFile string
}

func newDumpCommand(global *globalOptions) *cobra.Command {
	var opts dumpOptions

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Decode little-endian integers from a save file",
		Long: `Decode little-endian integers from a save file and output them in NDJSON format.

Each record carries the offset, width, value and hex rendering of one integer.
Without --count the whole remainder of the file is decoded. Asking for more
integers than the file holds reports the save game read error and exits 2.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, global, args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "w", 8, "Integer width in bits: 8, 16 or 32")
	cmd.Flags().Int64Var(&opts.offset, "offset", 0, "Byte offset to start at")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 0, "Number of integers to decode (default: to end of file)")
	cmd.Flags().BoolVar(&opts.fromEnd, "from-end", false, "Measure --offset backwards from the end of the file")
	cmd.Flags().StringVarP(&opts.outputFile, "output", "o", "", "Output file path (default: stdout)")

	return cmd
}

func runDump(cmd *cobra.Command, global *globalOptions, file string, opts dumpOptions) error {
	width, err := parseWidth(opts.width)
	if err != nil {
		return err
	}
	if opts.offset < 0 || opts.count < 0 {
		return fmt.Errorf("%w: offset and count cannot be negative", saveerrors.ErrInvalidArgument)
	}

	sess, err := newSession(cmd, global, file)
	if err != nil {
		return err
	}
	defer sess.Close()

	size, err := sess.store.Size(sess.name)
	if err != nil {
		return err
	}

	rf, err := sess.store.Open(sess.name)
	if err != nil {
		return err
	}
	defer rf.Close()

	stream := sess.stream(rf.Handle(), 0)
	if opts.fromEnd {
		stream.SeekFromEnd(-opts.offset)
	} else {
		stream.SeekFromStart(opts.offset)
	}

	writer, err := sess.recordWriter(opts.outputFile)
	if err != nil {
		return err
	}
	defer writer.Close()

	count := opts.count
	if count == 0 {
		remaining := size - stream.CurrentPosition()
		if remaining > 0 {
			count = int(remaining / int64(width/8))
		}
	}
	sess.logger.Debug("dumping integers", "width", width, "start", stream.CurrentPosition(), "count", count)

	for i := 0; i < count; i++ {
		pos := stream.CurrentPosition()
		value := readInteger(stream, width)
		if stream.Error() {
			break
		}
		sess.tracker.RecordRead(pos, width/8)

		if err := writer.Write(output.NewIntegerRecord(pos, width, value)); err != nil {
			return err
		}
	}

	return sess.finish("dump", metadata.RunParams{
		Width:   width,
		Offset:  opts.offset,
		Count:   opts.count,
		FromEnd: opts.fromEnd,
	})
}

func readInteger(stream *savegame.Stream, width int) uint32 {
	switch width {
	case 8:
		return uint32(stream.ReadU8())
	case 16:
		return uint32(stream.ReadU16())
	default:
		return stream.ReadU32()
	}
}
