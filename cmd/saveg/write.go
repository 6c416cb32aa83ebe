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
	"github.com/sirseerhq/saveg/internal/savefile"
	"github.com/sirseerhq/saveg/internal/savegame"
	"github.com/spf13/cobra"
)

func newWriteCommand(global *globalOptions) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "write <file> <value>...",
		Short: "Write little-endian integers to a new save file",
		Long: `Write little-endian integers to a new save file.

Values may be decimal, negative decimal (stored in two's complement) or 0x
hex, and must fit in --width bits. Put negative values after "--" so they
are not taken for flags. The file is replaced atomically: on any write
failure the previous contents are left untouched.`,
		Example: `  saveg write doomsav1.dsg --width 32 109 0x1f
  saveg write doomsav1.dsg --width 16 -- -1 -2`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := parseWidth(width)
			if err != nil {
				return err
			}
			values, err := parseValues(args[1:], w)
			if err != nil {
				return err
			}
			return runWrite(cmd, global, args[0], w, values)
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 8, "Integer width in bits: 8, 16 or 32")

	return cmd
}

func runWrite(cmd *cobra.Command, global *globalOptions, file string, width int, values []uint32) error {
	sess, err := newSession(cmd, global, file)
	if err != nil {
		return err
	}
	defer sess.Close()

	err = commitSave(sess, func(stream *savegame.Stream) {
		for _, v := range values {
			pos := stream.CurrentPosition()
			writeInteger(stream, width, v)
			if stream.Error() {
				return
			}
			sess.tracker.RecordWrite(pos, width/8)
		}
	})
	if err != nil {
		return err
	}

	if !sess.flag.IsSet() {
		fmt.Fprintf(sess.stderr, "Wrote %d values (%d bytes) to %s\n", len(values), len(values)*width/8, file)
	}
	return sess.finish("write", metadata.RunParams{Width: width, Count: len(values)})
}

func writeInteger(stream *savegame.Stream, width int, v uint32) {
	switch width {
	case 8:
		stream.WriteU8(uint8(v))
	case 16:
		stream.WriteU16(uint16(v))
	default:
		stream.WriteU32(v)
	}
}

// commitSave runs fill against a stream bound to a fresh temporary file and
// commits it only when the stream finished without raising its error flag.
func commitSave(sess *session, fill func(*savegame.Stream)) error {
	pending, err := sess.store.Create(sess.name)
	if err != nil {
		return err
	}

	stream := sess.stream(pending.Handle(), 0)
	fill(stream)
	if !stream.Error() {
		stream.Flush()
	}

	if stream.Error() {
		sess.logger.Debug("discarding save", "temp", pending.Name()+".tmp")
		return abortSave(pending)
	}

	if err := pending.Commit(); err != nil {
		if inspector.IsNoSpaceError(err) {
			return fmt.Errorf("%w (device is full)", err)
		}
		return err
	}
	sess.logger.Debug("committed save", "bytes", sess.tracker.Stats().BytesWritten)
	return nil
}

func abortSave(pending *savefile.PendingFile) error {
	if err := pending.Abort(); err != nil {
		return fmt.Errorf("failed to discard save: %w", err)
	}
	return nil
}
