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
	"github.com/sirseerhq/saveg/internal/metadata"
	"github.com/sirseerhq/saveg/internal/output"
	"github.com/spf13/cobra"
)

func newInspectCommand(global *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show size, SHA-256 digest and first line of a save file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, global, args[0])
		},
	}
	return cmd
}

func runInspect(cmd *cobra.Command, global *globalOptions, file string) error {
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

	size, digest, err := rf.Digest()
	if err != nil {
		return err
	}

	stream := sess.stream(rf.Handle(), 0)
	first, ok := stream.ReadLine()
	if ok {
		sess.tracker.RecordRead(0, int(stream.CurrentPosition()))
	}

	writer, err := sess.recordWriter("")
	if err != nil {
		return err
	}
	defer writer.Close()

	rec := output.InspectRecord{
		File:      file,
		Size:      size,
		SHA256:    digest,
		FirstLine: first,
	}
	if err := writer.Write(rec); err != nil {
		return err
	}

	return sess.finish("inspect", metadata.RunParams{})
}
