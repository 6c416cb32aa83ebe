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
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sirseerhq/saveg/internal/config"
	saveerrors "github.com/sirseerhq/saveg/internal/errors"
	"github.com/sirseerhq/saveg/internal/handle"
	"github.com/sirseerhq/saveg/internal/metadata"
	"github.com/sirseerhq/saveg/internal/output"
	"github.com/sirseerhq/saveg/internal/savefile"
	"github.com/sirseerhq/saveg/internal/savegame"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	verbose    bool
	buffered   bool
	summary    bool
	summaryDir string
}

func addGlobalFlags(fs *pflag.FlagSet, opts *globalOptions) {
	fs.StringVar(&opts.configPath, "config", "", "Path to config file (default: .saveg.yaml or ~/.saveg/config.yaml)")
	fs.BoolVar(&opts.verbose, "verbose", false, "Log stream failures and file operations to stderr")
	fs.BoolVar(&opts.buffered, "buffered", false, "Buffer save file I/O (overrides stream.buffered)")
	fs.BoolVar(&opts.summary, "summary", false, "Print a JSON run summary to stderr when done")
	fs.StringVar(&opts.summaryDir, "summary-dir", "", "Also save the run summary as a JSON file in this directory")
}

// session is everything one command needs to drive a save game stream:
// resolved configuration, the store holding the save file, the diagnostic
// sink and the logger.
type session struct {
	cfg       *config.Config
	store     *savefile.Store
	name      string
	path      string
	sink      io.Writer
	closeSink func() error
	logger    *slog.Logger
	flag      *savegame.ErrorFlag
	tracker   *metadata.Tracker
	opts      *globalOptions
	stdout    io.Writer
	stderr    io.Writer
}

// newSession resolves configuration for saveFile with the precedence
// flags > env > config file > defaults.
func newSession(cmd *cobra.Command, opts *globalOptions, saveFile string) (*session, error) {
	cfg, err := config.LoadConfigForFile(opts.configPath, saveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("buffered") {
		cfg.Stream.Buffered = opts.buffered
	}
	if opts.verbose {
		cfg.Diagnostics.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	s := &session{
		cfg:     cfg,
		name:    filepath.Base(saveFile),
		path:    saveFile,
		flag:    savegame.NewErrorFlag(false),
		tracker: metadata.New(),
		opts:    opts,
		stdout:  cmd.OutOrStdout(),
		stderr:  cmd.ErrOrStderr(),
	}

	s.store = savefile.NewOS(filepath.Dir(saveFile), savefile.Options{
		Buffered:   cfg.Stream.Buffered,
		BufferSize: cfg.Stream.BufferSize,
	})

	if err := s.openSink(); err != nil {
		return nil, err
	}

	if cfg.Diagnostics.Verbose {
		s.logger = slog.New(slog.NewTextHandler(s.stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	} else {
		s.logger = slog.New(slog.DiscardHandler)
	}
	s.logger = s.logger.With("file", saveFile)

	return s, nil
}

func (s *session) openSink() error {
	switch s.cfg.Diagnostics.Sink {
	case "stderr":
		s.sink = s.stderr
	case "stdout":
		s.sink = s.stdout
	default:
		f, err := os.OpenFile(s.cfg.Diagnostics.Sink, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open diagnostics sink: %w", err)
		}
		s.sink = f
		s.closeSink = f.Close
	}
	return nil
}

// Close releases the diagnostic sink if the session opened it.
func (s *session) Close() error {
	if s.closeSink != nil {
		return s.closeSink()
	}
	return nil
}

// stream binds a save game stream to h with the session's sink, logger
// and error flag. maxLine overrides the configured line cap when positive.
func (s *session) stream(h handle.Handle, maxLine int) *savegame.Stream {
	if maxLine <= 0 {
		maxLine = s.cfg.Stream.MaxLineLength
	}
	return savegame.New(h,
		savegame.WithErrorFlag(s.flag),
		savegame.WithSink(s.sink),
		savegame.WithMaxLineLength(maxLine),
		savegame.WithLogger(s.logger),
	)
}

// recordWriter returns the NDJSON writer for command results, honoring
// output.pretty.
func (s *session) recordWriter(outputFile string) (output.RecordWriter, error) {
	var opts []output.Option
	if s.cfg.Output.Pretty {
		opts = append(opts, output.WithIndent("  "))
	}

	if outputFile == "" {
		return output.NewWriter(s.stdout, opts...), nil
	}
	w, err := output.NewFileWriter(outputFile, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return w, nil
}

// finish reports the run summary when asked to and converts a raised error
// flag into ErrSaveFile.
func (s *session) finish(command string, params metadata.RunParams) error {
	s.tracker.SetErrored(s.flag.IsSet())

	if s.opts.summary || s.opts.summaryDir != "" {
		params.File = s.path
		params.Buffered = s.cfg.Stream.Buffered
		summary := s.tracker.GenerateSummary(version, command, params)

		if s.opts.summary {
			if err := metadata.WriteSummaryToWriter(summary, s.stderr); err != nil {
				return fmt.Errorf("failed to write summary: %w", err)
			}
		}
		if s.opts.summaryDir != "" {
			if err := os.MkdirAll(s.opts.summaryDir, 0o755); err != nil {
				return fmt.Errorf("failed to create summary directory: %w", err)
			}
			name, err := metadata.SaveSummary(savefile.NewOS(s.opts.summaryDir, savefile.Options{}), summary)
			if err != nil {
				return err
			}
			s.logger.Debug("saved run summary", "summary", filepath.Join(s.opts.summaryDir, name))
		}
	}

	if s.flag.IsSet() {
		return fmt.Errorf("%w: %s", saveerrors.ErrSaveFile, s.path)
	}
	return nil
}
