// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"fillmore-labs.com/mutguard/analyzer"
	"fillmore-labs.com/mutguard/internal/report"
	"fillmore-labs.com/mutguard/settings"
)

type rootCommand struct {
	stdout, stderr io.Writer

	config  string
	format  report.Format
	color   colorMode
	noCache bool
	verbose bool
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	c := &rootCommand{stdout: stdout, stderr: stderr}

	cmd := &cobra.Command{
		Use:   "mutguard [flags] <files or directories>...",
		Short: "Report unsafe assignments between readonly and mutable TypeScript types",
		Long: `Mutguard reports TypeScript assignments that silently change the mutability of a value:
readonly values reaching mutable locations, mutable values reaching readonly locations
and values lacking a property reaching types declaring it optional.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          c.run,
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fs := cmd.Flags()
	fs.StringVar(&c.config, "config", "", "configuration file (default is "+settings.FileName+" in the current directory or a parent)")
	fs.Var(&c.format, "format", "output format (text or json)")
	fs.Var(&c.color, "color", "colorize text output (auto, always or never)")
	fs.BoolVar(&c.noCache, "no-cache", false, "disable the result cache")
	fs.BoolVarP(&c.verbose, "verbose", "v", false, "log progress to stderr")

	// Values set here are replayed over the configuration file settings.
	fs.AddGoFlagSet(&analyzer.New().Flags)

	cmd.AddCommand(newRulesCommand(), newCacheCommand())

	return cmd
}

func (c *rootCommand) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := newLogger(c.stderr, c.verbose)

	s, err := c.settings(logger)
	if err != nil {
		return err
	}

	opts := analyzer.Options{analyzer.WithCache(true)}
	opts = append(opts, s.Options()...)
	opts = append(opts, analyzer.WithLogger(logger))

	a := analyzer.New(opts)
	if err := replayFlags(cmd.Flags(), &a.Flags); err != nil {
		return err
	}

	if c.noCache {
		a.Apply(analyzer.WithCache(false))
	}

	files, err := collectFiles(args)
	if err != nil {
		return err
	}

	result, err := a.Run(ctx, files)
	if err != nil {
		return err
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Check finished",
		slog.Int("diagnostics", len(result.Diagnostics)),
		slog.Int("checked", result.Checked),
		slog.Int("cached", result.Cached),
		slog.Int("skipped", result.Skipped),
	)

	ro := report.Options{Color: c.color.enabled(c.stdout), Sources: result.Sources}
	if err := report.Write(c.stdout, c.format, result.Diagnostics, ro); err != nil {
		return fmt.Errorf("can't write report: %w", err)
	}

	if len(result.Diagnostics) > 0 {
		return errDiagnostics
	}

	return nil
}

// settings loads the explicit configuration file, or the one found from the current directory.
func (c *rootCommand) settings(logger *slog.Logger) (settings.Settings, error) {
	path := c.config
	if path == "" {
		found, ok, err := settings.Find(".")
		if err != nil {
			return settings.Settings{}, err
		}

		if !ok {
			return settings.Settings{}, nil
		}

		path = found
	}

	logger.Debug("Loading configuration", slog.String("path", path))

	return settings.Load(path)
}

// replayFlags applies the analyzer flags set on the command line to dst.
func replayFlags(src *pflag.FlagSet, dst *flag.FlagSet) error {
	var err error

	src.Visit(func(f *pflag.Flag) {
		if err != nil || dst.Lookup(f.Name) == nil {
			return
		}

		err = dst.Set(f.Name, f.Value.String())
	})

	return err
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
