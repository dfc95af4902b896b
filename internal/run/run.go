// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package run

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime/trace"
	"time"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/mutguard/internal/astutil"
	"fillmore-labs.com/mutguard/internal/cache"
	"fillmore-labs.com/mutguard/internal/config"
	"fillmore-labs.com/mutguard/internal/host"
	"fillmore-labs.com/mutguard/internal/report"
	"fillmore-labs.com/mutguard/internal/rule"
)

// ErrNoSyntaxTree is returned when the parser produced no syntax tree.
var ErrNoSyntaxTree = errors.New("no syntax tree")

// Result is the outcome of a run.
type Result struct {
	// Diagnostics are sorted by position.
	Diagnostics []report.Diagnostic

	// Sources maps checked file names to their content.
	Sources map[string][]byte

	// Checked counts analyzed files, Cached those answered from the cache
	// and Skipped those that could not be parsed.
	Checked, Cached, Skipped int
}

type fileResult struct {
	src         []byte
	diagnostics []report.Diagnostic
	cached      bool
	skipped     bool
}

// Run checks files in parallel.
func (o *Options) Run(ctx context.Context, files []string) (*Result, error) {
	ctx, task := trace.NewTask(ctx, "Mutguard")
	defer task.End()

	log := o.logger()
	log.LogAttrs(ctx, slog.LevelDebug, "Starting run", slog.Any("options", o), slog.Int("files", len(files)))

	fingerprint := o.Fingerprint()
	results := make([]fileResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.jobs())

	for i, name := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			src, err := os.ReadFile(name)
			if err != nil {
				return fmt.Errorf("can't read source: %w", err)
			}

			results[i], err = o.checkCached(ctx, fingerprint, name, src)

			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	r := &Result{Sources: make(map[string][]byte, len(files))}

	for i, fr := range results {
		switch {
		case fr.skipped:
			r.Skipped++

			continue

		case fr.cached:
			r.Cached++

		default:
			r.Checked++
		}

		r.Sources[files[i]] = fr.src
		r.Diagnostics = append(r.Diagnostics, fr.diagnostics...)
	}

	r.Diagnostics = report.Sort(r.Diagnostics)

	log.LogAttrs(ctx, slog.LevelDebug, "Finished run",
		slog.Int("checked", r.Checked), slog.Int("cached", r.Cached), slog.Int("skipped", r.Skipped),
		slog.Int("diagnostics", len(r.Diagnostics)))

	return r, nil
}

func (o *Options) checkCached(ctx context.Context, fingerprint, name string, src []byte) (fileResult, error) {
	log := o.logger()
	key := cache.NewKey(name, src, fingerprint)

	switch diagnostics, ok, err := o.Cache.Get(key); {
	case errors.Is(err, cache.ErrCacheSchema):
		log.LogAttrs(ctx, slog.LevelDebug, "Ignoring stale cache entry", slog.String("file", name))

	case err != nil:
		log.LogAttrs(ctx, slog.LevelWarn, "Cache read failed", slog.String("file", name), slog.Any("error", err))

	case ok:
		return fileResult{src: src, diagnostics: diagnostics, cached: true}, nil
	}

	start := time.Now()

	diagnostics, err := o.Check(ctx, name, src)
	switch {
	case errors.Is(err, host.ErrFileTooLarge), errors.Is(err, host.ErrInvalidContent), errors.Is(err, host.ErrNoLanguage):
		log.LogAttrs(ctx, slog.LevelWarn, "Skipping file", slog.String("file", name), slog.Any("error", err))

		return fileResult{skipped: true}, nil

	case err != nil:
		return fileResult{}, err
	}

	log.LogAttrs(ctx, slog.LevelDebug, "Checked file",
		slog.String("file", name), slog.Duration("duration", time.Since(start)), slog.Int("diagnostics", len(diagnostics)))

	if err := o.Cache.Put(key, diagnostics); err != nil {
		log.LogAttrs(ctx, slog.LevelWarn, "Cache write failed", slog.String("file", name), slog.Any("error", err))
	}

	return fileResult{src: src, diagnostics: diagnostics}, nil
}

// Check runs the enabled rules over one source file.
func (o *Options) Check(ctx context.Context, name string, src []byte) ([]report.Diagnostic, error) {
	if o.Rules.Empty() {
		return nil, nil
	}

	region := trace.StartRegion(ctx, "Parse")
	f, err := host.Parse(ctx, name, src, o.MaxFileSize)
	region.End()

	if err != nil {
		return nil, err
	}
	defer f.Close()

	currentFile := astutil.NewCurrentFile(name, src, f.Root())
	if !currentFile.Valid() {
		return nil, fmt.Errorf("%s: %w", name, ErrNoSyntaxTree)
	}

	// Skip generated files
	if currentFile.Generated() && !o.Behavior.Enabled(config.IncludeGenerated) {
		return nil, nil
	}

	// Skip files with nolint comment
	if currentFile.NoLint() {
		return nil, nil
	}

	if f.HasError() {
		o.logger().LogAttrs(ctx, slog.LevelDebug, "File has syntax errors", slog.String("file", name))
	}

	defer trace.StartRegion(ctx, "Dispatch").End()

	c := &fileChecker{currentFile: currentFile, host: host.New(f)}
	c.dispatch(f.Root(), rule.Enabled(o.Rules))

	return report.Sort(c.diagnostics), nil
}
