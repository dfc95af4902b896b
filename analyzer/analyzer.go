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

package analyzer

import (
	"context"
	"flag"
	"fmt"
	"log/slog"

	"fillmore-labs.com/mutguard/internal/cache"
	"fillmore-labs.com/mutguard/internal/report"
	"fillmore-labs.com/mutguard/internal/run"
)

// Public API constants for the mutguard analyzer.
const (
	name = "mutguard"
	doc  = `mutguard detects unsafe assignments between readonly and mutable TypeScript types`
	url  = "https://pkg.go.dev/fillmore-labs.com/mutguard"
)

// Diagnostic is a finding in a source file.
type Diagnostic = report.Diagnostic

// Result summarizes a run over multiple files.
type Result = run.Result

// Analyzer checks TypeScript sources for unsafe assignments.
type Analyzer struct {
	Name string
	Doc  string
	URL  string

	// Flags binds the configuration to command line flags.
	Flags flag.FlagSet

	r *runOptions
}

// New creates a new instance of the mutguard analyzer.
// It allows for programmatic configuration using [Option], which is useful
// for integrating the analyzer into other tools. Command line tools can
// bind the configuration through [Analyzer.Flags].
func New(opts ...Option) *Analyzer {
	r := makeRunOptions(opts)

	a := &Analyzer{
		Name: name,
		Doc:  doc,
		URL:  url,
		r:    r,
	}

	a.Flags.Init(name, flag.ContinueOnError)
	registerFlags(r, &a.Flags)

	return a
}

// Apply applies additional options, overriding the current configuration.
func (a *Analyzer) Apply(opts ...Option) {
	Options(opts).apply(a.r)
}

// Run checks the given files.
func (a *Analyzer) Run(ctx context.Context, files []string) (*Result, error) {
	o := a.r.options()

	if a.r.cache {
		c, err := cache.Open(a.r.cacheDir)
		if err != nil {
			return nil, fmt.Errorf("mutguard: %w", err)
		}

		o.Cache = c
	}

	o.Logger.LogAttrs(ctx, slog.LevelDebug, "Running analyzer", slog.Any("options", o))

	return o.Run(ctx, files)
}

// Check checks a single in-memory source without caching.
func (a *Analyzer) Check(ctx context.Context, name string, src []byte) ([]Diagnostic, error) {
	return a.r.options().Check(ctx, name, src)
}
