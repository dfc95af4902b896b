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
	"log/slog"

	"fillmore-labs.com/mutguard/internal/config"
	"fillmore-labs.com/mutguard/internal/host"
	"fillmore-labs.com/mutguard/internal/run"
)

// runOptions represent configuration runOptions for the mutguard analyzer.
type runOptions struct {
	// rules represents the rules to be enabled.
	rules config.Rules

	// behavior holds behavioral options.
	behavior config.Behavior

	// jobs limits the number of files checked in parallel.
	jobs int

	// maxFileSize is the size limit for source files in bytes.
	maxFileSize int

	// cache enables the result cache in cacheDir, or the user cache directory when empty.
	cache    bool
	cacheDir string

	logger *slog.Logger
}

// makeRunOptions returns a [runOptions] struct with overriding [Options] applied.
func makeRunOptions(opts Options) *runOptions {
	r := defaultRunOptions()
	opts.apply(r)

	return r
}

// defaultRunOptions initializes and returns a new runOptions instance with default values.
func defaultRunOptions() *runOptions {
	return &runOptions{
		rules:       config.DefaultRules(),
		behavior:    config.DefaultBehavior(),
		maxFileSize: host.DefaultMaxFileSize,
	}
}

// options returns the runner configuration, without cache.
func (r *runOptions) options() *run.Options {
	logger := r.logger
	if logger == nil {
		logger = slog.Default()
	}

	return &run.Options{
		Rules:       r.rules,
		Behavior:    r.behavior,
		Jobs:        r.jobs,
		MaxFileSize: r.maxFileSize,
		Logger:      logger.With(slog.String("analyzer", name)),
	}
}
