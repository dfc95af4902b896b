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
)

// Option configures specific behavior of a [New] mutguard analyzer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithReadonlyToMutable is an [Option] to configure whether readonly to mutable assignments are reported.
func WithReadonlyToMutable(enabled bool) Option {
	return ruleOption{flag: config.ReadonlyToMutable, key: "readonly-to-mutable", enabled: enabled}
}

// WithMutableToReadonly is an [Option] to configure whether mutable to readonly assignments are reported.
func WithMutableToReadonly(enabled bool) Option {
	return ruleOption{flag: config.MutableToReadonly, key: "mutable-to-readonly", enabled: enabled}
}

// WithOptionalProperty is an [Option] to configure whether assignments introducing optional properties are reported.
func WithOptionalProperty(enabled bool) Option {
	return ruleOption{flag: config.OptionalProperty, key: "optional-property", enabled: enabled}
}

type ruleOption struct {
	flag    config.RuleFlags
	key     string
	enabled bool
}

func (o ruleOption) apply(r *runOptions) {
	r.rules.Set(o.flag, o.enabled)
}

func (o ruleOption) LogAttr() slog.Attr {
	return slog.Bool(o.key, o.enabled)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *runOptions) {
	r.behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithJobs is an [Option] to limit the number of files checked in parallel.
// Zero or less uses all available processors.
func WithJobs(jobs int) Option { return jobsOption{jobs: jobs} }

type jobsOption struct{ jobs int }

func (o jobsOption) apply(r *runOptions) {
	r.jobs = o.jobs
}

func (o jobsOption) LogAttr() slog.Attr {
	return slog.Int("jobs", o.jobs)
}

// WithMaxFileSize is an [Option] to configure the size limit of source files in bytes.
// Larger files are skipped. Zero disables the limit.
func WithMaxFileSize(size int) Option { return maxFileSizeOption{size: size} }

type maxFileSizeOption struct{ size int }

func (o maxFileSizeOption) apply(r *runOptions) {
	r.maxFileSize = o.size
}

func (o maxFileSizeOption) LogAttr() slog.Attr {
	return slog.Int("max-file-size", o.size)
}

// WithCache is an [Option] to configure whether results of unchanged files are cached.
func WithCache(enabled bool) Option { return cacheOption{enabled: enabled} }

type cacheOption struct{ enabled bool }

func (o cacheOption) apply(r *runOptions) {
	r.cache = o.enabled
}

func (o cacheOption) LogAttr() slog.Attr {
	return slog.Bool("cache", o.enabled)
}

// WithCacheDir is an [Option] to enable caching in the given directory.
func WithCacheDir(dir string) Option { return cacheDirOption{dir: dir} }

type cacheDirOption struct{ dir string }

func (o cacheDirOption) apply(r *runOptions) {
	r.cache, r.cacheDir = true, o.dir
}

func (o cacheDirOption) LogAttr() slog.Attr {
	return slog.String("cache-dir", o.dir)
}

// WithLogger is an [Option] to configure the logger receiving progress messages.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *runOptions) {
	r.logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
