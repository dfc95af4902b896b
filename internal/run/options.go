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
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"runtime/debug"
	"sync"
	"time"

	"fillmore-labs.com/mutguard/internal/cache"
	"fillmore-labs.com/mutguard/internal/config"
	"fillmore-labs.com/mutguard/internal/host"
)

// Options represent the configuration of a mutguard run.
type Options struct {
	// Rules represent the rules to be enabled.
	Rules config.Rules

	// Behavior holds behavioral options.
	Behavior config.Behavior

	// Jobs limits the number of files checked in parallel. Zero or less means GOMAXPROCS.
	Jobs int

	// MaxFileSize is the size limit for source files in bytes. Zero means no limit.
	MaxFileSize int

	// Cache stores diagnostics of unchanged files. Nil disables caching.
	Cache *cache.Cache

	// Logger receives progress messages. Nil uses [slog.Default].
	Logger *slog.Logger
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Rules:       config.DefaultRules(),
		Behavior:    config.DefaultBehavior(),
		MaxFileSize: host.DefaultMaxFileSize,
	}
}

// LogValue implements [slog.LogValuer].
func (o *Options) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("readonly-to-mutable", o.Rules.Enabled(config.ReadonlyToMutable)),
		slog.Bool("mutable-to-readonly", o.Rules.Enabled(config.MutableToReadonly)),
		slog.Bool("optional-property", o.Rules.Enabled(config.OptionalProperty)),
		slog.Bool("generated", o.Behavior.Enabled(config.IncludeGenerated)),
		slog.Int("jobs", o.jobs()),
		slog.Int("max-file-size", o.MaxFileSize),
		slog.String("cache", o.Cache.Dir()),
	)
}

// Fingerprint identifies everything besides the file content that influences diagnostics.
func (o *Options) Fingerprint() string {
	return fmt.Sprintf("mutguard %s rules=%03b behavior=%b max-file-size=%d",
		version(), o.Rules.Value(), o.Behavior.Value(), o.MaxFileSize)
}

func (o *Options) jobs() int {
	if o.Jobs > 0 {
		return o.Jobs
	}

	return runtime.GOMAXPROCS(0)
}

func (o *Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return slog.Default()
}

// version identifies the running binary. Development builds without a clean
// VCS revision add the modification time of the executable.
var version = sync.OnceValue(func() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "(unknown) " + buildStamp()
	}

	v := bi.Main.Version
	if v == "" {
		v = "(devel)"
	}

	var (
		revision string
		modified bool
	)

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value

		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if revision != "" {
		v += " " + revision
	}

	if v == "(devel)" || modified {
		v += " " + buildStamp()
	}

	return v
})

func buildStamp() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}

	info, err := os.Stat(exe)
	if err != nil {
		return ""
	}

	return info.ModTime().UTC().Format(time.RFC3339Nano)
}
