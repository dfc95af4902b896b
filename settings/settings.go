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

package settings

import mutguard "fillmore-labs.com/mutguard/analyzer"

// Settings represents the configuration options of a mutguard run.
//
// Fields left nil keep the analyzer defaults.
type Settings struct {
	// ReadonlyToMutable enables reporting readonly values assigned to mutable locations.
	ReadonlyToMutable *bool `json:"readonly-to-mutable,omitzero" toml:"readonly-to-mutable"`
	// MutableToReadonly enables reporting mutable values assigned to readonly locations.
	MutableToReadonly *bool `json:"mutable-to-readonly,omitzero" toml:"mutable-to-readonly"`
	// OptionalProperty enables reporting assignments introducing optional properties.
	OptionalProperty *bool `json:"optional-property,omitzero" toml:"optional-property"`
	// Generated enables diagnostics in generated files.
	Generated *bool `json:"generated,omitzero" toml:"generated"`
	// Jobs limits the number of files checked in parallel.
	Jobs *int `json:"jobs,omitzero" toml:"jobs"`
	// MaxFileSize skips source files larger than this many bytes.
	MaxFileSize *int `json:"max-file-size,omitzero" toml:"max-file-size"`
	// Cache enables caching results of unchanged files.
	Cache *bool `json:"cache,omitzero" toml:"cache"`
	// CacheDir sets the cache directory and enables caching.
	CacheDir *string `json:"cache-dir,omitzero" toml:"cache-dir"`
}

// Options converts [Settings] into a list of [mutguard.Option] for the mutguard analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []mutguard.Option {
	var opts []mutguard.Option

	opts = appendOption(opts, s.ReadonlyToMutable, mutguard.WithReadonlyToMutable)
	opts = appendOption(opts, s.MutableToReadonly, mutguard.WithMutableToReadonly)
	opts = appendOption(opts, s.OptionalProperty, mutguard.WithOptionalProperty)
	opts = appendOption(opts, s.Generated, mutguard.WithGenerated)
	opts = appendOption(opts, s.Jobs, mutguard.WithJobs)
	opts = appendOption(opts, s.MaxFileSize, mutguard.WithMaxFileSize)
	opts = appendOption(opts, s.Cache, mutguard.WithCache)
	opts = appendOption(opts, s.CacheDir, mutguard.WithCacheDir)

	return opts
}

// appendOption appends a non-nil setting to a [mutguard.Option] list.
func appendOption[T any](opts []mutguard.Option, value *T, constructor func(T) mutguard.Option) []mutguard.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
