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
	"flag"

	"fillmore-labs.com/mutguard/internal/config"
)

// registerFlags binds the [runOptions] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(r *runOptions, flags *flag.FlagSet) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(newMaskValue(&r.rules, config.ReadonlyToMutable), "readonly-to-mutable", "report readonly values assigned to mutable locations")
	flags.Var(newMaskValue(&r.rules, config.MutableToReadonly), "mutable-to-readonly", "report mutable values assigned to readonly locations")
	flags.Var(newMaskValue(&r.rules, config.OptionalProperty), "optional-property", "report assignments introducing optional properties")
	flags.Var(newMaskValue(&r.behavior, config.IncludeGenerated), "generated", "check generated files")
	flags.IntVar(&r.jobs, "jobs", r.jobs, "number of files checked in parallel (0 uses all processors)")
	flags.IntVar(&r.maxFileSize, "max-file-size", r.maxFileSize, "skip source files larger than this many bytes (0 for no limit)")
	flags.BoolVar(&r.cache, "cache", r.cache, "cache results of unchanged files")
	flags.StringVar(&r.cacheDir, "cache-dir", r.cacheDir, "cache directory, used when caching is enabled (default is the user cache directory)")
}
