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

/*
Package settings loads the configuration of the [mutguard] analyzer.

# Usage

Place a file `.mutguard.toml` in your project root:

	readonly-to-mutable = true
	mutable-to-readonly = false
	optional-property = true
	generated = false
	jobs = 4
	max-file-size = 1048576
	cache = true

Alternatively, add a "mutguard" key to package.json:

	{
	  "name": "app",
	  "mutguard": { "mutable-to-readonly": false, "jobs": 4 }
	}

The command line tool searches the current directory and its parents for either file.
A .mutguard.toml wins over a package.json in the same directory; a package.json
without a "mutguard" key is ignored.
Explicit command line flags override configured values.

[mutguard]: https://pkg.go.dev/fillmore-labs.com/mutguard/analyzer
*/
package settings
