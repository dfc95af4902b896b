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

// Package mutability decides whether assigning a value of one type to a location of
// another type leaks mutable access to read-only data, or the reverse.
//
// The [Engine] pairs the union constituents of the destination and source types
// that are mutually assignable, then walks object members, index signatures and
// function results of each pair, consulting a [Policy] at every member. Recursion
// is guarded by a path-local list of already visited pairs; a pair that reappears
// on the same path is assumed safe.
//
// Parameters of function types are never compared.
package mutability
