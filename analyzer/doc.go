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

// Package analyzer implements the mutguard checks.
//
// # Overview
//
// Mutguard detects assignments in TypeScript sources that silently change the
// mutability of a value. TypeScript considers these assignments valid, since
// readonly qualifiers do not affect assignability.
//
// # Example
//
//	type Point = { x: number };
//	const origin: Readonly<Point> = { x: 0 };
//
//	const p: Point = origin; // readonly to mutable
//	p.x = 1;                 // modifies origin
//
// # Rules
//
//   - no-unsafe-readonly-mutable-assignment: a readonly value reaches a mutable location
//   - no-unsafe-mutable-readonly-assignment: a mutable value reaches a readonly location,
//     while mutable aliases remain
//   - no-unsafe-optional-property-assignment: a value without a property reaches a type
//     declaring it optional
//
// Assignments are checked in variable declarations, assignments, call arguments,
// return values and type assertions. A line comment containing "nolint:mutguard"
// suppresses diagnostics on its line.
package analyzer
