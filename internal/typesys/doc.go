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

// Package typesys models the structural TypeScript types mutguard reasons about.
//
// Types are immutable once built and compared by identity. Object types carry
// properties, index signatures and call signatures, each with its own readonly
// qualifier. Arrays and tuples are object types with a number index signature
// and a length property, as in the TypeScript standard library.
//
// [Checker] answers assignability and member queries; it is the host
// type system consumed by the unsafe-assignment engine.
package typesys
