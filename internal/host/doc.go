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

// Package host is the TypeScript front-end of mutguard.
//
// It parses TypeScript with tree-sitter and derives structural types for the
// subset of the language the analysis needs: type aliases, interfaces, object,
// array, tuple, function, constructor, union and intersection types, the common mapped
// utility types, and the types of variables, parameters and expressions.
//
// Constructs that are not modeled, such as classes, enums and imported names,
// resolve to any, which never produces a diagnostic. So do generic references
// nested deeper than a fixed instantiation limit.
package host
