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

package config

// RuleFlags represents specific rules.
type RuleFlags uint8

const (
	// ReadonlyToMutable enables the rule flagging readonly values assigned to mutable locations.
	ReadonlyToMutable RuleFlags = 1 << iota

	// MutableToReadonly enables the rule flagging mutable values assigned to readonly locations.
	MutableToReadonly

	// OptionalProperty enables the rule flagging optional properties introduced through assignment.
	OptionalProperty
)

// Rules is the set of enabled rules.
type Rules = BitMask[RuleFlags]

// DefaultRules returns the rules enabled by default.
func DefaultRules() Rules {
	return NewBitMask(ReadonlyToMutable, MutableToReadonly, OptionalProperty)
}

// Config represents behavioral configuration options.
type Config uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Config = 1 << iota
)

// Behavior holds behavioral options.
type Behavior = BitMask[Config]

// DefaultBehavior returns the default behavioral options.
func DefaultBehavior() Behavior {
	return NewBitMask[Config]()
}
