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

package mutability

import "fillmore-labs.com/mutguard/internal/typesys"

// TypePair is a candidate structural correspondence between a destination and a source type.
type TypePair struct {
	Destination, Source *typesys.Type
}

// AssignablePairs returns all pairs of union constituents where the source part is
// assignable to the destination part, source parts outer.
//
// Duplicates are kept. The result is empty when c does not implement [Oracle].
func AssignablePairs(c Checker, dest, src *typesys.Type) []TypePair {
	oracle, ok := c.(Oracle)
	if !ok {
		return nil
	}

	var pairs []TypePair

	for _, s := range UnionParts(src) {
		for _, d := range UnionParts(dest) {
			if oracle.IsTypeAssignableTo(s, d) {
				pairs = append(pairs, TypePair{Destination: d, Source: s})
			}
		}
	}

	return pairs
}

// isObjectPair reports whether every intersection part of the destination is an object type.
func isObjectPair(p TypePair) bool {
	return allParts(p.Destination, IsObjectType)
}

// isFunctionPair reports whether every intersection part of the destination is callable.
func isFunctionPair(c Checker, p TypePair) bool {
	return allParts(p.Destination, func(t *typesys.Type) bool { return IsFunctionType(c, t) })
}
