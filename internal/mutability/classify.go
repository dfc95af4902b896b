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

// Checker is the part of the host type system the engine queries.
type Checker interface {
	PropertiesOfType(t *typesys.Type) []*typesys.Property
	PropertyOfType(t *typesys.Type, name string) *typesys.Property
	IsPropertyReadonly(t *typesys.Type, name string) bool
	IndexInfo(t *typesys.Type, kind typesys.IndexKind) *typesys.IndexInfo
	IsArrayType(t *typesys.Type) bool
	IsTupleType(t *typesys.Type) bool
	CallSignatures(t *typesys.Type) []*typesys.Signature
}

// Oracle answers assignability queries. A [Checker] that does not implement Oracle
// yields no pairs, so nothing is ever reported.
type Oracle interface {
	IsTypeAssignableTo(source, target *typesys.Type) bool
}

// IsObjectType reports whether t is an object type, including arrays, tuples and functions.
func IsObjectType(t *typesys.Type) bool {
	return t.Is(typesys.Object)
}

// IsFunctionType reports whether t has at least one call signature.
func IsFunctionType(c Checker, t *typesys.Type) bool {
	return len(c.CallSignatures(t)) > 0
}

// IsArrayType reports whether t is Array<T> or ReadonlyArray<T>.
func IsArrayType(c Checker, t *typesys.Type) bool {
	return c.IsArrayType(t)
}

// UnionParts returns the constituents of a union, or t itself.
func UnionParts(t *typesys.Type) []*typesys.Type {
	if t.Is(typesys.Union) {
		return t.Types()
	}

	return []*typesys.Type{t}
}

// IntersectionParts returns the constituents of an intersection, or t itself.
func IntersectionParts(t *typesys.Type) []*typesys.Type {
	if t.Is(typesys.Intersection) {
		return t.Types()
	}

	return []*typesys.Type{t}
}

func allParts(t *typesys.Type, pred func(*typesys.Type) bool) bool {
	for _, u := range IntersectionParts(t) {
		if !pred(u) {
			return false
		}
	}

	return true
}
