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

// Policy decides which member transitions are unsafe.
type Policy interface {
	// UnsafeProperty reports whether assigning srcProp of srcType to destProp of destType
	// is unsafe. srcProp is nil when srcType has no such property.
	UnsafeProperty(c Checker, destProp, srcProp *typesys.Property, destType, srcType *typesys.Type) bool

	// UnsafeIndex reports whether assigning the kind index signature of srcType to
	// that of destType is unsafe.
	UnsafeIndex(c Checker, kind typesys.IndexKind, destType, srcType *typesys.Type) bool
}

// ReadonlyToMutable flags readonly source members assigned to mutable destination members.
type ReadonlyToMutable struct{}

// UnsafeProperty implements [Policy].
func (ReadonlyToMutable) UnsafeProperty(c Checker, destProp, srcProp *typesys.Property, destType, srcType *typesys.Type) bool {
	if srcProp == nil || isTupleLength(c, destProp, destType, srcType) {
		return false
	}

	return c.IsPropertyReadonly(srcType, srcProp.Name) && !c.IsPropertyReadonly(destType, destProp.Name)
}

// UnsafeIndex implements [Policy].
func (ReadonlyToMutable) UnsafeIndex(c Checker, kind typesys.IndexKind, destType, srcType *typesys.Type) bool {
	dest, src := c.IndexInfo(destType, kind), c.IndexInfo(srcType, kind)

	return dest != nil && src != nil && src.Readonly && !dest.Readonly
}

// MutableToReadonly flags mutable source members assigned to readonly destination members.
type MutableToReadonly struct{}

// UnsafeProperty implements [Policy].
func (MutableToReadonly) UnsafeProperty(c Checker, destProp, srcProp *typesys.Property, destType, srcType *typesys.Type) bool {
	if srcProp == nil || isTupleLength(c, destProp, destType, srcType) {
		return false
	}

	return !c.IsPropertyReadonly(srcType, srcProp.Name) && c.IsPropertyReadonly(destType, destProp.Name)
}

// UnsafeIndex implements [Policy].
func (MutableToReadonly) UnsafeIndex(c Checker, kind typesys.IndexKind, destType, srcType *typesys.Type) bool {
	dest, src := c.IndexInfo(destType, kind), c.IndexInfo(srcType, kind)

	return dest != nil && src != nil && !src.Readonly && dest.Readonly
}

// OptionalProperty flags optional destination properties the source object does not have.
type OptionalProperty struct{}

// UnsafeProperty implements [Policy].
func (OptionalProperty) UnsafeProperty(_ Checker, destProp, srcProp *typesys.Property, _, srcType *typesys.Type) bool {
	// Only object sources can be missing a property; any and primitives are not.
	return destProp.Optional && srcProp == nil && allParts(srcType, IsObjectType)
}

// UnsafeIndex implements [Policy].
func (OptionalProperty) UnsafeIndex(Checker, typesys.IndexKind, *typesys.Type, *typesys.Type) bool {
	return false
}

// isTupleLength reports whether destProp is the length of a tuple.
// Fixed-length tuples narrow length to a literal, so its mutability is irrelevant.
func isTupleLength(c Checker, destProp *typesys.Property, destType, srcType *typesys.Type) bool {
	return destProp.Name == "length" && (c.IsTupleType(destType) || c.IsTupleType(srcType))
}
