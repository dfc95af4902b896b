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

package typesys

import "strconv"

// Predeclared types. They are shared between all files and must never be modified.
var (
	AnyType       = &Type{flags: Any}
	UnknownType   = &Type{flags: Unknown}
	NeverType     = &Type{flags: Never}
	VoidType      = &Type{flags: Void}
	UndefinedType = &Type{flags: Undefined}
	NullType      = &Type{flags: Null}
	StringType    = &Type{flags: String}
	NumberType    = &Type{flags: Number}
	BooleanType   = &Type{flags: Boolean}
	BigIntType    = &Type{flags: BigInt}
	SymbolType    = &Type{flags: ESSymbol}
	ObjectKeyword = &Type{flags: NonPrimitive}
	TrueType      = &Type{flags: BooleanLiteral, value: "true"}
	FalseType     = &Type{flags: BooleanLiteral, value: "false"}
)

// Predeclared maps predefined type keywords to their types.
var Predeclared = map[string]*Type{
	"any":       AnyType,
	"unknown":   UnknownType,
	"never":     NeverType,
	"void":      VoidType,
	"undefined": UndefinedType,
	"null":      NullType,
	"string":    StringType,
	"number":    NumberType,
	"boolean":   BooleanType,
	"bigint":    BigIntType,
	"symbol":    SymbolType,
	"object":    ObjectKeyword,
}

// NewStringLiteral returns a string literal type.
func NewStringLiteral(value string) *Type {
	return &Type{flags: StringLiteral, value: value}
}

// NewNumberLiteral returns a number literal type.
func NewNumberLiteral(value string) *Type {
	return &Type{flags: NumberLiteral, value: value}
}

// NewBooleanLiteral returns the predeclared true or false type.
func NewBooleanLiteral(value bool) *Type {
	if value {
		return TrueType
	}

	return FalseType
}

// Widened returns the primitive base type of literal types, t otherwise.
func Widened(t *Type) *Type {
	switch {
	case t.flags&StringLiteral != 0:
		return StringType

	case t.flags&NumberLiteral != 0:
		return NumberType

	case t.flags&BooleanLiteral != 0:
		return BooleanType

	default:
		return t
	}
}

// NewObject returns an anonymous object type.
func NewObject(props []*Property, calls []*Signature, indexes ...*IndexInfo) *Type {
	t := &Type{flags: Object}
	t.SetMembers(props, calls, indexes...)

	return t
}

// NewFunction returns a function type with the given call signatures.
func NewFunction(sigs ...*Signature) *Type {
	return NewObject(nil, sigs)
}

// NewConstructor returns a constructor type with the given construct signatures.
func NewConstructor(sigs ...*Signature) *Type {
	t := NewObject(nil, nil)
	t.SetConstructSignatures(sigs)

	return t
}

// NewArray returns Array<elem>, or ReadonlyArray<elem> when readonly is set.
func NewArray(elem *Type, readonly bool) *Type {
	t := &Type{flags: Object, objectFlags: ArrayObject, elem: elem}
	if readonly {
		t.objectFlags |= ReadonlyObject
	}

	t.props = []*Property{{Name: "length", Type: NumberType, Readonly: readonly}}
	t.indexes[NumberIndex] = &IndexInfo{Key: NumberIndex, Type: elem, Readonly: readonly}

	return t
}

// NewTuple returns a tuple type.
func NewTuple(elems []TupleElement, readonly bool) *Type {
	t := &Type{flags: Object, objectFlags: TupleObject, tuple: elems}
	if readonly {
		t.objectFlags |= ReadonlyObject
	}

	fixed := true
	indexTypes := make([]*Type, 0, len(elems))

	for i, e := range elems {
		indexTypes = append(indexTypes, e.Type)

		if e.Rest {
			fixed = false

			continue
		}

		if e.Optional {
			fixed = false
		}

		t.props = append(t.props, &Property{Name: strconv.Itoa(i), Type: e.Type, Readonly: readonly, Optional: e.Optional})
	}

	length := NumberType
	if fixed {
		length = NewNumberLiteral(strconv.Itoa(len(elems)))
	}

	t.props = append(t.props, &Property{Name: "length", Type: length, Readonly: readonly})
	t.indexes[NumberIndex] = &IndexInfo{Key: NumberIndex, Type: NewUnion(indexTypes...), Readonly: readonly}

	return t
}

// NewUnion returns the union of types, flattening nested unions and removing duplicates.
func NewUnion(types ...*Type) *Type {
	parts := make([]*Type, 0, len(types))

	var add func(t *Type) bool
	add = func(t *Type) bool {
		switch {
		case t == nil, t.flags&Never != 0:
			return true

		case t.flags&(Any|Unknown) != 0:
			return false

		case t.flags&Union != 0:
			for _, u := range t.types {
				if !add(u) {
					return false
				}
			}

			return true
		}

		for _, p := range parts {
			if sameUnit(p, t) {
				return true
			}
		}

		parts = append(parts, t)

		return true
	}

	for _, t := range types {
		if add(t) {
			continue
		}

		if t.flags&Any != 0 || containsAny(types) {
			return AnyType
		}

		return UnknownType
	}

	parts = absorbLiterals(parts)

	switch len(parts) {
	case 0:
		return NeverType

	case 1:
		return parts[0]
	}

	return &Type{flags: Union, types: parts}
}

// NewIntersection returns the intersection of types.
func NewIntersection(types ...*Type) *Type {
	parts := make([]*Type, 0, len(types))

	var add func(t *Type)
	add = func(t *Type) {
		if t.flags&Intersection != 0 {
			for _, u := range t.types {
				add(u)
			}

			return
		}

		for _, p := range parts {
			if p == t {
				return
			}
		}

		parts = append(parts, t)
	}

	for _, t := range types {
		switch {
		case t == nil, t.flags&Unknown != 0:
			continue

		case t.flags&Never != 0:
			return NeverType

		case t.flags&Any != 0:
			return AnyType
		}

		add(t)
	}

	switch len(parts) {
	case 0:
		return UnknownType

	case 1:
		return parts[0]
	}

	return &Type{flags: Intersection, types: parts}
}

func containsAny(types []*Type) bool {
	for _, t := range types {
		if t == nil {
			continue
		}

		if t.flags&Any != 0 {
			return true
		}

		if t.flags&Union != 0 && containsAny(t.types) {
			return true
		}
	}

	return false
}

// sameUnit reports whether two union constituents are interchangeable.
func sameUnit(a, b *Type) bool {
	if a == b {
		return true
	}

	const unit = Nullish | String | Number | Boolean | BigInt | ESSymbol | NonPrimitive | Literal

	return a.flags&unit != 0 && a.flags == b.flags && a.value == b.value
}

// absorbLiterals removes literals whose primitive base type is also present.
func absorbLiterals(parts []*Type) []*Type {
	var base Flags
	for _, p := range parts {
		base |= p.flags & (String | Number | Boolean)
	}

	if base == 0 {
		return parts
	}

	result := parts[:0]
	for _, p := range parts {
		if p.flags&Literal != 0 && Widened(p).flags&base != 0 {
			continue
		}

		result = append(result, p)
	}

	return result
}
