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

// Flags classify a [Type].
type Flags uint32

const (
	Any Flags = 1 << iota
	Unknown
	Never
	Void
	Undefined
	Null
	String
	Number
	Boolean
	BigInt
	ESSymbol
	NonPrimitive // the `object` keyword
	StringLiteral
	NumberLiteral
	BooleanLiteral
	Object
	Union
	Intersection
)

const (
	// Literal matches all literal types.
	Literal = StringLiteral | NumberLiteral | BooleanLiteral

	// Nullish matches types that only hold null or undefined.
	Nullish = Undefined | Null | Void

	// Primitive matches the non-nullish primitive types, including literals.
	Primitive = String | Number | Boolean | BigInt | ESSymbol | Literal
)

// ObjectFlags refine [Object] types.
type ObjectFlags uint8

const (
	// ArrayObject marks Array<T> and ReadonlyArray<T>.
	ArrayObject ObjectFlags = 1 << iota

	// TupleObject marks tuple types.
	TupleObject

	// ReadonlyObject marks ReadonlyArray<T> and readonly tuples.
	ReadonlyObject
)

// Type is a TypeScript type. Types are compared by identity; the analysis never mutates them.
type Type struct {
	flags       Flags
	objectFlags ObjectFlags

	// name is the alias or interface name, used for printing only.
	name string

	// value is the literal value for literal types.
	value string

	props      []*Property
	indexes    [2]*IndexInfo
	calls      []*Signature
	constructs []*Signature

	// types holds union or intersection constituents.
	types []*Type

	// elem is the element type of arrays.
	elem *Type

	// tuple describes the elements of tuple types.
	tuple []TupleElement

	// merged caches synthesized members of unions and intersections.
	merged *members
}

// Property is a named member of an object type.
type Property struct {
	Name     string
	Type     *Type
	Readonly bool
	Optional bool
}

// IndexInfo describes an index signature.
type IndexInfo struct {
	Key      IndexKind
	Type     *Type
	Readonly bool
}

// IndexKind selects string or number index signatures.
type IndexKind uint8

//go:generate go tool stringer -type IndexKind -linecomment
const (
	StringIndex IndexKind = iota // string
	NumberIndex                  // number
)

// IndexKinds lists all index kinds in lookup order.
var IndexKinds = [...]IndexKind{StringIndex, NumberIndex}

// TupleElement is one position of a tuple type.
type TupleElement struct {
	Type     *Type
	Optional bool
	Rest     bool // Type is the element type of the rest array
}

// Flags returns the type flags.
func (t *Type) Flags() Flags { return t.flags }

// ObjectFlags returns the object flags.
func (t *Type) ObjectFlags() ObjectFlags { return t.objectFlags }

// Is reports whether t has any of the given flags.
func (t *Type) Is(f Flags) bool { return t.flags&f != 0 }

// Name returns the alias or interface name, if any.
func (t *Type) Name() string { return t.name }

// Value returns the literal value of literal types.
func (t *Type) Value() string { return t.value }

// Types returns the constituents of unions and intersections.
func (t *Type) Types() []*Type { return t.types }

// Elem returns the element type of arrays, nil otherwise.
func (t *Type) Elem() *Type { return t.elem }

// TupleElements returns the elements of tuple types, nil otherwise.
func (t *Type) TupleElements() []TupleElement { return t.tuple }

// IsArray reports whether t is Array<T> or ReadonlyArray<T>.
func (t *Type) IsArray() bool {
	return t.flags&Object != 0 && t.objectFlags&ArrayObject != 0
}

// IsTuple reports whether t is a tuple type.
func (t *Type) IsTuple() bool {
	return t.flags&Object != 0 && t.objectFlags&TupleObject != 0
}

// IsReadonlyArrayLike reports whether t is ReadonlyArray<T> or a readonly tuple.
func (t *Type) IsReadonlyArrayLike() bool {
	return t.flags&Object != 0 && t.objectFlags&ReadonlyObject != 0
}

// SetName attaches a display name to object types that do not have one yet.
func (t *Type) SetName(name string) {
	if t.flags&Object == 0 || t.name != "" || t.objectFlags&(ArrayObject|TupleObject) != 0 {
		return
	}

	t.name = name
}

// SetMembers replaces the members of an object type. Front-ends use this to
// complete self-referential types after allocating them.
func (t *Type) SetMembers(props []*Property, calls []*Signature, indexes ...*IndexInfo) {
	t.props, t.calls = props, calls
	t.indexes = [2]*IndexInfo{}

	for _, info := range indexes {
		if info != nil {
			t.indexes[info.Key] = info
		}
	}

	t.merged = nil
}

// SetConstructSignatures replaces the construct signatures of an object type.
func (t *Type) SetConstructSignatures(sigs []*Signature) {
	t.constructs = sigs
	t.merged = nil
}

// Become turns the placeholder t into a copy of u, keeping the name of t.
// Front-ends use this to resolve forward references in recursive type aliases.
func (t *Type) Become(u *Type) {
	if t == u {
		return
	}

	name := t.name
	*t = *u
	t.merged = nil

	if name != "" && t.flags&Object != 0 && t.objectFlags&(ArrayObject|TupleObject) == 0 {
		t.name = name
	}
}

// Signature is a call signature of a function type.
type Signature struct {
	Params []*Param
	Result *Type
}

// Param is a parameter of a [Signature].
type Param struct {
	Name     string
	Type     *Type
	Optional bool
	Rest     bool // Type is the array type of the rest parameter
}

// MinArgs returns the number of required arguments.
func (s *Signature) MinArgs() int {
	n := 0

	for i, p := range s.Params {
		if p.Optional || p.Rest {
			break
		}

		n = i + 1
	}

	return n
}

// HasRest reports whether the last parameter is a rest parameter.
func (s *Signature) HasRest() bool {
	return len(s.Params) > 0 && s.Params[len(s.Params)-1].Rest
}

// ParamType returns the type of the argument at position i.
func (s *Signature) ParamType(i int) (*Type, bool) {
	n := len(s.Params)
	if s.HasRest() && i >= n-1 {
		rest := s.Params[n-1].Type
		if rest.IsArray() {
			return rest.elem, true
		}

		if rest.IsTuple() {
			if j := i - (n - 1); j < len(rest.tuple) {
				return rest.tuple[j].Type, true
			}
		}

		return AnyType, true
	}

	if i < 0 || i >= n {
		return nil, false
	}

	return s.Params[i].Type, true
}

// ResultType returns the return type, defaulting to any.
func (s *Signature) ResultType() *Type {
	if s.Result == nil {
		return AnyType
	}

	return s.Result
}
