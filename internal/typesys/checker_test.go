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

package typesys_test

import (
	"testing"

	. "fillmore-labs.com/mutguard/internal/typesys"
)

func prop(name string, t *Type, readonly bool) *Property {
	return &Property{Name: name, Type: t, Readonly: readonly}
}

func optional(name string, t *Type) *Property {
	return &Property{Name: name, Type: t, Optional: true}
}

func object(props ...*Property) *Type {
	return NewObject(props, nil)
}

func fn(result *Type, params ...*Type) *Type {
	sig := &Signature{Result: result}
	for _, p := range params {
		sig.Params = append(sig.Params, &Param{Type: p})
	}

	return NewFunction(sig)
}

func ctor(result *Type, params ...*Type) *Type {
	return NewConstructor(fn(result, params...).CallSignatures()...)
}

func TestIsTypeAssignableTo(t *testing.T) {
	t.Parallel()

	mutable := object(prop("a", StringType, false))
	readonly := object(prop("a", StringType, true))

	recursiveA := NewObject(nil, nil)
	recursiveA.SetMembers([]*Property{prop("next", recursiveA, true)}, nil)

	recursiveB := NewObject(nil, nil)
	recursiveB.SetMembers([]*Property{prop("next", recursiveB, false)}, nil)

	tests := [...]struct {
		name           string
		source, target *Type
		want           bool
	}{
		{"identical", StringType, StringType, true},
		{"literal_to_primitive", NewStringLiteral("a"), StringType, true},
		{"primitive_to_literal", StringType, NewStringLiteral("a"), false},
		{"literal_values", NewNumberLiteral("1"), NewNumberLiteral("2"), false},
		{"any_source", AnyType, mutable, true},
		{"unknown_target", mutable, UnknownType, true},
		{"unknown_source", UnknownType, mutable, false},
		{"never_source", NeverType, StringType, true},
		{"null_strict", NullType, StringType, false},
		{"undefined_to_void", UndefinedType, VoidType, true},
		{"readonly_ignored", readonly, mutable, true},
		{"mutable_to_readonly", mutable, readonly, true},
		{"missing_property", object(), mutable, false},
		{"optional_missing", object(prop("foo", StringType, false)), object(prop("foo", StringType, false), optional("bar", fn(UnknownType))), true},
		{"optional_to_required", object(optional("a", StringType)), mutable, false},
		{"wrong_property_type", object(prop("a", NumberType, false)), mutable, false},
		{"union_source_all", NewUnion(StringType, NumberType), StringType, false},
		{"union_target_some", NumberType, NewUnion(StringType, NumberType), true},
		{"boolean_to_literals", BooleanType, NewUnion(TrueType, FalseType), true},
		{"readonly_array_to_array", NewArray(StringType, true), NewArray(StringType, false), true},
		{"array_elem", NewArray(NumberType, false), NewArray(StringType, false), false},
		{"tuple_to_array", NewTuple([]TupleElement{{Type: StringType}}, false), NewArray(StringType, true), true},
		{"array_to_tuple", NewArray(StringType, false), NewTuple([]TupleElement{{Type: StringType}}, false), false},
		{"primitive_to_empty_object", StringType, object(), true},
		{"null_to_empty_object", NullType, object(), false},
		{"object_keyword", mutable, ObjectKeyword, true},
		{"primitive_to_object_keyword", StringType, ObjectKeyword, false},
		{"recursive", recursiveA, recursiveB, true},
		{"function_result", fn(readonly), fn(mutable), true},
		{"function_result_mismatch", fn(NumberType), fn(StringType), false},
		{"function_void_result", fn(NumberType), fn(VoidType), true},
		{"function_params_contravariant", fn(VoidType, StringType), fn(VoidType, NewStringLiteral("x")), true},
		{"function_params_covariant", fn(VoidType, NewStringLiteral("x")), fn(VoidType, StringType), false},
		{"function_too_many_params", fn(VoidType, StringType, StringType), fn(VoidType, StringType), false},
		{"function_fewer_params", fn(VoidType), fn(VoidType, StringType), true},
		{"not_callable", mutable, fn(VoidType), false},
		{"constructor", ctor(mutable, StringType), ctor(ObjectKeyword, StringType), true},
		{"constructor_params", ctor(mutable, NumberType), ctor(mutable, StringType), false},
		{"not_constructable", fn(mutable), ctor(mutable), false},
		{"intersection_target", object(prop("a", StringType, false), prop("b", NumberType, false)), NewIntersection(object(prop("a", StringType, false)), object(prop("b", NumberType, false))), true},
		{"intersection_source", NewIntersection(object(prop("a", StringType, false)), object(prop("b", NumberType, false))), object(prop("a", StringType, false), prop("b", NumberType, false)), true},
		{"string_index", object(prop("a", StringType, false)), NewObject(nil, nil, &IndexInfo{Key: StringIndex, Type: StringType}), true},
		{"string_index_mismatch", object(prop("a", NumberType, false)), NewObject(nil, nil, &IndexInfo{Key: StringIndex, Type: StringType}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewChecker()

			if got := c.IsTypeAssignableTo(tt.source, tt.target); got != tt.want {
				t.Errorf("IsTypeAssignableTo(%s, %s) = %v, want %v", tt.source, tt.target, got, tt.want)
			}
		})
	}
}

func TestIntersectionReadonly(t *testing.T) {
	t.Parallel()

	c := NewChecker()

	both := NewIntersection(object(prop("a", StringType, true)), object(prop("a", StringType, true)))
	if !c.IsPropertyReadonly(both, "a") {
		t.Error("Expected property readonly in all constituents to be readonly")
	}

	mixed := NewIntersection(object(prop("a", StringType, true)), object(prop("a", StringType, false)))
	if c.IsPropertyReadonly(mixed, "a") {
		t.Error("Expected property mutable in one constituent to be mutable")
	}

	union := NewUnion(object(prop("a", StringType, true)), object(prop("a", NumberType, false)))
	if !c.IsPropertyReadonly(union, "a") {
		t.Error("Expected union property readonly in one constituent to be readonly")
	}

	if got, want := union.Property("a").Type.String(), "string | number"; got != want {
		t.Errorf("Union property type = %q, want %q", got, want)
	}
}

func TestArrayMembers(t *testing.T) {
	t.Parallel()

	c := NewChecker()

	ro := NewArray(StringType, true)
	if !c.IsArrayType(ro) || c.IsTupleType(ro) {
		t.Error("Expected ReadonlyArray to be an array type")
	}

	info := c.IndexInfo(ro, NumberIndex)
	if info == nil || !info.Readonly || info.Type != StringType {
		t.Errorf("Unexpected number index %+v", info)
	}

	if c.IndexInfo(ro, StringIndex) != nil {
		t.Error("Unexpected string index on array")
	}

	tuple := NewTuple([]TupleElement{{Type: StringType}, {Type: NumberType}}, false)
	if c.IsArrayType(tuple) || !c.IsTupleType(tuple) {
		t.Error("Expected tuple not to be an array type")
	}

	if got, want := tuple.Property("length").Type.String(), "2"; got != want {
		t.Errorf("Tuple length = %s, want %s", got, want)
	}
}
