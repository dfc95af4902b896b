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

func TestNewUnion(t *testing.T) {
	t.Parallel()

	a := object(prop("a", StringType, false))

	tests := [...]struct {
		name  string
		types []*Type
		want  string
	}{
		{"empty", nil, "never"},
		{"single", []*Type{StringType}, "string"},
		{"dedupe", []*Type{StringType, StringType, NumberType}, "string | number"},
		{"flatten", []*Type{NewUnion(StringType, NullType), UndefinedType}, "string | null | undefined"},
		{"never", []*Type{NeverType, StringType}, "string"},
		{"any", []*Type{StringType, AnyType}, "any"},
		{"unknown", []*Type{UnknownType, StringType}, "unknown"},
		{"absorb_literal", []*Type{NewStringLiteral("x"), StringType}, "string"},
		{"literals", []*Type{NewStringLiteral("x"), NewStringLiteral("x"), NewStringLiteral("y")}, `"x" | "y"`},
		{"objects", []*Type{a, a, NullType}, "{ a: string; } | null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := NewUnion(tt.types...).String(); got != tt.want {
				t.Errorf("NewUnion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	self := NewObject(nil, nil)
	self.SetMembers([]*Property{prop("a", self, true)}, nil)

	named := object(prop("x", NumberType, false))
	named.SetName("Point")

	tests := [...]struct {
		name string
		typ  *Type
		want string
	}{
		{"readonly_array", NewArray(StringType, true), "readonly string[]"},
		{"union_array", NewArray(NewUnion(StringType, NumberType), false), "(string | number)[]"},
		{"tuple", NewTuple([]TupleElement{{Type: StringType}, {Type: NumberType, Optional: true}}, true), "readonly [string, number?]"},
		{"function", fn(StringType, NumberType), "(arg0: number) => string"},
		{"constructor", ctor(object(), StringType), "{ new (arg0: string): {}; }"},
		{"object", object(prop("a", StringType, true), optional("b", NumberType)), "{ readonly a: string; b?: number; }"},
		{"recursive", self, "{ readonly a: ...; }"},
		{"named", named, "Point"},
		{"intersection", NewIntersection(named, object(prop("y", NumberType, false))), "Point & { y: number; }"},
		{"index", NewObject(nil, nil, &IndexInfo{Key: StringIndex, Type: StringType, Readonly: true}), "{ readonly [key: string]: string; }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.typ.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBecome(t *testing.T) {
	t.Parallel()

	placeholder := &Type{}
	list := NewUnion(object(prop("next", placeholder, true)), NullType)
	placeholder.Become(list)

	if !placeholder.Is(Union) || len(placeholder.Types()) != 2 {
		t.Fatalf("Expected placeholder to become a union, got %s", placeholder)
	}

	next := placeholder.Types()[0].Property("next")
	if next == nil || next.Type != placeholder {
		t.Error("Expected recursive reference to resolve to the placeholder")
	}
}
