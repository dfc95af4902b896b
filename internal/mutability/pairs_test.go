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

package mutability_test

import (
	"testing"

	. "fillmore-labs.com/mutguard/internal/mutability"
	"fillmore-labs.com/mutguard/internal/typesys"
)

func TestAssignablePairs(t *testing.T) {
	t.Parallel()

	c := typesys.NewChecker()

	a := object(prop("a", str))
	b := object(prop("b", str))
	ab := object(prop("a", str), prop("b", str))

	pairs := AssignablePairs(c, typesys.NewUnion(a, b), typesys.NewUnion(ab, num))

	want := []TypePair{
		{Destination: a, Source: ab},
		{Destination: b, Source: ab},
	}

	if len(pairs) != len(want) {
		t.Fatalf("Got %d pairs, want %d", len(pairs), len(want))
	}

	for i := range want {
		if pairs[i] != want[i] {
			t.Errorf("Pair %d = {%s, %s}, want {%s, %s}", i,
				pairs[i].Destination, pairs[i].Source, want[i].Destination, want[i].Source)
		}
	}
}

func TestClassifier(t *testing.T) {
	t.Parallel()

	c := typesys.NewChecker()

	fn := thunk(str)
	arr := typesys.NewArray(str, true)
	u := typesys.NewUnion(fn, arr)

	if !IsObjectType(fn) || !IsFunctionType(c, fn) || IsArrayType(c, fn) {
		t.Errorf("Misclassified function %s", fn)
	}

	if !IsObjectType(arr) || IsFunctionType(c, arr) || !IsArrayType(c, arr) {
		t.Errorf("Misclassified array %s", arr)
	}

	if IsObjectType(str) || IsFunctionType(c, str) {
		t.Error("Misclassified string")
	}

	if parts := UnionParts(u); len(parts) != 2 || parts[0] != fn || parts[1] != arr {
		t.Errorf("UnionParts(%s) = %v", u, parts)
	}

	if parts := UnionParts(fn); len(parts) != 1 || parts[0] != fn {
		t.Errorf("UnionParts(%s) = %v", fn, parts)
	}

	i := typesys.NewIntersection(fn, object(prop("a", str)))
	if parts := IntersectionParts(i); len(parts) != 2 {
		t.Errorf("IntersectionParts(%s) = %v", i, parts)
	}
}

func TestSeen(t *testing.T) {
	t.Parallel()

	p1 := TypePair{Destination: str, Source: num}
	p2 := TypePair{Destination: num, Source: str}

	var empty *Seen
	if empty.Contains(p1) || empty.Contains(p2) {
		t.Error("Expected empty list")
	}

	s1 := empty.With(p1)
	s2 := s1.With(p2)
	s3 := s1.With(p1)

	if !s2.Contains(p1) || !s2.Contains(p2) {
		t.Error("Expected both pairs on extended list")
	}

	if !s1.Contains(p1) || s1.Contains(p2) {
		t.Error("Expected sibling extension not to affect the parent list")
	}

	if s3.Contains(p2) {
		t.Error("Expected sibling lists to be independent")
	}
}
