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

package astutil_test

import (
	"testing"

	. "fillmore-labs.com/mutguard/internal/astutil"
	"fillmore-labs.com/mutguard/internal/host"
)

func TestCommentHasNoLint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		comment string
		want    bool
	}{
		{"// nolint:mutguard", true},
		{"//nolint:all", true},
		{"// nolint:other,MutGuard", true},
		{"// nolint:other", false},
		{"/* nolint:mutguard */", false},
		{"// a comment", false},
	}

	for _, tt := range tests {
		if got := CommentHasNoLint(tt.comment); got != tt.want {
			t.Errorf("CommentHasNoLint(%q) = %t, want %t", tt.comment, got, tt.want)
		}
	}
}

func TestIsGeneratedComment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		comment string
		want    bool
	}{
		{"// Code generated by protoc. DO NOT EDIT.", true},
		{"/** @generated */", true},
		{"// Code generated, edit freely.", false},
	}

	for _, tt := range tests {
		if got := IsGeneratedComment(tt.comment); got != tt.want {
			t.Errorf("IsGeneratedComment(%q) = %t, want %t", tt.comment, got, tt.want)
		}
	}
}

func TestCurrentFile(t *testing.T) {
	t.Parallel()

	src := []byte("// @generated\nconst a = 1;\nconst b = 2; // nolint:mutguard\n")

	f, err := host.Parse(t.Context(), "a.ts", src, 0)
	if err != nil {
		t.Fatalf("Can't parse source: %v", err)
	}
	defer f.Close()

	c := NewCurrentFile("a.ts", src, f.Root())

	if !c.Valid() || !c.Generated() || c.NoLint() {
		t.Errorf("Got valid %t, generated %t, nolint %t", c.Valid(), c.Generated(), c.NoLint())
	}

	var rows []bool
	for n := range NamedChildren(f.Root()) {
		rows = append(rows, c.NoLintComment(n))
	}

	if len(rows) != 2 || rows[0] || !rows[1] {
		t.Errorf("Got nolint statements %v, want [false true]", rows)
	}
}
