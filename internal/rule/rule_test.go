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

package rule_test

import (
	"slices"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/mutguard/internal/config"
	"fillmore-labs.com/mutguard/internal/host"
	"fillmore-labs.com/mutguard/internal/mutability"
	. "fillmore-labs.com/mutguard/internal/rule"
)

type reported struct {
	line int
	kind MessageKind
}

type testContext struct {
	host    *host.Host
	reports []reported
}

func (c *testContext) Host() Host { return c.host }
func (c *testContext) Source() []byte { return c.host.File().Source() }

func (c *testContext) Report(n *sitter.Node, kind MessageKind) {
	c.reports = append(c.reports, reported{line: int(n.StartPoint().Row) + 1, kind: kind})
}

func check(t *testing.T, r *Rule, src string) []reported {
	t.Helper()

	return walk(t, src, r.Listeners)
}

func walk(t *testing.T, src string, listeners func(Context) Visitors) []reported {
	t.Helper()

	f, err := host.Parse(t.Context(), "test.ts", []byte(src), host.DefaultMaxFileSize)
	if err != nil {
		t.Fatalf("Can't parse source: %v", err)
	}
	defer f.Close()

	if f.HasError() {
		t.Fatalf("Source has syntax errors: %s", f.Root().String())
	}

	ctx := &testContext{host: host.New(f)}
	Walk(f.Root(), listeners(ctx))

	return ctx.reports
}

const assignments = `type Mutable = { a: number };
type Immutable = { readonly a: number };
let ro: Immutable = { a: 1 };
let mu: Mutable = { a: 1 };
const m1: Mutable = ro;
const i1: Immutable = mu;
function takesMutable(x: Mutable): void {}
takesMutable(ro);
function returnsMutable(): Mutable { return ro; }
const f = (): Mutable => ro;
const c = ro as Mutable;
let m2: Mutable = mu;
m2 = ro;
const k = { a: 1 } as const;
const m3: Mutable = { a: 1 } as const;
const arr: readonly number[] = [1];
const marr: number[] = arr;
const tup: readonly [number] = [1];
const ok: Immutable = { a: 2 };
const ta = <Mutable>ro;
`

func TestReadonlyToMutable(t *testing.T) {
	t.Parallel()

	got := check(t, ReadonlyToMutable, assignments)
	want := []reported{
		{5, VariableDeclaration},
		{8, CallExpression},
		{9, ArrowFunctionExpression},
		{10, ArrowFunctionExpression},
		{11, TSAsExpression},
		{13, AssignmentExpression},
		{17, VariableDeclaration},
		{20, TSTypeAssertion},
	}

	if !slices.Equal(got, want) {
		t.Errorf("Got reports %v, want %v", got, want)
	}
}

func TestMutableToReadonly(t *testing.T) {
	t.Parallel()

	got := check(t, MutableToReadonly, assignments)
	want := []reported{
		{6, VariableDeclaration},
	}

	if !slices.Equal(got, want) {
		t.Errorf("Got reports %v, want %v", got, want)
	}
}

func TestOptionalProperty(t *testing.T) {
	t.Parallel()

	got := check(t, OptionalProperty, `type Opt = { a?: number };
const empty = {};
const o1: Opt = empty;
const o2: Opt = { a: 1 };
const o3: Opt = {};
const s: string | Opt = "text";
function make(): Opt { return empty; }
`)
	want := []reported{
		{3, VariableDeclaration},
		{5, VariableDeclaration},
		{7, ArrowFunctionExpression},
	}

	if !slices.Equal(got, want) {
		t.Errorf("Got reports %v, want %v", got, want)
	}
}

func TestNestedAndRecursive(t *testing.T) {
	t.Parallel()

	got := check(t, ReadonlyToMutable, `type Node = { readonly next: Node | null; value: number };
type MutableNode = { next: MutableNode | null; value: number };
type Outer = { inner: { readonly x: string } };
type MutableOuter = { inner: { x: string } };
declare const n: Node;
declare const o: Outer;
let mn: MutableNode;
mn = n;
let mo: MutableOuter;
mo = o;
let fine: Node;
fine = n;
`)
	want := []reported{
		{8, AssignmentExpression},
		{10, AssignmentExpression},
	}

	if !slices.Equal(got, want) {
		t.Errorf("Got reports %v, want %v", got, want)
	}
}

func TestFunctionResults(t *testing.T) {
	t.Parallel()

	got := check(t, ReadonlyToMutable, `type RO = { readonly a: number };
type M = { a: number };
declare const getRO: () => RO;
const getM: () => M = getRO;
const same: () => RO = getRO;
`)
	want := []reported{
		{4, VariableDeclaration},
	}

	if !slices.Equal(got, want) {
		t.Errorf("Got reports %v, want %v", got, want)
	}
}

func TestFreshLiterals(t *testing.T) {
	t.Parallel()

	const src = `type I = { readonly a: number };
const i: I = { a: 1 };
`

	if got := check(t, MutableToReadonly, src); len(got) != 0 {
		t.Errorf("Got reports %v for a fresh literal", got)
	}

	got := walk(t, src, func(ctx Context) Visitors { return Listeners(ctx, mutability.MutableToReadonly{}) })
	if want := []reported{{2, VariableDeclaration}}; !slices.Equal(got, want) {
		t.Errorf("Got reports %v, want %v", got, want)
	}
}

func TestEnabled(t *testing.T) {
	t.Parallel()

	rules := config.DefaultRules()
	rules.Set(config.MutableToReadonly, false)

	got := Enabled(rules)
	if want := []*Rule{ReadonlyToMutable, OptionalProperty}; !slices.Equal(got, want) {
		t.Errorf("Enabled() = %v, want %v", got, want)
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"no-unsafe-readonly-mutable-assignment", "readonly-to-mutable"} {
		if r, ok := Lookup(name); !ok || r != ReadonlyToMutable {
			t.Errorf("Lookup(%q) = %v, %t", name, r, ok)
		}
	}

	if _, ok := Lookup("unknown"); ok {
		t.Error("Expected unknown rule not found")
	}
}

func TestMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rule *Rule
		kind MessageKind
		want string
	}{
		{ReadonlyToMutable, VariableDeclaration, "Unsafe readonly to mutable assignment in variable declaration."},
		{MutableToReadonly, CallExpression, "Unsafe mutable to readonly assignment in call argument."},
		{OptionalProperty, ArrowFunctionExpression, "Unsafe optional property assignment in return value."},
	}

	for _, tt := range tests {
		if got := tt.rule.Message(tt.kind); got != tt.want {
			t.Errorf("Message(%v) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
