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

package host_test

import (
	"errors"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/mutguard/internal/astutil"
	. "fillmore-labs.com/mutguard/internal/host"
	"fillmore-labs.com/mutguard/internal/typesys"
)

func parse(t *testing.T, src string) *Host {
	t.Helper()

	f, err := Parse(t.Context(), "test.ts", []byte(src), DefaultMaxFileSize)
	if err != nil {
		t.Fatalf("Can't parse source: %v", err)
	}

	t.Cleanup(f.Close)

	if f.HasError() {
		t.Fatalf("Source has syntax errors: %s", f.Root().String())
	}

	return New(f)
}

// find returns the first node of the given kind with the given text.
func find(t *testing.T, h *Host, kind, text string) *sitter.Node {
	t.Helper()

	src := h.File().Source()
	for n := range astutil.Preorder(h.File().Root()) {
		if n.Type() == kind && n.Content(src) == text {
			return n
		}
	}

	t.Fatalf("No %s %q in source", kind, text)

	return nil
}

// declared returns the type of the variable name.
func declared(t *testing.T, h *Host, name string) *typesys.Type {
	t.Helper()

	src := h.File().Source()
	for n := range astutil.Preorder(h.File().Root()) {
		if n.Type() != "variable_declarator" {
			continue
		}

		if id := astutil.Field(n, "name"); id != nil && id.Content(src) == name {
			return h.TypeAtLocation(id)
		}
	}

	t.Fatalf("No declaration of %s in source", name)

	return nil
}

const declarations = `
interface Point { readonly x: number; y?: string }
type RO = Readonly<{ a: number }>;
type Box<T> = { value: T };
type Opt<T = string> = { value?: T };

function g(a: string) { return 1; }
function v(a: number) {}

let a = 1;
const b = "x";
const o = { a: 1, b: "s" };
const r = { a: 1 } as const;
const tu = [1, "a"] as const;
const sp = { ...r };
let p: Point;
let ro: RO;
let xs: readonly string[];
let ys: ReadonlyArray<number>;
let zs: Array<string | number>;
let tp: [string, number?, ...boolean[]];
let rt: readonly [string];
let bx: Box<string>;
let op: Opt;
let f = (x: number): string => "";
const gg = g;
const vv = v;
let pp: Partial<{ a: number }>;
let rq: Required<{ a?: number }>;
let rc: Record<"a" | "b", number>;
let ri: Record<string, boolean>;
let pk: Pick<{ a: number; b: string }, "a">;
let om: Omit<{ a: number; b: string }, "a">;
let ix: { [key: string]: number };
let mp: { readonly [K in "a"]: string };
let mm: { -readonly [K in keyof RO]+?: RO[K] };
let u: string | undefined;
let nn: NonNullable<string | null>;
let ex: Exclude<"a" | "b", "a">;
let kt: keyof { a: 1; b: 2 };
let lt: { a: string }["a"];
let tq: typeof o;
let ma = o.a;
let el = xs[0];
let ch = p?.y;
let nb = -1;
const tern = a > 0 ? "yes" : 0;
let call = g("");
let unknownRef: Mystery;
let m: { f(): void; g?(x: string): number };
`

func TestDeclaredTypes(t *testing.T) {
	t.Parallel()

	h := parse(t, declarations)

	tests := []struct {
		name, want string
	}{
		{"a", "number"},
		{"b", `"x"`},
		{"o", "{ a: number; b: string; }"},
		{"r", "{ readonly a: 1; }"},
		{"tu", `readonly [1, "a"]`},
		{"sp", "{ a: 1; }"},
		{"p", "Point"},
		{"ro", "{ readonly a: number; }"},
		{"xs", "readonly string[]"},
		{"ys", "readonly number[]"},
		{"zs", "(string | number)[]"},
		{"tp", "[string, number?, ...boolean[]]"},
		{"rt", "readonly [string]"},
		{"bx", "Box<string>"},
		{"op", "Opt"},
		{"f", "(x: number) => string"},
		{"gg", "(a: string) => number"},
		{"vv", "(a: number) => void"},
		{"pp", "{ a?: number | undefined; }"},
		{"rq", "{ a: number; }"},
		{"rc", "{ a: number; b: number; }"},
		{"ri", "{ [key: string]: boolean; }"},
		{"pk", "{ a: number; }"},
		{"om", "{ b: string; }"},
		{"ix", "{ [key: string]: number; }"},
		{"mp", "{ readonly a: string; }"},
		{"mm", "{ a?: number | undefined; }"},
		{"u", "string | undefined"},
		{"nn", "string"},
		{"ex", `"b"`},
		{"kt", `"a" | "b"`},
		{"lt", "string"},
		{"tq", "{ a: number; b: string; }"},
		{"ma", "number"},
		{"el", "string"},
		{"ch", "string | undefined"},
		{"nb", "number"},
		{"tern", `"yes" | 0`},
		{"call", "number"},
		{"unknownRef", "any"},
		{"m", "{ f: () => void; g?: ((x: string) => number) | undefined; }"},
	}

	for _, tt := range tests {
		if got := declared(t, h, tt.name).String(); got != tt.want {
			t.Errorf("Type of %s = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestInterfaceMembers(t *testing.T) {
	t.Parallel()

	h := parse(t, `
interface A { a: number }
interface B extends A { readonly b: string }
interface B { c?: boolean }
let x: B;
`)

	typ := declared(t, h, "x")
	if got, want := typ.Name(), "B"; got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}

	var names []string
	for _, p := range typ.Properties() {
		names = append(names, p.Name)
	}

	if got, want := len(names), 3; got != want {
		t.Fatalf("Got %d properties %v, want %d", got, names, want)
	}

	if !typ.Property("b").Readonly {
		t.Error("Expected b to be readonly")
	}

	if c := typ.Property("c"); !c.Optional || c.Type.String() != "boolean | undefined" {
		t.Errorf("Expected c to be optional boolean, got %s", c.Type)
	}
}

func TestTypeParameterDefault(t *testing.T) {
	t.Parallel()

	h := parse(t, `
type Opt<T = string> = { value?: T };
let op: Opt;
let on: Opt<number>;
`)

	tests := []struct {
		name, want string
	}{
		{"op", "string | undefined"},
		{"on", "number | undefined"},
	}

	for _, tt := range tests {
		value := declared(t, h, tt.name).Property("value")
		if value == nil {
			t.Fatalf("No property value in %s", tt.name)
		}

		if got := value.Type.String(); got != tt.want {
			t.Errorf("Type of %s.value = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestRecursiveAlias(t *testing.T) {
	t.Parallel()

	h := parse(t, `
type List = { readonly next: List | null };
type Tree<T> = { value: T; children: Tree<T>[] };
let l: List;
let tr: Tree<number>;
`)

	list := declared(t, h, "l")
	if got, want := list.String(), "List"; got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}

	next := list.Property("next")
	if next == nil || !next.Readonly {
		t.Fatal("Expected readonly property next")
	}

	if parts := next.Type.Types(); len(parts) != 2 || parts[0] != list {
		t.Errorf("Expected next to refer back to List, got %s", next.Type)
	}

	tree := declared(t, h, "tr")
	children := tree.Property("children")

	if children == nil || !children.Type.IsArray() || children.Type.Elem() != tree {
		t.Errorf("Expected children to be an array of the same instance, got %v", children)
	}
}

func TestExpandingGeneric(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
	}{
		{"alias", "type G<T> = { readonly v: T; readonly next: G<[T]> };\nlet x: G<string>;\n"},
		{"interface", "interface G<T> { readonly v: T; readonly next: G<T[]> }\nlet x: G<string>;\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := parse(t, tt.src)

			typ, depth := declared(t, h, "x"), 0
			for next := typ.Property("next"); next != nil; next = typ.Property("next") {
				typ = next.Type
				depth++
			}

			if !typ.Is(typesys.Any) {
				t.Errorf("Expected expansion to end in any, got %s", typ)
			}

			if depth < 2 {
				t.Errorf("Expected nested instantiations, got depth %d", depth)
			}
		})
	}
}

func TestConstructSignatures(t *testing.T) {
	t.Parallel()

	h := parse(t, `
interface Factory { new (n: number): { readonly n: number }; }
let f: Factory;
let g: new (s: string) => string[];
const made = new f(1);
new g({ s: "x" });
`)

	for _, name := range [...]string{"f", "g"} {
		typ := declared(t, h, name)
		if sigs := typ.ConstructSignatures(); len(sigs) != 1 {
			t.Errorf("Expected one construct signature for %s, got %d", name, len(sigs))
		}

		if sigs := typ.CallSignatures(); len(sigs) != 0 {
			t.Errorf("Expected no call signature for %s, got %d", name, len(sigs))
		}
	}

	if got, want := declared(t, h, "made").String(), "{ readonly n: number; }"; got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}

	if got := h.ContextualType(find(t, h, "object", `{ s: "x" }`)); got == nil || got.String() != "string" {
		t.Errorf("Expected parameter type as contextual type for a new argument, got %v", got)
	}
}

func TestContextualType(t *testing.T) {
	t.Parallel()

	h := parse(t, `
function take(p: { a: number }, ...rest: string[]) {}
take({ a: 1 }, "r1", "r2");
function mk(): readonly string[] { return []; }
let cb: (x: number) => void = (y) => {};
let tp: [number, string] = [1, "a"];
let k: { kind: "a" } = { kind: "a" };
let s: string[];
s = ["assigned"];
const arrow = (): { n: number } => ({ n: 2 });
`)

	tests := []struct {
		name       string
		kind, text string
		want       string
	}{
		{"argument", "object", "{ a: 1 }", "{ a: number; }"},
		{"rest argument", "string", `"r2"`, "string"},
		{"return", "array", "[]", "readonly string[]"},
		{"tuple", "array", `[1, "a"]`, "[number, string]"},
		{"literal object", "object", `{ kind: "a" }`, `{ kind: "a"; }`},
		{"assignment", "array", `["assigned"]`, "string[]"},
		{"arrow body", "parenthesized_expression", "({ n: 2 })", "{ n: number; }"},
		{"parenthesized", "object", "{ n: 2 }", "{ n: number; }"},
	}

	for _, tt := range tests {
		n := find(t, h, tt.kind, tt.text)

		got := h.ContextualType(n)
		if got == nil {
			t.Errorf("%s: no contextual type", tt.name)

			continue
		}

		if got.String() != tt.want {
			t.Errorf("%s: ContextualType() = %s, want %s", tt.name, got, tt.want)
		}
	}

	value := astutil.Field(find(t, h, "pair", `kind: "a"`), "value")
	if got := h.ContextualType(value); got == nil || got.String() != `"a"` {
		t.Errorf("Expected literal contextual type for property value, got %v", got)
	}

	if got := h.ContextualType(find(t, h, "call_expression", `take({ a: 1 }, "r1", "r2")`)); got != nil {
		t.Errorf("Expected no contextual type for an expression statement, got %s", got)
	}

	inferred := []struct {
		kind, text string
		want       string
	}{
		{"identifier", "y", "number"},
		{"array", `[1, "a"]`, "[number, string]"},
		{"object", `{ kind: "a" }`, `{ kind: "a"; }`},
	}

	for _, tt := range inferred {
		if got := h.TypeAtLocation(find(t, h, tt.kind, tt.text)).String(); got != tt.want {
			t.Errorf("TypeAtLocation(%s) = %s, want %s", tt.text, got, tt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, file string
		src        []byte
		max        int
		want       error
	}{
		{"too large", "a.ts", []byte("let a = 1;"), 4, ErrFileTooLarge},
		{"invalid", "a.ts", []byte{0xff, 0xfe}, 0, ErrInvalidContent},
		{"language", "a.go", []byte("package a"), 0, ErrNoLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(t.Context(), tt.file, tt.src, tt.max)
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSupported(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want bool
	}{
		{"a.ts", true},
		{"dir/b.tsx", true},
		{"c.mts", true},
		{"d.cts", true},
		{"e.d.ts", false},
		{"f.d.mts", false},
		{"g.js", false},
		{"h.go", false},
	}

	for _, tt := range tests {
		if got := Supported(tt.name); got != tt.want {
			t.Errorf("Supported(%q) = %t, want %t", tt.name, got, tt.want)
		}
	}
}
