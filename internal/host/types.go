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

package host

import (
	"fmt"
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/mutguard/internal/astutil"
	"fillmore-labs.com/mutguard/internal/typesys"
)

// env binds type parameter names during generic instantiation.
type env map[string]*typesys.Type

var typeNodes = map[string]bool{
	"predefined_type":          true,
	"type_identifier":          true,
	"nested_type_identifier":   true,
	"generic_type":             true,
	"literal_type":             true,
	"union_type":               true,
	"intersection_type":        true,
	"parenthesized_type":       true,
	"array_type":               true,
	"readonly_type":            true,
	"tuple_type":               true,
	"function_type":            true,
	"constructor_type":         true,
	"object_type":              true,
	"type_query":               true,
	"index_type_query":         true,
	"lookup_type":              true,
	"template_literal_type":    true,
	"conditional_type":         true,
	"infer_type":               true,
	"this_type":                true,
	"existential_type":         true,
	"type_predicate":           true,
	"optional_type":            true,
	"rest_type":                true,
	"flow_maybe_type":          true,
	"template_type":            true,
	"type_annotation":          true,
	"opting_type_annotation":   true,
	"omitting_type_annotation": true,
	"adding_type_annotation":   true,
}

func isTypeNode(kind string) bool { return typeNodes[kind] }

// typeOf evaluates a type node.
func (h *Host) typeOf(n *sitter.Node, e env) *typesys.Type {
	if n == nil {
		return typesys.AnyType
	}

	if e != nil {
		return h.evalType(n, e)
	}

	key := astutil.KeyOf(n)
	if t, ok := h.types[key]; ok {
		return t
	}

	t := h.evalType(n, nil)
	h.types[key] = t

	return t
}

// annotationType evaluates the type of a type annotation.
func (h *Host) annotationType(annotation *sitter.Node, e env) *typesys.Type {
	switch annotation.Type() {
	case "type_annotation", "opting_type_annotation", "omitting_type_annotation", "adding_type_annotation":
		return h.typeOf(astutil.FirstNamedChild(annotation), e)

	case "type_predicate_annotation":
		return typesys.BooleanType

	case "asserts_annotation":
		return typesys.VoidType

	default:
		return h.typeOf(annotation, e)
	}
}

func (h *Host) evalType(n *sitter.Node, e env) *typesys.Type {
	switch n.Type() {
	case "predefined_type":
		if t, ok := typesys.Predeclared[h.text(n)]; ok {
			return t
		}

		return typesys.AnyType

	case "type_identifier":
		return h.namedType(n, h.text(n), nil, e)

	case "generic_type":
		name := astutil.Field(n, "name")
		if name == nil || name.Type() != "type_identifier" {
			return typesys.AnyType
		}

		var args []*typesys.Type
		if list := astutil.Field(n, "type_arguments"); list != nil {
			for a := range astutil.NamedChildren(list) {
				args = append(args, h.typeOf(a, e))
			}
		}

		return h.namedType(n, h.text(name), args, e)

	case "literal_type":
		return h.literalType(astutil.FirstNamedChild(n))

	case "union_type":
		var parts []*typesys.Type
		for c := range astutil.NamedChildren(n) {
			parts = append(parts, h.typeOf(c, e))
		}

		return typesys.NewUnion(parts...)

	case "intersection_type":
		var parts []*typesys.Type
		for c := range astutil.NamedChildren(n) {
			parts = append(parts, h.typeOf(c, e))
		}

		return typesys.NewIntersection(parts...)

	case "parenthesized_type", "type_annotation", "opting_type_annotation",
		"omitting_type_annotation", "adding_type_annotation":
		return h.typeOf(astutil.FirstNamedChild(n), e)

	case "array_type":
		return typesys.NewArray(h.typeOf(astutil.FirstNamedChild(n), e), false)

	case "readonly_type":
		inner := astutil.FirstNamedChild(n)
		if inner == nil {
			return typesys.AnyType
		}

		switch inner.Type() {
		case "array_type":
			return typesys.NewArray(h.typeOf(astutil.FirstNamedChild(inner), e), true)

		case "tuple_type":
			return h.tupleType(inner, true, e)

		default:
			return h.typeOf(inner, e)
		}

	case "tuple_type":
		return h.tupleType(n, false, e)

	case "function_type":
		return typesys.NewFunction(h.signatureOf(n, e))

	case "constructor_type":
		return typesys.NewConstructor(h.signatureOf(n, e))

	case "object_type":
		return h.objectType(n, e)

	case "type_query":
		return h.typeQuery(astutil.FirstNamedChild(n))

	case "index_type_query":
		return h.keyOf(h.typeOf(astutil.FirstNamedChild(n), e))

	case "lookup_type":
		var obj, index *sitter.Node
		for c := range astutil.NamedChildren(n) {
			if obj == nil {
				obj = c
			} else {
				index = c
			}
		}

		if index == nil {
			return typesys.AnyType
		}

		return h.indexedAccess(h.typeOf(obj, e), h.typeOf(index, e))

	case "template_literal_type":
		return typesys.StringType

	case "type_predicate":
		return typesys.BooleanType

	default:
		return typesys.AnyType
	}
}

func (h *Host) literalType(n *sitter.Node) *typesys.Type {
	if n == nil {
		return typesys.AnyType
	}

	switch n.Type() {
	case "string":
		return typesys.NewStringLiteral(h.stringValue(n))

	case "number":
		return typesys.NewNumberLiteral(numberValue(h.text(n)))

	case "true":
		return typesys.TrueType

	case "false":
		return typesys.FalseType

	case "null":
		return typesys.NullType

	case "undefined":
		return typesys.UndefinedType

	case "unary_expression":
		if arg := astutil.Field(n, "argument"); arg != nil && arg.Type() == "number" && astutil.HasToken(n, "-") {
			return typesys.NewNumberLiteral(numberValue("-" + h.text(arg)))
		}

		return typesys.NumberType

	default:
		return typesys.AnyType
	}
}

// stringValue returns the contents of a string node without quotes.
func (h *Host) stringValue(n *sitter.Node) string {
	var b strings.Builder

	for c := range astutil.NamedChildren(n) {
		switch c.Type() {
		case "string_fragment":
			b.WriteString(h.text(c))

		case "escape_sequence":
			if s, err := strconv.Unquote(`"` + h.text(c) + `"`); err == nil {
				b.WriteString(s)
			} else {
				b.WriteString(h.text(c)[1:])
			}
		}
	}

	return b.String()
}

// numberValue canonicalizes a numeric literal.
func numberValue(text string) string {
	clean := strings.ReplaceAll(text, "_", "")

	if i, err := strconv.ParseInt(clean, 0, 64); err == nil {
		return strconv.FormatInt(i, 10)
	}

	if f, err := strconv.ParseFloat(clean, 64); err == nil {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}

	return text
}

func (h *Host) tupleType(n *sitter.Node, readonly bool, e env) *typesys.Type {
	var elems []typesys.TupleElement

	for c := range astutil.NamedChildren(n) {
		switch c.Type() {
		case "optional_type":
			elems = append(elems, typesys.TupleElement{Type: h.typeOf(astutil.FirstNamedChild(c), e), Optional: true})

		case "rest_type":
			elems = append(elems, restElement(h.typeOf(astutil.FirstNamedChild(c), e)))

		case "required_parameter", "optional_parameter":
			var t *typesys.Type
			if annotation := astutil.Field(c, "type"); annotation != nil {
				t = h.annotationType(annotation, e)
			} else {
				t = typesys.AnyType
			}

			pattern := astutil.Field(c, "pattern")
			switch {
			case pattern != nil && pattern.Type() == "rest_pattern":
				elems = append(elems, restElement(t))

			default:
				elems = append(elems, typesys.TupleElement{Type: t, Optional: c.Type() == "optional_parameter"})
			}

		default:
			elems = append(elems, typesys.TupleElement{Type: h.typeOf(c, e)})
		}
	}

	return typesys.NewTuple(elems, readonly)
}

func restElement(array *typesys.Type) typesys.TupleElement {
	elem := typesys.AnyType
	if array.IsArray() {
		elem = array.Elem()
	}

	return typesys.TupleElement{Type: elem, Rest: true}
}

// objectType evaluates an object type literal or a mapped type.
func (h *Host) objectType(n *sitter.Node, e env) *typesys.Type {
	var (
		props      []*typesys.Property
		calls      []*typesys.Signature
		constructs []*typesys.Signature
		indexes    []*typesys.IndexInfo
	)

	for m := range astutil.NamedChildren(n) {
		switch m.Type() {
		case "property_signature":
			if p := h.propertySignature(m, e); p != nil {
				props = addProperty(props, p)
			}

		case "method_signature":
			name, ok := h.propertyName(astutil.Field(m, "name"))
			if !ok {
				continue
			}

			t := typesys.NewFunction(h.signatureOf(m, e))
			optional := astutil.HasToken(m, "?")
			if optional {
				t = typesys.NewUnion(t, typesys.UndefinedType)
			}

			props = addProperty(props, &typesys.Property{Name: name, Type: t, Optional: optional})

		case "call_signature":
			calls = append(calls, h.signatureOf(m, e))

		case "construct_signature":
			constructs = append(constructs, h.signatureOf(m, e))

		case "index_signature":
			if clause := findChild(m, "mapped_type_clause"); clause != nil {
				return h.mappedType(m, clause, e)
			}

			info := h.indexSignature(m, e)
			if info != nil {
				indexes = append(indexes, info)
			}
		}
	}

	t := typesys.NewObject(props, calls, indexes...)
	t.SetConstructSignatures(constructs)

	return t
}

// addProperty appends p, replacing an earlier property with the same name.
func addProperty(props []*typesys.Property, p *typesys.Property) []*typesys.Property {
	for i, q := range props {
		if q.Name == p.Name {
			props[i] = p

			return props
		}
	}

	return append(props, p)
}

func (h *Host) propertySignature(m *sitter.Node, e env) *typesys.Property {
	name, ok := h.propertyName(astutil.Field(m, "name"))
	if !ok {
		return nil
	}

	t := typesys.AnyType
	if annotation := astutil.Field(m, "type"); annotation != nil {
		t = h.annotationType(annotation, e)
	}

	optional := astutil.HasToken(m, "?")
	if optional {
		t = typesys.NewUnion(t, typesys.UndefinedType)
	}

	return &typesys.Property{Name: name, Type: t, Readonly: astutil.HasToken(m, "readonly"), Optional: optional}
}

func (h *Host) indexSignature(m *sitter.Node, e env) *typesys.IndexInfo {
	key := h.typeOf(astutil.Field(m, "index_type"), e)

	var kind typesys.IndexKind

	switch {
	case key.Is(typesys.String):
		kind = typesys.StringIndex

	case key.Is(typesys.Number):
		kind = typesys.NumberIndex

	default:
		return nil
	}

	t := typesys.AnyType
	if annotation := typeAnnotationOf(m); annotation != nil {
		t = h.annotationType(annotation, e)
	}

	return &typesys.IndexInfo{Key: kind, Type: t, Readonly: readonlyModifier(m, false)}
}

// readonlyModifier applies a `readonly`, `+readonly` or `-readonly` modifier of a member to the inherited flag.
func readonlyModifier(m *sitter.Node, inherited bool) bool {
	if !astutil.HasToken(m, "readonly") {
		return inherited
	}

	if sign := astutil.Field(m, "sign"); sign != nil && sign.Type() == "-" {
		return false
	}

	return true
}

func typeAnnotationOf(m *sitter.Node) *sitter.Node {
	for c := range astutil.NamedChildren(m) {
		switch c.Type() {
		case "type_annotation", "opting_type_annotation", "omitting_type_annotation", "adding_type_annotation":
			return c
		}
	}

	return nil
}

func findChild(n *sitter.Node, kind string) *sitter.Node {
	for c := range astutil.NamedChildren(n) {
		if c.Type() == kind {
			return c
		}
	}

	return nil
}

// propertyName returns the name of a property key node.
func (h *Host) propertyName(n *sitter.Node) (string, bool) {
	if n == nil {
		return "", false
	}

	switch n.Type() {
	case "property_identifier", "identifier", "shorthand_property_identifier", "private_property_identifier":
		return h.text(n), true

	case "string":
		return h.stringValue(n), true

	case "number":
		return numberValue(h.text(n)), true

	case "computed_property_name":
		inner := astutil.FirstNamedChild(n)
		if inner == nil {
			return "", false
		}

		switch inner.Type() {
		case "string", "number":
			return h.propertyName(inner)
		}
	}

	return "", false
}

// mappedType evaluates `{ [K in Keys]: Value }`.
func (h *Host) mappedType(m, clause *sitter.Node, e env) *typesys.Type {
	nameNode := astutil.Field(clause, "name")
	keysNode := astutil.Field(clause, "type")

	if nameNode == nil || keysNode == nil {
		return typesys.AnyType
	}

	param := h.text(nameNode)
	annotation := typeAnnotationOf(m)

	var optional *bool

	if annotation != nil {
		switch annotation.Type() {
		case "opting_type_annotation", "adding_type_annotation":
			v := true
			optional = &v

		case "omitting_type_annotation":
			v := false
			optional = &v
		}
	}

	value := func(key *typesys.Type) *typesys.Type {
		if annotation == nil {
			return typesys.AnyType
		}

		inner := make(env, len(e)+1)
		for k, v := range e {
			inner[k] = v
		}

		inner[param] = key

		return h.annotationType(annotation, inner)
	}

	mod := mapModifiers{
		readonly: func(inherited bool) bool { return readonlyModifier(m, inherited) },
		optional: func(inherited bool) bool {
			if optional != nil {
				return *optional
			}

			return inherited
		},
	}

	// homomorphic: [K in keyof T]
	if keysNode.Type() == "index_type_query" {
		source := h.typeOf(astutil.FirstNamedChild(keysNode), e)

		return h.mapHomomorphic(source, mod, value)
	}

	return h.mapKeys(h.typeOf(keysNode, e), mod, value)
}

type mapModifiers struct {
	readonly func(inherited bool) bool
	optional func(inherited bool) bool
}

// mapHomomorphic maps the members of source, distributing over unions.
func (h *Host) mapHomomorphic(source *typesys.Type, mod mapModifiers, value func(key *typesys.Type) *typesys.Type) *typesys.Type {
	if source.Is(typesys.Union) {
		parts := make([]*typesys.Type, 0, len(source.Types()))
		for _, u := range source.Types() {
			parts = append(parts, h.mapHomomorphic(u, mod, value))
		}

		return typesys.NewUnion(parts...)
	}

	identity := value == nil
	if identity {
		value = func(key *typesys.Type) *typesys.Type { return h.indexedAccess(source, key) }
	}

	switch {
	case source.Is(typesys.Primitive | typesys.Nullish | typesys.Never):
		return source

	case source.Is(typesys.Any | typesys.Unknown):
		return typesys.NewObject(nil, nil, &typesys.IndexInfo{Key: typesys.StringIndex, Type: value(typesys.StringType), Readonly: mod.readonly(false)})

	case source.IsArray():
		return typesys.NewArray(value(typesys.NumberType), mod.readonly(source.IsReadonlyArrayLike()))

	case source.IsTuple():
		elems := source.TupleElements()
		mapped := make([]typesys.TupleElement, 0, len(elems))

		for i, el := range elems {
			t := el.Type
			if !identity {
				key := typesys.NewNumberLiteral(strconv.Itoa(i))
				if el.Rest {
					key = typesys.NumberType
				}

				t = value(key)
			}

			mapped = append(mapped, typesys.TupleElement{
				Type:     removeUndefinedIf(t, el.Optional && !mod.optional(el.Optional)),
				Optional: !el.Rest && mod.optional(el.Optional),
				Rest:     el.Rest,
			})
		}

		return typesys.NewTuple(mapped, mod.readonly(source.IsReadonlyArrayLike()))
	}

	var props []*typesys.Property

	for _, p := range source.Properties() {
		optional := mod.optional(p.Optional)
		t := value(typesys.NewStringLiteral(p.Name))

		switch {
		case optional && !p.Optional:
			t = typesys.NewUnion(t, typesys.UndefinedType)

		case !optional && p.Optional:
			t = removeUndefined(t)
		}

		props = append(props, &typesys.Property{Name: p.Name, Type: t, Readonly: mod.readonly(p.Readonly), Optional: optional})
	}

	var indexes []*typesys.IndexInfo

	for _, kind := range typesys.IndexKinds {
		info := source.IndexInfo(kind)
		if info == nil {
			continue
		}

		key := typesys.StringType
		if kind == typesys.NumberIndex {
			key = typesys.NumberType
		}

		indexes = append(indexes, &typesys.IndexInfo{Key: kind, Type: value(key), Readonly: mod.readonly(info.Readonly)})
	}

	return typesys.NewObject(props, nil, indexes...)
}

// mapKeys maps a union of property keys.
func (h *Host) mapKeys(keys *typesys.Type, mod mapModifiers, value func(key *typesys.Type) *typesys.Type) *typesys.Type {
	parts := []*typesys.Type{keys}
	if keys.Is(typesys.Union) {
		parts = keys.Types()
	}

	var (
		props   []*typesys.Property
		indexes []*typesys.IndexInfo
	)

	for _, k := range parts {
		switch {
		case k.Is(typesys.StringLiteral | typesys.NumberLiteral):
			optional := mod.optional(false)

			t := value(k)
			if optional {
				t = typesys.NewUnion(t, typesys.UndefinedType)
			}

			props = addProperty(props, &typesys.Property{Name: k.Value(), Type: t, Readonly: mod.readonly(false), Optional: optional})

		case k.Is(typesys.String | typesys.Any):
			indexes = append(indexes, &typesys.IndexInfo{Key: typesys.StringIndex, Type: value(typesys.StringType), Readonly: mod.readonly(false)})

		case k.Is(typesys.Number):
			indexes = append(indexes, &typesys.IndexInfo{Key: typesys.NumberIndex, Type: value(typesys.NumberType), Readonly: mod.readonly(false)})
		}
	}

	return typesys.NewObject(props, nil, indexes...)
}

// typeQuery evaluates `typeof x` and `typeof x.y`.
func (h *Host) typeQuery(n *sitter.Node) *typesys.Type {
	if n == nil {
		return typesys.AnyType
	}

	switch n.Type() {
	case "identifier", "member_expression", "subscript_expression", "this":
		return h.exprType(n)

	default:
		return typesys.AnyType
	}
}

// keyOf evaluates `keyof t`.
func (h *Host) keyOf(t *typesys.Type) *typesys.Type {
	if t.Is(typesys.Any) {
		return typesys.NewUnion(typesys.StringType, typesys.NumberType, typesys.SymbolType)
	}

	if t.IsArray() || t.IsTuple() {
		return typesys.NumberType
	}

	if t.IndexInfo(typesys.StringIndex) != nil {
		return typesys.NewUnion(typesys.StringType, typesys.NumberType)
	}

	var keys []*typesys.Type

	if t.IndexInfo(typesys.NumberIndex) != nil {
		keys = append(keys, typesys.NumberType)
	}

	for _, p := range t.Properties() {
		keys = append(keys, typesys.NewStringLiteral(p.Name))
	}

	return typesys.NewUnion(keys...)
}

// indexedAccess evaluates `obj[index]`.
func (h *Host) indexedAccess(obj, index *typesys.Type) *typesys.Type {
	if obj.Is(typesys.Any) {
		return typesys.AnyType
	}

	if index.Is(typesys.Union) {
		parts := make([]*typesys.Type, 0, len(index.Types()))
		for _, k := range index.Types() {
			parts = append(parts, h.indexedAccess(obj, k))
		}

		return typesys.NewUnion(parts...)
	}

	switch {
	case index.Is(typesys.StringLiteral | typesys.NumberLiteral):
		if p := obj.Property(index.Value()); p != nil {
			return p.Type
		}

		kind := typesys.StringIndex
		if index.Is(typesys.NumberLiteral) {
			kind = typesys.NumberIndex
		}

		return h.indexType(obj, kind)

	case index.Is(typesys.Number):
		return h.indexType(obj, typesys.NumberIndex)

	case index.Is(typesys.String):
		return h.indexType(obj, typesys.StringIndex)

	default:
		return typesys.AnyType
	}
}

func (h *Host) indexType(obj *typesys.Type, kind typesys.IndexKind) *typesys.Type {
	if info := obj.IndexInfo(kind); info != nil {
		return info.Type
	}

	if kind == typesys.NumberIndex {
		if info := obj.IndexInfo(typesys.StringIndex); info != nil {
			return info.Type
		}
	}

	return typesys.AnyType
}

// namedType resolves a type reference.
func (h *Host) namedType(ref *sitter.Node, name string, args []*typesys.Type, e env) *typesys.Type {
	if t, ok := e[name]; ok {
		return t
	}

	if d := h.lookupType(ref, name); d != nil {
		return h.declaredType(d, args)
	}

	if t, ok := h.builtin(name, args); ok {
		return t
	}

	return typesys.AnyType
}

// Limits on generic instantiation per file. References past a limit resolve to any.
const (
	maxInstantiationDepth = 50
	maxInstantiations     = 5000
)

// declaredType returns the type declared by d, instantiated with args.
func (h *Host) declaredType(d *typeDecl, args []*typesys.Type) *typesys.Type {
	switch d.kind {
	case declAlias, declInterface:

	default:
		return typesys.AnyType
	}

	if d.instances == nil {
		d.instances = make(map[string]*instance)
	}

	key := instanceKey(args)
	if inst, ok := d.instances[key]; ok {
		if inst.resolving {
			inst.referenced = true
		}

		return inst.typ
	}

	if h.depth >= maxInstantiationDepth || h.count >= maxInstantiations {
		return typesys.AnyType // expanding generics never bottom out
	}

	h.depth++
	h.count++

	defer func() { h.depth-- }()

	inst := &instance{resolving: true}
	d.instances[key] = inst

	e := h.typeArguments(d, args)

	if d.kind == declInterface {
		inst.typ = typesys.NewObject(nil, nil)
		inst.typ.SetName(displayName(d.name, args))
		h.interfaceMembers(d, inst.typ, e)
		inst.resolving = false

		return inst.typ
	}

	decl := d.nodes[0]
	value := astutil.Field(decl, "value")

	inst.typ = &typesys.Type{}
	placeholder := inst.typ

	u := h.typeOf(value, e)

	if inst.referenced {
		placeholder.Become(u)
		u = placeholder
	}

	if value != nil && value.Type() == "object_type" {
		u.SetName(displayName(d.name, args))
	}

	inst.typ = u
	inst.resolving = false

	return u
}

// typeArguments binds the type parameters of d, applying defaults for missing arguments.
func (h *Host) typeArguments(d *typeDecl, args []*typesys.Type) env {
	params := astutil.Field(d.nodes[0], "type_parameters")
	if params == nil {
		return nil
	}

	e := make(env)
	i := 0

	for p := range astutil.NamedChildren(params) {
		name := astutil.Field(p, "name")
		if name == nil {
			continue
		}

		switch {
		case i < len(args):
			e[h.text(name)] = args[i]

		case astutil.Field(p, "value") != nil:
			e[h.text(name)] = h.typeOf(astutil.FirstNamedChild(astutil.Field(p, "value")), e)

		default:
			e[h.text(name)] = typesys.AnyType
		}

		i++
	}

	return e
}

// interfaceMembers fills t with the members of all declarations of d and their bases.
func (h *Host) interfaceMembers(d *typeDecl, t *typesys.Type, e env) {
	var (
		props      []*typesys.Property
		calls      []*typesys.Signature
		constructs []*typesys.Signature
		indexes    [2]*typesys.IndexInfo
	)

	for _, decl := range d.nodes {
		for c := range astutil.NamedChildren(decl) {
			if c.Type() != "extends_type_clause" {
				continue
			}

			for base := range astutil.NamedChildren(c) {
				b := h.typeOf(base, e)
				for _, p := range b.Properties() {
					props = addProperty(props, p)
				}

				calls = append(calls, b.CallSignatures()...)
				constructs = append(constructs, b.ConstructSignatures()...)

				for _, kind := range typesys.IndexKinds {
					if info := b.IndexInfo(kind); info != nil {
						indexes[kind] = info
					}
				}
			}
		}
	}

	for _, decl := range d.nodes {
		body := astutil.Field(decl, "body")
		if body == nil {
			continue
		}

		own := h.objectType(body, e)
		for _, p := range own.Properties() {
			props = addProperty(props, p)
		}

		calls = append(calls, own.CallSignatures()...)
		constructs = append(constructs, own.ConstructSignatures()...)

		for _, kind := range typesys.IndexKinds {
			if info := own.IndexInfo(kind); info != nil {
				indexes[kind] = info
			}
		}
	}

	t.SetMembers(props, calls, indexes[:]...)
	t.SetConstructSignatures(constructs)
}

func instanceKey(args []*typesys.Type) string {
	var b strings.Builder
	for _, a := range args {
		fmt.Fprintf(&b, "%p,", a)
	}

	return b.String()
}

func displayName(name string, args []*typesys.Type) string {
	if len(args) == 0 {
		return name
	}

	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, a.String())
	}

	return name + "<" + strings.Join(parts, ", ") + ">"
}
