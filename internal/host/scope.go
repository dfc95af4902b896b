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
	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/mutguard/internal/astutil"
	"fillmore-labs.com/mutguard/internal/typesys"
)

type scope struct {
	parent *scope
	values map[string]*binding
	types  map[string]*typeDecl
}

type bindingKind uint8

const (
	bindVariable bindingKind = iota
	bindConstant
	bindParameter
	bindFunction
	bindOpaque
)

// binding is a value declaration.
type binding struct {
	kind  bindingKind
	name  *sitter.Node   // the declared identifier
	nodes []*sitter.Node // declarator, parameter or function declarations and overloads

	typ       *typesys.Type
	resolving bool
}

func (b *binding) declares(n *sitter.Node) bool {
	return sameNode(b.name, n)
}

type declKind uint8

const (
	declAlias declKind = iota
	declInterface
	declTypeParameter
	declOpaque
)

// typeDecl is a type declaration. Interfaces may have several merged declarations.
type typeDecl struct {
	kind  declKind
	name  string
	nodes []*sitter.Node

	instances map[string]*instance // keyed by type arguments
}

type instance struct {
	typ        *typesys.Type
	resolving  bool
	referenced bool
}

var scopeNodes = map[string]bool{
	"program":                        true,
	"statement_block":                true,
	"arrow_function":                 true,
	"function_declaration":           true,
	"function_expression":            true,
	"function":                       true,
	"generator_function_declaration": true,
	"generator_function":             true,
	"method_definition":              true,
	"for_statement":                  true,
	"for_in_statement":               true,
	"catch_clause":                   true,
	"class_body":                     true,
	"switch_body":                    true,
}

var functionNodes = map[string]bool{
	"arrow_function":                 true,
	"function_declaration":           true,
	"function_expression":            true,
	"function":                       true,
	"generator_function_declaration": true,
	"generator_function":             true,
	"method_definition":              true,
}

// index records parents and declarations of n and its descendants.
func (h *Host) index(n, parent *sitter.Node, sc *scope) {
	h.parents[astutil.KeyOf(n)] = parent

	if sc != nil {
		h.declare(n, sc)
	}

	if scopeNodes[n.Type()] {
		sc = &scope{parent: sc, values: make(map[string]*binding), types: make(map[string]*typeDecl)}
		h.scopes[astutil.KeyOf(n)] = sc

		if functionNodes[n.Type()] {
			h.declareTypeParameters(n, sc)
		}
	}

	for c := range astutil.NamedChildrenWithComments(n) {
		h.index(c, n, sc)
	}
}

// declare adds the declarations introduced by n to sc.
func (h *Host) declare(n *sitter.Node, sc *scope) {
	switch n.Type() {
	case "type_alias_declaration":
		h.declareType(sc, astutil.Field(n, "name"), declAlias, n)

	case "interface_declaration":
		h.declareType(sc, astutil.Field(n, "name"), declInterface, n)

	case "class_declaration", "abstract_class_declaration", "enum_declaration":
		name := astutil.Field(n, "name")
		h.declareType(sc, name, declOpaque, n)
		h.declareValue(sc, name, bindOpaque, n)

	case "variable_declarator":
		kind := bindVariable
		if decl := h.parent(n); decl != nil && decl.Type() == "lexical_declaration" && astutil.HasToken(decl, "const") {
			kind = bindConstant
		}

		name := astutil.Field(n, "name")
		if name != nil && name.Type() == "identifier" {
			h.declareValue(sc, name, kind, n)
		} else {
			h.declarePattern(sc, name)
		}

	case "function_declaration", "generator_function_declaration", "function_signature":
		h.declareValue(sc, astutil.Field(n, "name"), bindFunction, n)

	case "required_parameter", "optional_parameter":
		if !h.isFunctionParameter(n) {
			return // function types and labeled tuple members
		}

		pattern := astutil.Field(n, "pattern")
		if pattern != nil && pattern.Type() == "rest_pattern" {
			pattern = astutil.FirstNamedChild(pattern)
		}

		if pattern != nil && pattern.Type() == "identifier" {
			h.declareValue(sc, pattern, bindParameter, n)
		} else {
			h.declarePattern(sc, pattern)
		}

	case "identifier":
		if parent := h.parent(n); parent != nil && parent.Type() == "arrow_function" && sameNode(astutil.Field(parent, "parameter"), n) {
			h.declareValue(sc, n, bindParameter, parent)
		}

	case "import_specifier", "namespace_import", "import_clause":
		for c := range astutil.NamedChildren(n) {
			if c.Type() == "identifier" {
				h.declareType(sc, c, declOpaque, n)
				h.declareValue(sc, c, bindOpaque, n)
			}
		}
	}
}

func (h *Host) isFunctionParameter(param *sitter.Node) bool {
	params := h.parent(param)
	if params == nil || params.Type() != "formal_parameters" {
		return false
	}

	fn := h.parent(params)

	return fn != nil && functionNodes[fn.Type()]
}

// declarePattern declares the names bound by a destructuring pattern as opaque.
func (h *Host) declarePattern(sc *scope, pattern *sitter.Node) {
	if pattern == nil {
		return
	}

	for n := range astutil.Preorder(pattern) {
		switch n.Type() {
		case "identifier", "shorthand_property_identifier_pattern":
			if parent := h.parent(n); parent != nil && parent.Type() == "pair_pattern" && sameNode(astutil.Field(parent, "key"), n) {
				continue
			}

			sc.values[h.text(n)] = &binding{kind: bindOpaque, name: n}
		}
	}
}

func (h *Host) declareTypeParameters(n *sitter.Node, sc *scope) {
	params := astutil.Field(n, "type_parameters")
	if params == nil {
		return
	}

	for p := range astutil.NamedChildren(params) {
		if name := astutil.Field(p, "name"); name != nil {
			sc.types[h.text(name)] = &typeDecl{kind: declTypeParameter, name: h.text(name), nodes: []*sitter.Node{p}}
		}
	}
}

func (h *Host) declareType(sc *scope, name *sitter.Node, kind declKind, n *sitter.Node) {
	if name == nil {
		return
	}

	id := h.text(name)
	if d, ok := sc.types[id]; ok && d.kind == declInterface && kind == declInterface {
		d.nodes = append(d.nodes, n) // declaration merging

		return
	}

	sc.types[id] = &typeDecl{kind: kind, name: id, nodes: []*sitter.Node{n}}
}

func (h *Host) declareValue(sc *scope, name *sitter.Node, kind bindingKind, n *sitter.Node) {
	if name == nil {
		return
	}

	id := h.text(name)
	if b, ok := sc.values[id]; ok && b.kind == bindFunction && kind == bindFunction {
		b.nodes = append(b.nodes, n) // overloads

		return
	}

	sc.values[id] = &binding{kind: kind, name: name, nodes: []*sitter.Node{n}}
}

// scopeOf returns the innermost scope containing n.
func (h *Host) scopeOf(n *sitter.Node) *scope {
	for p := n; p != nil; p = h.parent(p) {
		if sc, ok := h.scopes[astutil.KeyOf(p)]; ok {
			return sc
		}
	}

	return nil
}

func (h *Host) lookupValue(from *sitter.Node, name string) *binding {
	for sc := h.scopeOf(from); sc != nil; sc = sc.parent {
		if b, ok := sc.values[name]; ok {
			return b
		}
	}

	return nil
}

func (h *Host) lookupType(from *sitter.Node, name string) *typeDecl {
	for sc := h.scopeOf(from); sc != nil; sc = sc.parent {
		if d, ok := sc.types[name]; ok {
			return d
		}
	}

	return nil
}

// bindingType returns the declared or inferred type of a value.
func (h *Host) bindingType(b *binding) *typesys.Type {
	if b.typ != nil {
		return b.typ
	}

	if b.resolving {
		return typesys.AnyType // circular initializer
	}

	b.resolving = true
	t := h.resolveBinding(b)
	b.resolving = false

	b.typ = t

	return t
}

func (h *Host) resolveBinding(b *binding) *typesys.Type {
	switch b.kind {
	case bindVariable, bindConstant:
		n := b.nodes[0]

		if annotation := astutil.Field(n, "type"); annotation != nil {
			return h.annotationType(annotation, nil)
		}

		value := astutil.Field(n, "value")
		if value == nil {
			return typesys.AnyType
		}

		t := h.exprType(value)
		if b.kind == bindVariable {
			t = widen(t)
		}

		return t

	case bindParameter:
		if n := b.nodes[0]; n.Type() == "arrow_function" {
			return h.contextualParameterAt(n, 0)
		}

		return h.parameterType(b.nodes[0])

	case bindFunction:
		var sigs, impls []*typesys.Signature

		for _, n := range b.nodes {
			sig := h.signatureOf(n, nil)
			if n.Type() == "function_signature" {
				sigs = append(sigs, sig)
			} else {
				impls = append(impls, sig)
			}
		}

		if len(sigs) == 0 {
			sigs = impls
		}

		return typesys.NewFunction(sigs...)

	default:
		return typesys.AnyType
	}
}

// parameterType returns the type of a parameter as seen inside the function.
func (h *Host) parameterType(param *sitter.Node) *typesys.Type {
	var t *typesys.Type

	if annotation := astutil.Field(param, "type"); annotation != nil {
		t = h.annotationType(annotation, nil)
	} else if value := astutil.Field(param, "value"); value != nil {
		t = widen(h.exprType(value))
	} else {
		t = h.contextualParameterType(param)
	}

	if param.Type() == "optional_parameter" && astutil.Field(param, "value") == nil {
		t = typesys.NewUnion(t, typesys.UndefinedType)
	}

	return t
}

// contextualParameterType types unannotated parameters of functions passed where a
// function type is expected.
func (h *Host) contextualParameterType(param *sitter.Node) *typesys.Type {
	params := h.parent(param)
	if params == nil || params.Type() != "formal_parameters" {
		return typesys.AnyType
	}

	fn := h.parent(params)
	if fn == nil || !functionNodes[fn.Type()] {
		return typesys.AnyType
	}

	i := 0
	for p := range astutil.NamedChildren(params) {
		if sameNode(p, param) {
			break
		}

		i++
	}

	return h.contextualParameterAt(fn, i)
}
