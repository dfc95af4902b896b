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

// ContextualType returns the type expected at the expression n, or nil when the
// position imposes no type.
func (h *Host) ContextualType(n *sitter.Node) *typesys.Type {
	if n == nil {
		return nil
	}

	key := astutil.KeyOf(n)
	if t, ok := h.contextual[key]; ok {
		return t
	}

	h.contextual[key] = nil // breaks cycles

	t := h.evalContextual(n)
	h.contextual[key] = t

	return t
}

func (h *Host) evalContextual(n *sitter.Node) *typesys.Type {
	parent := h.parent(n)
	if parent == nil {
		return nil
	}

	switch parent.Type() {
	case "arguments":
		return h.argumentContext(parent, n)

	case "return_statement":
		return h.returnContext(h.enclosingFunction(parent))

	case "arrow_function":
		if sameNode(astutil.Field(parent, "body"), n) {
			return h.returnContext(parent)
		}

	case "variable_declarator", "public_field_definition", "required_parameter", "optional_parameter":
		if !sameNode(astutil.Field(parent, "value"), n) {
			return nil
		}

		if annotation := astutil.Field(parent, "type"); annotation != nil {
			return h.annotationType(annotation, nil)
		}

	case "assignment_expression":
		if left := astutil.Field(parent, "left"); sameNode(astutil.Field(parent, "right"), n) && left != nil {
			return h.TypeAtLocation(left)
		}

	case "pair":
		if !sameNode(astutil.Field(parent, "value"), n) {
			return nil
		}

		name, ok := h.propertyName(astutil.Field(parent, "key"))
		if !ok {
			return nil
		}

		obj := h.parent(parent)
		if obj == nil {
			return nil
		}

		if expected := h.ContextualType(obj); expected != nil {
			return h.propertyContext(expected, name)
		}

	case "array":
		expected := h.ContextualType(parent)
		if expected == nil {
			return nil
		}

		return h.elementContext(expected, parent, n)

	case "parenthesized_expression", "ternary_expression":
		if parent.Type() == "ternary_expression" && sameNode(astutil.Field(parent, "condition"), n) {
			return nil
		}

		return h.ContextualType(parent)

	case "as_expression", "satisfies_expression":
		expr, typ := operands(parent)
		if !sameNode(expr, n) || typ == nil || astutil.HasToken(parent, "const") || h.text(typ) == "const" {
			return nil
		}

		return h.typeOf(typ, nil)

	case "type_assertion":
		for c := range astutil.NamedChildren(parent) {
			if c.Type() != "type_arguments" {
				continue
			}

			typ := astutil.FirstNamedChild(c)
			if typ == nil || h.text(typ) == "const" {
				return nil
			}

			return h.typeOf(typ, nil)
		}
	}

	return nil
}

// argumentContext returns the parameter type for the argument n of a call or new expression.
func (h *Host) argumentContext(args, n *sitter.Node) *typesys.Type {
	call := h.parent(args)
	if call == nil {
		return nil
	}

	i := 0

	for arg := range astutil.NamedChildren(args) {
		if sameNode(arg, n) {
			break
		}

		if arg.Type() == "spread_element" {
			return nil // positions after a spread are unknown
		}

		i++
	}

	sig := h.invokedSignature(call)
	if sig == nil {
		return nil
	}

	if t, ok := sig.ParamType(i); ok {
		return t
	}

	return nil
}

// propertyContext returns the type expected for the property name of an object literal.
func (h *Host) propertyContext(expected *typesys.Type, name string) *typesys.Type {
	if expected.Is(typesys.Union) {
		var parts []*typesys.Type

		for _, u := range expected.Types() {
			if t := h.propertyContext(u, name); t != nil {
				parts = append(parts, t)
			}
		}

		if len(parts) == 0 {
			return nil
		}

		return typesys.NewUnion(parts...)
	}

	if p := expected.Property(name); p != nil {
		return p.Type
	}

	if info := expected.IndexInfo(typesys.StringIndex); info != nil {
		return info.Type
	}

	return nil
}

// elementContext returns the type expected for the element n of an array literal.
func (h *Host) elementContext(expected *typesys.Type, array, n *sitter.Node) *typesys.Type {
	if expected.Is(typesys.Union) {
		var parts []*typesys.Type

		for _, u := range expected.Types() {
			if t := h.elementContext(u, array, n); t != nil {
				parts = append(parts, t)
			}
		}

		if len(parts) == 0 {
			return nil
		}

		return typesys.NewUnion(parts...)
	}

	if expected.IsTuple() {
		i := 0

		for c := range astutil.NamedChildren(array) {
			if sameNode(c, n) {
				break
			}

			i++
		}

		elems := expected.TupleElements()
		for j, el := range elems {
			if el.Rest || j == i {
				return el.Type
			}
		}

		return nil
	}

	if info := expected.IndexInfo(typesys.NumberIndex); info != nil {
		return info.Type
	}

	return nil
}
