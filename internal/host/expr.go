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

// exprType returns the type of an expression.
func (h *Host) exprType(n *sitter.Node) *typesys.Type {
	if n == nil {
		return typesys.AnyType
	}

	key := astutil.KeyOf(n)
	if t, ok := h.exprs[key]; ok {
		return t
	}

	h.exprs[key] = typesys.AnyType // breaks cycles through initializers

	t := h.evalExpr(n)
	h.exprs[key] = t

	return t
}

func (h *Host) evalExpr(n *sitter.Node) *typesys.Type {
	switch n.Type() {
	case "string":
		return typesys.NewStringLiteral(h.stringValue(n))

	case "template_string":
		return typesys.StringType

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

	case "identifier":
		if h.text(n) == "undefined" {
			return typesys.UndefinedType
		}

		if b := h.lookupValue(n, h.text(n)); b != nil {
			return h.bindingType(b)
		}

		return typesys.AnyType

	case "object":
		return h.objectLiteral(n)

	case "array":
		return h.arrayLiteral(n)

	case "parenthesized_expression":
		return h.exprType(lastNamedChild(n))

	case "sequence_expression":
		return h.exprType(lastNamedChild(n))

	case "as_expression":
		expr, typ := operands(n)
		if astutil.HasToken(n, "const") || (typ != nil && h.text(typ) == "const") {
			return h.constType(expr)
		}

		return h.typeOf(typ, nil)

	case "satisfies_expression":
		expr, _ := operands(n)

		return h.exprType(expr)

	case "type_assertion":
		var args, expr *sitter.Node
		for c := range astutil.NamedChildren(n) {
			if c.Type() == "type_arguments" {
				args = c
			} else {
				expr = c
			}
		}

		if args == nil {
			return h.exprType(expr)
		}

		typ := astutil.FirstNamedChild(args)
		if typ != nil && h.text(typ) == "const" {
			return h.constType(expr)
		}

		return h.typeOf(typ, nil)

	case "non_null_expression":
		return removeNullish(h.exprType(astutil.FirstNamedChild(n)))

	case "member_expression":
		return h.memberType(n)

	case "subscript_expression":
		return h.subscriptType(n)

	case "call_expression", "new_expression":
		return h.callType(n)

	case "ternary_expression":
		return typesys.NewUnion(h.exprType(astutil.Field(n, "consequence")), h.exprType(astutil.Field(n, "alternative")))

	case "binary_expression":
		return h.binaryType(n)

	case "unary_expression":
		return h.unaryType(n)

	case "update_expression":
		return typesys.NumberType

	case "assignment_expression", "augmented_assignment_expression":
		return h.exprType(astutil.Field(n, "right"))

	case "arrow_function", "function_expression", "function", "generator_function":
		return typesys.NewFunction(h.signatureOf(n, nil))

	case "regex":
		return typesys.AnyType

	default:
		return typesys.AnyType
	}
}

func lastNamedChild(n *sitter.Node) *sitter.Node {
	var last *sitter.Node
	for c := range astutil.NamedChildren(n) {
		last = c
	}

	return last
}

// operands returns the expression and type of as and satisfies expressions.
func operands(n *sitter.Node) (expr, typ *sitter.Node) {
	for c := range astutil.NamedChildren(n) {
		if expr == nil {
			expr = c
		} else {
			typ = c
		}
	}

	return expr, typ
}

// objectLiteral types an object literal. Literal property types are widened unless
// the contextual property type expects literals.
func (h *Host) objectLiteral(n *sitter.Node) *typesys.Type {
	var props []*typesys.Property

	for m := range astutil.NamedChildren(n) {
		switch m.Type() {
		case "pair":
			name, ok := h.propertyName(astutil.Field(m, "key"))
			value := astutil.Field(m, "value")

			if !ok || value == nil {
				continue
			}

			props = addProperty(props, &typesys.Property{Name: name, Type: h.freshType(value)})

		case "shorthand_property_identifier":
			name := h.text(m)

			t := typesys.AnyType
			if b := h.lookupValue(m, name); b != nil {
				t = widen(h.bindingType(b))
			}

			props = addProperty(props, &typesys.Property{Name: name, Type: t})

		case "method_definition":
			name, ok := h.propertyName(astutil.Field(m, "name"))
			if !ok {
				continue
			}

			props = addProperty(props, &typesys.Property{Name: name, Type: typesys.NewFunction(h.signatureOf(m, nil))})

		case "spread_element":
			spread := h.exprType(astutil.FirstNamedChild(m))
			for _, p := range spread.Properties() {
				props = addProperty(props, &typesys.Property{Name: p.Name, Type: p.Type, Optional: p.Optional})
			}
		}
	}

	return typesys.NewObject(props, nil)
}

// arrayLiteral types an array literal as a tuple when a tuple is expected, as an array otherwise.
func (h *Host) arrayLiteral(n *sitter.Node) *typesys.Type {
	contextual := h.ContextualType(n)

	if contextual != nil && hasTuple(contextual) {
		var elems []typesys.TupleElement

		for c := range astutil.NamedChildren(n) {
			if c.Type() == "spread_element" {
				elems = append(elems, restElement(h.exprType(astutil.FirstNamedChild(c))))

				continue
			}

			elems = append(elems, typesys.TupleElement{Type: h.freshType(c)})
		}

		return typesys.NewTuple(elems, false)
	}

	var elems []*typesys.Type

	for c := range astutil.NamedChildren(n) {
		if c.Type() == "spread_element" {
			elems = append(elems, h.indexType(h.exprType(astutil.FirstNamedChild(c)), typesys.NumberIndex))

			continue
		}

		elems = append(elems, h.freshType(c))
	}

	if len(elems) == 0 {
		if contextual != nil {
			return typesys.NewArray(typesys.NeverType, false)
		}

		return typesys.NewArray(typesys.AnyType, false)
	}

	return typesys.NewArray(typesys.NewUnion(elems...), false)
}

// freshType types an element of a literal, widening unless literals are expected.
func (h *Host) freshType(n *sitter.Node) *typesys.Type {
	t := h.exprType(n)

	if contextual := h.ContextualType(n); contextual != nil && hasLiteral(contextual) {
		return t
	}

	return widen(t)
}

func hasTuple(t *typesys.Type) bool {
	if t.Is(typesys.Union | typesys.Intersection) {
		for _, u := range t.Types() {
			if hasTuple(u) {
				return true
			}
		}

		return false
	}

	return t.IsTuple()
}

func hasLiteral(t *typesys.Type) bool {
	if t.Is(typesys.Union | typesys.Intersection) {
		for _, u := range t.Types() {
			if hasLiteral(u) {
				return true
			}
		}

		return false
	}

	return t.Is(typesys.Literal)
}

// constType types the operand of a const assertion: literals keep their
// types, object properties become readonly and array literals readonly tuples.
func (h *Host) constType(n *sitter.Node) *typesys.Type {
	if n == nil {
		return typesys.AnyType
	}

	switch n.Type() {
	case "parenthesized_expression":
		return h.constType(lastNamedChild(n))

	case "object":
		var props []*typesys.Property

		for m := range astutil.NamedChildren(n) {
			switch m.Type() {
			case "pair":
				name, ok := h.propertyName(astutil.Field(m, "key"))
				if !ok {
					continue
				}

				props = addProperty(props, &typesys.Property{Name: name, Type: h.constType(astutil.Field(m, "value")), Readonly: true})

			case "shorthand_property_identifier":
				props = addProperty(props, &typesys.Property{Name: h.text(m), Type: h.exprType(m), Readonly: true})

			case "method_definition":
				name, ok := h.propertyName(astutil.Field(m, "name"))
				if !ok {
					continue
				}

				props = addProperty(props, &typesys.Property{Name: name, Type: typesys.NewFunction(h.signatureOf(m, nil)), Readonly: true})

			case "spread_element":
				for _, p := range h.exprType(astutil.FirstNamedChild(m)).Properties() {
					props = addProperty(props, &typesys.Property{Name: p.Name, Type: p.Type, Readonly: true, Optional: p.Optional})
				}
			}
		}

		return typesys.NewObject(props, nil)

	case "array":
		var elems []typesys.TupleElement

		for c := range astutil.NamedChildren(n) {
			if c.Type() == "spread_element" {
				elems = append(elems, restElement(h.exprType(astutil.FirstNamedChild(c))))

				continue
			}

			elems = append(elems, typesys.TupleElement{Type: h.constType(c)})
		}

		return typesys.NewTuple(elems, true)

	default:
		return h.exprType(n)
	}
}

func (h *Host) memberType(n *sitter.Node) *typesys.Type {
	obj := h.exprType(astutil.Field(n, "object"))
	optional := astutil.HasToken(n, "?.") || hasOptionalChain(n)

	if optional {
		obj = removeNullish(obj)
	}

	property := astutil.Field(n, "property")
	if property == nil {
		return typesys.AnyType
	}

	t := h.indexedAccess(obj, typesys.NewStringLiteral(h.text(property)))

	if optional {
		t = typesys.NewUnion(t, typesys.UndefinedType)
	}

	return t
}

func hasOptionalChain(n *sitter.Node) bool {
	for c := range astutil.Children(n) {
		if c.Type() == "optional_chain" {
			return true
		}
	}

	return false
}

func (h *Host) subscriptType(n *sitter.Node) *typesys.Type {
	obj := h.exprType(astutil.Field(n, "object"))
	optional := hasOptionalChain(n) || astutil.HasToken(n, "?.")

	if optional {
		obj = removeNullish(obj)
	}

	index := astutil.Field(n, "index")
	if index == nil {
		return typesys.AnyType
	}

	key := h.exprType(index)

	var t *typesys.Type

	switch {
	case key.Is(typesys.StringLiteral | typesys.NumberLiteral):
		t = h.indexedAccess(obj, key)

	case key.Is(typesys.Number | typesys.Any):
		t = h.indexType(obj, typesys.NumberIndex)

	case key.Is(typesys.String):
		t = h.indexType(obj, typesys.StringIndex)

	default:
		t = typesys.AnyType
	}

	if optional {
		t = typesys.NewUnion(t, typesys.UndefinedType)
	}

	return t
}

func (h *Host) callType(n *sitter.Node) *typesys.Type {
	sig := h.invokedSignature(n)
	if sig == nil {
		return typesys.AnyType
	}

	return sig.ResultType()
}

// invokedSignature selects the signature invoked by a call or new expression, or nil.
func (h *Host) invokedSignature(n *sitter.Node) *typesys.Signature {
	args := astutil.Field(n, "arguments")
	if args == nil || args.Type() != "arguments" {
		return nil // tagged templates and new without arguments
	}

	var sigs []*typesys.Signature

	switch n.Type() {
	case "call_expression":
		callee := astutil.Field(n, "function")
		if callee == nil {
			return nil
		}

		sigs = h.exprType(callee).CallSignatures()

	case "new_expression":
		callee := astutil.Field(n, "constructor")
		if callee == nil {
			return nil
		}

		sigs = h.exprType(callee).ConstructSignatures()

	default:
		return nil
	}

	return selectSignature(sigs, argumentCount(args))
}

func argumentCount(args *sitter.Node) int {
	count := 0
	for range astutil.NamedChildren(args) {
		count++
	}

	return count
}

// selectSignature picks the first signature accepting argc arguments.
func selectSignature(sigs []*typesys.Signature, argc int) *typesys.Signature {
	for _, sig := range sigs {
		if sig.MinArgs() <= argc && (sig.HasRest() || argc <= len(sig.Params)) {
			return sig
		}
	}

	return nil
}

func (h *Host) binaryType(n *sitter.Node) *typesys.Type {
	op := astutil.Field(n, "operator")
	left, right := astutil.Field(n, "left"), astutil.Field(n, "right")

	if op == nil || left == nil || right == nil {
		return typesys.AnyType
	}

	switch op.Type() {
	case "+":
		l, r := h.exprType(left), h.exprType(right)
		if l.Is(typesys.String|typesys.StringLiteral) || r.Is(typesys.String|typesys.StringLiteral) {
			return typesys.StringType
		}

		if l.Is(typesys.Any) || r.Is(typesys.Any) {
			return typesys.AnyType
		}

		return typesys.NumberType

	case "-", "*", "/", "%", "**", "&", "|", "^", "<<", ">>", ">>>":
		return typesys.NumberType

	case "==", "!=", "===", "!==", "<", "<=", ">", ">=", "in", "instanceof":
		return typesys.BooleanType

	case "&&":
		return typesys.NewUnion(h.exprType(left), h.exprType(right))

	case "||", "??":
		return typesys.NewUnion(removeNullish(h.exprType(left)), h.exprType(right))

	default:
		return typesys.AnyType
	}
}

func (h *Host) unaryType(n *sitter.Node) *typesys.Type {
	arg := astutil.Field(n, "argument")

	switch {
	case astutil.HasToken(n, "!"), astutil.HasToken(n, "delete"):
		return typesys.BooleanType

	case astutil.HasToken(n, "typeof"):
		return typesys.StringType

	case astutil.HasToken(n, "void"):
		return typesys.UndefinedType

	case astutil.HasToken(n, "-") && arg != nil && arg.Type() == "number":
		return typesys.NewNumberLiteral(numberValue("-" + h.text(arg)))

	default:
		return typesys.NumberType
	}
}
