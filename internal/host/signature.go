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

// signatureOf returns the call signature of a function, method or function type node.
func (h *Host) signatureOf(n *sitter.Node, e env) *typesys.Signature {
	if e != nil {
		return h.buildSignature(n, e)
	}

	key := astutil.KeyOf(n)
	if entry, ok := h.signatures[key]; ok {
		if entry.resolving {
			return &typesys.Signature{Result: typesys.AnyType} // recursive inference
		}

		return entry.sig
	}

	entry := &signatureEntry{resolving: true}
	h.signatures[key] = entry

	entry.sig = h.buildSignature(n, nil)
	entry.resolving = false

	return entry.sig
}

func (h *Host) buildSignature(n *sitter.Node, e env) *typesys.Signature {
	sig := &typesys.Signature{}

	if param := astutil.Field(n, "parameter"); param != nil {
		// x => ...
		sig.Params = []*typesys.Param{{Name: h.text(param), Type: h.contextualParameterAt(n, 0)}}
	} else if params := astutil.Field(n, "parameters"); params != nil {
		for p := range astutil.NamedChildren(params) {
			if param := h.param(p, e); param != nil {
				sig.Params = append(sig.Params, param)
			}
		}
	}

	sig.Result = h.resultType(n, e)

	return sig
}

func (h *Host) param(p *sitter.Node, e env) *typesys.Param {
	switch p.Type() {
	case "required_parameter", "optional_parameter":

	default:
		return nil
	}

	pattern := astutil.Field(p, "pattern")
	if pattern != nil && pattern.Type() == "this" {
		return nil
	}

	param := &typesys.Param{
		Optional: p.Type() == "optional_parameter" || astutil.Field(p, "value") != nil,
	}

	if pattern != nil && pattern.Type() == "rest_pattern" {
		param.Rest = true
		param.Optional = false
		pattern = astutil.FirstNamedChild(pattern)
	}

	if pattern != nil && pattern.Type() == "identifier" {
		param.Name = h.text(pattern)
	}

	switch annotation := astutil.Field(p, "type"); {
	case annotation != nil && e != nil:
		param.Type = h.annotationType(annotation, e)
		if p.Type() == "optional_parameter" && astutil.Field(p, "value") == nil {
			param.Type = typesys.NewUnion(param.Type, typesys.UndefinedType)
		}

	case annotation == nil && param.Rest:
		param.Type = typesys.NewArray(typesys.AnyType, false)

	default:
		param.Type = h.parameterType(p)
	}

	return param
}

// resultType returns the declared or inferred result type of a function node.
func (h *Host) resultType(n *sitter.Node, e env) *typesys.Type {
	if rt := returnAnnotation(n); rt != nil {
		if isAsync(n) {
			return typesys.AnyType
		}

		return h.annotationType(rt, e)
	}

	body := astutil.Field(n, "body")
	if body == nil {
		return typesys.AnyType // declarations without bodies
	}

	if isAsync(n) || isGenerator(n) {
		return typesys.AnyType
	}

	if body.Type() != "statement_block" {
		return widen(h.exprType(body))
	}

	var (
		results  []*typesys.Type
		hasValue bool
	)

	for ret := range h.returnStatements(body) {
		value := astutil.FirstNamedChild(ret)
		if value == nil {
			results = append(results, typesys.UndefinedType)

			continue
		}

		hasValue = true

		results = append(results, widen(h.exprType(value)))
	}

	if !hasValue {
		return typesys.VoidType
	}

	return typesys.NewUnion(results...)
}

// returnStatements yields the return statements of a function body, skipping nested functions.
func (h *Host) returnStatements(body *sitter.Node) func(yield func(*sitter.Node) bool) {
	return func(yield func(*sitter.Node) bool) {
		var walk func(n *sitter.Node) bool

		walk = func(n *sitter.Node) bool {
			for c := range astutil.NamedChildren(n) {
				switch {
				case c.Type() == "return_statement":
					if !yield(c) {
						return false
					}

				case functionNodes[c.Type()], c.Type() == "class_declaration", c.Type() == "class":

				default:
					if !walk(c) {
						return false
					}
				}
			}

			return true
		}

		walk(body)
	}
}

// returnAnnotation returns the declared result type node of a signature node, or nil.
func returnAnnotation(n *sitter.Node) *sitter.Node {
	switch n.Type() {
	case "constructor_type", "construct_signature":
		return astutil.Field(n, "type")

	default:
		return astutil.Field(n, "return_type")
	}
}

func isAsync(n *sitter.Node) bool { return astutil.HasToken(n, "async") }

func isGenerator(n *sitter.Node) bool {
	switch n.Type() {
	case "generator_function", "generator_function_declaration":
		return true

	default:
		return astutil.HasToken(n, "*")
	}
}

// contextualSignature returns the signature expected for a function expression, or nil.
func (h *Host) contextualSignature(fn *sitter.Node) *typesys.Signature {
	contextual := h.ContextualType(fn)
	if contextual == nil {
		return nil
	}

	sigs := contextual.CallSignatures()
	if len(sigs) != 1 {
		return nil
	}

	return sigs[0]
}

func (h *Host) contextualParameterAt(fn *sitter.Node, i int) *typesys.Type {
	sig := h.contextualSignature(fn)
	if sig == nil {
		return typesys.AnyType
	}

	if t, ok := sig.ParamType(i); ok {
		return t
	}

	return typesys.AnyType
}

// enclosingFunction returns the innermost function containing n, or nil.
func (h *Host) enclosingFunction(n *sitter.Node) *sitter.Node {
	for p := h.parent(n); p != nil; p = h.parent(p) {
		if functionNodes[p.Type()] {
			return p
		}
	}

	return nil
}

// returnContext returns the type expected for values returned from fn, or nil.
func (h *Host) returnContext(fn *sitter.Node) *typesys.Type {
	if fn == nil || isAsync(fn) || isGenerator(fn) {
		return nil
	}

	if rt := astutil.Field(fn, "return_type"); rt != nil {
		return h.annotationType(rt, nil)
	}

	if sig := h.contextualSignature(fn); sig != nil {
		return sig.ResultType()
	}

	return nil
}
