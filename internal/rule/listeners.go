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

package rule

import (
	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/mutguard/internal/astutil"
	"fillmore-labs.com/mutguard/internal/mutability"
	"fillmore-labs.com/mutguard/internal/typesys"
)

// Listeners returns visitors reporting every construct that assigns unsafely under policy.
func Listeners(ctx Context, policy mutability.Policy) Visitors {
	return newDispatcher(ctx, policy, false).visitors()
}

// Walk visits root and its descendants in source order, calling the matching visitors.
func Walk(root *sitter.Node, visitors ...Visitors) {
	for n := range astutil.Preorder(root) {
		kind := n.Type()

		for _, v := range visitors {
			if f, ok := v[kind]; ok {
				f(n)
			}
		}
	}
}

type dispatcher struct {
	ctx       Context
	host      Host
	engine    *mutability.Engine
	skipFresh bool
}

func newDispatcher(ctx Context, policy mutability.Policy, skipFresh bool) *dispatcher {
	host := ctx.Host()

	return &dispatcher{
		ctx:       ctx,
		host:      host,
		engine:    mutability.New(host, policy),
		skipFresh: skipFresh,
	}
}

func (d *dispatcher) visitors() Visitors {
	return Visitors{
		"variable_declarator":   d.variableDeclarator,
		"assignment_expression": d.assignment,
		"call_expression":       d.call,
		"new_expression":        d.call,
		"return_statement":      d.returnStatement,
		"arrow_function":        d.arrowFunction,
		"as_expression":         d.asExpression,
		"type_assertion":        d.typeAssertion,
	}
}

// check reports site when assigning src to a location of type dest is unsafe.
func (d *dispatcher) check(site *sitter.Node, dest *typesys.Type, src *sitter.Node, kind MessageKind) {
	if dest == nil || src == nil {
		return
	}

	if expr := unparen(src); isConstAssertion(expr, d.ctx.Source()) || (d.skipFresh && isFreshLiteral(expr)) {
		return
	}

	if d.engine.IsUnsafe(dest, d.host.TypeAtLocation(src)) {
		d.ctx.Report(site, kind)
	}
}

func (d *dispatcher) variableDeclarator(n *sitter.Node) {
	annotation, value := astutil.Field(n, "type"), astutil.Field(n, "value")
	if annotation == nil || value == nil {
		return // nothing to check the initializer against
	}

	d.check(n, d.annotated(annotation), value, VariableDeclaration)
}

func (d *dispatcher) assignment(n *sitter.Node) {
	left, right := astutil.Field(n, "left"), astutil.Field(n, "right")
	if left == nil || right == nil {
		return
	}

	d.check(n, d.host.TypeAtLocation(left), right, AssignmentExpression)
}

func (d *dispatcher) call(n *sitter.Node) {
	args := astutil.Field(n, "arguments")
	if args == nil || args.Type() != "arguments" {
		return // tagged templates
	}

	for arg := range astutil.NamedChildren(args) {
		if arg.Type() == "spread_element" {
			continue
		}

		d.check(arg, d.host.ContextualType(arg), arg, CallExpression)
	}
}

func (d *dispatcher) returnStatement(n *sitter.Node) {
	value := astutil.FirstNamedChild(n)
	if value == nil {
		return
	}

	d.check(n, d.host.ContextualType(value), value, ArrowFunctionExpression)
}

func (d *dispatcher) arrowFunction(n *sitter.Node) {
	annotation, body := astutil.Field(n, "return_type"), astutil.Field(n, "body")
	if annotation == nil || body == nil || body.Type() == "statement_block" {
		return // block bodies are checked at their return statements
	}

	d.check(n, d.annotated(annotation), body, ArrowFunctionExpression)
}

func (d *dispatcher) asExpression(n *sitter.Node) {
	if isConstAssertion(n, d.ctx.Source()) {
		return
	}

	var expr, typ *sitter.Node
	for c := range astutil.NamedChildren(n) {
		if expr == nil {
			expr = c
		} else {
			typ = c
		}
	}

	if typ == nil {
		return
	}

	d.check(n, d.host.TypeAtLocation(typ), expr, TSAsExpression)
}

func (d *dispatcher) typeAssertion(n *sitter.Node) {
	if isConstAssertion(n, d.ctx.Source()) {
		return
	}

	var args, expr *sitter.Node
	for c := range astutil.NamedChildren(n) {
		if c.Type() == "type_arguments" {
			args = c
		} else {
			expr = c
		}
	}

	if args == nil {
		return
	}

	d.check(n, d.host.TypeAtLocation(astutil.FirstNamedChild(args)), expr, TSTypeAssertion)
}

// annotated returns the type of a type annotation, or nil for type predicates.
func (d *dispatcher) annotated(annotation *sitter.Node) *typesys.Type {
	if annotation.Type() != "type_annotation" {
		return nil
	}

	typ := astutil.FirstNamedChild(annotation)
	if typ == nil {
		return nil
	}

	return d.host.TypeAtLocation(typ)
}
