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

// MessageKind identifies the construct performing an unsafe assignment.
type MessageKind uint8

//go:generate go tool stringer -type MessageKind
const (
	// VariableDeclaration is an annotated variable declaration with initializer.
	VariableDeclaration MessageKind = iota

	// AssignmentExpression is a plain assignment.
	AssignmentExpression

	// CallExpression is an argument bound to a parameter.
	CallExpression

	// ArrowFunctionExpression is a returned value, from a return statement or an expression body.
	ArrowFunctionExpression

	// TSAsExpression is an `expr as T` assertion.
	TSAsExpression

	// TSTypeAssertion is a `<T>expr` assertion.
	TSTypeAssertion
)

var sites = [...]string{
	VariableDeclaration:     "variable declaration",
	AssignmentExpression:    "assignment",
	CallExpression:          "call argument",
	ArrowFunctionExpression: "return value",
	TSAsExpression:          "type assertion",
	TSTypeAssertion:         "type assertion",
}

// Site returns a short description of the construct.
func (i MessageKind) Site() string {
	if int(i) >= len(sites) {
		return i.String()
	}

	return sites[i]
}
