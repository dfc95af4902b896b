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
)

// isConstAssertion reports whether n is `expr as const` or `<const>expr`.
func isConstAssertion(n *sitter.Node, src []byte) bool {
	switch n.Type() {
	case "as_expression":
		if astutil.HasToken(n, "const") {
			return true
		}

		count := int(n.NamedChildCount())
		if count < 2 {
			return false
		}

		last := n.NamedChild(count - 1)

		return last != nil && isConstKeyword(last, src)

	case "type_assertion":
		for c := range astutil.NamedChildren(n) {
			if c.Type() == "type_arguments" {
				arg := astutil.FirstNamedChild(c)

				return arg != nil && isConstKeyword(arg, src)
			}
		}
	}

	return false
}

func isConstKeyword(n *sitter.Node, src []byte) bool {
	switch n.Type() {
	case "const", "type_identifier", "predefined_type":
		return n.Content(src) == "const"

	default:
		return false
	}
}

// isFreshLiteral reports whether n creates a new object or array.
func isFreshLiteral(n *sitter.Node) bool {
	switch n.Type() {
	case "object", "array":
		return true

	default:
		return false
	}
}

// unparen strips parentheses and non-null assertions.
func unparen(n *sitter.Node) *sitter.Node {
	for n.Type() == "parenthesized_expression" || n.Type() == "non_null_expression" {
		inner := astutil.FirstNamedChild(n)
		if inner == nil {
			break
		}

		n = inner
	}

	return n
}
