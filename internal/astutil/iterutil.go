// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package astutil

import (
	"iter"

	sitter "github.com/smacker/go-tree-sitter"
)

// Children yields all children of n, named and anonymous.
func Children(n *sitter.Node) iter.Seq[*sitter.Node] {
	return func(yield func(*sitter.Node) bool) {
		for i := range int(n.ChildCount()) {
			c := n.Child(i)
			if c == nil || c.IsNull() {
				continue
			}

			if !yield(c) {
				return
			}
		}
	}
}

// NamedChildrenWithComments yields all named children of n.
func NamedChildrenWithComments(n *sitter.Node) iter.Seq[*sitter.Node] {
	return func(yield func(*sitter.Node) bool) {
		for i := range int(n.NamedChildCount()) {
			c := n.NamedChild(i)
			if c == nil || c.IsNull() {
				continue
			}

			if !yield(c) {
				return
			}
		}
	}
}

// NamedChildren yields the named children of n, skipping comments.
func NamedChildren(n *sitter.Node) iter.Seq[*sitter.Node] {
	return func(yield func(*sitter.Node) bool) {
		for c := range NamedChildrenWithComments(n) {
			if c.Type() == "comment" {
				continue
			}

			if !yield(c) {
				return
			}
		}
	}
}

// FirstNamedChild returns the first named child of n that is not a comment, or nil.
func FirstNamedChild(n *sitter.Node) *sitter.Node {
	for c := range NamedChildren(n) {
		return c
	}

	return nil
}

// Preorder yields n and all its descendants in depth-first order.
func Preorder(n *sitter.Node) iter.Seq[*sitter.Node] {
	return func(yield func(*sitter.Node) bool) {
		preorder(n, yield)
	}
}

func preorder(n *sitter.Node, yield func(*sitter.Node) bool) bool {
	if !yield(n) {
		return false
	}

	for c := range NamedChildrenWithComments(n) {
		if !preorder(c, yield) {
			return false
		}
	}

	return true
}

// Field returns the child of n with the given field name, or nil.
func Field(n *sitter.Node, name string) *sitter.Node {
	if n == nil {
		return nil
	}

	c := n.ChildByFieldName(name)
	if c == nil || c.IsNull() {
		return nil
	}

	return c
}

// HasToken reports whether n has an anonymous child with the given text.
func HasToken(n *sitter.Node, token string) bool {
	for c := range Children(n) {
		if !c.IsNamed() && c.Type() == token {
			return true
		}
	}

	return false
}
