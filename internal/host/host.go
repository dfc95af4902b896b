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

// Host derives types for the nodes of one file. It is not safe for concurrent use.
type Host struct {
	*typesys.Checker

	file    *File
	parents map[astutil.NodeKey]*sitter.Node
	scopes  map[astutil.NodeKey]*scope

	types      map[astutil.NodeKey]*typesys.Type
	exprs      map[astutil.NodeKey]*typesys.Type
	contextual map[astutil.NodeKey]*typesys.Type
	signatures map[astutil.NodeKey]*signatureEntry

	depth int // generic instantiations in progress
	count int // generic instantiations created
}

type signatureEntry struct {
	sig       *typesys.Signature
	resolving bool
}

// New indexes the declarations of f and returns a [Host] for it.
func New(f *File) *Host {
	h := &Host{
		Checker:    typesys.NewChecker(),
		file:       f,
		parents:    make(map[astutil.NodeKey]*sitter.Node),
		scopes:     make(map[astutil.NodeKey]*scope),
		types:      make(map[astutil.NodeKey]*typesys.Type),
		exprs:      make(map[astutil.NodeKey]*typesys.Type),
		contextual: make(map[astutil.NodeKey]*typesys.Type),
		signatures: make(map[astutil.NodeKey]*signatureEntry),
	}

	h.index(f.root, nil, nil)

	return h
}

// File returns the file of h.
func (h *Host) File() *File { return h.file }

// TypeAtLocation returns the type of a type node, a declared name or an expression.
func (h *Host) TypeAtLocation(n *sitter.Node) *typesys.Type {
	if n == nil {
		return nil
	}

	if isTypeNode(n.Type()) {
		return h.typeOf(n, nil)
	}

	if b := h.declaredBy(n); b != nil {
		return h.bindingType(b)
	}

	return h.exprType(n)
}

// declaredBy returns the binding declared by the name n, or nil.
func (h *Host) declaredBy(n *sitter.Node) *binding {
	if n.Type() != "identifier" {
		return nil
	}

	parent := h.parent(n)
	if parent == nil {
		return nil
	}

	switch parent.Type() {
	case "variable_declarator", "required_parameter", "optional_parameter", "rest_pattern", "arrow_function":
		b := h.lookupValue(n, n.Content(h.file.src))
		if b != nil && b.declares(n) {
			return b
		}
	}

	return nil
}

func (h *Host) parent(n *sitter.Node) *sitter.Node {
	return h.parents[astutil.KeyOf(n)]
}

func (h *Host) text(n *sitter.Node) string {
	return n.Content(h.file.src)
}

func sameNode(a, b *sitter.Node) bool {
	return a != nil && b != nil && astutil.KeyOf(a) == astutil.KeyOf(b)
}
