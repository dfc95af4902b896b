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

	"fillmore-labs.com/mutguard/internal/mutability"
	"fillmore-labs.com/mutguard/internal/typesys"
)

// Host is the type-checking front-end the rules query.
type Host interface {
	mutability.Checker

	// TypeAtLocation returns the type of an expression, declaration name or type node.
	TypeAtLocation(n *sitter.Node) *typesys.Type

	// ContextualType returns the type expected at an expression position, or nil when unknown.
	ContextualType(n *sitter.Node) *typesys.Type
}

// Context is the environment of a rule for one file.
type Context interface {
	Host() Host
	Source() []byte
	Report(n *sitter.Node, kind MessageKind)
}

// Visitors maps node types to callbacks.
type Visitors map[string]func(n *sitter.Node)
