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

import sitter "github.com/smacker/go-tree-sitter"

// NodeKey identifies a node within one parse tree.
//
// Node handles returned by the parser are not guaranteed to be unique per node, so
// maps keyed by node use the byte range and the node type instead.
type NodeKey struct {
	Start, End uint32
	Kind       string
}

// KeyOf returns the [NodeKey] of n.
func KeyOf(n *sitter.Node) NodeKey {
	return NodeKey{Start: n.StartByte(), End: n.EndByte(), Kind: n.Type()}
}
