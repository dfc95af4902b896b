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

package report

import (
	"cmp"
	"slices"

	"fortio.org/safecast"
	sitter "github.com/smacker/go-tree-sitter"
)

// Diagnostic is a finding in a source file. Lines and columns are 1-based, columns count bytes.
type Diagnostic struct {
	File      string `json:"file"      msgpack:"file"`
	Line      int    `json:"line"      msgpack:"line"`
	Column    int    `json:"column"    msgpack:"column"`
	EndLine   int    `json:"endLine"   msgpack:"end_line"`
	EndColumn int    `json:"endColumn" msgpack:"end_column"`
	Rule      string `json:"rule"      msgpack:"rule"`
	Kind      string `json:"kind"      msgpack:"kind"`
	Message   string `json:"message"   msgpack:"message"`
}

// New creates a [Diagnostic] spanning n.
func New(file string, n *sitter.Node, rule, kind, message string) Diagnostic {
	start, end := n.StartPoint(), n.EndPoint()

	return Diagnostic{
		File:      file,
		Line:      safecast.MustConv[int](start.Row) + 1,
		Column:    safecast.MustConv[int](start.Column) + 1,
		EndLine:   safecast.MustConv[int](end.Row) + 1,
		EndColumn: safecast.MustConv[int](end.Column) + 1,
		Rule:      rule,
		Kind:      kind,
		Message:   message,
	}
}

// Compare orders diagnostics by position, then by rule.
func Compare(a, b Diagnostic) int {
	return cmp.Or(
		cmp.Compare(a.File, b.File),
		cmp.Compare(a.Line, b.Line),
		cmp.Compare(a.Column, b.Column),
		cmp.Compare(a.Rule, b.Rule),
		cmp.Compare(a.Message, b.Message),
	)
}

// Sort sorts diagnostics in place and removes exact duplicates.
func Sort(diagnostics []Diagnostic) []Diagnostic {
	slices.SortFunc(diagnostics, Compare)

	return slices.Compact(diagnostics)
}
