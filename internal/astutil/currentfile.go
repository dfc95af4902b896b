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
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// mutguard is the name of the linter.
const mutguard = "mutguard"

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	name      string
	src       []byte
	generated bool
	noLint    bool
	noLintRow map[uint32]struct{}
}

// NewCurrentFile creates a new [CurrentFile] from the file content and its parse tree.
func NewCurrentFile(name string, src []byte, root *sitter.Node) CurrentFile {
	if root == nil || root.IsNull() {
		return CurrentFile{}
	}

	c := CurrentFile{name: name, src: src, noLintRow: make(map[uint32]struct{})}

	header := true

	for n := range NamedChildrenWithComments(root) {
		if n.Type() != "comment" {
			header = false

			continue
		}

		if !header {
			continue
		}

		text := n.Content(src)
		if IsGeneratedComment(text) {
			c.generated = true
		}

		if CommentHasNoLint(text) {
			c.noLint = true
		}
	}

	for n := range Preorder(root) {
		if n.Type() == "comment" && CommentHasNoLint(n.Content(src)) {
			c.noLintRow[n.StartPoint().Row] = struct{}{}
		}
	}

	return c
}

// Valid returns true if the [CurrentFile] contains valid file information.
func (c CurrentFile) Valid() bool {
	return c.noLintRow != nil
}

// Name returns the file name.
func (c CurrentFile) Name() string {
	return c.name
}

// Source returns the file content.
func (c CurrentFile) Source() []byte {
	return c.src
}

// Generated returns true if the file is generated.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// NoLint reports whether the file header carries a nolint comment for this linter.
func (c CurrentFile) NoLint() bool {
	return c.noLint
}

// NoLintComment checks if there is a nolint comment on the line where n starts.
func (c CurrentFile) NoLintComment(n *sitter.Node) bool {
	_, ok := c.noLintRow[n.StartPoint().Row]

	return ok
}

var (
	nolintPattern    = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)
	generatedPattern = regexp.MustCompile(`(?m)^// Code generated .* DO NOT EDIT\.$|@generated\b`)
)

// CommentHasNoLint checks if a comment contains a nolint directive for this linter.
func CommentHasNoLint(comment string) bool {
	matches := nolintPattern.FindStringSubmatch(comment)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == mutguard || l == "all" {
			return true
		}
	}

	return false
}

// IsGeneratedComment reports whether a comment marks the file as generated.
func IsGeneratedComment(comment string) bool {
	return generatedPattern.MatchString(comment)
}
