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

package run

import (
	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/mutguard/internal/astutil"
	"fillmore-labs.com/mutguard/internal/host"
	"fillmore-labs.com/mutguard/internal/report"
	"fillmore-labs.com/mutguard/internal/rule"
)

// fileChecker collects the diagnostics of one file.
type fileChecker struct {
	currentFile astutil.CurrentFile
	host        *host.Host
	diagnostics []report.Diagnostic
}

// dispatch walks the tree once for all rules.
func (c *fileChecker) dispatch(root *sitter.Node, rules []*rule.Rule) {
	defer func() {
		if r := recover(); r != nil {
			c.diagnostics = append(c.diagnostics, astutil.InternalError(c.currentFile, root, "%v", r))
		}
	}()

	visitors := make([]rule.Visitors, 0, len(rules))
	for _, r := range rules {
		visitors = append(visitors, r.Listeners(ruleContext{fileChecker: c, rule: r}))
	}

	rule.Walk(root, visitors...)
}

// ruleContext is the [rule.Context] of one rule in one file.
type ruleContext struct {
	*fileChecker
	rule *rule.Rule
}

func (c ruleContext) Host() rule.Host { return c.host }

func (c ruleContext) Source() []byte { return c.currentFile.Source() }

// Report records a diagnostic unless the line is suppressed.
func (c ruleContext) Report(n *sitter.Node, kind rule.MessageKind) {
	if c.currentFile.NoLintComment(n) {
		return
	}

	c.diagnostics = append(c.diagnostics, report.New(c.currentFile.Name(), n, c.rule.Name, kind.String(), c.rule.Message(kind)))
}
