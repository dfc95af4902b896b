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

// Package testsource checks TypeScript sources annotated with expected diagnostics.
//
// Sources are kept in txtar archives. A line comment of the form
//
//	// want "regexp" "regexp"
//
// expects one diagnostic per pattern on the same line, each with a message
// matching the pattern. Patterns are Go string literals, quoted or raw.
package testsource

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"fillmore-labs.com/mutguard/internal/host"
	"fillmore-labs.com/mutguard/internal/report"
)

// Checker produces the diagnostics of a source file.
type Checker interface {
	Check(ctx context.Context, name string, src []byte) ([]report.Diagnostic, error)
}

// Run checks all TypeScript files of the txtar archive at path.
func Run(t *testing.T, c Checker, path string) {
	t.Helper()

	archive, err := txtar.ParseFile(path)
	if err != nil {
		t.Fatalf("Can't read archive: %v", err)
	}

	for _, f := range archive.Files {
		if !host.Supported(f.Name) {
			continue
		}

		t.Run(f.Name, func(t *testing.T) {
			t.Parallel()

			Check(t, c, f.Name, f.Data)
		})
	}
}

// Check compares the diagnostics of one file to its expectations.
func Check(tb testing.TB, c Checker, name string, src []byte) {
	tb.Helper()

	want, err := Expectations(src)
	if err != nil {
		tb.Fatalf("%s: %v", name, err)
	}

	diagnostics, err := c.Check(context.Background(), name, src)
	if err != nil {
		tb.Fatalf("%s: Check failed: %v", name, err)
	}

	for _, d := range diagnostics {
		patterns := want[d.Line]

		i := slices.IndexFunc(patterns, func(re *regexp.Regexp) bool { return re.MatchString(d.Message) })
		if i < 0 {
			tb.Errorf("%s:%d:%d: unexpected diagnostic: %s (%s)", name, d.Line, d.Column, d.Message, d.Rule)

			continue
		}

		want[d.Line] = slices.Delete(patterns, i, i+1)
	}

	for line, patterns := range want {
		for _, re := range patterns {
			tb.Errorf("%s:%d: no diagnostic was reported matching %q", name, line, re)
		}
	}
}

const wantMarker = "// want "

// Expectations returns the expected message patterns by 1-based line.
func Expectations(src []byte) (map[int][]*regexp.Regexp, error) {
	want := make(map[int][]*regexp.Regexp)

	line := 0
	for l := range bytes.Lines(src) {
		line++

		_, rest, ok := strings.Cut(string(l), wantMarker)
		if !ok {
			continue
		}

		patterns, err := parsePatterns(rest)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		want[line] = append(want[line], patterns...)
	}

	return want, nil
}

func parsePatterns(s string) ([]*regexp.Regexp, error) {
	var patterns []*regexp.Regexp

	for s = strings.TrimSpace(s); s != ""; s = strings.TrimSpace(s) {
		lit, err := strconv.QuotedPrefix(s)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", s, err)
		}

		s = s[len(lit):]

		text, err := strconv.Unquote(lit)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", lit, err)
		}

		re, err := regexp.Compile(text)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", lit, err)
		}

		patterns = append(patterns, re)
	}

	return patterns, nil
}
