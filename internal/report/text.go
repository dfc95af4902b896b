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

package report

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

type palette struct {
	location, rule, caret *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		location: color.New(color.Bold),
		rule:     color.New(color.FgYellow),
		caret:    color.New(color.FgRed, color.Bold),
	}

	for _, c := range [...]*color.Color{p.location, p.rule, p.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// Text writes diagnostics in the conventional file:line:column format, followed by the
// offending source line and a caret underline when the source is available.
func Text(w io.Writer, diagnostics []Diagnostic, opts Options) error {
	bw := bufio.NewWriter(w)
	p := newPalette(opts.Color)

	for _, d := range diagnostics {
		p.location.Fprintf(bw, "%s:%d:%d:", d.File, d.Line, d.Column)
		fmt.Fprintf(bw, " %s ", d.Message)
		p.rule.Fprintf(bw, "(%s)", d.Rule)
		bw.WriteByte('\n')

		line, ok := sourceLine(opts.Sources[d.File], d.Line)
		if !ok {
			continue
		}

		bw.WriteString("    ")
		bw.WriteString(line)
		bw.WriteByte('\n')

		bw.WriteString("    ")
		bw.WriteString(indent(line, d.Column))
		p.caret.Fprint(bw, strings.Repeat("^", underline(line, d)))
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// sourceLine returns the 1-based line of src, without line terminator.
func sourceLine(src []byte, line int) (string, bool) {
	if src == nil || line < 1 {
		return "", false
	}

	for i := 1; len(src) > 0; i++ {
		l, rest, _ := bytes.Cut(src, []byte{'\n'})
		if i == line {
			return string(bytes.TrimRight(l, "\r")), true
		}

		src = rest
	}

	return "", false
}

// indent returns whitespace spanning the display width of line up to the byte column,
// keeping tabs so the caret lines up.
func indent(line string, column int) string {
	prefix := line[:min(max(column-1, 0), len(line))]

	var b strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			b.WriteByte('\t')

			continue
		}

		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}

	return b.String()
}

// underline returns the display width of the diagnostic range on its first line, at least 1.
func underline(line string, d Diagnostic) int {
	start := min(max(d.Column-1, 0), len(line))

	end := len(line)
	if d.EndLine == d.Line {
		end = min(max(d.EndColumn-1, start), len(line))
	}

	return max(runewidth.StringWidth(line[start:end]), 1)
}
