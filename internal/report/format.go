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
	"errors"
	"fmt"
	"io"
	"strings"
)

// Format selects the output format.
type Format uint8

//go:generate go tool stringer -type Format -linecomment
const (
	// FormatText renders diagnostics for humans, with source excerpts.
	FormatText Format = iota // text

	// FormatJSON renders diagnostics as a JSON document.
	FormatJSON // json
)

// ErrUnknownFormat is returned for unsupported format names.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat returns the [Format] with the given name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case FormatText.String():
		return FormatText, nil

	case FormatJSON.String():
		return FormatJSON, nil

	default:
		return 0, fmt.Errorf("%w: %q (use text or json)", ErrUnknownFormat, name)
	}
}

// Set implements [flag.Value].
func (f *Format) Set(name string) error {
	format, err := ParseFormat(name)
	if err != nil {
		return err
	}

	*f = format

	return nil
}

// Type returns the flag type name shown in help texts.
func (*Format) Type() string { return "format" }

// Options control rendering.
type Options struct {
	// Color enables ANSI colors in text output.
	Color bool

	// Sources maps file names to their content for source excerpts.
	Sources map[string][]byte
}

// Write renders diagnostics to w in the given format.
func Write(w io.Writer, format Format, diagnostics []Diagnostic, opts Options) error {
	switch format {
	case FormatText:
		return Text(w, diagnostics, opts)

	case FormatJSON:
		return JSON(w, diagnostics)

	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
}
