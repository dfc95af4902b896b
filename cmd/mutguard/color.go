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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/term"
)

type colorMode uint8

const (
	colorAuto colorMode = iota
	colorAlways
	colorNever
)

var errColorMode = errors.New("invalid color mode")

// Set implements [pflag.Value].
func (m *colorMode) Set(s string) error {
	switch strings.ToLower(s) {
	case "auto":
		*m = colorAuto

	case "always", "on":
		*m = colorAlways

	case "never", "off":
		*m = colorNever

	default:
		return fmt.Errorf("%w: %q (use auto, always or never)", errColorMode, s)
	}

	return nil
}

// String implements [pflag.Value].
func (m colorMode) String() string {
	switch m {
	case colorAlways:
		return "always"

	case colorNever:
		return "never"

	default:
		return "auto"
	}
}

// Type implements [pflag.Value].
func (*colorMode) Type() string { return "when" }

// enabled decides whether output to w is colorized.
func (m colorMode) enabled(w io.Writer) bool {
	switch m {
	case colorAlways:
		return true

	case colorNever:
		return false
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	fd, err := safecast.Conv[int](f.Fd())

	return err == nil && term.IsTerminal(fd)
}
