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
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{
		"a.ts",
		"b.d.ts",
		"readme.md",
		filepath.Join("node_modules", "lib", "x.ts"),
		filepath.Join(".git", "y.ts"),
		filepath.Join("sub", "c.tsx"),
		filepath.Join("sub", "d.mts"),
		filepath.Join("sub", "e.d.mts"),
	} {
		writeFile(t, filepath.Join(dir, name), "")
	}

	explicit := filepath.Join(dir, "readme.md")

	got, err := collectFiles([]string{dir, explicit, filepath.Join(dir, "a.ts")})
	require.NoError(t, err)

	want := []string{
		filepath.Join(dir, "a.ts"),
		explicit,
		filepath.Join(dir, "sub", "c.tsx"),
		filepath.Join(dir, "sub", "d.mts"),
	}
	assert.Equal(t, want, got)
}

func TestCollectFilesMissing(t *testing.T) {
	t.Parallel()

	_, err := collectFiles([]string{filepath.Join(t.TempDir(), "missing")})
	assert.Error(t, err)
}

func TestColorMode(t *testing.T) {
	t.Parallel()

	var m colorMode
	assert.Equal(t, "auto", m.String())

	require.NoError(t, m.Set("always"))
	assert.True(t, m.enabled(new(bytes.Buffer)))

	require.NoError(t, m.Set("off"))
	assert.False(t, m.enabled(new(bytes.Buffer)))

	require.NoError(t, m.Set("auto"))
	assert.False(t, m.enabled(new(bytes.Buffer)), "Expected no color for non-terminal output")

	assert.ErrorIs(t, m.Set("sometimes"), errColorMode)
}
