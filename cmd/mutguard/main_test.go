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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fillmore-labs.com/mutguard/internal/report"
)

const unsafe = `type RO = { readonly a: number };
type M = { a: number };
declare const ro: RO;
const m: M = ro;
`

func writeFile(t *testing.T, path, content string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func runCommand(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()

	var out, errOut strings.Builder
	code = execute(t.Context(), args, &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestExecute(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := writeFile(t, filepath.Join(dir, "src", "a.ts"), unsafe)
	writeFile(t, filepath.Join(dir, "src", "ok.ts"), "const n: number = 1;\n")
	config := writeFile(t, filepath.Join(dir, "empty.toml"), "")

	code, stdout, _ := runCommand(t, "--config", config, "--no-cache", "--format", "json", dir)
	assert.Equal(t, exitDiagnostics, code)

	diagnostics, err := report.ReadJSON(strings.NewReader(stdout))
	require.NoError(t, err)
	require.Len(t, diagnostics, 1)
	assert.Equal(t, file, diagnostics[0].File)
	assert.Equal(t, 4, diagnostics[0].Line)
	assert.Equal(t, "no-unsafe-readonly-mutable-assignment", diagnostics[0].Rule)
}

func TestExecuteText(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := writeFile(t, filepath.Join(dir, "a.ts"), unsafe)
	config := writeFile(t, filepath.Join(dir, "empty.toml"), "")

	code, stdout, _ := runCommand(t, "--config", config, "--cache-dir", filepath.Join(dir, "cache"), "--color", "never", file)
	assert.Equal(t, exitDiagnostics, code)
	assert.Contains(t, stdout, file+":4:7:")
	assert.Contains(t, stdout, "Unsafe readonly to mutable assignment in variable declaration.")

	_, err := os.Stat(filepath.Join(dir, "cache"))
	assert.NoError(t, err, "Expected cache directory")
}

func TestExecuteConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := writeFile(t, filepath.Join(dir, "a.ts"), unsafe)
	config := writeFile(t, filepath.Join(dir, ".mutguard.toml"), "readonly-to-mutable = false\ncache = false\n")

	code, stdout, _ := runCommand(t, "--config", config, file)
	assert.Equal(t, exitOK, code)
	assert.Empty(t, stdout)

	code, _, _ = runCommand(t, "--config", config, "--readonly-to-mutable", file)
	assert.Equal(t, exitDiagnostics, code, "Expected flag to override configuration")
}

func TestExecuteErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := writeFile(t, filepath.Join(dir, "a.ts"), unsafe)
	config := writeFile(t, filepath.Join(dir, "empty.toml"), "")
	invalid := writeFile(t, filepath.Join(dir, "invalid.toml"), "shadow = true\n")

	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"missing file", []string{"--config", config, "--no-cache", filepath.Join(dir, "missing.ts")}},
		{"unknown format", []string{"--config", config, "--format", "xml", file}},
		{"unknown color", []string{"--config", config, "--color", "sometimes", file}},
		{"invalid config", []string{"--config", invalid, file}},
		{"unknown flag", []string{"--shadow", file}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			code, _, stderr := runCommand(t, tt.args...)
			assert.Equal(t, exitError, code)
			assert.Contains(t, stderr, "mutguard: ")
		})
	}
}

func TestRules(t *testing.T) {
	t.Parallel()

	code, stdout, _ := runCommand(t, "rules")
	require.Equal(t, exitOK, code)

	for _, name := range []string{
		"no-unsafe-readonly-mutable-assignment",
		"no-unsafe-mutable-readonly-assignment",
		"no-unsafe-optional-property-assignment",
		"--optional-property",
	} {
		assert.Contains(t, stdout, name)
	}
}

func TestCache(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "cache")

	code, stdout, _ := runCommand(t, "cache", "dir", "--cache-dir", dir)
	require.Equal(t, exitOK, code)
	assert.Equal(t, dir+"\n", stdout)

	code, stdout, _ = runCommand(t, "cache", "clean", "--cache-dir", dir)
	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "Cleaned "+dir)
}
