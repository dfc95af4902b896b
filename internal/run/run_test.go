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

package run_test

import (
	"os"
	"path/filepath"
	"testing"

	"fillmore-labs.com/mutguard/internal/cache"
	"fillmore-labs.com/mutguard/internal/config"
	"fillmore-labs.com/mutguard/internal/report"
	. "fillmore-labs.com/mutguard/internal/run"
)

const unsafe = `type RO = { readonly a: number };
type M = { a: number };
declare const ro: RO;
const m: M = ro;
const n: M = ro; // nolint:mutguard
`

func write(t *testing.T, dir, name, content string) string {
	t.Helper()

	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("Can't write %s: %v", name, err)
	}

	return p
}

func TestCheck(t *testing.T) {
	t.Parallel()

	o := DefaultOptions()

	diagnostics, err := o.Check(t.Context(), "a.ts", []byte(unsafe))
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	if len(diagnostics) != 1 {
		t.Fatalf("Got %d diagnostics %v, want 1", len(diagnostics), diagnostics)
	}

	want := report.Diagnostic{
		File: "a.ts", Line: 4, Column: 7, EndLine: 4, EndColumn: 16,
		Rule: "no-unsafe-readonly-mutable-assignment", Kind: "VariableDeclaration",
		Message: "Unsafe readonly to mutable assignment in variable declaration.",
	}

	if got := diagnostics[0]; got != want {
		t.Errorf("Got diagnostic %+v, want %+v", got, want)
	}
}

func TestCheckSkips(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		behavior config.Behavior
		rules    config.Rules
		want     int
	}{
		{"generated", "// Code generated by hand. DO NOT EDIT.\n" + unsafe, config.DefaultBehavior(), config.DefaultRules(), 0},
		{"generated included", "// @generated\n" + unsafe, config.NewBitMask(config.IncludeGenerated), config.DefaultRules(), 1},
		{"file nolint", "// nolint:all\n" + unsafe, config.DefaultBehavior(), config.DefaultRules(), 0},
		{"other linter", "// nolint:other\n" + unsafe, config.DefaultBehavior(), config.DefaultRules(), 1},
		{"rule disabled", unsafe, config.DefaultBehavior(), config.NewBitMask(config.MutableToReadonly), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			o := DefaultOptions()
			o.Behavior, o.Rules = tt.behavior, tt.rules

			diagnostics, err := o.Check(t.Context(), "a.ts", []byte(tt.src))
			if err != nil {
				t.Fatalf("Check failed: %v", err)
			}

			if got := len(diagnostics); got != tt.want {
				t.Errorf("Got %d diagnostics %v, want %d", got, diagnostics, tt.want)
			}
		})
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := []string{
		write(t, dir, "a.ts", unsafe),
		write(t, dir, "b.ts", "const ok: number = 1;\n"),
		write(t, dir, "big.ts", unsafe+unsafe),
	}

	c, err := cache.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Can't open cache: %v", err)
	}

	o := DefaultOptions()
	o.Jobs, o.Cache, o.MaxFileSize = 2, c, len(unsafe)+1

	first, err := o.Run(t.Context(), files)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if first.Checked != 2 || first.Cached != 0 || first.Skipped != 1 {
		t.Errorf("Got %d checked, %d cached, %d skipped, want 2, 0, 1", first.Checked, first.Cached, first.Skipped)
	}

	if len(first.Diagnostics) != 1 || first.Diagnostics[0].File != files[0] {
		t.Errorf("Got diagnostics %v, want one in %s", first.Diagnostics, files[0])
	}

	if _, ok := first.Sources[files[1]]; !ok {
		t.Errorf("Expected source of %s", files[1])
	}

	second, err := o.Run(t.Context(), files)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if second.Checked != 0 || second.Cached != 2 {
		t.Errorf("Got %d checked, %d cached, want 0, 2", second.Checked, second.Cached)
	}

	if len(second.Diagnostics) != len(first.Diagnostics) || second.Diagnostics[0] != first.Diagnostics[0] {
		t.Errorf("Cached diagnostics %v differ from %v", second.Diagnostics, first.Diagnostics)
	}

	o.MaxFileSize = 10

	third, err := o.Run(t.Context(), files)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if third.Cached != 0 || third.Skipped != 3 {
		t.Errorf("Got %d cached, %d skipped after lowering the size limit, want 0, 3", third.Cached, third.Skipped)
	}
}

func TestFingerprint(t *testing.T) {
	t.Parallel()

	base := DefaultOptions()

	rules := DefaultOptions()
	rules.Rules.Disable(config.OptionalProperty)

	size := DefaultOptions()
	size.MaxFileSize = 1024

	jobs := DefaultOptions()
	jobs.Jobs = 1

	if base.Fingerprint() == rules.Fingerprint() {
		t.Error("Expected rules to change the fingerprint")
	}

	if base.Fingerprint() == size.Fingerprint() {
		t.Error("Expected the size limit to change the fingerprint")
	}

	if base.Fingerprint() != jobs.Fingerprint() {
		t.Error("Expected parallelism not to change the fingerprint")
	}
}

func TestRunMissingFile(t *testing.T) {
	t.Parallel()

	o := DefaultOptions()
	if _, err := o.Run(t.Context(), []string{filepath.Join(t.TempDir(), "missing.ts")}); err == nil {
		t.Error("Expected error for missing file")
	}
}
