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

package testsource_test

import (
	"testing"

	. "fillmore-labs.com/mutguard/internal/testsource"
)

func TestExpectations(t *testing.T) {
	t.Parallel()

	src := []byte("let a = 1;\nconst b: M = ro; // want \"readonly to mutable\" `in variable declaration`\nlet c = 2;\n")

	want, err := Expectations(src)
	if err != nil {
		t.Fatalf("Expectations failed: %v", err)
	}

	if len(want) != 1 || len(want[2]) != 2 {
		t.Fatalf("Got expectations %v, want two on line 2", want)
	}

	if got := want[2][1].String(); got != "in variable declaration" {
		t.Errorf("Got pattern %q", got)
	}
}

func TestInvalidExpectations(t *testing.T) {
	t.Parallel()

	for _, src := range []string{
		"x; // want unquoted\n",
		"x; // want \"(\"\n",
	} {
		if _, err := Expectations([]byte(src)); err == nil {
			t.Errorf("Expected error for %q", src)
		}
	}
}
