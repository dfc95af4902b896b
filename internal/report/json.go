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
	"io"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

type document struct {
	Diagnostics []Diagnostic `json:"diagnostics"`
	Count       int          `json:"count"`
}

// JSON writes diagnostics as an indented JSON document.
func JSON(w io.Writer, diagnostics []Diagnostic) error {
	if diagnostics == nil {
		diagnostics = []Diagnostic{}
	}

	doc := document{Diagnostics: diagnostics, Count: len(diagnostics)}

	if err := json.MarshalWrite(w, doc, jsontext.WithIndent("  ")); err != nil {
		return err
	}

	_, err := io.WriteString(w, "\n")

	return err
}

// ReadJSON decodes a document written by [JSON].
func ReadJSON(r io.Reader) ([]Diagnostic, error) {
	var doc document
	if err := json.UnmarshalRead(r, &doc); err != nil {
		return nil, err
	}

	return doc.Diagnostics, nil
}
