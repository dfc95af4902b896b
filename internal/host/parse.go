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

package host

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

var (
	// ErrFileTooLarge is returned for files exceeding the size limit.
	ErrFileTooLarge = errors.New("file too large")

	// ErrInvalidContent is returned for files that are not valid UTF-8.
	ErrInvalidContent = errors.New("invalid file content")

	// ErrNoLanguage is returned for files that are not TypeScript.
	ErrNoLanguage = errors.New("unsupported file type")
)

// DefaultMaxFileSize is the default size limit for source files.
const DefaultMaxFileSize = 10 << 20

// Extensions lists the extensions of TypeScript source files.
var Extensions = [...]string{".ts", ".tsx", ".mts", ".cts"}

// Supported reports whether name is a TypeScript source file. Declaration files are excluded.
func Supported(name string) bool {
	base := strings.ToLower(filepath.Base(name))
	for _, ext := range [...]string{".d.ts", ".d.mts", ".d.cts"} {
		if strings.HasSuffix(base, ext) {
			return false
		}
	}

	_, err := language(base)

	return err == nil
}

func language(name string) (*sitter.Language, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".ts", ".mts", ".cts":
		return typescript.GetLanguage(), nil

	case ".tsx":
		return tsx.GetLanguage(), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrNoLanguage, name)
	}
}

// File is a parsed TypeScript source file.
type File struct {
	name string
	src  []byte
	tree *sitter.Tree
	root *sitter.Node
}

// Parse parses a TypeScript source file. maxSize limits the content length, zero means no limit.
func Parse(ctx context.Context, name string, src []byte, maxSize int) (*File, error) {
	if maxSize > 0 && len(src) > maxSize {
		return nil, fmt.Errorf("%w: %s has %d bytes, limit is %d", ErrFileTooLarge, name, len(src), maxSize)
	}

	if !utf8.Valid(src) {
		return nil, fmt.Errorf("%w: %s is not valid UTF-8", ErrInvalidContent, name)
	}

	lang, err := language(name)
	if err != nil {
		return nil, err
	}

	parser := sitter.NewParser()
	parser.SetLanguage(lang)

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}

	root := tree.RootNode()
	if root == nil || root.IsNull() {
		tree.Close()

		return nil, fmt.Errorf("%w: %s has no syntax tree", ErrInvalidContent, name)
	}

	return &File{name: name, src: src, tree: tree, root: root}, nil
}

// Name returns the file name.
func (f *File) Name() string { return f.name }

// Source returns the file content.
func (f *File) Source() []byte { return f.src }

// Root returns the root node of the syntax tree.
func (f *File) Root() *sitter.Node { return f.root }

// HasError reports whether the file contains syntax errors.
func (f *File) HasError() bool { return f.root.HasError() }

// Close releases the syntax tree.
func (f *File) Close() { f.tree.Close() }
