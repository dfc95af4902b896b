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

// Package cache stores diagnostics of unchanged files on disk.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"fillmore-labs.com/mutguard/internal/report"
)

// schemaVersion is incremented when the entry format changes.
const schemaVersion uint16 = 1

// ErrCacheSchema is returned for entries written by an incompatible version.
var ErrCacheSchema = errors.New("cache schema mismatch")

// Key identifies the diagnostics of one file under one configuration.
type Key [sha256.Size]byte

// NewKey derives the cache key from the file name, its content and a fingerprint
// of everything else influencing the result.
func NewKey(name string, content []byte, fingerprint string) Key {
	h := sha256.New()

	for _, part := range [...][]byte{[]byte(name), content, []byte(fingerprint)} {
		_, _ = fmt.Fprintf(h, "%d:", len(part))
		_, _ = h.Write(part)
	}

	var k Key
	h.Sum(k[:0])

	return k
}

// String returns the hex encoding of k.
func (k Key) String() string { return hex.EncodeToString(k[:]) }

// Cache is a directory of msgpack encoded entries. A nil *Cache is a valid, empty cache.
// It is safe for concurrent use.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

type entry struct {
	Schema      uint16              `msgpack:"schema"`
	Diagnostics []report.Diagnostic `msgpack:"diagnostics"`
}

// DefaultDir returns the per-user cache directory.
func DefaultDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("can't determine cache directory: %w", err)
	}

	return filepath.Join(base, "mutguard"), nil
}

// Open returns the cache in dir, creating the directory when needed.
// An empty dir selects [DefaultDir].
func Open(dir string) (*Cache, error) {
	if dir == "" {
		var err error
		if dir, err = DefaultDir(); err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("can't create cache directory: %w", err)
	}

	return &Cache{dir: dir}, nil
}

// Dir returns the cache directory.
func (c *Cache) Dir() string {
	if c == nil {
		return ""
	}

	return c.dir
}

func (c *Cache) pathFor(key Key) string {
	k := key.String()

	return filepath.Join(c.dir, k[:2], k+".mp")
}

// Get returns the diagnostics stored for key. It reports false on a miss.
func (c *Cache) Get(key Key) ([]report.Diagnostic, bool, error) {
	if c == nil {
		return nil, false, nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("can't read cache entry %s: %w", key, err)
	}

	var e entry
	if err := msgpack.Unmarshal(data, &e); err != nil {
		return nil, false, fmt.Errorf("can't decode cache entry %s: %w", key, err)
	}

	if e.Schema != schemaVersion {
		return nil, false, fmt.Errorf("%w: entry %s has version %d, want %d", ErrCacheSchema, key, e.Schema, schemaVersion)
	}

	return e.Diagnostics, true, nil
}

// Put stores diagnostics for key. The entry is replaced atomically.
func (c *Cache) Put(key Key, diagnostics []report.Diagnostic) (err error) {
	if c == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := msgpack.Marshal(&entry{Schema: schemaVersion, Diagnostics: diagnostics})
	if err != nil {
		return fmt.Errorf("can't encode cache entry %s: %w", key, err)
	}

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("can't create cache directory: %w", err)
	}

	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return fmt.Errorf("can't create cache entry: %w", err)
	}

	defer func() {
		if err != nil {
			_ = os.Remove(f.Name())
		}
	}()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()

		return fmt.Errorf("can't write cache entry: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("can't write cache entry: %w", err)
	}

	if err := os.Rename(f.Name(), p); err != nil {
		return fmt.Errorf("can't store cache entry: %w", err)
	}

	return nil
}

// Clear removes all entries.
func (c *Cache) Clear() error {
	if c == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return fmt.Errorf("can't list cache directory: %w", err)
	}

	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(c.dir, e.Name())); err != nil {
			return fmt.Errorf("can't clear cache: %w", err)
		}
	}

	return nil
}
