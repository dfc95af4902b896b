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

package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/go-json-experiment/json"
	"github.com/golangci/plugin-module-register/register"
)

const (
	// FileName is the name of the configuration file searched by [Find].
	FileName = ".mutguard.toml"

	// PackageFile is the npm manifest; its "mutguard" key holds settings.
	PackageFile = "package.json"
)

// ErrUnknownSetting is returned for configuration keys that are not recognized.
var ErrUnknownSetting = errors.New("unknown setting")

// Decode converts generic configuration data, like a map decoded from TOML or JSON, into [Settings].
func Decode(raw any) (Settings, error) {
	if m, ok := raw.(map[string]any); ok {
		if unknown := unknownKeys(m); len(unknown) > 0 {
			return Settings{}, fmt.Errorf("%w: %s", ErrUnknownSetting, strings.Join(unknown, ", "))
		}
	}

	s, err := register.DecodeSettings[Settings](raw)
	if err != nil {
		return Settings{}, fmt.Errorf("invalid settings: %w", err)
	}

	return s, nil
}

// Load reads [Settings] from a TOML file, or from the "mutguard" key of a package.json.
func Load(path string) (Settings, error) {
	var (
		raw map[string]any
		err error
	)

	if filepath.Base(path) == PackageFile {
		raw, _, err = readPackage(path)
	} else {
		raw, err = readTOML(path)
	}

	if err != nil {
		return Settings{}, err
	}

	s, err := Decode(raw)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Find searches dir and its parents for a configuration file, preferring [FileName]
// over a [PackageFile] with settings. It returns the file path and true when one is found.
func Find(dir string) (string, bool, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false, err
	}

	for {
		path, ok, err := configIn(dir)
		if err != nil || ok {
			return path, ok, err
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}

		dir = parent
	}
}

// configIn returns the configuration file in dir, if any.
func configIn(dir string) (string, bool, error) {
	path := filepath.Join(dir, FileName)
	if ok, err := isFile(path); err != nil || ok {
		return path, ok, err
	}

	path = filepath.Join(dir, PackageFile)
	if ok, err := isFile(path); err != nil || !ok {
		return "", false, err
	}

	if _, ok, err := readPackage(path); err != nil || !ok {
		return "", false, err
	}

	return path, true, nil
}

func isFile(path string) (bool, error) {
	switch info, err := os.Stat(path); {
	case err == nil:
		return !info.IsDir(), nil

	case errors.Is(err, os.ErrNotExist):
		return false, nil

	default:
		return false, err
	}
}

func readTOML(path string) (map[string]any, error) {
	var raw map[string]any
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	return raw, nil
}

// readPackage returns the settings of a package.json and whether it has any.
func readPackage(path string) (map[string]any, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, err
	}

	var pkg struct {
		Settings map[string]any `json:"mutguard"`
	}

	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, false, fmt.Errorf("%s: failed to parse JSON: %w", path, err)
	}

	return pkg.Settings, pkg.Settings != nil, nil
}

// unknownKeys returns the sorted keys of raw that name no [Settings] field.
func unknownKeys(raw map[string]any) []string {
	known := settingKeys()

	var unknown []string

	for k := range raw {
		if !known[k] {
			unknown = append(unknown, k)
		}
	}

	slices.Sort(unknown)

	return unknown
}

var settingKeys = sync.OnceValue(func() map[string]bool {
	t := reflect.TypeFor[Settings]()
	keys := make(map[string]bool, t.NumField())

	for i := range t.NumField() {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		keys[name] = true
	}

	return keys
})
