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

import "fillmore-labs.com/mutguard/internal/typesys"

// builtin evaluates references to the standard library types the analysis models.
// Other library types are opaque.
func (h *Host) builtin(name string, args []*typesys.Type) (*typesys.Type, bool) {
	arg := func(i int) *typesys.Type {
		if i < len(args) {
			return args[i]
		}

		return typesys.AnyType
	}

	switch name {
	case "Array":
		return typesys.NewArray(arg(0), false), true

	case "ReadonlyArray":
		return typesys.NewArray(arg(0), true), true

	case "Readonly":
		return h.mapHomomorphic(arg(0), setReadonly(true), nil), true

	case "Partial":
		return h.mapHomomorphic(arg(0), setOptional(true), nil), true

	case "Required":
		return h.mapHomomorphic(arg(0), setOptional(false), nil), true

	case "Record":
		value := arg(1)

		return h.mapKeys(arg(0), keepModifiers, func(*typesys.Type) *typesys.Type { return value }), true

	case "Pick":
		return h.pick(arg(0), arg(1), true), true

	case "Omit":
		return h.pick(arg(0), arg(1), false), true

	case "NonNullable":
		return removeNullish(arg(0)), true

	case "Exclude":
		return h.filterUnion(arg(0), arg(1), false), true

	case "Extract":
		return h.filterUnion(arg(0), arg(1), true), true

	case "Object", "Function", "Date", "RegExp", "Error", "Promise", "PromiseLike",
		"Map", "Set", "WeakMap", "WeakSet", "ReadonlyMap", "ReadonlySet", "Iterable", "Iterator":
		return typesys.AnyType, true

	case "String":
		return typesys.StringType, true

	case "Number":
		return typesys.NumberType, true

	case "Boolean":
		return typesys.BooleanType, true
	}

	return nil, false
}

var keepModifiers = mapModifiers{
	readonly: func(inherited bool) bool { return inherited },
	optional: func(inherited bool) bool { return inherited },
}

func setReadonly(readonly bool) mapModifiers {
	return mapModifiers{
		readonly: func(bool) bool { return readonly },
		optional: func(inherited bool) bool { return inherited },
	}
}

func setOptional(optional bool) mapModifiers {
	return mapModifiers{
		readonly: func(inherited bool) bool { return inherited },
		optional: func(bool) bool { return optional },
	}
}

// pick keeps the properties of t named by keys, or drops them when keep is false.
func (h *Host) pick(t, keys *typesys.Type, keep bool) *typesys.Type {
	if t.Is(typesys.Any) {
		return typesys.AnyType
	}

	names := make(map[string]bool)

	parts := []*typesys.Type{keys}
	if keys.Is(typesys.Union) {
		parts = keys.Types()
	}

	for _, k := range parts {
		if k.Is(typesys.StringLiteral | typesys.NumberLiteral) {
			names[k.Value()] = true
		}
	}

	var props []*typesys.Property

	for _, p := range t.Properties() {
		if names[p.Name] == keep {
			props = append(props, p)
		}
	}

	if keep {
		return typesys.NewObject(props, nil)
	}

	var indexes []*typesys.IndexInfo

	for _, kind := range typesys.IndexKinds {
		if info := t.IndexInfo(kind); info != nil {
			indexes = append(indexes, info)
		}
	}

	return typesys.NewObject(props, nil, indexes...)
}

// filterUnion implements Exclude and Extract.
func (h *Host) filterUnion(t, u *typesys.Type, extract bool) *typesys.Type {
	parts := []*typesys.Type{t}
	if t.Is(typesys.Union) {
		parts = t.Types()
	}

	kept := make([]*typesys.Type, 0, len(parts))

	for _, p := range parts {
		if h.IsTypeAssignableTo(p, u) == extract {
			kept = append(kept, p)
		}
	}

	return typesys.NewUnion(kept...)
}

// removeNullish removes null and undefined from t.
func removeNullish(t *typesys.Type) *typesys.Type {
	return filter(t, func(u *typesys.Type) bool { return !u.Is(typesys.Null | typesys.Undefined) })
}

// removeUndefined removes undefined from t.
func removeUndefined(t *typesys.Type) *typesys.Type {
	return filter(t, func(u *typesys.Type) bool { return !u.Is(typesys.Undefined) })
}

func removeUndefinedIf(t *typesys.Type, cond bool) *typesys.Type {
	if !cond {
		return t
	}

	return removeUndefined(t)
}

func filter(t *typesys.Type, keep func(*typesys.Type) bool) *typesys.Type {
	if !t.Is(typesys.Union) {
		if keep(t) {
			return t
		}

		return typesys.NeverType
	}

	kept := make([]*typesys.Type, 0, len(t.Types()))

	for _, u := range t.Types() {
		if keep(u) {
			kept = append(kept, u)
		}
	}

	if len(kept) == len(t.Types()) {
		return t
	}

	return typesys.NewUnion(kept...)
}

// widen returns the type of a mutable location initialized with a value of type t.
func widen(t *typesys.Type) *typesys.Type {
	switch {
	case t.Is(typesys.Literal):
		return typesys.Widened(t)

	case t.Is(typesys.Union):
		parts := make([]*typesys.Type, 0, len(t.Types()))
		for _, u := range t.Types() {
			parts = append(parts, widen(u))
		}

		return typesys.NewUnion(parts...)

	default:
		return t
	}
}
