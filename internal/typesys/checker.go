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

package typesys

import "strconv"

// Checker answers structural queries about types.
//
// It assumes strict null checks and strict function types. Readonly qualifiers
// never affect assignability, matching TypeScript. A Checker is not safe for
// concurrent use.
type Checker struct {
	// assumed holds pairs currently being compared structurally;
	// they are assumed assignable to terminate on recursive types.
	assumed map[typePair]struct{}

	// known caches results that do not depend on assumptions.
	known map[typePair]bool
}

type typePair struct{ source, target *Type }

// NewChecker creates a new [Checker].
func NewChecker() *Checker {
	return &Checker{
		assumed: make(map[typePair]struct{}),
		known:   make(map[typePair]bool),
	}
}

// IsTypeAssignableTo reports whether a value of type source can be assigned to a location of type target.
func (c *Checker) IsTypeAssignableTo(source, target *Type) bool {
	if source == nil || target == nil {
		return false
	}

	return c.isAssignable(source, target)
}

// PropertiesOfType returns the properties of t.
func (*Checker) PropertiesOfType(t *Type) []*Property { return t.Properties() }

// PropertyOfType returns the named property of t, or nil.
func (*Checker) PropertyOfType(t *Type, name string) *Property { return t.Property(name) }

// IsPropertyReadonly reports whether the named property is readonly when accessed through t.
func (*Checker) IsPropertyReadonly(t *Type, name string) bool {
	p := t.Property(name)

	return p != nil && p.Readonly
}

// IndexInfo returns the index signature of the given kind, or nil.
func (*Checker) IndexInfo(t *Type, kind IndexKind) *IndexInfo { return t.IndexInfo(kind) }

// IsArrayType reports whether t is Array<T> or ReadonlyArray<T>.
func (*Checker) IsArrayType(t *Type) bool { return t.IsArray() }

// IsTupleType reports whether t is a tuple type.
func (*Checker) IsTupleType(t *Type) bool { return t.IsTuple() }

// CallSignatures returns the call signatures of t.
func (*Checker) CallSignatures(t *Type) []*Signature { return t.CallSignatures() }

func (c *Checker) isAssignable(s, t *Type) bool {
	if s == t {
		return true
	}

	sf, tf := s.flags, t.flags

	switch {
	case tf&(Any|Unknown) != 0:
		return true

	case sf&Any != 0:
		return tf&Never == 0

	case sf&Never != 0:
		return true

	case sf&Union != 0:
		for _, u := range s.types {
			if !c.isAssignable(u, t) {
				return false
			}
		}

		return true

	case tf&Union != 0:
		for _, u := range t.types {
			if c.isAssignable(s, u) {
				return true
			}
		}

		return sf&Boolean != 0 && containsBothBooleans(t.types)

	case tf&Intersection != 0:
		for _, u := range t.types {
			if !c.isAssignable(s, u) {
				return false
			}
		}

		return true

	case sf&Intersection != 0:
		for _, u := range s.types {
			if c.isAssignable(u, t) {
				return true
			}
		}

		return tf&Object != 0 && c.structural(s, t)

	case tf&Never != 0:
		return false
	}

	return c.isAssignableToUnit(s, t)
}

// isAssignableToUnit handles targets that are neither unions nor intersections.
func (c *Checker) isAssignableToUnit(s, t *Type) bool {
	sf, tf := s.flags, t.flags

	switch {
	case tf&(String|Number|Boolean|BigInt|ESSymbol) != 0:
		return Widened(s).flags&tf != 0

	case tf&Literal != 0:
		return sf == tf && s.value == t.value

	case tf&Void != 0:
		return sf&(Void|Undefined) != 0

	case tf&Undefined != 0:
		return sf&Undefined != 0

	case tf&Null != 0:
		return sf&Null != 0

	case tf&NonPrimitive != 0:
		return sf&(Object|NonPrimitive) != 0

	case tf&Object != 0:
		switch {
		case sf&Object != 0:
			return c.structural(s, t)

		case sf&(Primitive|NonPrimitive) != 0:
			return isEmptyObject(t)

		default:
			return false
		}
	}

	return false
}

// structural compares object types member by member.
func (c *Checker) structural(s, t *Type) bool {
	key := typePair{source: s, target: t}

	if result, ok := c.known[key]; ok {
		return result
	}

	if _, ok := c.assumed[key]; ok {
		return true
	}

	c.assumed[key] = struct{}{}
	result := c.compareMembers(s, t)
	delete(c.assumed, key)

	if !result || len(c.assumed) == 0 {
		c.known[key] = result
	}

	return result
}

func (c *Checker) compareMembers(s, t *Type) bool {
	if t.IsTuple() && !s.IsTuple() {
		return false
	}

	for _, tp := range t.Properties() {
		sp := s.Property(tp.Name)
		if sp == nil {
			if tp.Optional {
				continue
			}

			return false
		}

		if sp.Optional && !tp.Optional {
			return false
		}

		if !c.isAssignable(sp.Type, tp.Type) {
			return false
		}
	}

	if !c.compareIndexes(s, t) {
		return false
	}

	return c.compareSignatures(s.CallSignatures(), t.CallSignatures()) &&
		c.compareSignatures(s.ConstructSignatures(), t.ConstructSignatures())
}

func (c *Checker) compareIndexes(s, t *Type) bool {
	for _, kind := range IndexKinds {
		ti := t.IndexInfo(kind)
		if ti == nil {
			continue
		}

		si := s.IndexInfo(kind)
		if si == nil && kind == NumberIndex {
			si = s.IndexInfo(StringIndex)
		}

		if si != nil && !c.isAssignable(si.Type, ti.Type) {
			return false
		}

		if s.IsArray() || s.IsTuple() {
			// Array members are covered by the index signature.
			continue
		}

		for _, sp := range s.Properties() {
			if kind == NumberIndex && !isNumericName(sp.Name) {
				continue
			}

			if !c.isAssignable(sp.Type, ti.Type) {
				return false
			}
		}
	}

	return true
}

// compareSignatures reports whether every target signature is matched by a source signature.
func (c *Checker) compareSignatures(sources, targets []*Signature) bool {
	for _, ts := range targets {
		matched := false

		for _, ss := range sources {
			if c.signatureAssignable(ss, ts) {
				matched = true

				break
			}
		}

		if !matched {
			return false
		}
	}

	return true
}

// signatureAssignable compares parameters contravariantly and results covariantly.
func (c *Checker) signatureAssignable(s, t *Signature) bool {
	if !t.HasRest() && s.MinArgs() > len(t.Params) {
		return false
	}

	for i := range t.Params {
		if t.Params[i].Rest {
			break
		}

		st, ok := s.ParamType(i)
		if !ok {
			break
		}

		tt, _ := t.ParamType(i)
		if !c.isAssignable(tt, st) {
			return false
		}
	}

	result := t.ResultType()
	if result.flags&Void != 0 {
		return true
	}

	return c.isAssignable(s.ResultType(), result)
}

func isEmptyObject(t *Type) bool {
	return len(t.props) == 0 && len(t.calls) == 0 && len(t.constructs) == 0 && t.indexes == [2]*IndexInfo{}
}

func isNumericName(name string) bool {
	_, err := strconv.ParseFloat(name, 64)

	return err == nil
}

func containsBothBooleans(types []*Type) bool {
	var seenTrue, seenFalse bool

	for _, t := range types {
		switch t {
		case TrueType:
			seenTrue = true

		case FalseType:
			seenFalse = true
		}
	}

	return seenTrue && seenFalse
}
