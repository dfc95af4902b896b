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

// members holds the synthesized members of a union or intersection.
type members struct {
	props      []*Property
	indexes    [2]*IndexInfo
	calls      []*Signature
	constructs []*Signature
}

// Properties returns the properties of t in declaration order.
//
// Intersections expose the merged properties of their constituents; unions expose
// the properties common to all constituents.
func (t *Type) Properties() []*Property {
	switch {
	case t.flags&Object != 0:
		return t.props

	case t.flags&(Union|Intersection) != 0:
		return t.resolved().props

	default:
		return nil
	}
}

// Property returns the property with the given name, or nil.
func (t *Type) Property(name string) *Property {
	for _, p := range t.Properties() {
		if p.Name == name {
			return p
		}
	}

	return nil
}

// IndexInfo returns the index signature of the given kind, or nil.
func (t *Type) IndexInfo(kind IndexKind) *IndexInfo {
	switch {
	case t.flags&Object != 0:
		return t.indexes[kind]

	case t.flags&(Union|Intersection) != 0:
		return t.resolved().indexes[kind]

	default:
		return nil
	}
}

// CallSignatures returns the call signatures of t.
func (t *Type) CallSignatures() []*Signature {
	switch {
	case t.flags&Object != 0:
		return t.calls

	case t.flags&(Union|Intersection) != 0:
		return t.resolved().calls

	default:
		return nil
	}
}

// ConstructSignatures returns the construct signatures of t.
func (t *Type) ConstructSignatures() []*Signature {
	switch {
	case t.flags&Object != 0:
		return t.constructs

	case t.flags&Intersection != 0:
		return t.resolved().constructs

	default:
		return nil
	}
}

func (t *Type) resolved() *members {
	if t.merged != nil {
		return t.merged
	}

	if t.flags&Intersection != 0 {
		t.merged = mergeIntersection(t.types)
	} else {
		t.merged = commonMembers(t.types)
	}

	return t.merged
}

// mergeIntersection merges the members of intersection constituents.
// A merged property is readonly only if every declaring constituent marks it readonly.
func mergeIntersection(types []*Type) *members {
	var (
		m     members
		order []string
		decls = make(map[string][]*Property)
	)

	for _, t := range types {
		for _, p := range t.Properties() {
			if _, ok := decls[p.Name]; !ok {
				order = append(order, p.Name)
			}

			decls[p.Name] = append(decls[p.Name], p)
		}

		m.calls = append(m.calls, t.CallSignatures()...)
		m.constructs = append(m.constructs, t.ConstructSignatures()...)
	}

	m.props = make([]*Property, 0, len(order))
	for _, name := range order {
		ps := decls[name]
		if len(ps) == 1 {
			m.props = append(m.props, ps[0])

			continue
		}

		merged := &Property{Name: name, Readonly: true, Optional: true}
		propTypes := make([]*Type, 0, len(ps))

		for _, p := range ps {
			propTypes = append(propTypes, p.Type)
			merged.Readonly = merged.Readonly && p.Readonly
			merged.Optional = merged.Optional && p.Optional
		}

		merged.Type = NewIntersection(propTypes...)
		m.props = append(m.props, merged)
	}

	for _, kind := range IndexKinds {
		var infos []*IndexInfo

		for _, t := range types {
			if info := t.IndexInfo(kind); info != nil {
				infos = append(infos, info)
			}
		}

		switch len(infos) {
		case 0:

		case 1:
			m.indexes[kind] = infos[0]

		default:
			merged := &IndexInfo{Key: kind, Readonly: true}
			indexTypes := make([]*Type, 0, len(infos))

			for _, info := range infos {
				indexTypes = append(indexTypes, info.Type)
				merged.Readonly = merged.Readonly && info.Readonly
			}

			merged.Type = NewIntersection(indexTypes...)
			m.indexes[kind] = merged
		}
	}

	return &m
}

// commonMembers computes the members shared by all union constituents.
// A common property is readonly if any constituent marks it readonly.
func commonMembers(types []*Type) *members {
	var m members
	if len(types) == 0 {
		return &m
	}

	for _, p := range types[0].Properties() {
		merged := &Property{Name: p.Name, Readonly: p.Readonly, Optional: p.Optional}
		propTypes := []*Type{p.Type}
		common := true

		for _, t := range types[1:] {
			q := t.Property(p.Name)
			if q == nil {
				common = false

				break
			}

			propTypes = append(propTypes, q.Type)
			merged.Readonly = merged.Readonly || q.Readonly
			merged.Optional = merged.Optional || q.Optional
		}

		if !common {
			continue
		}

		merged.Type = NewUnion(propTypes...)
		m.props = append(m.props, merged)
	}

	for _, kind := range IndexKinds {
		first := types[0].IndexInfo(kind)
		if first == nil {
			continue
		}

		merged := &IndexInfo{Key: kind, Readonly: first.Readonly}
		indexTypes := []*Type{first.Type}
		common := true

		for _, t := range types[1:] {
			info := t.IndexInfo(kind)
			if info == nil {
				common = false

				break
			}

			indexTypes = append(indexTypes, info.Type)
			merged.Readonly = merged.Readonly || info.Readonly
		}

		if common {
			merged.Type = NewUnion(indexTypes...)
			m.indexes[kind] = merged
		}
	}

	return &m
}
