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

import (
	"strconv"
	"strings"
)

// String returns the TypeScript notation of t.
func (t *Type) String() string {
	var p printer
	p.write(t)

	return p.String()
}

type printer struct {
	strings.Builder
	stack []*Type
}

var keywords = map[Flags]string{
	Any:          "any",
	Unknown:      "unknown",
	Never:        "never",
	Void:         "void",
	Undefined:    "undefined",
	Null:         "null",
	String:       "string",
	Number:       "number",
	Boolean:      "boolean",
	BigInt:       "bigint",
	ESSymbol:     "symbol",
	NonPrimitive: "object",
}

func (p *printer) write(t *Type) {
	if t == nil {
		p.WriteString("<nil>")

		return
	}

	if name, ok := keywords[t.flags]; ok {
		p.WriteString(name)

		return
	}

	switch {
	case t.flags&StringLiteral != 0:
		p.WriteString(strconv.Quote(t.value))

	case t.flags&(NumberLiteral|BooleanLiteral) != 0:
		p.WriteString(t.value)

	case t.flags&Union != 0:
		p.join(t.types, " | ")

	case t.flags&Intersection != 0:
		p.join(t.types, " & ")

	case t.flags&Object != 0:
		p.object(t)

	default:
		p.WriteString("<invalid>")
	}
}

func (p *printer) join(types []*Type, sep string) {
	for i, u := range types {
		if i > 0 {
			p.WriteString(sep)
		}

		if u.flags&(Union|Intersection) != 0 || isPlainFunction(u) {
			p.WriteByte('(')
			p.write(u)
			p.WriteByte(')')

			continue
		}

		p.write(u)
	}
}

func (p *printer) object(t *Type) {
	if t.name != "" {
		p.WriteString(t.name)

		return
	}

	for _, s := range p.stack {
		if s == t {
			p.WriteString("...")

			return
		}
	}

	p.stack = append(p.stack, t)
	defer func() { p.stack = p.stack[:len(p.stack)-1] }()

	switch {
	case t.IsArray():
		if t.IsReadonlyArrayLike() {
			p.WriteString("readonly ")
		}

		if t.elem.flags&(Union|Intersection) != 0 || isPlainFunction(t.elem) {
			p.WriteByte('(')
			p.write(t.elem)
			p.WriteByte(')')
		} else {
			p.write(t.elem)
		}

		p.WriteString("[]")

	case t.IsTuple():
		if t.IsReadonlyArrayLike() {
			p.WriteString("readonly ")
		}

		p.WriteByte('[')

		for i, e := range t.tuple {
			if i > 0 {
				p.WriteString(", ")
			}

			if e.Rest {
				p.WriteString("...")
				p.write(NewArray(e.Type, false))

				continue
			}

			p.write(e.Type)

			if e.Optional {
				p.WriteByte('?')
			}
		}

		p.WriteByte(']')

	case isPlainFunction(t):
		p.signature(t.calls[0], " => ")

	default:
		p.members(t)
	}
}

func (p *printer) members(t *Type) {
	if isEmptyObject(t) {
		p.WriteString("{}")

		return
	}

	p.WriteString("{ ")

	for _, prop := range t.props {
		if prop.Readonly {
			p.WriteString("readonly ")
		}

		p.WriteString(prop.Name)

		if prop.Optional {
			p.WriteByte('?')
		}

		p.WriteString(": ")
		p.write(prop.Type)
		p.WriteString("; ")
	}

	for _, kind := range IndexKinds {
		info := t.indexes[kind]
		if info == nil {
			continue
		}

		if info.Readonly {
			p.WriteString("readonly ")
		}

		p.WriteString("[key: ")
		p.WriteString(kind.String())
		p.WriteString("]: ")
		p.write(info.Type)
		p.WriteString("; ")
	}

	for _, sig := range t.calls {
		p.signature(sig, ": ")
		p.WriteString("; ")
	}

	for _, sig := range t.constructs {
		p.WriteString("new ")
		p.signature(sig, ": ")
		p.WriteString("; ")
	}

	p.WriteByte('}')
}

func (p *printer) signature(sig *Signature, arrow string) {
	p.WriteByte('(')

	for i, param := range sig.Params {
		if i > 0 {
			p.WriteString(", ")
		}

		if param.Rest {
			p.WriteString("...")
		}

		name := param.Name
		if name == "" {
			name = "arg" + strconv.Itoa(i)
		}

		p.WriteString(name)

		if param.Optional {
			p.WriteByte('?')
		}

		p.WriteString(": ")
		p.write(param.Type)
	}

	p.WriteByte(')')
	p.WriteString(arrow)
	p.write(sig.ResultType())
}

func isPlainFunction(t *Type) bool {
	return t.flags&Object != 0 && t.objectFlags == 0 && t.name == "" &&
		len(t.calls) == 1 && len(t.constructs) == 0 && len(t.props) == 0 && t.indexes == [2]*IndexInfo{}
}
