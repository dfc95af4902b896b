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

package mutability

import "fillmore-labs.com/mutguard/internal/typesys"

// Engine checks assignments for unsafe mutability transitions under one [Policy].
type Engine struct {
	checker Checker
	policy  Policy
}

// New creates an [Engine] querying c and deciding member transitions with p.
func New(c Checker, p Policy) *Engine {
	return &Engine{checker: c, policy: p}
}

// IsUnsafe reports whether assigning a value of type src to a location of type dest is unsafe.
func (e *Engine) IsUnsafe(dest, src *typesys.Type) bool {
	if dest == nil || src == nil {
		return false
	}

	return e.isUnsafe(dest, src, nil)
}

func (e *Engine) isUnsafe(dest, src *typesys.Type, seen *Seen) bool {
	if dest == src {
		return false
	}

	pairs := AssignablePairs(e.checker, dest, src)

	for _, p := range pairs {
		if !isObjectPair(p) || seen.Contains(p) {
			continue
		}

		if e.isUnsafeObject(p, seen.With(p)) {
			return true
		}
	}

	for _, p := range pairs {
		if !isFunctionPair(e.checker, p) || seen.Contains(p) {
			continue
		}

		if e.isUnsafeFunction(p, seen.With(p)) {
			return true
		}
	}

	return false
}

func (e *Engine) isUnsafeObject(p TypePair, seen *Seen) bool {
	dest, src := p.Destination, p.Source

	if IsArrayType(e.checker, dest) && IsArrayType(e.checker, src) {
		// Positional members are covered by the number index.
		return e.isUnsafeIndex(typesys.NumberIndex, dest, src, seen)
	}

	for _, kind := range typesys.IndexKinds {
		if e.isUnsafeIndex(kind, dest, src, seen) {
			return true
		}
	}

	for _, destProp := range e.checker.PropertiesOfType(dest) {
		srcProp := e.checker.PropertyOfType(src, destProp.Name)

		if e.policy.UnsafeProperty(e.checker, destProp, srcProp, dest, src) {
			return true
		}

		if srcProp != nil && e.isUnsafe(destProp.Type, srcProp.Type, seen) {
			return true
		}
	}

	return false
}

func (e *Engine) isUnsafeIndex(kind typesys.IndexKind, dest, src *typesys.Type, seen *Seen) bool {
	if e.policy.UnsafeIndex(e.checker, kind, dest, src) {
		return true
	}

	destInfo, srcInfo := e.checker.IndexInfo(dest, kind), e.checker.IndexInfo(src, kind)
	if destInfo == nil || srcInfo == nil {
		return false
	}

	return e.isUnsafe(destInfo.Type, srcInfo.Type, seen)
}

// isUnsafeFunction compares the results of single-signature functions.
// Overloads are not resolved and parameters are not compared.
func (e *Engine) isUnsafeFunction(p TypePair, seen *Seen) bool {
	destSigs, srcSigs := e.checker.CallSignatures(p.Destination), e.checker.CallSignatures(p.Source)
	if len(destSigs) != 1 || len(srcSigs) != 1 {
		return false
	}

	return e.isUnsafe(destSigs[0].ResultType(), srcSigs[0].ResultType(), seen)
}
