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

// Seen is an immutable list of the pairs visited on the current recursion path.
// The nil *Seen is the empty list.
type Seen struct {
	pair TypePair
	next *Seen
}

// With returns a new list with p prepended. s is unchanged.
func (s *Seen) With(p TypePair) *Seen {
	return &Seen{pair: p, next: s}
}

// Contains reports whether p is on the list, comparing both types by identity.
func (s *Seen) Contains(p TypePair) bool {
	for e := s; e != nil; e = e.next {
		if e.pair == p {
			return true
		}
	}

	return false
}
