// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package config

// Flag is the underlying type of flags stored in a [BitMask].
type Flag interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// BitMask is a set of flags of type T. The zero value has all flags disabled.
type BitMask[T Flag] struct {
	value T
}

// NewBitMask returns a [BitMask] with flags enabled.
func NewBitMask[T Flag](flags ...T) BitMask[T] {
	var b BitMask[T]
	for _, flag := range flags {
		b.value |= flag
	}

	return b
}

// Set enables or disables flag.
func (b *BitMask[T]) Set(flag T, enabled bool) {
	if enabled {
		b.value |= flag
	} else {
		b.value &^= flag
	}
}

// Enable enables flag.
func (b *BitMask[T]) Enable(flag T) { b.Set(flag, true) }

// Disable disables flag.
func (b *BitMask[T]) Disable(flag T) { b.Set(flag, false) }

// Enabled reports whether any bit of flag is enabled.
func (b BitMask[T]) Enabled(flag T) bool {
	return b.value&flag != 0
}

// Empty reports whether no flag is enabled.
func (b BitMask[T]) Empty() bool {
	return b.value == 0
}

// Value returns the raw bits, suitable for fingerprinting a configuration.
func (b BitMask[T]) Value() T {
	return b.value
}
