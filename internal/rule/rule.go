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

package rule

import (
	"fmt"

	"fillmore-labs.com/mutguard/internal/config"
	"fillmore-labs.com/mutguard/internal/mutability"
)

// Rule is a reportable check sharing the unsafe assignment engine.
type Rule struct {
	// Name is the diagnostic category.
	Name string

	// Key is the configuration name.
	Key string

	// Flag enables the rule.
	Flag config.RuleFlags

	// Policy decides member transitions.
	Policy mutability.Policy

	// Doc describes the rule.
	Doc string

	transition string

	// skipFresh exempts object and array literals, which nothing else references.
	skipFresh bool
}

// The defined rules.
var (
	ReadonlyToMutable = &Rule{
		Name:       "no-unsafe-readonly-mutable-assignment",
		Key:        "readonly-to-mutable",
		Flag:       config.ReadonlyToMutable,
		Policy:     mutability.ReadonlyToMutable{},
		Doc:        "Forbids assigning readonly values to locations that permit mutation.",
		transition: "readonly to mutable",
	}

	MutableToReadonly = &Rule{
		Name:       "no-unsafe-mutable-readonly-assignment",
		Key:        "mutable-to-readonly",
		Flag:       config.MutableToReadonly,
		Policy:     mutability.MutableToReadonly{},
		Doc:        "Forbids assigning values with live mutable aliases to readonly locations.",
		transition: "mutable to readonly",
		skipFresh:  true,
	}

	OptionalProperty = &Rule{
		Name:       "no-unsafe-optional-property-assignment",
		Key:        "optional-property",
		Flag:       config.OptionalProperty,
		Policy:     mutability.OptionalProperty{},
		Doc:        "Forbids assigning values lacking a property to types declaring it optional.",
		transition: "optional property",
	}
)

// All lists the defined rules.
var All = [...]*Rule{ReadonlyToMutable, MutableToReadonly, OptionalProperty}

// Enabled returns the rules enabled in rules.
func Enabled(rules config.Rules) []*Rule {
	var enabled []*Rule

	for _, r := range All {
		if rules.Enabled(r.Flag) {
			enabled = append(enabled, r)
		}
	}

	return enabled
}

// Lookup returns the rule with the given name or configuration key.
func Lookup(name string) (*Rule, bool) {
	for _, r := range All {
		if r.Name == name || r.Key == name {
			return r, true
		}
	}

	return nil, false
}

// Message returns the diagnostic message for kind.
func (r *Rule) Message(kind MessageKind) string {
	return fmt.Sprintf("Unsafe %s assignment in %s.", r.transition, kind.Site())
}

// Listeners returns the visitors checking the rule in ctx.
func (r *Rule) Listeners(ctx Context) Visitors {
	return newDispatcher(ctx, r.Policy, r.skipFresh).visitors()
}
