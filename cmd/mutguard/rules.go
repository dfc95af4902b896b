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

package main

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"fillmore-labs.com/mutguard/internal/rule"
)

func newRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the available rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			width := 0
			for _, r := range rule.All {
				width = max(width, runewidth.StringWidth(r.Name))
			}

			w := cmd.OutOrStdout()
			for _, r := range rule.All {
				if _, err := fmt.Fprintf(w, "%s  %s\n", runewidth.FillRight(r.Name, width), r.Doc); err != nil {
					return err
				}

				if _, err := fmt.Fprintf(w, "%s  flag: --%s\n", runewidth.FillRight("", width), r.Key); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
