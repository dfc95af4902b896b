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

	"github.com/spf13/cobra"

	"fillmore-labs.com/mutguard/internal/cache"
)

func newCacheCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the result cache",
	}

	cmd.PersistentFlags().StringVar(&dir, "cache-dir", "", "cache directory (default is the user cache directory)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "clean",
			Short: "Remove all cached results",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				c, err := cache.Open(dir)
				if err != nil {
					return err
				}

				if err := c.Clear(); err != nil {
					return fmt.Errorf("can't clean cache: %w", err)
				}

				cmd.Printf("Cleaned %s\n", c.Dir())

				return nil
			},
		},
		&cobra.Command{
			Use:   "dir",
			Short: "Print the cache directory",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if dir == "" {
					var err error
					if dir, err = cache.DefaultDir(); err != nil {
						return err
					}
				}

				cmd.Println(dir)

				return nil
			},
		},
	)

	return cmd
}
