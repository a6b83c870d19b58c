// Copyright 2025 go-highway Authors
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

package main

import (
	"fmt"

	"github.com/ajroetker/go-flowviz/hwy/contrib/flow"
	"github.com/spf13/cobra"
)

func newKeyCmd(a *app) *cobra.Command {
	var (
		size   int
		output string
	)
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Write a legend showing the colour of every flow direction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if size <= 0 {
				return fmt.Errorf("invalid key size %d", size)
			}
			key, err := flow.Key[float32](size)
			if err != nil {
				return err
			}
			return a.writePNG(cmd.Context(), output, key)
		},
	}
	cmd.Flags().IntVar(&size, "size", 256, "legend width and height in pixels")
	cmd.Flags().StringVarP(&output, "output", "o", "key.png", "output path or URL")
	return cmd
}
