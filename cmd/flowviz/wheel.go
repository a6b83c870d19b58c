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

func newWheelCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "wheel",
		Short: "Print the colour wheel entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := flow.BuildColorWheel()
			if err != nil {
				return err
			}
			a.debugf("wheel has %d entries", w.Len())
			out := cmd.OutOrStdout()
			for i, e := range w.Entries() {
				fmt.Fprintf(out, "%2d  %6.2f %6.2f %6.2f  %s\n", i, e[0], e[1], e[2], w.Hex(i))
			}
			return nil
		},
	}
}
