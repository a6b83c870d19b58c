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

// Command flowviz renders optical-flow fields as colour images.
//
// Usage:
//
//	flowviz render --pattern vortex --width 640 --height 480 --output vortex.png
//	flowviz render --config render.yaml --workers 8
//	flowviz key --size 256 --output key.png
//	flowviz wheel
//	flowviz preview --pattern radial
//
// Output locations are afs URLs, so mem://, file:// and cloud schemes work
// as well as plain paths. Direction maps to hue and magnitude to
// saturation; see package flow for the colour coding.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/viant/afs"
)

// app carries the state shared by all subcommands.
type app struct {
	verbose bool
	out     io.Writer
	logger  *log.Logger
	fs      afs.Service
}

func newApp(out, errOut io.Writer) *app {
	return &app{
		out:    out,
		logger: log.New(errOut, "flowviz: ", 0),
		fs:     afs.New(),
	}
}

// debugf logs only when --verbose is set.
func (a *app) debugf(format string, args ...any) {
	if a.verbose {
		a.logger.Printf(format, args...)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "flowviz",
		Short:         "Render optical-flow fields as colour images",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(a.out)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log each step to stderr")

	root.AddCommand(
		newRenderCmd(a),
		newKeyCmd(a),
		newWheelCmd(a),
		newPreviewCmd(a),
	)
	return root
}

func main() {
	a := newApp(os.Stdout, os.Stderr)
	if err := newRootCmd(a).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
