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
	stdmath "math"

	"github.com/ajroetker/go-flowviz/hwy/contrib/flow"
	"github.com/ajroetker/go-flowviz/hwy/contrib/image"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

// upperHalfBlock paints its foreground over the top half of a cell.
const upperHalfBlock = '▀'

// canvas is the part of tcell.Screen the preview draws on.
type canvas interface {
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

func newPreviewCmd(a *app) *cobra.Command {
	cfg := defaultRenderConfig()
	cfg.Pattern = string(flow.PatternVortex)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show a colourised flow field in the terminal until a key is pressed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("failed to open terminal: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("failed to initialise terminal: %w", err)
			}
			defer screen.Fini()
			return a.preview(screen, cfg)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&cfg.Pattern, "pattern", cfg.Pattern, "flow pattern: "+patternList())
	flags.Float64Var(&cfg.Scale, "scale", cfg.Scale, "multiply every flow vector by this factor")
	flags.BoolVar(&cfg.Normalize, "normalize", cfg.Normalize, "scale the field so the longest vector has length 1")
	return cmd
}

// preview draws cfg's field sized to the screen, redrawing on resize, and
// returns on the first key press.
func (a *app) preview(screen tcell.Screen, cfg renderConfig) error {
	for {
		if err := a.drawPreview(screen, cfg); err != nil {
			return err
		}
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey, nil:
			return nil
		default:
			a.debugf("ignoring event %T", ev)
		}
	}
}

// drawPreview renders cfg's pattern at the canvas resolution, two pixel
// rows per cell.
func (a *app) drawPreview(c canvas, cfg renderConfig) error {
	cols, rows := c.Size()
	cfg.Width, cfg.Height = cols, 2*rows
	if err := cfg.validate(); err != nil {
		return err
	}
	field, err := a.buildField(cfg)
	if err != nil {
		return err
	}
	rgb, err := flow.FlowToColor(field, cfg.Normalize)
	if err != nil {
		return err
	}
	drawHalfBlocks(c, rgb)
	return nil
}

// drawHalfBlocks paints img onto c with one upper half block per cell: the
// foreground takes the even pixel row and the background the odd one.
func drawHalfBlocks(c canvas, img *image.Image[float32]) {
	cols, rows := c.Size()
	for cy := 0; cy < rows && 2*cy < img.Height(); cy++ {
		for x := 0; x < cols && x < img.Width(); x++ {
			style := tcell.StyleDefault.Foreground(cellColor(img, x, 2*cy))
			if 2*cy+1 < img.Height() {
				style = style.Background(cellColor(img, x, 2*cy+1))
			}
			c.SetContent(x, cy, upperHalfBlock, nil, style)
		}
	}
	c.Show()
}

func cellColor(img *image.Image[float32], x, y int) tcell.Color {
	p := img.Pixel(x, y)
	return tcell.NewRGBColor(to8(p[0]), to8(p[1]), to8(p[2]))
}

// to8 maps [0, 1] to [0, 255], clamping and treating NaN as 0.
func to8(v float32) int32 {
	if !(v > 0) {
		return 0
	}
	return int32(stdmath.Round(float64(min(v, 1)) * 255))
}
