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

package flow

import (
	"fmt"
	"slices"

	"github.com/ajroetker/go-flowviz/hwy"
	"github.com/ajroetker/go-flowviz/hwy/contrib/image"
	"github.com/samber/lo"
)

// Pattern names a synthetic flow field.
type Pattern string

const (
	// PatternRamp numbers pixels in row-major order p = y*W + x and sets
	// (dy, dx) = (p, W*H - 1 - p). Values are not scaled.
	PatternRamp Pattern = "ramp"

	// PatternVortex rotates clockwise about the image centre. Vectors have
	// length r/R, where r is the distance from the centre and R the larger
	// half-extent, so the ends of the longer axis have length 1.
	PatternVortex Pattern = "vortex"

	// PatternRadial points away from the image centre with the same
	// lengths as PatternVortex.
	PatternRadial Pattern = "radial"
)

var patternDocs = map[Pattern]string{
	PatternRamp:   "row-major pixel index ramp, unscaled",
	PatternVortex: "clockwise rotation about the centre",
	PatternRadial: "expansion from the centre",
}

// Patterns returns the names of all synthetic patterns in sorted order.
func Patterns() []Pattern {
	names := lo.Keys(patternDocs)
	slices.Sort(names)
	return names
}

// Describe returns a one-line description of p, or "" if p is unknown.
func (p Pattern) Describe() string {
	return patternDocs[p]
}

// Synthesize builds a width x height two-channel flow field following p.
func Synthesize[T hwy.Floats](p Pattern, width, height int) (*image.Image[T], error) {
	if _, ok := patternDocs[p]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, p)
	}
	if width <= 0 || height <= 0 {
		return nil, &image.ShapeError{
			Op:     "Synthesize",
			Reason: fmt.Sprintf("size %dx%d must be positive", width, height),
		}
	}

	flow := image.NewImage[T](width, height, 2)
	lanes := hwy.MaxLanes[T]()
	vIota := hwy.Iota[T]()

	cx := T(width-1) / 2
	cy := T(height-1) / 2
	radius := max(cx, cy)
	if radius == 0 {
		radius = 1
	}
	vCx := hwy.Set(cx)
	vRadius := hwy.Set(radius)
	vLast := hwy.Set(T(width*height - 1))

	for y := range height {
		dst := flow.RowSlice(y)
		vPy := hwy.Set((T(y) - cy) / radius)
		vRowStart := hwy.Set(T(y * width))

		for x := 0; x < width; x += lanes {
			xs := hwy.Add(vIota, hwy.Set(T(x)))
			var dy, dx hwy.Vec[T]
			switch p {
			case PatternRamp:
				idx := hwy.Add(vRowStart, xs)
				dy, dx = idx, hwy.Sub(vLast, idx)
			case PatternVortex:
				px := hwy.Div(hwy.Sub(xs, vCx), vRadius)
				dy, dx = px, hwy.Neg(vPy)
			case PatternRadial:
				px := hwy.Div(hwy.Sub(xs, vCx), vRadius)
				dy, dx = vPy, px
			}
			hwy.StoreInterleaved2(dy, dx, dst[2*x:])
		}
	}
	return flow, nil
}
