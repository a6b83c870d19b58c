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
	stdmath "math"

	"github.com/ajroetker/go-flowviz/hwy"
	"github.com/ajroetker/go-flowviz/hwy/contrib/image"
	"github.com/ajroetker/go-flowviz/hwy/contrib/math"
)

// dimFactor scales the hue of vectors longer than one.
const dimFactor = 0.75

// wheelKernel holds the broadcast constants and channel tables for one
// colourising call.
type wheelKernel[T hwy.Floats] struct {
	tables [3][]T

	vOne  hwy.Vec[T]
	vHalf hwy.Vec[T]
	vSpan hwy.Vec[T] // N-1
	vPi   hwy.Vec[T]
	vDim  hwy.Vec[T]

	vSize    hwy.Vec[int32] // N
	vLast    hwy.Vec[int32] // N-1
	vZeroIdx hwy.Vec[int32]
	vOneIdx  hwy.Vec[int32]
}

func newWheelKernel[T hwy.Floats](w *Wheel) *wheelKernel[T] {
	n := w.Len()
	return &wheelKernel[T]{
		tables:   channelTables[T](w),
		vOne:     hwy.Set[T](1),
		vHalf:    hwy.Set[T](0.5),
		vSpan:    hwy.Set(T(n - 1)),
		vPi:      hwy.Set(T(stdmath.Pi)),
		vDim:     hwy.Set[T](dimFactor),
		vSize:    hwy.Set(int32(n)),
		vLast:    hwy.Set(int32(n - 1)),
		vZeroIdx: hwy.Zero[int32](),
		vOneIdx:  hwy.Set[int32](1),
	}
}

// shade colours one batch of flow vectors.
func (k *wheelKernel[T]) shade(dy, dx hwy.Vec[T]) (r, g, b hwy.Vec[T]) {
	rad := hwy.Sqrt(hwy.Add(hwy.Mul(dy, dy), hwy.Mul(dx, dx)))

	// Angle in (-1, 1], then fractional wheel position in [0, N-1].
	a := hwy.Div(math.Atan2(hwy.Neg(dx), hwy.Neg(dy)), k.vPi)
	fk := hwy.Mul(hwy.Mul(hwy.Add(a, k.vOne), k.vHalf), k.vSpan)

	k0 := hwy.ConvertToInt32(hwy.Floor(fk))
	k0 = hwy.Min(hwy.Max(k0, k.vZeroIdx), k.vLast)
	k1 := hwy.Add(k0, k.vOneIdx)
	k1 = hwy.IfThenElse(hwy.Equal(k1, k.vSize), k.vZeroIdx, k1)
	f := hwy.Sub(fk, hwy.ConvertFromInt32[T](k0))
	w0 := hwy.Sub(k.vOne, f)

	inside := hwy.LessEqual(rad, k.vOne)

	var out [3]hwy.Vec[T]
	for c, table := range k.tables {
		c0 := hwy.GatherIndex(table, k0)
		c1 := hwy.GatherIndex(table, k1)
		blended := hwy.Add(hwy.Mul(w0, c0), hwy.Mul(f, c1))

		// Saturation grows with the radius up to the unit circle.
		saturated := hwy.Sub(k.vOne, hwy.Mul(rad, hwy.Sub(k.vOne, blended)))
		out[c] = hwy.IfThenElse(inside, saturated, hwy.Mul(blended, k.vDim))
	}
	return out[0], out[1], out[2]
}

// BaseFlowToColorRows colours rows [y0, y1) of a two-channel flow field into
// a three-channel image of the same size, using wheel for the hues.
//
// Shapes are not checked; see Colorize for the validating entry point.
func BaseFlowToColorRows[T hwy.Floats](flow, out *image.Image[T], wheel *Wheel, y0, y1 int) {
	k := newWheelKernel[T](wheel)
	lanes := hwy.MaxLanes[T]()
	width := flow.Width()

	for y := y0; y < y1; y++ {
		src := flow.RowSlice(y)
		dst := out.RowSlice(y)

		// LoadInterleaved2 zero-fills past the row end and
		// StoreInterleaved3 stops at it, so the last batch needs no tail.
		for x := 0; x < width; x += lanes {
			dy, dx := hwy.LoadInterleaved2(src[2*x:])
			r, g, b := k.shade(dy, dx)
			hwy.StoreInterleaved3(r, g, b, dst[3*x:])
		}
	}
}
