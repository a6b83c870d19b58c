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

package image

import (
	"github.com/ajroetker/go-flowviz/hwy"
)

// PairedIndices splits a two-channel coordinate image into a row list and a
// column list, each width*height long in row-major pixel order. Entry i of
// the two lists together address one pixel of a lookup table.
func PairedIndices(coords *Image[int32]) (rows, cols []int32, err error) {
	if err := CheckChannels("PairedIndices", coords, 2); err != nil {
		return nil, nil, err
	}

	width := coords.width
	rows = make([]int32, width*coords.height)
	cols = make([]int32, width*coords.height)
	lanes := hwy.MaxLanes[int32]()

	for y := range coords.height {
		src := coords.RowSlice(y)
		base := y * width
		for x := 0; x < width; x += lanes {
			r, c := hwy.LoadInterleaved2(src[2*x:])
			hwy.Store(r, rows[base+x:base+width])
			hwy.Store(c, cols[base+x:base+width])
		}
	}
	return rows, cols, nil
}

// Gather builds an image the size of coords whose pixel (x, y) is the pixel
// of src at (row, col) = coords(x, y). Coordinates outside src produce
// zero pixels. The result has src's channel count.
func Gather[T hwy.Lanes](src *Image[T], coords *Image[int32]) (*Image[T], error) {
	if src == nil {
		return nil, &ShapeError{Op: "Gather", Reason: "nil source"}
	}
	rows, cols, err := PairedIndices(coords)
	if err != nil {
		return nil, err
	}

	out := NewImage[T](coords.width, coords.height, src.channels)
	if out.Empty() {
		return out, nil
	}

	lanes := hwy.MaxLanes[int32]()
	zero := hwy.Zero[int32]()
	none := hwy.Set[int32](-1)
	height := hwy.Set(int32(src.height))
	width := hwy.Set(int32(src.width))
	stride := hwy.Set(int32(src.stride))
	channels := hwy.Set(int32(src.channels))
	laneOffsets := hwy.Mul(hwy.Iota[int32](), channels)

	for y := range coords.height {
		dst := out.Row(y)
		base := y * coords.width
		for x := 0; x < coords.width; x += lanes {
			n := min(lanes, coords.width-x)
			r := hwy.Load(rows[base+x : base+x+n])
			c := hwy.Load(cols[base+x : base+x+n])

			outside := hwy.LessThan(r, zero).
				Or(hwy.GreaterEqual(r, height)).
				Or(hwy.LessThan(c, zero)).
				Or(hwy.GreaterEqual(c, width))
			tail := hwy.GreaterEqual(hwy.Iota[int32](), hwy.Set(int32(n)))
			pixel := hwy.Add(hwy.Mul(r, stride), hwy.Mul(c, channels))

			for ch := range src.channels {
				offset := hwy.Set(int32(ch))
				from := hwy.IfThenElse(outside, none, hwy.Add(pixel, offset))
				to := hwy.IfThenElse(tail, none, hwy.Add(laneOffsets, offset))
				hwy.ScatterIndex(hwy.GatherIndex(src.data, from), dst[x*src.channels:], to)
			}
		}
	}
	return out, nil
}
