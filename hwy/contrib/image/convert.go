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
	stdimage "image"

	"github.com/ajroetker/go-flowviz/hwy"
)

// ToNRGBA converts a three-channel image with values in [0, 1] to an opaque
// 8-bit *image.NRGBA. Values are clamped to [0, 1], NaN maps to 0, and the
// result is rounded to the nearest 8-bit level.
func ToNRGBA[T hwy.Floats](img *Image[T]) (*stdimage.NRGBA, error) {
	if err := CheckChannels("ToNRGBA", img, 3); err != nil {
		return nil, err
	}

	out := stdimage.NewNRGBA(stdimage.Rect(0, 0, img.width, img.height))
	lanes := hwy.MaxLanes[T]()
	zero := hwy.Zero[T]()
	one := hwy.Set[T](1)
	scale := hwy.Set[T](255)

	quantize := func(v hwy.Vec[T]) []int32 {
		v = hwy.IfThenElse(hwy.Equal(v, v), v, zero)
		v = hwy.Max(hwy.Min(v, one), zero)
		return hwy.ConvertToInt32(hwy.Round(hwy.Mul(v, scale))).Data()
	}

	for y := range img.height {
		src := img.RowSlice(y)
		pix := out.Pix[y*out.Stride:]
		for x := 0; x < img.width; x += lanes {
			n := min(lanes, img.width-x)
			r, g, b := hwy.LoadInterleaved3(src[3*x:])
			rq, gq, bq := quantize(r), quantize(g), quantize(b)
			for i := range n {
				p := pix[4*(x+i) : 4*(x+i)+4 : 4*(x+i)+4]
				p[0] = uint8(rq[i])
				p[1] = uint8(gq[i])
				p[2] = uint8(bq[i])
				p[3] = 0xff
			}
		}
	}
	return out, nil
}
