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
)

// MaxMagnitude returns the length of the longest vector in flow.
// NaN vectors are ignored. The result is +Inf only when the true length
// does not fit in T.
func MaxMagnitude[T hwy.Floats](flow *image.Image[T]) (T, error) {
	if err := image.CheckChannels("MaxMagnitude", flow, 2); err != nil {
		return 0, err
	}
	maxRad, _ := magnitudes(flow)
	return maxRad, nil
}

// magnitudes returns the longest vector length and the largest absolute
// component of flow.
func magnitudes[T hwy.Floats](flow *image.Image[T]) (maxRad, maxComp T) {
	lanes := hwy.MaxLanes[T]()
	one := hwy.Set[T](1)
	for y := range flow.Height() {
		src := flow.RowSlice(y)
		for x := 0; x < flow.Width(); x += lanes {
			dy, dx := hwy.LoadInterleaved2(src[2*x:])
			ady, adx := hwy.Abs(dy), hwy.Abs(dx)
			hi, lo := hwy.Max(ady, adx), hwy.Min(ady, adx)
			// hi*sqrt(1+(lo/hi)^2) never squares a component, so it only
			// overflows when the length itself does.
			r := hwy.IfThenElse(hwy.Equal(lo, hi), one, hwy.Div(lo, hi))
			rad := hwy.Mul(hi, hwy.Sqrt(hwy.Add(one, hwy.Mul(r, r))))
			maxRad = max(maxRad, hwy.ReduceMax(rad))
			maxComp = max(maxComp, hwy.ReduceMax(hi))
		}
	}
	return maxRad, maxComp
}

// Normalize divides every vector of flow in place by the length of the
// longest one, so all components fall in [-1, 1], and returns that length.
// A field of zero vectors, or one holding an infinite component, is left
// unchanged. When every component is finite but the longest length
// overflows T, the field is still normalized and +Inf is returned.
func Normalize[T hwy.Floats](flow *image.Image[T]) (T, error) {
	if err := image.CheckChannels("Normalize", flow, 2); err != nil {
		return 0, err
	}
	maxRad, maxComp := magnitudes(flow)
	if maxRad == 0 || stdmath.IsInf(float64(maxComp), 1) {
		return maxRad, nil
	}
	divisor := maxRad
	if stdmath.IsInf(float64(maxRad), 1) {
		half := hwy.Set[T](0.5)
		forEachBatch(flow, func(dy, dx hwy.Vec[T]) (hwy.Vec[T], hwy.Vec[T]) {
			return hwy.Mul(dy, half), hwy.Mul(dx, half)
		})
		divisor, _ = magnitudes(flow)
	}
	vMax := hwy.Set(divisor)
	forEachBatch(flow, func(dy, dx hwy.Vec[T]) (hwy.Vec[T], hwy.Vec[T]) {
		return hwy.Div(dy, vMax), hwy.Div(dx, vMax)
	})
	return maxRad, nil
}

// Scale multiplies every vector of flow in place by s.
func Scale[T hwy.Floats](flow *image.Image[T], s T) error {
	if err := image.CheckChannels("Scale", flow, 2); err != nil {
		return err
	}
	vScale := hwy.Set(s)
	forEachBatch(flow, func(dy, dx hwy.Vec[T]) (hwy.Vec[T], hwy.Vec[T]) {
		return hwy.Mul(dy, vScale), hwy.Mul(dx, vScale)
	})
	return nil
}

// forEachBatch replaces every batch of (dy, dx) vectors with fn's result.
func forEachBatch[T hwy.Floats](flow *image.Image[T], fn func(dy, dx hwy.Vec[T]) (hwy.Vec[T], hwy.Vec[T])) {
	lanes := hwy.MaxLanes[T]()
	for y := range flow.Height() {
		row := flow.RowSlice(y)
		for x := 0; x < flow.Width(); x += lanes {
			dy, dx := fn(hwy.LoadInterleaved2(row[2*x:]))
			hwy.StoreInterleaved2(dy, dx, row[2*x:])
		}
	}
}
