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
)

// WheelPosition returns the default-wheel entries k0 and k1 that the flow
// vector (dy, dx) falls between, and the weight f of k1. k1 is k0+1
// modulo the wheel size.
//
// The arithmetic is performed in T exactly as the batch kernel does it.
func WheelPosition[T hwy.Floats](dy, dx T) (k0, k1 int, f T) {
	return wheelPosition(DefaultWheel().Len(), dy, dx)
}

func wheelPosition[T hwy.Floats](n int, dy, dx T) (k0, k1 int, f T) {
	a := T(stdmath.Atan2(float64(-dx), float64(-dy))) / T(stdmath.Pi)
	fk := (a + 1) * 0.5 * T(n-1)
	k0 = min(max(int(stdmath.Floor(float64(fk))), 0), n-1)
	k1 = (k0 + 1) % n
	return k0, k1, fk - T(k0)
}

// ColorAt returns the colour of a single flow vector on the default wheel,
// with channels in about [0, 1]. It agrees with FlowToColor to within
// floating-point rounding, not bit for bit: the hue blend is evaluated as
// c0 + f*(c1-c0) rather than (1-f)*c0 + f*c1.
func ColorAt(dy, dx float64) RGB {
	w := DefaultWheel()
	k0, k1, f := wheelPosition(w.Len(), dy, dx)
	hue := w.Color(k0).BlendRgb(w.Color(k1), f)
	rad := stdmath.Sqrt(dy*dy + dx*dx)

	out := RGB{hue.R, hue.G, hue.B}
	for c, v := range out {
		if rad <= 1 {
			out[c] = 1 - rad*(1-v)
		} else {
			out[c] = v * dimFactor
		}
	}
	return out
}
