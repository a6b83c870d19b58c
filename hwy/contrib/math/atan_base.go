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

package math

import (
	stdmath "math"

	"github.com/ajroetker/go-flowviz/hwy"
)

// Atan2 computes atan2(y, x) for each pair of lanes.
//
// Algorithm: applies stdmath.Atan2 to each pair of lanes independently,
// using the signs of both arguments to pick the quadrant.
//
// Special cases follow stdmath.Atan2, notably:
//   - Atan2(±0, x<0 or -0) = ±π
//   - Atan2(±0, x>0 or +0) = ±0
//   - Atan2(y, NaN) = Atan2(NaN, x) = NaN
func Atan2[T hwy.Floats](y, x hwy.Vec[T]) hwy.Vec[T] {
	yData := y.Data()
	xData := x.Data()
	n := min(len(yData), len(xData))
	result := make([]T, n)
	for i := range n {
		result[i] = T(stdmath.Atan2(float64(yData[i]), float64(xData[i])))
	}
	return hwy.Load(result)
}
