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

package hwy

import "math"

// ConvertToInt32 truncates float lanes toward zero. Lanes outside the int32
// range give an unspecified value.
func ConvertToInt32[T Floats](v Vec[T]) Vec[int32] {
	return mapLanes(v, func(x T) int32 { return int32(x) })
}

// ConvertFromInt32 widens int32 lanes to T.
func ConvertFromInt32[T Floats](v Vec[int32]) Vec[T] {
	return mapLanes(v, func(x int32) T { return T(x) })
}

// Floor rounds every lane toward negative infinity.
func Floor[T Floats](v Vec[T]) Vec[T] {
	return mapLanes(v, func(x T) T { return T(math.Floor(float64(x))) })
}

// Round rounds every lane to the nearest integer, halves away from zero.
func Round[T Floats](v Vec[T]) Vec[T] {
	return mapLanes(v, func(x T) T { return T(math.Round(float64(x))) })
}
