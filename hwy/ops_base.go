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

// Portable lane operations. Binary operations cover the common prefix of
// their operands, so vectors of different element widths (float64 colours
// and int32 wheel indices, for instance) mix without bookkeeping.

// fill returns a full batch whose lane i is fn(i).
func fill[T Lanes](fn func(i int) T) Vec[T] {
	data := make([]T, MaxLanes[T]())
	for i := range data {
		data[i] = fn(i)
	}
	return Vec[T]{data: data}
}

// mapLanes returns fn applied to each lane of v.
func mapLanes[T, R Lanes](v Vec[T], fn func(T) R) Vec[R] {
	out := make([]R, len(v.data))
	for i, x := range v.data {
		out[i] = fn(x)
	}
	return Vec[R]{data: out}
}

// zipLanes returns fn applied lane-wise to a and b.
func zipLanes[T Lanes](a, b Vec[T], fn func(x, y T) T) Vec[T] {
	out := make([]T, min(len(a.data), len(b.data)))
	for i := range out {
		out[i] = fn(a.data[i], b.data[i])
	}
	return Vec[T]{data: out}
}

// compareLanes returns the mask of lanes where pred(a, b) holds.
func compareLanes[T Lanes](a, b Vec[T], pred func(x, y T) bool) Mask[T] {
	bits := make([]bool, min(len(a.data), len(b.data)))
	for i := range bits {
		bits[i] = pred(a.data[i], b.data[i])
	}
	return Mask[T]{bits: bits}
}

// Load reads one batch from the front of src, zero-filling past its end.
func Load[T Lanes](src []T) Vec[T] {
	data := make([]T, MaxLanes[T]())
	copy(data, src)
	return Vec[T]{data: data}
}

// Store writes the lanes of v to dst, stopping at the end of dst.
func Store[T Lanes](v Vec[T], dst []T) {
	copy(dst, v.data)
}

// Set broadcasts value to every lane.
func Set[T Lanes](value T) Vec[T] {
	return fill(func(int) T { return value })
}

// Zero returns a batch of zeros.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{data: make([]T, MaxLanes[T]())}
}

// Iota returns the batch 0, 1, 2, ...
func Iota[T Lanes]() Vec[T] {
	return fill(func(i int) T { return T(i) })
}

// Add returns a + b lane-wise.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	return zipLanes(a, b, func(x, y T) T { return x + y })
}

// Sub returns a - b lane-wise.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	return zipLanes(a, b, func(x, y T) T { return x - y })
}

// Mul returns a * b lane-wise.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	return zipLanes(a, b, func(x, y T) T { return x * y })
}

// Div returns a / b lane-wise.
func Div[T Floats](a, b Vec[T]) Vec[T] {
	return zipLanes(a, b, func(x, y T) T { return x / y })
}

// Neg flips the sign of every lane; for floats Neg(0) is -0.
func Neg[T Lanes](v Vec[T]) Vec[T] {
	return mapLanes(v, func(x T) T { return -x })
}

// Abs returns the lane-wise absolute value; NaN lanes stay NaN.
func Abs[T Lanes](v Vec[T]) Vec[T] {
	return mapLanes(v, func(x T) T {
		if x < 0 {
			return -x
		}
		return x
	})
}

// Min returns the lane-wise minimum.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	return zipLanes(a, b, func(x, y T) T { return min(x, y) })
}

// Max returns the lane-wise maximum.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	return zipLanes(a, b, func(x, y T) T { return max(x, y) })
}

// Sqrt returns the square root of every lane.
func Sqrt[T Floats](v Vec[T]) Vec[T] {
	return mapLanes(v, func(x T) T { return T(math.Sqrt(float64(x))) })
}

// ReduceMax returns the largest lane, skipping NaN lanes. A vector with no
// comparable lanes reduces to zero.
func ReduceMax[T Lanes](v Vec[T]) T {
	var best T
	seen := false
	for _, x := range v.data {
		if x != x {
			continue
		}
		if !seen || x > best {
			best, seen = x, true
		}
	}
	return best
}

// Equal sets the lanes where a == b.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	return compareLanes(a, b, func(x, y T) bool { return x == y })
}

// LessThan sets the lanes where a < b.
func LessThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compareLanes(a, b, func(x, y T) bool { return x < y })
}

// LessEqual sets the lanes where a <= b.
func LessEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compareLanes(a, b, func(x, y T) bool { return x <= y })
}

// GreaterEqual sets the lanes where a >= b.
func GreaterEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compareLanes(a, b, func(x, y T) bool { return x >= y })
}

// IfThenElse takes lanes of a where mask is set and of b elsewhere.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	out := make([]T, min(len(mask.bits), len(a.data), len(b.data)))
	for i := range out {
		if mask.bits[i] {
			out[i] = a.data[i]
		} else {
			out[i] = b.data[i]
		}
	}
	return Vec[T]{data: out}
}
