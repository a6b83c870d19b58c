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

// Package hwy provides the portable lane operations used by the flow
// visualisation kernels.
//
// It follows the Highway C++ library's model: kernels are written once
// against Vec and Mask, loading a batch of MaxLanes elements at a time, and
// the batch width is picked at startup from the CPU's vector register size.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-flowviz/hwy"
//
//	dy, dx := hwy.LoadInterleaved2(row)
//	rad := hwy.Sqrt(hwy.Add(hwy.Mul(dy, dy), hwy.Mul(dx, dx)))
//	hwy.Store(rad, out)
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is one batch of lanes of type T. Build it with Load, Set, Zero or
// Iota rather than directly.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes in v.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data exposes the lanes of v, for tests and scalar fallbacks.
func (v Vec[T]) Data() []T {
	return v.data
}

// Mask marks lanes selected by a comparison; IfThenElse consumes it.
type Mask[T Lanes] struct {
	bits []bool
}
