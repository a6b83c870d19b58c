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

// Interleaved loads and stores convert between pixel-major (AoS) rows and
// per-channel (SoA) vectors. A flow row [dy0, dx0, dy1, dx1, ...] becomes
// one dy vector and one dx vector; three colour vectors become
// [r0, g0, b0, r1, g1, b1, ...].

// LoadInterleaved2 deinterleaves MaxLanes[T]() pairs from src.
// Pairs missing from a short src are zero.
func LoadInterleaved2[T Lanes](src []T) (Vec[T], Vec[T]) {
	n := MaxLanes[T]()
	a := make([]T, n)
	b := make([]T, n)
	for i := 0; i < n && 2*i+1 < len(src); i++ {
		a[i] = src[2*i]
		b[i] = src[2*i+1]
	}
	return Vec[T]{data: a}, Vec[T]{data: b}
}

// LoadInterleaved3 deinterleaves MaxLanes[T]() triples from src.
// Triples missing from a short src are zero.
func LoadInterleaved3[T Lanes](src []T) (Vec[T], Vec[T], Vec[T]) {
	n := MaxLanes[T]()
	a := make([]T, n)
	b := make([]T, n)
	c := make([]T, n)
	for i := 0; i < n && 3*i+2 < len(src); i++ {
		a[i] = src[3*i]
		b[i] = src[3*i+1]
		c[i] = src[3*i+2]
	}
	return Vec[T]{data: a}, Vec[T]{data: b}, Vec[T]{data: c}
}

// StoreInterleaved2 writes a and b to dst as pairs. It is the inverse of
// LoadInterleaved2 and stops at whichever of the inputs ends first.
func StoreInterleaved2[T Lanes](a, b Vec[T], dst []T) {
	n := min(len(a.data), len(b.data))
	for i := 0; i < n && 2*i+1 < len(dst); i++ {
		dst[2*i] = a.data[i]
		dst[2*i+1] = b.data[i]
	}
}

// StoreInterleaved3 writes a, b and c to dst as triples. It is the inverse
// of LoadInterleaved3 and stops at whichever of the inputs ends first.
func StoreInterleaved3[T Lanes](a, b, c Vec[T], dst []T) {
	n := min(len(a.data), len(b.data), len(c.data))
	for i := 0; i < n && 3*i+2 < len(dst); i++ {
		dst[3*i] = a.data[i]
		dst[3*i+1] = b.data[i]
		dst[3*i+2] = c.data[i]
	}
}
