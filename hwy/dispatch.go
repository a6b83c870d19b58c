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

import (
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel identifies the instruction set the batch width was sized for.
type DispatchLevel int

const (
	DispatchScalar DispatchLevel = iota // no SIMD, 16-byte batches
	DispatchSSE2                        // x86 128-bit
	DispatchAVX2                        // x86 256-bit
	DispatchAVX512                      // x86 512-bit
	DispatchNEON                        // arm64 128-bit
)

// levels holds the name and register width in bytes of each level.
var levels = [...]struct {
	name  string
	width int
}{
	DispatchScalar: {"scalar", 16},
	DispatchSSE2:   {"sse2", 16},
	DispatchAVX2:   {"avx2", 32},
	DispatchAVX512: {"avx512", 64},
	DispatchNEON:   {"neon", 16},
}

func (d DispatchLevel) String() string {
	if d < 0 || int(d) >= len(levels) {
		return "unknown"
	}
	return levels[d].name
}

// current is set once by the architecture's init via selectLevel.
var current = DispatchScalar

// selectLevel installs detected unless HWY_NO_SIMD asks for scalar batches.
func selectLevel(detected DispatchLevel) {
	if NoSimdEnv() {
		current = DispatchScalar
		return
	}
	current = detected
}

// CurrentWidth returns the batch width in bytes: 16, 32 or 64.
func CurrentWidth() int {
	return levels[current].width
}

// CurrentName returns the name of the level chosen at startup.
func CurrentName() string {
	return current.String()
}

// NoSimdEnv reports whether the HWY_NO_SIMD environment variable requests
// scalar batches. Any non-empty value other than a false boolean does.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	enabled, err := strconv.ParseBool(val)
	return err != nil || enabled
}

// MaxLanes returns how many T fit in one batch, e.g. 8 float32 or 4
// float64 with AVX2.
func MaxLanes[T Lanes]() int {
	var zero T
	return CurrentWidth() / int(unsafe.Sizeof(zero))
}

// AlignedSize rounds size up to a whole number of batches of T.
func AlignedSize[T Lanes](size int) int {
	lanes := MaxLanes[T]()
	return (size + lanes - 1) / lanes * lanes
}
