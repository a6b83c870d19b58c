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
	"errors"
	"testing"
)

func TestPairedIndices(t *testing.T) {
	for _, width := range testWidths {
		t.Run(widthName(width), func(t *testing.T) {
			height := 3
			coords := NewImage[int32](width, height, 2)
			for y := range height {
				for x := range width {
					coords.SetPixel(x, y, int32(y*10), int32(x))
				}
			}

			rows, cols, err := PairedIndices(coords)
			if err != nil {
				t.Fatalf("PairedIndices: %v", err)
			}
			// One entry per pixel in each list, no duplication.
			if len(rows) != width*height || len(cols) != width*height {
				t.Fatalf("got %d rows, %d cols, want %d each", len(rows), len(cols), width*height)
			}
			for y := range height {
				for x := range width {
					i := y*width + x
					if rows[i] != int32(y*10) || cols[i] != int32(x) {
						t.Errorf("pixel (%d,%d): got (%d,%d), want (%d,%d)", x, y, rows[i], cols[i], y*10, x)
					}
				}
			}
		})
	}
}

func TestPairedIndicesShape(t *testing.T) {
	_, _, err := PairedIndices(NewImage[int32](4, 4, 3))
	if !errors.Is(err, ErrInvalidShape) {
		t.Errorf("got %v, want ErrInvalidShape", err)
	}
}

func TestGather(t *testing.T) {
	// 3x2 source, 3 channels: pixel (x, y) = (y, x, 100*y+x).
	src := NewImage[float64](3, 2, 3)
	for y := range 2 {
		for x := range 3 {
			src.SetPixel(x, y, float64(y), float64(x), float64(100*y+x))
		}
	}

	for _, width := range testWidths {
		t.Run(widthName(width), func(t *testing.T) {
			coords := NewImage[int32](width, 2, 2)
			for y := range 2 {
				for x := range width {
					// Cycle through valid and out-of-range coordinates.
					coords.SetPixel(x, y, int32(x%3)-int32(y), int32(x%4))
				}
			}

			out, err := Gather(src, coords)
			if err != nil {
				t.Fatalf("Gather: %v", err)
			}
			if out.Width() != width || out.Height() != 2 || out.Channels() != 3 {
				t.Fatalf("got %dx%dx%d, want %dx2x3", out.Width(), out.Height(), out.Channels(), width)
			}
			for y := range 2 {
				for x := range width {
					r, c := x%3-y, x%4
					want := []float64{0, 0, 0}
					if r >= 0 && r < 2 && c < 3 {
						want = []float64{float64(r), float64(c), float64(100*r + c)}
					}
					got := out.Pixel(x, y)
					for ch := range 3 {
						if got[ch] != want[ch] {
							t.Errorf("pixel (%d,%d) ch %d: got %v, want %v", x, y, ch, got[ch], want[ch])
						}
					}
				}
			}
		})
	}
}

func TestGatherErrors(t *testing.T) {
	src := NewImage[float32](2, 2, 1)
	if _, err := Gather(src, NewImage[int32](2, 2, 1)); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("one-channel coords: got %v, want ErrInvalidShape", err)
	}
	if _, err := Gather[float32](nil, NewImage[int32](2, 2, 2)); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("nil source: got %v, want ErrInvalidShape", err)
	}
}
