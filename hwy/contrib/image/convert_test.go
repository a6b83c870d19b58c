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
	"math"
	"testing"
)

func TestToNRGBA(t *testing.T) {
	for _, width := range testWidths {
		t.Run(widthName(width), func(t *testing.T) {
			img := NewImage[float32](width, 2, 3)
			for y := range 2 {
				for x := range width {
					img.SetPixel(x, y, float32(x%5)/4, 1-float32(y), 0.5)
				}
			}

			out, err := ToNRGBA(img)
			if err != nil {
				t.Fatalf("ToNRGBA: %v", err)
			}
			if b := out.Bounds(); b.Dx() != width || b.Dy() != 2 {
				t.Fatalf("bounds %v, want %dx2", b, width)
			}
			for y := range 2 {
				for x := range width {
					c := out.NRGBAAt(x, y)
					wantR := uint8(math.Round(float64(x%5) / 4 * 255))
					wantG := uint8(255 * (1 - y))
					if c.R != wantR || c.G != wantG || c.B != 128 || c.A != 255 {
						t.Errorf("pixel (%d,%d) = %v, want {%d %d 128 255}", x, y, c, wantR, wantG)
					}
				}
			}
		})
	}
}

func TestToNRGBAClamps(t *testing.T) {
	img := NewImage[float64](4, 1, 3)
	img.SetPixel(0, 0, -0.5, 1.5, math.NaN())
	img.SetPixel(1, 0, math.Inf(1), math.Inf(-1), 0.999)
	img.SetPixel(2, 0, 0.001, 0.75, 1)

	out, err := ToNRGBA(img)
	if err != nil {
		t.Fatalf("ToNRGBA: %v", err)
	}
	tests := []struct {
		x       int
		r, g, b uint8
	}{
		{0, 0, 255, 0},
		{1, 255, 0, 255},
		{2, 0, 191, 255},
		{3, 0, 0, 0},
	}
	for _, tt := range tests {
		c := out.NRGBAAt(tt.x, 0)
		if c.R != tt.r || c.G != tt.g || c.B != tt.b || c.A != 255 {
			t.Errorf("pixel %d = %v, want {%d %d %d 255}", tt.x, c, tt.r, tt.g, tt.b)
		}
	}
}

func TestToNRGBAShape(t *testing.T) {
	if _, err := ToNRGBA(NewImage[float32](2, 2, 2)); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("got %v, want ErrInvalidShape", err)
	}
}
