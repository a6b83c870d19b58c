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
	"errors"
	"fmt"
	stdmath "math"
	"testing"

	"github.com/ajroetker/go-flowviz/hwy/contrib/image"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatterns(t *testing.T) {
	assert.Equal(t, []Pattern{PatternRadial, PatternRamp, PatternVortex}, Patterns())
	for _, p := range Patterns() {
		assert.NotEmpty(t, p.Describe(), "pattern %s", p)
	}
	assert.Empty(t, Pattern("spiral").Describe())
}

func TestSynthesizeRamp(t *testing.T) {
	for _, width := range testWidths {
		t.Run(fmt.Sprintf("width=%d", width), func(t *testing.T) {
			const height = 4
			f, err := Synthesize[float32](PatternRamp, width, height)
			require.NoError(t, err)
			require.Equal(t, 2, f.Channels())
			for y := range height {
				for x := range width {
					p := float32(y*width + x)
					assert.Equal(t, p, f.At(x, y, 0), "dy at (%d, %d)", x, y)
					assert.Equal(t, float32(width*height-1)-p, f.At(x, y, 1), "dx at (%d, %d)", x, y)
				}
			}
		})
	}
}

func TestSynthesizeVortexAndRadial(t *testing.T) {
	const width, height = 21, 11
	vortex, err := Synthesize[float64](PatternVortex, width, height)
	require.NoError(t, err)
	radial, err := Synthesize[float64](PatternRadial, width, height)
	require.NoError(t, err)

	// Centre (10, 5), radius 10.
	assert.Equal(t, []float64{0, 0}, vortex.Pixel(10, 5))
	assert.Equal(t, []float64{0, 0}, radial.Pixel(10, 5))

	assert.Equal(t, []float64{1, 0}, vortex.Pixel(20, 5))
	assert.Equal(t, []float64{0, 1}, radial.Pixel(20, 5))
	assert.Equal(t, []float64{0, -0.5}, vortex.Pixel(10, 10))
	assert.Equal(t, []float64{0.5, 0}, radial.Pixel(10, 10))

	for y := range height {
		for x := range width {
			v, r := vortex.Pixel(x, y), radial.Pixel(x, y)
			// Same length, perpendicular directions.
			assert.InDelta(t, stdmath.Hypot(r[0], r[1]), stdmath.Hypot(v[0], v[1]), 1e-12)
			assert.InDelta(t, 0, v[0]*r[0]+v[1]*r[1], 1e-12)
		}
	}
}

func TestSynthesizeSinglePixel(t *testing.T) {
	f, err := Synthesize[float32](PatternRadial, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0}, f.Pixel(0, 0))
}

func TestSynthesizeErrors(t *testing.T) {
	_, err := Synthesize[float32]("spiral", 4, 4)
	assert.True(t, errors.Is(err, ErrUnknownPattern))

	_, err = Synthesize[float32](PatternRamp, 0, 4)
	assert.True(t, errors.Is(err, ErrInvalidShape))

	_, err = Synthesize[float32](PatternVortex, 4, -1)
	assert.True(t, errors.Is(err, ErrInvalidShape))
}

func TestNormalize(t *testing.T) {
	f, err := Synthesize[float64](PatternRamp, 10, 10)
	require.NoError(t, err)

	maxRad, err := Normalize(f)
	require.NoError(t, err)
	assert.InDelta(t, 99, maxRad, 1e-12)

	after, err := MaxMagnitude(f)
	require.NoError(t, err)
	assert.InDelta(t, 1, after, 1e-12)

	assert.InDelta(t, 0, f.At(0, 0, 0), 1e-12)
	assert.InDelta(t, 1, f.At(0, 0, 1), 1e-12)
	assert.InDelta(t, 1, f.At(9, 9, 0), 1e-12)
	for y := range f.Height() {
		for _, v := range f.RowSlice(y) {
			assert.LessOrEqual(t, stdmath.Abs(v), 1+1e-12)
		}
	}
}

func TestNormalizeZeroField(t *testing.T) {
	f := image.NewImage[float32](5, 3, 2)
	maxRad, err := Normalize(f)
	require.NoError(t, err)
	assert.Equal(t, float32(0), maxRad)
	for y := range f.Height() {
		for _, v := range f.RowSlice(y) {
			assert.Equal(t, float32(0), v)
		}
	}
}

func TestNormalizeIgnoresNaN(t *testing.T) {
	f := newFlow(3, 1, func(x, y int) (float64, float64) {
		if x == 1 {
			return stdmath.NaN(), 0
		}
		return 0, 2
	})
	maxRad, err := Normalize(f)
	require.NoError(t, err)
	assert.Equal(t, 2.0, maxRad)
	assert.Equal(t, []float64{0, 1}, f.Pixel(0, 0))
}

func TestNormalizeLargeFloat32(t *testing.T) {
	tests := []struct {
		name    string
		dy, dx  float32
		wantRad float64
		want    []float32
	}{
		{"squares overflow", 3e19, 4e19, 5e19, []float32{0.6, 0.8}},
		{"length overflows", 3e38, 3e38, stdmath.Inf(1), []float32{0.70710677, 0.70710677}},
		{"negative components", -3e38, 2.5e38, stdmath.Inf(1), []float32{-0.76822, 0.64018}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFlow(5, 2, func(x, y int) (float32, float32) {
				if x == 3 && y == 1 {
					return tt.dy, tt.dx
				}
				return 0, 0
			})
			maxRad, err := Normalize(f)
			require.NoError(t, err)
			if stdmath.IsInf(tt.wantRad, 1) {
				assert.True(t, stdmath.IsInf(float64(maxRad), 1), "maxRad = %v", maxRad)
			} else {
				assert.InEpsilon(t, tt.wantRad, float64(maxRad), 1e-6)
			}
			got := f.Pixel(3, 1)
			assert.InDelta(t, tt.want[0], got[0], 1e-4)
			assert.InDelta(t, tt.want[1], got[1], 1e-4)
			assert.Equal(t, []float32{0, 0}, f.Pixel(0, 0))
		})
	}
}

func TestMaxMagnitudeNoSquareOverflow(t *testing.T) {
	f := newFlow(4, 1, func(x, y int) (float32, float32) {
		return float32(x) * 1e19, float32(x) * 1e19
	})
	maxRad, err := MaxMagnitude(f)
	require.NoError(t, err)
	assert.InEpsilon(t, 3e19*stdmath.Sqrt2, float64(maxRad), 1e-6)
}

func TestNormalizeInfiniteComponent(t *testing.T) {
	inf := float32(stdmath.Inf(1))
	f := newFlow(3, 1, func(x, y int) (float32, float32) {
		if x == 2 {
			return inf, 1
		}
		return 2, 0
	})
	maxRad, err := Normalize(f)
	require.NoError(t, err)
	assert.True(t, stdmath.IsInf(float64(maxRad), 1))
	assert.Equal(t, []float32{2, 0}, f.Pixel(0, 0))
	assert.Equal(t, []float32{inf, 1}, f.Pixel(2, 0))
}

func TestScale(t *testing.T) {
	f := newFlow(9, 2, func(x, y int) (float32, float32) { return float32(x), float32(-y) })
	require.NoError(t, Scale(f, 0.5))
	for y := range 2 {
		for x := range 9 {
			assert.Equal(t, []float32{float32(x) * 0.5, float32(-y) * 0.5}, f.Pixel(x, y))
		}
	}
}

func TestNormalizeShape(t *testing.T) {
	_, err := Normalize(image.NewImage[float64](3, 3, 3))
	assert.True(t, errors.Is(err, ErrInvalidShape))
	_, err = MaxMagnitude[float32](nil)
	assert.True(t, errors.Is(err, ErrInvalidShape))
	assert.True(t, errors.Is(Scale(image.NewImage[float64](3, 3, 1), 2), ErrInvalidShape))
}

func TestKey(t *testing.T) {
	const size = 65
	key, err := Key[float64](size)
	require.NoError(t, err)
	require.Equal(t, size, key.Width())
	require.Equal(t, size, key.Height())
	require.Equal(t, 3, key.Channels())

	assert.Equal(t, [3]float64{1, 1, 1}, pixelRGB(key, 32, 32))

	// Right edge midpoint is the unit vector (0, 1).
	right := pixelRGB(key, 64, 32)
	want := ColorAt(0, 1)
	assert.InDeltaSlice(t, want[:], right[:], 1e-12)

	// Corners lie outside the unit circle.
	corner := pixelRGB(key, 0, 0)
	want = ColorAt(-1, -1)
	assert.InDeltaSlice(t, want[:], corner[:], 1e-12)
	for _, v := range corner {
		assert.LessOrEqual(t, v, 0.75+1e-12)
	}

	_, err = Key[float32](0)
	assert.True(t, errors.Is(err, ErrInvalidShape))
}
