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
	"fmt"

	"github.com/ajroetker/go-flowviz/hwy"
)

// Image is an interleaved multi-channel 2D array.
// Each row holds width*channels values followed by padding up to a whole
// number of vectors, so kernels may load full batches at the row end.
type Image[T hwy.Lanes] struct {
	data     []T
	width    int
	height   int
	channels int
	stride   int // elements per row (includes padding)
}

// NewImage creates a zeroed image with the given size and channel count.
// A non-positive size yields an empty image that still reports its
// channel count; channels below 1 are treated as 1.
func NewImage[T hwy.Lanes](width, height, channels int) *Image[T] {
	if channels < 1 {
		channels = 1
	}
	if width <= 0 || height <= 0 {
		return &Image[T]{channels: channels}
	}

	// Round pixels up to the vector width, then expand to channels.
	stride := hwy.AlignedSize[T](width) * channels

	return &Image[T]{
		data:     make([]T, stride*height),
		width:    width,
		height:   height,
		channels: channels,
		stride:   stride,
	}
}

// FromSlice wraps a tightly packed (height, width, channels) slice without
// copying. Rows have no padding, so the stride is width*channels.
func FromSlice[T hwy.Lanes](data []T, width, height, channels int) (*Image[T], error) {
	if width < 0 || height < 0 || channels < 1 {
		return nil, &ShapeError{
			Op:     "FromSlice",
			Reason: fmt.Sprintf("bad dimensions %dx%dx%d", height, width, channels),
		}
	}
	if len(data) != width*height*channels {
		return nil, &ShapeError{
			Op:     "FromSlice",
			Reason: fmt.Sprintf("len %d does not match %dx%dx%d", len(data), height, width, channels),
		}
	}
	if width == 0 || height == 0 {
		return &Image[T]{channels: channels}, nil
	}
	return &Image[T]{
		data:     data,
		width:    width,
		height:   height,
		channels: channels,
		stride:   width * channels,
	}, nil
}

// Width returns the image width in pixels.
func (img *Image[T]) Width() int {
	return img.width
}

// Height returns the image height in pixels.
func (img *Image[T]) Height() int {
	return img.height
}

// Channels returns the number of values per pixel.
func (img *Image[T]) Channels() int {
	return img.channels
}

// Stride returns the number of elements per row (including padding).
func (img *Image[T]) Stride() int {
	return img.stride
}

// Empty reports whether the image has no pixels.
func (img *Image[T]) Empty() bool {
	return img.width == 0 || img.height == 0
}

// Row returns a mutable slice for row y, including padding elements.
func (img *Image[T]) Row(y int) []T {
	if y < 0 || y >= img.height || img.data == nil {
		return nil
	}
	start := y * img.stride
	return img.data[start : start+img.stride]
}

// RowSlice returns a mutable slice for row y limited to width*channels
// values.
func (img *Image[T]) RowSlice(y int) []T {
	if y < 0 || y >= img.height || img.data == nil {
		return nil
	}
	start := y * img.stride
	return img.data[start : start+img.width*img.channels]
}

// Pixel returns the channels of pixel (x, y) as a mutable slice, or nil when
// out of bounds.
func (img *Image[T]) Pixel(x, y int) []T {
	if x < 0 || x >= img.width || y < 0 || y >= img.height || img.data == nil {
		return nil
	}
	start := y*img.stride + x*img.channels
	return img.data[start : start+img.channels]
}

// At returns channel c of pixel (x, y), or zero when out of bounds.
func (img *Image[T]) At(x, y, c int) T {
	px := img.Pixel(x, y)
	if c < 0 || c >= len(px) {
		var zero T
		return zero
	}
	return px[c]
}

// Set sets channel c of pixel (x, y). Out-of-bounds writes are ignored.
func (img *Image[T]) Set(x, y, c int, value T) {
	px := img.Pixel(x, y)
	if c < 0 || c >= len(px) {
		return
	}
	px[c] = value
}

// SetPixel sets all channels of pixel (x, y) from values.
func (img *Image[T]) SetPixel(x, y int, values ...T) {
	copy(img.Pixel(x, y), values)
}

// SameSize returns true if both images have the same width and height.
func SameSize[T, U hwy.Lanes](a *Image[T], b *Image[U]) bool {
	return a.width == b.width && a.height == b.height
}

// Fill sets every value, padding included, to value.
func (img *Image[T]) Fill(value T) {
	for i := range img.data {
		img.data[i] = value
	}
}
