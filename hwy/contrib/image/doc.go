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

// Package image provides interleaved multi-channel 2D images for the flow
// visualisation kernels.
//
// An Image[T] stores Channels() values per pixel, pixel-major within a row
// (a flow field is [dy0, dx0, dy1, dx1, ...], a colour field is
// [r0, g0, b0, r1, g1, b1, ...]). Rows are padded to a whole number of
// vectors so kernels can load full batches up to the row end.
//
// # Usage Example
//
//	flow := image.NewImage[float32](1920, 1080, 2)
//	row := flow.RowSlice(0) // 2*1920 values
//
// Images that already exist as packed slices are wrapped without copying:
//
//	flow, err := image.FromSlice(data, width, height, 2)
//
// # Gathering
//
// PairedIndices and Gather look pixels up by (row, col) coordinates stored
// in a two-channel int32 image.
//
// # Conversion
//
// ToNRGBA scales a three-channel [0, 1] image into an 8-bit *image.NRGBA for
// encoding by the caller.
package image
