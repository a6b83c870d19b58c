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

// Package flow renders dense optical-flow fields as colour images.
//
// Flow direction selects a hue on a 55-entry colour wheel and flow
// magnitude selects saturation: a zero vector is white, a unit vector is the
// pure wheel colour, and anything longer than one is drawn at 75%
// brightness to mark it as out of range.
//
// # Colour Wheel
//
// The wheel is built from six ramps (red→yellow→green→cyan→blue→magenta→red)
// whose lengths follow perceptual spacing, so more entries sit between red
// and yellow than between yellow and green:
//
//	w, err := flow.BuildColorWheel() // 55 entries, channels in [0, 255]
//
// DefaultWheel returns a shared, lazily built copy.
//
// # Colourising
//
// A flow field is a two-channel image.Image of (dy, dx) per pixel:
//
//	f, _ := flow.Synthesize[float32](flow.PatternVortex, 640, 480)
//	rgb, err := flow.FlowToColor(f, true) // three channels in about [0, 1]
//
// ParallelFlowToColor splits rows across a workerpool.Pool; Colorize writes
// into a caller-provided image with any wheel.
//
// # Helpers
//
//	Normalize(f)        // scale so the longest vector has length 1
//	Key[float32](256)   // legend showing the colour of every direction
//	ColorAt(dy, dx)     // scalar colour of a single vector
package flow
