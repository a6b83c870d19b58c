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
	"github.com/ajroetker/go-flowviz/hwy"
	"github.com/ajroetker/go-flowviz/hwy/contrib/image"
	"github.com/ajroetker/go-flowviz/hwy/contrib/workerpool"
)

// Row kernels per element type. Set to the Base implementations in init;
// a target-specific file may replace them.
var (
	flowRowsFloat32 func(flow, out *image.Image[float32], wheel *Wheel, y0, y1 int)
	flowRowsFloat64 func(flow, out *image.Image[float64], wheel *Wheel, y0, y1 int)
)

func init() {
	flowRowsFloat32 = BaseFlowToColorRows[float32]
	flowRowsFloat64 = BaseFlowToColorRows[float64]
}

// minPixelsPerTask is the smallest amount of work handed to a pool worker.
const minPixelsPerTask = 16 * 1024

// FlowToColor colours a two-channel (dy, dx) flow field with the default
// wheel and returns a new three-channel image of the same size.
//
// Direction picks the hue and magnitude the saturation: (0, 0) is white, a
// unit vector is the pure wheel colour and vectors longer than one are
// dimmed to 75%. Output values lie in about [0, 1] and are not clamped.
//
// normalized reports whether the displacements were already scaled into
// [-1, 1] (see Normalize). The arithmetic is the same either way.
func FlowToColor[T hwy.Floats](flow *image.Image[T], normalized bool) (*image.Image[T], error) {
	if err := image.CheckChannels("FlowToColor", flow, 2); err != nil {
		return nil, err
	}
	out := image.NewImage[T](flow.Width(), flow.Height(), 3)
	colorizeRows(flow, out, DefaultWheel(), nil)
	return out, nil
}

// FlowToColorInto is FlowToColor writing into dst, which must be a
// three-channel image of the same size as flow. dst is left untouched on
// error.
func FlowToColorInto[T hwy.Floats](flow, dst *image.Image[T], normalized bool) error {
	return Colorize(flow, dst, nil, nil)
}

// ParallelFlowToColor is FlowToColor with rows split across pool.
// The result is identical to the serial path. A nil pool runs serially.
func ParallelFlowToColor[T hwy.Floats](pool *workerpool.Pool, flow *image.Image[T], normalized bool) (*image.Image[T], error) {
	if err := image.CheckChannels("ParallelFlowToColor", flow, 2); err != nil {
		return nil, err
	}
	out := image.NewImage[T](flow.Width(), flow.Height(), 3)
	colorizeRows(flow, out, DefaultWheel(), pool)
	return out, nil
}

// Colorize colours flow into dst using wheel, splitting rows across pool.
// A nil wheel means DefaultWheel and a nil pool runs on the calling
// goroutine.
func Colorize[T hwy.Floats](flow, dst *image.Image[T], wheel *Wheel, pool *workerpool.Pool) error {
	if err := image.CheckChannels("Colorize", flow, 2); err != nil {
		return err
	}
	if err := image.CheckChannels("Colorize", dst, 3); err != nil {
		return err
	}
	if err := image.CheckSameSize("Colorize", flow, dst); err != nil {
		return err
	}
	if wheel == nil {
		wheel = DefaultWheel()
	}
	colorizeRows(flow, dst, wheel, pool)
	return nil
}

func colorizeRows[T hwy.Floats](flow, out *image.Image[T], wheel *Wheel, pool *workerpool.Pool) {
	height := flow.Height()
	if flow.Empty() {
		return
	}
	if pool == nil || pool.NumWorkers() <= 1 {
		flowRows(flow, out, wheel, 0, height)
		return
	}
	minRows := max(1, minPixelsPerTask/flow.Width())
	pool.ParallelRows(height, minRows, func(y0, y1 int) {
		flowRows(flow, out, wheel, y0, y1)
	})
}

// flowRows routes to the row kernel registered for T.
func flowRows[T hwy.Floats](flow, out *image.Image[T], wheel *Wheel, y0, y1 int) {
	switch f := any(flow).(type) {
	case *image.Image[float32]:
		flowRowsFloat32(f, any(out).(*image.Image[float32]), wheel, y0, y1)
	case *image.Image[float64]:
		flowRowsFloat64(f, any(out).(*image.Image[float64]), wheel, y0, y1)
	default:
		BaseFlowToColorRows(flow, out, wheel, y0, y1)
	}
}
