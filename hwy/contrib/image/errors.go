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
	"fmt"

	"github.com/ajroetker/go-flowviz/hwy"
)

// ErrInvalidShape is returned when an image's channel count or size does
// not match what an operation requires.
var ErrInvalidShape = errors.New("invalid shape")

// ShapeError describes which operation rejected an image and why.
// It unwraps to ErrInvalidShape.
type ShapeError struct {
	Op     string
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %v: %s", e.Op, ErrInvalidShape, e.Reason)
}

func (e *ShapeError) Unwrap() error {
	return ErrInvalidShape
}

// CheckChannels returns a *ShapeError unless img is non-nil and has the
// given number of channels.
func CheckChannels[T hwy.Lanes](op string, img *Image[T], channels int) error {
	if img == nil {
		return &ShapeError{Op: op, Reason: "nil image"}
	}
	if img.channels != channels {
		return &ShapeError{
			Op:     op,
			Reason: fmt.Sprintf("got %d channels, want %d", img.channels, channels),
		}
	}
	return nil
}

// CheckSameSize returns a *ShapeError unless a and b have the same width
// and height.
func CheckSameSize[T, U hwy.Lanes](op string, a *Image[T], b *Image[U]) error {
	if a == nil || b == nil {
		return &ShapeError{Op: op, Reason: "nil image"}
	}
	if !SameSize(a, b) {
		return &ShapeError{
			Op:     op,
			Reason: fmt.Sprintf("size %dx%d does not match %dx%d", a.width, a.height, b.width, b.height),
		}
	}
	return nil
}
