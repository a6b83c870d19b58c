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
)

// Key renders a size x size legend of the colour coding. The pixel at
// offset (dy, dx) from the centre shows the colour of that flow vector,
// scaled so the inscribed circle has radius 1; the corners lie outside it
// and appear dimmed.
func Key[T hwy.Floats](size int) (*image.Image[T], error) {
	field, err := Synthesize[T](PatternRadial, size, size)
	if err != nil {
		return nil, err
	}
	return FlowToColor(field, true)
}
