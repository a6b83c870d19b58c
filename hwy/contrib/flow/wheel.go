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
	"sync"

	"github.com/ajroetker/go-flowviz/hwy"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/samber/lo"
)

// Segment lengths of the default wheel. Hues are spaced perceptually, so
// red to yellow gets far more entries than yellow to green.
const (
	RY = 15
	YG = 6
	GC = 4
	CB = 11
	BM = 13
	MR = 6
)

// MaxWheelSize is the largest number of entries a wheel may hold.
const MaxWheelSize = 60

// RGB is an (r, g, b) triple. Wheel entries use [0, 255]; colours returned
// by ColorAt use [0, 1].
type RGB = [3]float64

// Segment is one linear ramp of a wheel. Entry i of the segment is
// From + (To - From) * i / Length per channel, so To itself is not part of
// the segment and is normally the From of the next one.
type Segment struct {
	Name   string
	Length int
	From   RGB
	To     RGB
}

// DefaultSegments returns the six ramps of the standard 55-entry wheel:
// red, yellow, green, cyan, blue, magenta and back to red.
func DefaultSegments() []Segment {
	var (
		red     = RGB{255, 0, 0}
		yellow  = RGB{255, 255, 0}
		green   = RGB{0, 255, 0}
		cyan    = RGB{0, 255, 255}
		blue    = RGB{0, 0, 255}
		magenta = RGB{255, 0, 255}
	)
	return []Segment{
		{Name: "RY", Length: RY, From: red, To: yellow},
		{Name: "YG", Length: YG, From: yellow, To: green},
		{Name: "GC", Length: GC, From: green, To: cyan},
		{Name: "CB", Length: CB, From: cyan, To: blue},
		{Name: "BM", Length: BM, From: blue, To: magenta},
		{Name: "MR", Length: MR, From: magenta, To: red},
	}
}

// Wheel is an immutable, ordered palette indexed by flow direction.
// Index Len() wraps to 0.
type Wheel struct {
	entries []RGB
}

// BuildColorWheel builds the standard 55-entry wheel.
func BuildColorWheel() (*Wheel, error) {
	return BuildWheel(DefaultSegments())
}

// BuildWheel concatenates the ramps of segments into a wheel.
//
// It returns a *ConfigError when a segment length is negative or the total
// is zero or exceeds MaxWheelSize.
func BuildWheel(segments []Segment) (*Wheel, error) {
	total := lo.SumBy(segments, func(s Segment) int { return s.Length })
	if bad, ok := lo.Find(segments, func(s Segment) bool { return s.Length < 0 }); ok {
		return nil, &ConfigError{Total: total, Reason: "segment " + bad.Name + " has negative length"}
	}
	switch {
	case total == 0:
		return nil, &ConfigError{Total: total, Reason: "wheel is empty"}
	case total > MaxWheelSize:
		return nil, &ConfigError{Total: total, Reason: "exceeds MaxWheelSize"}
	}

	entries := make([]RGB, 0, total)
	for _, seg := range segments {
		for i := range seg.Length {
			var e RGB
			for c := range e {
				e[c] = seg.From[c] + (seg.To[c]-seg.From[c])*float64(i)/float64(seg.Length)
			}
			entries = append(entries, e)
		}
	}
	return &Wheel{entries: entries}, nil
}

var defaultWheel = sync.OnceValues(BuildColorWheel)

// DefaultWheel returns the shared standard wheel, building it on first use.
// It panics if the built-in segments are invalid.
func DefaultWheel() *Wheel {
	w, err := defaultWheel()
	if err != nil {
		panic(err)
	}
	return w
}

// Len returns the number of entries.
func (w *Wheel) Len() int {
	return len(w.entries)
}

// At returns entry i modulo Len(), with channels in [0, 255].
func (w *Wheel) At(i int) RGB {
	n := len(w.entries)
	i %= n
	if i < 0 {
		i += n
	}
	return w.entries[i]
}

// Entries returns a copy of all entries.
func (w *Wheel) Entries() []RGB {
	return append([]RGB(nil), w.entries...)
}

// Color returns entry i as a colorful.Color with channels in [0, 1].
func (w *Wheel) Color(i int) colorful.Color {
	e := w.At(i)
	return colorful.Color{R: e[0] / 255, G: e[1] / 255, B: e[2] / 255}
}

// Hex returns entry i as a "#rrggbb" string.
func (w *Wheel) Hex(i int) string {
	return w.Color(i).Hex()
}

// channelTables splits the wheel into one table per channel, scaled to
// [0, 1], for use with hwy.GatherIndex.
func channelTables[T hwy.Floats](w *Wheel) [3][]T {
	var tables [3][]T
	for c := range tables {
		tables[c] = make([]T, len(w.entries))
		for i, e := range w.entries {
			tables[c][i] = T(e[c] / 255)
		}
	}
	return tables
}
