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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildColorWheel(t *testing.T) {
	w, err := BuildColorWheel()
	require.NoError(t, err)
	require.Equal(t, 55, w.Len())

	for i, e := range w.Entries() {
		for c, v := range e {
			assert.GreaterOrEqual(t, v, 0.0, "entry %d channel %d", i, c)
			assert.LessOrEqual(t, v, 255.0, "entry %d channel %d", i, c)
		}
	}
}

func TestBuildColorWheelDeterministic(t *testing.T) {
	a, err := BuildColorWheel()
	require.NoError(t, err)
	b, err := BuildColorWheel()
	require.NoError(t, err)
	if diff := cmp.Diff(a.Entries(), b.Entries()); diff != "" {
		t.Errorf("wheels differ (-first +second):\n%s", diff)
	}
}

func TestWheelEntries(t *testing.T) {
	w := DefaultWheel()
	tests := []struct {
		name  string
		index int
		want  RGB
	}{
		{"red", 0, RGB{255, 0, 0}},
		{"first RY step", 1, RGB{255, 17, 0}},
		{"yellow", 15, RGB{255, 255, 0}},
		{"first YG step", 16, RGB{212.5, 255, 0}},
		{"green", 21, RGB{0, 255, 0}},
		{"first GC step", 22, RGB{0, 255, 63.75}},
		{"cyan", 25, RGB{0, 255, 255}},
		{"blue", 36, RGB{0, 0, 255}},
		{"magenta", 49, RGB{255, 0, 255}},
		{"last", 54, RGB{255, 0, 42.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.At(tt.index))
		})
	}
}

func TestWheelAtWraps(t *testing.T) {
	w := DefaultWheel()
	assert.Equal(t, w.At(0), w.At(55))
	assert.Equal(t, w.At(54), w.At(-1))
	assert.Equal(t, w.At(3), w.At(3+2*55))
}

func TestWheelEntriesIsCopy(t *testing.T) {
	w := DefaultWheel()
	entries := w.Entries()
	entries[0] = RGB{1, 2, 3}
	assert.Equal(t, RGB{255, 0, 0}, w.At(0))
}

func TestWheelHex(t *testing.T) {
	w := DefaultWheel()
	assert.Equal(t, "#ff0000", w.Hex(0))
	assert.Equal(t, "#ffff00", w.Hex(15))
	assert.Equal(t, "#00ff00", w.Hex(21))
	assert.Equal(t, "#0000ff", w.Hex(36))
	assert.Equal(t, "#ff00ff", w.Hex(49))

	c := w.Color(36)
	assert.Equal(t, 0.0, c.R)
	assert.Equal(t, 0.0, c.G)
	assert.Equal(t, 1.0, c.B)
}

func TestDefaultWheelShared(t *testing.T) {
	assert.Same(t, DefaultWheel(), DefaultWheel())
}

func TestBuildWheelConfigErrors(t *testing.T) {
	tests := []struct {
		name      string
		segments  []Segment
		wantTotal int
	}{
		{
			name: "too long",
			segments: append(DefaultSegments(),
				Segment{Name: "extra", Length: 6, From: RGB{255, 0, 0}, To: RGB{0, 0, 0}}),
			wantTotal: 61,
		},
		{
			name:      "empty",
			segments:  nil,
			wantTotal: 0,
		},
		{
			name: "negative",
			segments: []Segment{
				{Name: "RY", Length: 10},
				{Name: "YG", Length: -2},
			},
			wantTotal: 8,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := BuildWheel(tt.segments)
			assert.Nil(t, w)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfiguration))

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.wantTotal, cfgErr.Total)
		})
	}
}

func TestBuildWheelCustom(t *testing.T) {
	segments := []Segment{
		{Name: "up", Length: 30, From: RGB{0, 0, 0}, To: RGB{255, 255, 255}},
		{Name: "down", Length: 30, From: RGB{255, 255, 255}, To: RGB{0, 0, 0}},
	}
	w, err := BuildWheel(segments)
	require.NoError(t, err)
	assert.Equal(t, MaxWheelSize, w.Len())
	assert.Equal(t, RGB{8.5, 8.5, 8.5}, w.At(1))
	assert.Equal(t, RGB{255, 255, 255}, w.At(30))
}
