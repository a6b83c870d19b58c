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

package hwy

import (
	"testing"
)

func TestGatherIndex(t *testing.T) {
	table := []float64{10, 11, 12, 13, 14}
	idx := Vec[int32]{data: []int32{4, 0, -1, 5, 2}}

	got := GatherIndex(table, idx)
	want := []float64{14, 10, 0, 0, 12}
	if got.NumLanes() != len(want) {
		t.Fatalf("got %d lanes, want %d", got.NumLanes(), len(want))
	}
	for i := range want {
		if got.data[i] != want[i] {
			t.Errorf("lane %d: got %v, want %v", i, got.data[i], want[i])
		}
	}
}

func TestScatterIndex(t *testing.T) {
	dst := make([]float32, 4)
	v := Vec[float32]{data: []float32{1, 2, 3}}
	idx := Vec[int64]{data: []int64{3, 9, 0}}

	ScatterIndex(v, dst, idx)

	want := []float32{3, 0, 0, 1}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("index %d: got %v, want %v", i, dst[i], want[i])
		}
	}
}
