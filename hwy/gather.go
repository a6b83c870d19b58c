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

// GatherIndex returns the batch whose lane i is src[indices[i]]. Lanes with
// an index outside src read zero.
func GatherIndex[T Lanes, I ~int32 | ~int64](src []T, indices Vec[I]) Vec[T] {
	return mapLanes(indices, func(idx I) T {
		if idx < 0 || int64(idx) >= int64(len(src)) {
			var zero T
			return zero
		}
		return src[idx]
	})
}

// ScatterIndex writes lane i of v to dst[indices[i]], skipping indices
// outside dst.
func ScatterIndex[T Lanes, I ~int32 | ~int64](v Vec[T], dst []T, indices Vec[I]) {
	for i, idx := range indices.data[:min(len(indices.data), len(v.data))] {
		if idx >= 0 && int64(idx) < int64(len(dst)) {
			dst[idx] = v.data[i]
		}
	}
}
