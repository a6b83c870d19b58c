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

// Package math provides lane-wise transcendental functions for hwy vectors.
//
// The portable implementations apply the standard library function to each
// lane, so results match package math bit for bit; kernels built on them can
// be checked against scalar references without tolerances.
//
// Trigonometric:
//   - Atan2(y, x Vec[T]) Vec[T]
package math
