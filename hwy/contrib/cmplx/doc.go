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

// Package cmplx provides complex-number transcendental functions that are
// generic over the lane precision.
//
// Complex[T] is an (Re, Im) pair for T in hwy.Floats, so the same code
// serves complex64-like and complex128-like values. Results follow the
// IEEE-754 rules for signed zero and NaN propagation, and the special
// cases of C99 Annex G as implemented by Go's math/cmplx.
//
// # Scalar Functions
//
//   - Abs(z) - |z|, computed with hypot
//   - Arg(z) - principal argument in [-Pi, Pi]
//   - Log(z) - principal natural logarithm
//   - Log10(z) - Log(z) / ln(10)
//   - Log2(z) - Log(z) / ln(2)
//
// # Bulk Functions
//
//   - BaseLog(input, output []Complex[T])
//   - BaseLog10(input, output []Complex[T])
//   - Log10Vec(re, im hwy.Vec[T]) (hwy.Vec[T], hwy.Vec[T])
//
// # Example Usage
//
//	z := cmplx.New[float64](0, 0)
//	r := cmplx.Log10(z) // (-Inf+0i)
package cmplx
