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

// cmplxcheck runs the complex Log10 conformance checks and exits non-zero
// on the first mismatch.
//
// Usage:
//
//	cmplxcheck [run] [--config file.yaml] [--log-level debug] [--repeat N]
//	           [--log10-broken] [--no-double]
//	cmplxcheck cases
//
// Environment variables CMPLX_NO_FLOAT32, CMPLX_NO_DOUBLE,
// CMPLX_LOG10_BROKEN, CMPLX_LOG10_USING_DOUBLE, CMPLX_REPEAT and
// CMPLX_LOG_LEVEL override the config file; flags override both.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "cmplxcheck:", err)
		os.Exit(exitCode(err))
	}
}
