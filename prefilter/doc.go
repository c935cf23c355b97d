// Copyright 2025 go-primefilter Authors
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

// Package prefilter implements a batched composite-number prefilter for
// 64-bit candidate integers, intended as the first stage of a primality
// pipeline.
//
// A candidate "survives" when trial division against the 16 primes up to 53
// cannot rule it out: it is at most 2^32-1, is at least 2, and either equals
// one of the 16 primes or is divisible by none of them. Survival is not a
// primality proof; composites whose smallest factor exceeds 53 pass through
// by design, and a separate confirmation stage (for example Miller-Rabin)
// is expected to consume the survivors. The filter never produces a false
// negative: every true prime up to 2^32-1 survives. Values above 2^32-1 are
// outside the filter's domain and are always reported as eliminated.
//
// Divisibility is tested with Barrett reduction, so the batch path contains
// no division instructions. A wheel prefilter (mod 30, optionally mod 210)
// rejects most candidates before the 16-prime loop runs; all strategies
// produce bit-identical results and differ only in speed.
//
//	out := make([]byte, len(candidates))
//	prefilter.Filter(candidates, out) // out[i] == 1 iff candidates[i] survives
//
//	bitmap := make([]byte, prefilter.BitmapLen(len(candidates)))
//	prefilter.FilterBitmap(candidates, bitmap)
//
// All buffers are caller-owned; the functions are pure and reentrant, so
// callers may partition the input and filter chunks concurrently (see the
// pipeline subpackage).
package prefilter
