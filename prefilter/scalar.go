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

package prefilter

import "math"

// surviveScalar is the ground-truth reducer: it classifies one candidate
// with the same semantics as the batch kernel and handles stream tails
// shorter than a batch. Returns 1 if the candidate survives trial division
// against the 16 small primes, else 0.
//
// 0 and 1 need the explicit guard below: neither equals a table prime nor
// is divisible by one under Barrett remainders, so without the guard they
// would pass every check.
func surviveScalar(v uint64) byte {
	if v > math.MaxUint32 {
		return 0
	}
	if v < 2 {
		return 0
	}
	n := uint32(v)
	for i, p := range smallPrimes {
		if n == p {
			// The prime itself divides evenly but is not composite.
			continue
		}
		q := uint32((uint64(n) * uint64(barrettMu[i])) >> 32)
		r := n - q*p
		if r >= p {
			r -= p
		}
		if r == 0 {
			return 0
		}
	}
	return 1
}
