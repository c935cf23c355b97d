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

import "github.com/gosimd/go-primefilter/lane"

// filterBatch classifies one batch of up to lane.MaxLanes[uint32]
// candidates. The returned mask has a set lane for every survivor.
//
// Stages: narrow the 64-bit loads to 32-bit lanes, build the eligibility
// mask (fits in 32 bits, at least 2), apply the wheel with a whole-batch
// early exit, then run the Barrett loop over the primes the wheel does not
// cover. Eligibility is ANDed at the end as well as into the wheel mask so
// an oversized lane can never survive regardless of its low 32 bits.
func filterBatch(src []uint64, w Wheel) lane.Mask[uint32] {
	n := lane.Narrow64(src)
	hi := lane.High64(src)

	eligible := lane.Equal(hi, lane.Zero[uint32]())
	eligible = lane.MaskAnd(eligible, lane.GreaterEqual(n, lane.Set[uint32](2)))

	pass := lane.MaskAnd(wheelMask(n, w), eligible)
	if pass.AllFalse() {
		// Whole batch rejected before any Barrett work.
		return pass
	}

	zero := lane.Zero[uint32]()
	eliminated := lane.FalseMask[uint32]()
	for i := w.firstPrimeIndex(); i < len(smallPrimes); i++ {
		p := lane.Set(smallPrimes[i])
		r := barrettRem(n, lane.Set(barrettMu[i]), p)

		// r == 0 marks a composite lane unless the lane is the prime itself.
		div := lane.MaskAnd(lane.Equal(r, zero), lane.MaskNot(lane.Equal(n, p)))
		eliminated = lane.MaskOr(eliminated, div)

		if i%4 == 3 && lane.MaskAndNot(pass, eliminated).AllFalse() {
			// Every lane is already gone; skip the remaining primes.
			break
		}
	}

	return lane.MaskAndNot(pass, eliminated)
}
