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

// barrettRem computes the exact per-lane remainder n mod p without a
// division: the quotient estimate q = hi32(n*mu) is at most one short of
// floor(n/p), so one compare-and-select correction suffices. mu and p must
// be broadcast vectors of floor(2^32/p) and p. This is the hot primitive;
// the batch kernel invokes it once per prime per batch.
func barrettRem(n, mu, p lane.Vec[uint32]) lane.Vec[uint32] {
	q := lane.MulHigh32(n, mu)
	r := lane.Sub(n, lane.Mul(q, p))
	over := lane.GreaterEqual(r, p)
	return lane.IfThenElse(over, lane.Sub(r, p), r)
}
