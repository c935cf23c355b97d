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

// smallPrimes lists the 16 trial-division primes in ascending order.
// The survive contract is defined against exactly this set.
var smallPrimes = [16]uint32{
	2, 3, 5, 7, 11, 13, 17, 19,
	23, 29, 31, 37, 41, 43, 47, 53,
}

// barrettMu holds floor(2^32 / p) for each small prime p. With
// q = hi32(n*mu), q equals floor(n/p) or falls one short for every
// n < 2^32, so r = n - q*p needs at most one conditional subtraction of p
// to be the exact remainder. The tables are computed rather than written
// out; a wrong reciprocal would corrupt specific residue classes silently.
var barrettMu = computeMu(smallPrimes)

func computeMu(primes [16]uint32) [16]uint32 {
	var mu [16]uint32
	for i, p := range primes {
		mu[i] = uint32((uint64(1) << 32) / uint64(p))
	}
	return mu
}

// Wheel constants. Only 8 of the 30 residues mod 30 are coprime to 2*3*5,
// so the mod-30 wheel rejects 22/30 = 73.3% of uniform candidates before
// the Barrett loop runs. Composing with a mod-7 stage (wheel-210) rejects
// 162/210 = 77.1%.
const (
	wheel30Mod = 30
	mu30       = 143165576 // floor(2^32 / 30)
	mu7        = 613566756 // floor(2^32 / 7)
)

// wheel30Residues are the residues mod 30 coprime to 2, 3 and 5.
var wheel30Residues = [8]uint32{1, 7, 11, 13, 17, 19, 23, 29}

// wheel210Coprime[r] reports whether residue r mod 210 is coprime to
// 2*3*5*7. Built once at package init and immutable afterwards; 48 of the
// 210 entries are true.
var wheel210Coprime = buildWheel210()

func buildWheel210() (tab [210]bool) {
	for r := range tab {
		tab[r] = r%2 != 0 && r%3 != 0 && r%5 != 0 && r%7 != 0
	}
	return tab
}
