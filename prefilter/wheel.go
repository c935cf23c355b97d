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

// Wheel selects the residue-class prefilter applied before the Barrett
// loop. Every wheel produces the identical survive/eliminate decision;
// they differ only in how many candidates are rejected cheaply and which
// primes the Barrett loop still has to test.
type Wheel int

const (
	// WheelNone runs the Barrett loop over all 16 primes with no prefilter.
	WheelNone Wheel = iota

	// Wheel30 rejects residues mod 30 not coprime to 2*3*5 (73.3% of
	// uniform candidates) and lets the Barrett loop skip 2, 3 and 5.
	Wheel30

	// Wheel210 composes Wheel30 with a mod-7 stage (77.1% rejected);
	// the Barrett loop additionally skips 7. The marginal win over
	// Wheel30 may not cover the extra stage's cost; benchmark before
	// choosing it.
	Wheel210
)

// String returns a human-readable name for the wheel strategy.
func (w Wheel) String() string {
	switch w {
	case WheelNone:
		return "none"
	case Wheel30:
		return "wheel30"
	case Wheel210:
		return "wheel210"
	default:
		return "unknown"
	}
}

// firstPrimeIndex returns the index into smallPrimes of the first prime
// the Barrett loop still has to test; divisibility by earlier primes is
// already covered by the wheel's residue check.
func (w Wheel) firstPrimeIndex() int {
	switch w {
	case Wheel30:
		return 3 // 7 onward; the wheel covers 2, 3, 5
	case Wheel210:
		return 4 // 11 onward; the mod-7 stage covers 7
	default:
		return 0
	}
}

// wheelMask returns a mask with a set lane for every candidate that could
// still be prime under w. The wheel's own generator primes pass by the
// self-equality special case even though they divide the modulus.
func wheelMask(n lane.Vec[uint32], w Wheel) lane.Mask[uint32] {
	switch w {
	case Wheel30:
		return wheel30Mask(n)
	case Wheel210:
		return wheel210Mask(n)
	default:
		return lane.TrueMask[uint32]()
	}
}

func wheel30Mask(n lane.Vec[uint32]) lane.Mask[uint32] {
	r := barrettRem(n, lane.Set[uint32](mu30), lane.Set[uint32](wheel30Mod))

	m := lane.FalseMask[uint32]()
	for _, res := range wheel30Residues {
		m = lane.MaskOr(m, lane.Equal(r, lane.Set(res)))
	}

	// 2, 3 and 5 share a factor with 30 but are legitimately prime.
	m = lane.MaskOr(m, lane.Equal(n, lane.Set[uint32](2)))
	m = lane.MaskOr(m, lane.Equal(n, lane.Set[uint32](3)))
	m = lane.MaskOr(m, lane.Equal(n, lane.Set[uint32](5)))
	return m
}

// wheel210Mask composes the mod-30 residue check with a mod-7 stage:
// a lane passes if it passes wheel-30 and is either not divisible by 7 or
// equal to 7. This is derived from the residue sets directly rather than
// from a fused 210-entry mask.
func wheel210Mask(n lane.Vec[uint32]) lane.Mask[uint32] {
	m := wheel30Mask(n)

	r7 := barrettRem(n, lane.Set[uint32](mu7), lane.Set[uint32](7))
	mod7ok := lane.NotEqual(r7, lane.Zero[uint32]())
	mod7ok = lane.MaskOr(mod7ok, lane.Equal(n, lane.Set[uint32](7)))

	return lane.MaskAnd(m, mod7ok)
}
