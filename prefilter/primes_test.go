package prefilter

import (
	"math/rand/v2"
	"testing"

	"github.com/gosimd/go-primefilter/lane"
)

func TestBarrettMuValues(t *testing.T) {
	// mu must be exactly floor(2^32/p); a wrong rounding corrupts specific
	// residue classes without crashing.
	for i, p := range smallPrimes {
		want := uint32((uint64(1) << 32) / uint64(p))
		if barrettMu[i] != want {
			t.Errorf("barrettMu[%d] (p=%d) = %d, want %d", i, p, barrettMu[i], want)
		}
	}
	if mu30 != uint32((uint64(1)<<32)/30) {
		t.Errorf("mu30 = %d, want floor(2^32/30)", mu30)
	}
	if mu7 != uint32((uint64(1)<<32)/7) {
		t.Errorf("mu7 = %d, want floor(2^32/7)", mu7)
	}
}

// barrettScalar replicates the reduction formula for one value so the mu
// tables can be validated against the native modulo operator.
func barrettScalar(n, mu, p uint32) uint32 {
	q := uint32((uint64(n) * uint64(mu)) >> 32)
	r := n - q*p
	if r >= p {
		r -= p
	}
	return r
}

func TestBarrettReductionExact(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 42))

	check := func(n, mu, p uint32) {
		if got, want := barrettScalar(n, mu, p), n%p; got != want {
			t.Fatalf("barrett %d mod %d = %d, want %d", n, p, got, want)
		}
	}

	moduli := make([][2]uint32, 0, len(smallPrimes)+2)
	for i, p := range smallPrimes {
		moduli = append(moduli, [2]uint32{p, barrettMu[i]})
	}
	moduli = append(moduli, [2]uint32{30, mu30}, [2]uint32{7, mu7})

	for _, m := range moduli {
		p, mu := m[0], m[1]

		// Boundary residues around every multiple-of-p neighborhood that
		// historically breaks reciprocal rounding.
		for _, n := range []uint32{0, 1, p - 1, p, p + 1, 2*p - 1, 2 * p, 0xFFFFFFFE, 0xFFFFFFFF} {
			check(n, mu, p)
		}
		// Exact multiples across the domain, including the largest.
		largest := (uint32(0xFFFFFFFF) / p) * p
		for _, n := range []uint32{10 * p, 1000 * p, largest} {
			check(n, mu, p)
		}
		for range 200000 {
			check(rng.Uint32(), mu, p)
		}
	}
}

func TestBarrettRemVector(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	buf := make([]uint32, 16)

	for i, p := range smallPrimes {
		for range 1000 {
			for j := range buf {
				buf[j] = rng.Uint32()
			}
			n := lane.Load(buf)
			r := barrettRem(n, lane.Set(barrettMu[i]), lane.Set(p))
			for j := 0; j < r.NumLanes(); j++ {
				if got, want := r.Lane(j), buf[j]%p; got != want {
					t.Fatalf("barrettRem lane %d: %d mod %d = %d, want %d", j, buf[j], p, got, want)
				}
			}
		}
	}
}

func TestWheel210Table(t *testing.T) {
	count := 0
	for r, ok := range wheel210Coprime {
		want := r%2 != 0 && r%3 != 0 && r%5 != 0 && r%7 != 0
		if ok != want {
			t.Errorf("wheel210Coprime[%d] = %v, want %v", r, ok, want)
		}
		if ok {
			count++
		}
	}
	// phi(210) = 48 residues remain, i.e. 77.1% eliminated.
	if count != 48 {
		t.Errorf("wheel210Coprime has %d coprime residues, want 48", count)
	}
}

func TestWheel30Residues(t *testing.T) {
	seen := map[uint32]bool{}
	for _, r := range wheel30Residues {
		seen[r] = true
	}
	for r := uint32(0); r < 30; r++ {
		want := r%2 != 0 && r%3 != 0 && r%5 != 0
		if seen[r] != want {
			t.Errorf("residue %d mod 30: in set = %v, want %v", r, seen[r], want)
		}
	}
}
