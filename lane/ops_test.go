package lane

import "testing"

func TestLoadStore(t *testing.T) {
	data := []uint32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	v := Load(data)

	if v.NumLanes() != MaxLanes[uint32]() {
		t.Errorf("Load: NumLanes() = %d, want %d", v.NumLanes(), MaxLanes[uint32]())
	}
	for i := 0; i < v.NumLanes(); i++ {
		if v.Lane(i) != data[i] {
			t.Errorf("Load: lane %d: got %v, want %v", i, v.Lane(i), data[i])
		}
	}

	out := make([]uint32, len(data))
	Store(v, out)
	for i := 0; i < v.NumLanes(); i++ {
		if out[i] != data[i] {
			t.Errorf("Store: index %d: got %v, want %v", i, out[i], data[i])
		}
	}
}

func TestLoadShort(t *testing.T) {
	data := []uint32{7, 8, 9}
	v := Load(data)
	if v.NumLanes() != 3 {
		t.Errorf("Load short: NumLanes() = %d, want 3", v.NumLanes())
	}
}

func TestSetZero(t *testing.T) {
	v := Set[uint32](42)
	for i := 0; i < v.NumLanes(); i++ {
		if v.Lane(i) != 42 {
			t.Errorf("Set: lane %d: got %v, want 42", i, v.Lane(i))
		}
	}

	z := Zero[uint32]()
	for i := 0; i < z.NumLanes(); i++ {
		if z.Lane(i) != 0 {
			t.Errorf("Zero: lane %d: got %v, want 0", i, z.Lane(i))
		}
	}
}

func TestArith(t *testing.T) {
	a := Set[uint32](10)
	b := Set[uint32](3)

	if got := Add(a, b).Lane(0); got != 13 {
		t.Errorf("Add: got %v, want 13", got)
	}
	if got := Sub(a, b).Lane(0); got != 7 {
		t.Errorf("Sub: got %v, want 7", got)
	}
	if got := Mul(a, b).Lane(0); got != 30 {
		t.Errorf("Mul: got %v, want 30", got)
	}
	// Wrapping multiply, as on hardware.
	if got := Mul(Set[uint32](1<<31), Set[uint32](2)).Lane(0); got != 0 {
		t.Errorf("Mul wrap: got %v, want 0", got)
	}
	if got := Sub(b, a).Lane(0); got != uint32(0xFFFFFFF9) {
		t.Errorf("Sub wrap: got %#x, want 0xfffffff9", got)
	}
}

func TestMulHigh32(t *testing.T) {
	tests := []struct {
		a, b, want uint32
	}{
		{0, 0, 0},
		{1, 1, 0},
		{1 << 16, 1 << 16, 1},
		{0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFE},
		{0xFFFFFFFF, 2, 1},
		// Barrett quotient estimate: hi32(100 * floor(2^32/7)) = 14.
		{100, 613566756, 14},
	}
	for _, tt := range tests {
		got := MulHigh32(Set(tt.a), Set(tt.b))
		for i := 0; i < got.NumLanes(); i++ {
			if got.Lane(i) != tt.want {
				t.Errorf("MulHigh32(%d, %d): lane %d: got %d, want %d", tt.a, tt.b, i, got.Lane(i), tt.want)
			}
		}
	}
}

func TestShifts(t *testing.T) {
	v := Set[uint32](0x80000001)
	if got := ShiftRight(v, 1).Lane(0); got != 0x40000000 {
		t.Errorf("ShiftRight: got %#x, want 0x40000000", got)
	}
	if got := ShiftLeft(v, 1).Lane(0); got != 2 {
		t.Errorf("ShiftLeft: got %#x, want 2", got)
	}
}

func TestBitwise(t *testing.T) {
	a := Set[uint32](0b1100)
	b := Set[uint32](0b1010)

	if got := And(a, b).Lane(0); got != 0b1000 {
		t.Errorf("And: got %#b, want 0b1000", got)
	}
	if got := Or(a, b).Lane(0); got != 0b1110 {
		t.Errorf("Or: got %#b, want 0b1110", got)
	}
	if got := Xor(a, b).Lane(0); got != 0b0110 {
		t.Errorf("Xor: got %#b, want 0b0110", got)
	}
	if got := AndNot(a, b).Lane(0); got != 0b0100 {
		t.Errorf("AndNot: got %#b, want 0b0100", got)
	}
}

func TestNarrowHigh64(t *testing.T) {
	src := []uint64{
		0x00000000_00000005,
		0x00000001_00000006,
		0xFFFFFFFF_FFFFFFFF,
		0x00000000_FFFFFFFF,
	}
	lo := Narrow64(src)
	hi := High64(src)

	wantLo := []uint32{5, 6, 0xFFFFFFFF, 0xFFFFFFFF}
	wantHi := []uint32{0, 1, 0xFFFFFFFF, 0}
	for i := range src {
		if lo.Lane(i) != wantLo[i] {
			t.Errorf("Narrow64: lane %d: got %#x, want %#x", i, lo.Lane(i), wantLo[i])
		}
		if hi.Lane(i) != wantHi[i] {
			t.Errorf("High64: lane %d: got %#x, want %#x", i, hi.Lane(i), wantHi[i])
		}
	}
}

func TestCompares(t *testing.T) {
	a := Load([]uint32{1, 5, 5, 9})
	b := Load([]uint32{5, 5, 9, 5})

	eq := Equal(a, b)
	ge := GreaterEqual(a, b)
	lt := LessThan(a, b)

	wantEq := []bool{false, true, false, false}
	wantGe := []bool{false, true, false, true}
	wantLt := []bool{true, false, true, false}
	for i := 0; i < 4; i++ {
		if eq.Lane(i) != wantEq[i] {
			t.Errorf("Equal: lane %d: got %v, want %v", i, eq.Lane(i), wantEq[i])
		}
		if ge.Lane(i) != wantGe[i] {
			t.Errorf("GreaterEqual: lane %d: got %v, want %v", i, ge.Lane(i), wantGe[i])
		}
		if lt.Lane(i) != wantLt[i] {
			t.Errorf("LessThan: lane %d: got %v, want %v", i, lt.Lane(i), wantLt[i])
		}
	}
}

func TestIfThenElse(t *testing.T) {
	a := Load([]uint32{1, 5, 5, 9})
	b := Load([]uint32{5, 5, 9, 5})
	mask := LessThan(a, b)

	r := IfThenElse(mask, a, b)
	want := []uint32{1, 5, 5, 5}
	for i := range want {
		if r.Lane(i) != want[i] {
			t.Errorf("IfThenElse: lane %d: got %v, want %v", i, r.Lane(i), want[i])
		}
	}

	rz := IfThenElseZero(mask, a)
	wantZ := []uint32{1, 0, 5, 0}
	for i := range wantZ {
		if rz.Lane(i) != wantZ[i] {
			t.Errorf("IfThenElseZero: lane %d: got %v, want %v", i, rz.Lane(i), wantZ[i])
		}
	}
}

func TestMaskCombinators(t *testing.T) {
	a := Load([]uint32{1, 1, 0, 0})
	b := Load([]uint32{1, 0, 1, 0})
	one := Set[uint32](1)

	ma := Equal(a, one) // T T F F
	mb := Equal(b, one) // T F T F

	and := MaskAnd(ma, mb)
	or := MaskOr(ma, mb)
	not := MaskNot(ma)
	andNot := MaskAndNot(ma, mb)

	wantAnd := []bool{true, false, false, false}
	wantOr := []bool{true, true, true, false}
	wantNot := []bool{false, false, true, true}
	wantAndNot := []bool{false, true, false, false}
	for i := 0; i < 4; i++ {
		if and.Lane(i) != wantAnd[i] {
			t.Errorf("MaskAnd: lane %d: got %v, want %v", i, and.Lane(i), wantAnd[i])
		}
		if or.Lane(i) != wantOr[i] {
			t.Errorf("MaskOr: lane %d: got %v, want %v", i, or.Lane(i), wantOr[i])
		}
		if not.Lane(i) != wantNot[i] {
			t.Errorf("MaskNot: lane %d: got %v, want %v", i, not.Lane(i), wantNot[i])
		}
		if andNot.Lane(i) != wantAndNot[i] {
			t.Errorf("MaskAndNot: lane %d: got %v, want %v", i, andNot.Lane(i), wantAndNot[i])
		}
	}
}

func TestMaskReductions(t *testing.T) {
	if !TrueMask[uint32]().AllTrue() {
		t.Error("TrueMask: AllTrue() = false")
	}
	if !FalseMask[uint32]().AllFalse() {
		t.Error("FalseMask: AllFalse() = false")
	}
	if FalseMask[uint32]().AnyTrue() {
		t.Error("FalseMask: AnyTrue() = true")
	}

	m := Equal(Load([]uint32{1, 0, 1, 0}), Set[uint32](1))
	if m.AllTrue() || m.AllFalse() {
		t.Error("mixed mask: AllTrue/AllFalse should both be false")
	}
	if !m.AnyTrue() {
		t.Error("mixed mask: AnyTrue() = false")
	}
	if got := m.CountTrue(); got != 2 {
		t.Errorf("CountTrue: got %d, want 2", got)
	}
}

func TestMaskBits(t *testing.T) {
	// Lane i maps to bit i, LSB-first.
	m := Equal(Load([]uint32{1, 0, 1, 1}), Set[uint32](1))
	if got := m.Bits(); got != 0b1101 {
		t.Errorf("Bits: got %#b, want 0b1101", got)
	}
}

func TestMaxLanesMatchesWidth(t *testing.T) {
	if got, want := MaxLanes[uint32](), CurrentWidth()/4; got != want {
		t.Errorf("MaxLanes[uint32] = %d, want %d for width %d", got, want, CurrentWidth())
	}
	if got, want := MaxLanes[uint64](), CurrentWidth()/8; got != want {
		t.Errorf("MaxLanes[uint64] = %d, want %d for width %d", got, want, CurrentWidth())
	}
}
