package prefilter

import (
	"testing"

	"github.com/gosimd/go-primefilter/lane"
)

func TestBitmapLen(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{0, 0},
		{1, 1},
		{7, 1},
		{8, 1},
		{9, 2},
		{16, 2},
		{17, 3},
	}
	for _, tt := range tests {
		if got := BitmapLen(tt.n); got != tt.want {
			t.Errorf("BitmapLen(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestStoreMaskBytes(t *testing.T) {
	m := lane.Equal(lane.Load([]uint32{1, 0, 1, 1}), lane.Set[uint32](1))

	dst := []byte{9, 9, 9, 9}
	storeMaskBytes(m, dst)
	want := []byte{1, 0, 1, 1}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("storeMaskBytes: index %d: got %d, want %d", i, dst[i], want[i])
		}
	}

	// Short destination must not panic and writes only what fits.
	short := []byte{9, 9}
	storeMaskBytes(m, short)
	if short[0] != 1 || short[1] != 0 {
		t.Errorf("storeMaskBytes short: got %v, want [1 0]", short)
	}
}

func TestBitWriter(t *testing.T) {
	// 4-bit writes crossing byte boundaries, then a 3-bit tail.
	dst := make([]byte, 2)
	w := bitWriter{dst: dst}
	w.writeBits(0b1101, 4)
	w.writeBits(0b0011, 4)
	w.writeBits(0b101, 3)
	w.flush()

	if dst[0] != 0b00111101 {
		t.Errorf("byte 0: got %08b, want 00111101", dst[0])
	}
	if dst[1] != 0b00000101 {
		t.Errorf("byte 1: got %08b, want 00000101 (unused high bits zero)", dst[1])
	}
}

func TestBitWriterSixteenWide(t *testing.T) {
	dst := make([]byte, 2)
	w := bitWriter{dst: dst}
	w.writeBits(0xA5C3, 16)
	w.flush()
	if dst[0] != 0xC3 || dst[1] != 0xA5 {
		t.Errorf("got [%02x %02x], want [c3 a5]", dst[0], dst[1])
	}
}

func TestCountSurvivors(t *testing.T) {
	bitmap := []byte{0b10110001, 0b00000111}

	tests := []struct {
		n, want int
	}{
		{0, 0},
		{1, 1},
		{4, 1},
		{6, 3},
		{8, 4},
		{11, 7},
		{16, 7},
	}
	for _, tt := range tests {
		if got := CountSurvivors(bitmap, tt.n); got != tt.want {
			t.Errorf("CountSurvivors(n=%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
