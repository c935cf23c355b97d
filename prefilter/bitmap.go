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

import (
	"math/bits"

	"github.com/gosimd/go-primefilter/lane"
)

// BitmapLen returns the number of bytes a 1-bit-per-candidate bitmap
// needs for n candidates.
func BitmapLen(n int) int {
	return (n + 7) / 8
}

// CountSurvivors returns the number of set bits among the first n
// candidate positions of a bitmap produced by FilterBitmap.
func CountSurvivors(bitmap []byte, n int) int {
	full := min(n/8, len(bitmap))
	count := 0
	for _, b := range bitmap[:full] {
		count += bits.OnesCount8(b)
	}
	if rem := n % 8; rem > 0 && full < len(bitmap) {
		count += bits.OnesCount8(bitmap[full] & byte(1<<uint(rem)-1))
	}
	return count
}

// storeMaskBytes writes one byte per lane, exactly 0 or 1, lane i to
// dst[i].
func storeMaskBytes(m lane.Mask[uint32], dst []byte) {
	n := min(m.NumLanes(), len(dst))
	for i := 0; i < n; i++ {
		if m.Lane(i) {
			dst[i] = 1
		} else {
			dst[i] = 0
		}
	}
}

// bitWriter packs survive bits LSB-first into a byte-aligned bitmap:
// candidate i lands in bit i%8 of byte i/8. Bits are buffered in an
// accumulator and emitted a whole byte at a time, so batch widths that do
// not divide 8 (and tails of any length) never split a byte across writes.
type bitWriter struct {
	dst  []byte
	acc  uint32
	fill uint
	pos  int
}

// writeBits appends count bits of b, LSB-first. count must be at most 16
// so the accumulator cannot overflow.
func (w *bitWriter) writeBits(b uint32, count int) {
	w.acc |= b << w.fill
	w.fill += uint(count)
	for w.fill >= 8 {
		w.dst[w.pos] = byte(w.acc)
		w.pos++
		w.acc >>= 8
		w.fill -= 8
	}
}

// flush emits a trailing partial byte, if any. Only valid bit positions
// are set; the unused high bits are zero.
func (w *bitWriter) flush() {
	if w.fill > 0 {
		w.dst[w.pos] = byte(w.acc)
		w.pos++
		w.acc = 0
		w.fill = 0
	}
}
