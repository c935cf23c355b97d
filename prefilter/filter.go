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

// Filter classifies every candidate and writes one byte per candidate to
// out: 1 if the candidate survives, 0 otherwise. It processes
// min(len(candidates), len(out)) elements using the Wheel30 strategy.
func Filter(candidates []uint64, out []byte) {
	FilterWheel(candidates, out, Wheel30)
}

// FilterWheel is Filter with an explicit wheel strategy. All strategies
// produce identical output; the result for every element is bit-identical
// to the scalar reference at any input length.
func FilterWheel(candidates []uint64, out []byte, w Wheel) {
	count := min(len(candidates), len(out))
	width := lane.MaxLanes[uint32]()

	i := 0
	// Two batches per iteration keeps more independent work in flight,
	// mirroring the paired-batch streaming loop this kernel came from.
	for ; i+2*width <= count; i += 2 * width {
		storeMaskBytes(filterBatch(candidates[i:i+width], w), out[i:])
		storeMaskBytes(filterBatch(candidates[i+width:i+2*width], w), out[i+width:])
	}
	for ; i+width <= count; i += width {
		storeMaskBytes(filterBatch(candidates[i:i+width], w), out[i:])
	}
	for ; i < count; i++ {
		out[i] = surviveScalar(candidates[i])
	}
}

// FilterBitmap classifies every candidate into a bitmap: bit i%8 of byte
// i/8 holds the decision for candidate i (LSB-first). bitmap must hold
// BitmapLen(len(candidates)) bytes; if it is shorter, only the candidates
// its bytes can represent are processed. Uses the Wheel30 strategy.
func FilterBitmap(candidates []uint64, bitmap []byte) {
	FilterBitmapWheel(candidates, bitmap, Wheel30)
}

// FilterBitmapWheel is FilterBitmap with an explicit wheel strategy.
func FilterBitmapWheel(candidates []uint64, bitmap []byte, w Wheel) {
	count := len(candidates)
	if limit := len(bitmap) * 8; count > limit {
		count = limit
	}
	width := lane.MaxLanes[uint32]()

	bw := bitWriter{dst: bitmap}
	lane.ProcessWithTail[uint32](count,
		func(offset int) {
			m := filterBatch(candidates[offset:offset+width], w)
			bw.writeBits(m.Bits(), width)
		},
		func(offset, n int) {
			for i := offset; i < offset+n; i++ {
				bw.writeBits(uint32(surviveScalar(candidates[i])), 1)
			}
		},
	)
	bw.flush()
}
