// Copyright 2025 go-primefilter Authors. SPDX-License-Identifier: Apache-2.0

// Package pipeline runs the prefilter over large candidate streams in
// parallel. The kernel is pure and reentrant, so the stream is split into
// independent chunks and each chunk is filtered on a pool worker; results
// are written directly into disjoint regions of the caller's output
// buffer, so no merging or locking is needed.
//
// Chunk boundaries are aligned so a packed output byte is never shared
// between workers. Output is bit-identical to the serial functions in the
// parent package.
package pipeline

import (
	"github.com/gosimd/go-primefilter/lane"
	"github.com/gosimd/go-primefilter/lane/workerpool"
	"github.com/gosimd/go-primefilter/prefilter"
)

// Filter classifies candidates in parallel, one output byte per
// candidate, equivalent to prefilter.FilterWheel over the whole input.
func Filter(pool *workerpool.Pool, candidates []uint64, out []byte, w prefilter.Wheel) {
	n := min(len(candidates), len(out))
	align := lane.AlignedSize[uint32](1)
	pool.ParallelFor(n, align, func(start, end int) {
		prefilter.FilterWheel(candidates[start:end], out[start:end], w)
	})
}

// FilterBitmap classifies candidates in parallel into an LSB-first
// bitmap, equivalent to prefilter.FilterBitmapWheel over the whole input.
// Chunks are aligned to multiples of 8 candidates so each worker owns
// whole bitmap bytes.
func FilterBitmap(pool *workerpool.Pool, candidates []uint64, bitmap []byte, w prefilter.Wheel) {
	n := len(candidates)
	if limit := len(bitmap) * 8; n > limit {
		n = limit
	}
	// Batch width is 4, 8 or 16 lanes, so rounding 8 up to a whole number
	// of batches keeps chunks aligned to both batches and bytes.
	align := lane.AlignedSize[uint32](8)
	pool.ParallelFor(n, align, func(start, end int) {
		prefilter.FilterBitmapWheel(candidates[start:end], bitmap[start/8:], w)
	})
}
