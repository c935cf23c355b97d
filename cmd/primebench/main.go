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

// Command primebench measures prefilter throughput and elimination rates
// on synthetic candidate streams, and cross-checks the output encodings
// and wheel strategies against each other.
//
// Usage:
//
//	primebench -count 10000000 -dist uniform -wheel wheel30
//	primebench -dist mult6 -verify
//	primebench -parallel -workers 8
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/gosimd/go-primefilter/lane"
	"github.com/gosimd/go-primefilter/lane/workerpool"
	"github.com/gosimd/go-primefilter/prefilter"
	"github.com/gosimd/go-primefilter/prefilter/pipeline"
)

var (
	count    = flag.Int("count", 10_000_000, "number of candidates to filter")
	dist     = flag.String("dist", "uniform", "candidate distribution: uniform, odd, mult6")
	wheel    = flag.String("wheel", "wheel30", "prefilter strategy: none, wheel30, wheel210")
	bitmap   = flag.Bool("bitmap", false, "use the 1-bit-per-candidate output")
	parallel = flag.Bool("parallel", false, "filter chunks on a worker pool")
	workers  = flag.Int("workers", 0, "worker count for -parallel (0 = GOMAXPROCS)")
	verify   = flag.Bool("verify", false, "cross-check encodings and wheel strategies")
	seed     = flag.Uint64("seed", 1, "PRNG seed for dataset generation")
)

func main() {
	flag.Parse()

	w, ok := parseWheel(*wheel)
	if !ok {
		fmt.Fprintf(os.Stderr, "primebench: unknown wheel %q\n", *wheel)
		os.Exit(2)
	}

	candidates, ok := generate(*dist, *count, *seed)
	if !ok {
		fmt.Fprintf(os.Stderr, "primebench: unknown distribution %q\n", *dist)
		os.Exit(2)
	}

	fmt.Printf("primebench: %d candidates, dist=%s, wheel=%s, width=%s (%d uint32 lanes)\n",
		*count, *dist, w, lane.CurrentName(), lane.MaxLanes[uint32]())

	if *verify {
		if err := crossCheck(candidates); err != nil {
			fmt.Fprintf(os.Stderr, "primebench: VERIFY FAILED: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("verify: encodings and wheel strategies agree")
	}

	survivors, elapsed := run(candidates, w)
	rate := float64(*count) / elapsed.Seconds() / 1e6
	elim := 100 * (1 - float64(survivors)/float64(*count))
	fmt.Printf("filtered %d candidates in %v (%.1f M/s), %d survivors (%.2f%% eliminated)\n",
		*count, elapsed.Round(time.Millisecond), rate, survivors, elim)
}

func parseWheel(name string) (prefilter.Wheel, bool) {
	switch name {
	case "none":
		return prefilter.WheelNone, true
	case "wheel30", "30":
		return prefilter.Wheel30, true
	case "wheel210", "210":
		return prefilter.Wheel210, true
	}
	return 0, false
}

// generate builds a synthetic candidate stream. "uniform" draws random
// 32-bit values, "odd" draws random odd values (defeats the easiest wheel
// rejection), "mult6" emits multiples of 6 (adversarially composite).
func generate(dist string, n int, seed uint64) ([]uint64, bool) {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]uint64, n)
	switch dist {
	case "uniform":
		for i := range out {
			out[i] = uint64(rng.Uint32())
		}
	case "odd":
		for i := range out {
			out[i] = uint64(rng.Uint32()) | 1
		}
	case "mult6":
		for i := range out {
			out[i] = 6 * uint64(i+1)
		}
	default:
		return nil, false
	}
	return out, true
}

func run(candidates []uint64, w prefilter.Wheel) (survivors int, elapsed time.Duration) {
	n := len(candidates)

	var pool *workerpool.Pool
	if *parallel {
		nw := *workers
		if nw <= 0 {
			nw = runtime.GOMAXPROCS(0)
		}
		pool = workerpool.New(nw)
		defer pool.Close()
	}

	if *bitmap {
		bm := make([]byte, prefilter.BitmapLen(n))
		start := time.Now()
		if pool != nil {
			pipeline.FilterBitmap(pool, candidates, bm, w)
		} else {
			prefilter.FilterBitmapWheel(candidates, bm, w)
		}
		elapsed = time.Since(start)
		survivors = prefilter.CountSurvivors(bm, n)
		return survivors, elapsed
	}

	out := make([]byte, n)
	start := time.Now()
	if pool != nil {
		pipeline.Filter(pool, candidates, out, w)
	} else {
		prefilter.FilterWheel(candidates, out, w)
	}
	elapsed = time.Since(start)
	for _, b := range out {
		survivors += int(b)
	}
	return survivors, elapsed
}

// crossCheck verifies the testable properties that do not need a primality
// oracle: all wheel strategies agree, and the byte and bitmap encodings
// describe the same survivor set.
func crossCheck(candidates []uint64) error {
	n := len(candidates)
	ref := make([]byte, n)
	prefilter.FilterWheel(candidates, ref, prefilter.WheelNone)

	for _, w := range []prefilter.Wheel{prefilter.Wheel30, prefilter.Wheel210} {
		out := make([]byte, n)
		prefilter.FilterWheel(candidates, out, w)
		for i := range out {
			if out[i] != ref[i] {
				return fmt.Errorf("%v disagrees with none at index %d (value %d): got %d, want %d",
					w, i, candidates[i], out[i], ref[i])
			}
		}

		bm := make([]byte, prefilter.BitmapLen(n))
		prefilter.FilterBitmapWheel(candidates, bm, w)
		for i := range n {
			bit := (bm[i/8] >> uint(i%8)) & 1
			if bit != ref[i] {
				return fmt.Errorf("%v bitmap disagrees at index %d (value %d): got %d, want %d",
					w, i, candidates[i], bit, ref[i])
			}
		}
	}
	return nil
}
