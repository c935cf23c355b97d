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

package lane

import (
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel identifies the vector width class chosen for this process.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD width detection; 128-bit lanes are
	// still used so batch shapes stay consistent across targets.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates 128-bit vectors (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates 256-bit vectors.
	DispatchAVX2

	// DispatchAVX512 indicates 512-bit vectors.
	DispatchAVX512

	// DispatchNEON indicates ARM NEON 128-bit vectors.
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the detected width class for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the vector register width in bytes for the current level.
// Set by init() in dispatch_*.go files.
var currentWidth int

// CurrentLevel returns the vector width class being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the vector register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current width class.
func CurrentName() string {
	return currentLevel.String()
}

// NoSimdEnv checks if the PREFILTER_NO_SIMD environment variable is set.
// When set, the narrowest (128-bit) width is used regardless of CPU
// capabilities. This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("PREFILTER_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// setScalarMode pins the narrowest width. 16-byte vectors are kept even in
// scalar mode so batch shapes are identical across targets.
func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16
}

// MaxLanes returns the number of lanes of type T at the current width.
//
// For example, with AVX2 (256 bits / 32 bytes):
//   - uint32: 32/4 = 8 lanes
//   - uint64: 32/8 = 4 lanes
func MaxLanes[T Integers]() int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	if elementSize == 0 {
		return 0
	}
	n := currentWidth / elementSize
	if n > MaxVecLanes {
		n = MaxVecLanes
	}
	return n
}
