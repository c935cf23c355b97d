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

// Package lane provides a portable fixed-width integer lane-vector
// abstraction with runtime width dispatch.
//
// It follows the Highway design philosophy: algorithms are written once
// against lanewise operations and run at whatever vector width the target
// supports, with a scalar-equivalent fallback. Operations are plain Go and
// branch-free per lane so the compiler can vectorize them; the dispatch
// layer only decides how many lanes a Vec carries.
//
// Basic usage:
//
//	a := lane.Load(data)
//	b := lane.Set[uint32](7)
//	r := lane.Sub(a, lane.Mul(lane.MulHigh32(a, mu), b))
//	lane.Store(r, out)
package lane

// MaxVecLanes is the lane capacity of a Vec backing array, sized for
// 512-bit registers of 32-bit elements.
const MaxVecLanes = 16

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Vec is a portable vector of integer lanes. It is a value type sized for
// the widest supported register; the active lane count is set by Load, Set,
// or Zero from the current dispatch width. Copying a Vec copies its lanes,
// so no allocation happens on the kernel hot path.
//
// Vec instances should not be created directly; use Load, Set, or Zero.
type Vec[T Integers] struct {
	lanes [MaxVecLanes]T
	n     int
}

// NumLanes returns the number of active lanes in this vector.
func (v Vec[T]) NumLanes() int {
	return v.n
}

// Lane returns the value of lane i.
func (v Vec[T]) Lane(i int) T {
	return v.lanes[i]
}

// Data returns the active lanes as a slice. The slice aliases the
// receiver's backing array; this is primarily for tests.
func (v Vec[T]) Data() []T {
	return v.lanes[:v.n]
}

// Mask represents the per-lane result of a comparison. Use it with
// IfThenElse and the mask combinators; construct it via comparisons such
// as Equal or GreaterEqual, or via FalseMask.
type Mask[T Integers] struct {
	bits [MaxVecLanes]bool
	n    int
}

// NumLanes returns the number of active lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return m.n
}

// Lane reports whether lane i is active.
func (m Mask[T]) Lane(i int) bool {
	return m.bits[i]
}

// AllTrue reports whether every active lane is set.
func (m Mask[T]) AllTrue() bool {
	for i := 0; i < m.n; i++ {
		if !m.bits[i] {
			return false
		}
	}
	return true
}

// AllFalse reports whether no active lane is set.
func (m Mask[T]) AllFalse() bool {
	for i := 0; i < m.n; i++ {
		if m.bits[i] {
			return false
		}
	}
	return true
}

// AnyTrue reports whether at least one active lane is set.
func (m Mask[T]) AnyTrue() bool {
	return !m.AllFalse()
}

// CountTrue returns the number of set lanes.
func (m Mask[T]) CountTrue() int {
	count := 0
	for i := 0; i < m.n; i++ {
		if m.bits[i] {
			count++
		}
	}
	return count
}

// Bits packs the mask into an integer, lane i at bit i (LSB-first).
// This is the portable equivalent of a movemask instruction.
func (m Mask[T]) Bits() uint32 {
	var bits uint32
	for i := 0; i < m.n; i++ {
		if m.bits[i] {
			bits |= 1 << uint(i)
		}
	}
	return bits
}
