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

// This file provides the portable lanewise operations. Every loop body is
// branch-free so the compiler is free to vectorize; masks are applied with
// select-style merges rather than per-lane branches.

// Load creates a vector by loading up to MaxLanes values from a slice.
func Load[T Integers](src []T) Vec[T] {
	n := min(len(src), MaxLanes[T]())
	var v Vec[T]
	v.n = n
	copy(v.lanes[:n], src[:n])
	return v
}

// Store writes a vector's active lanes to a slice.
func Store[T Integers](v Vec[T], dst []T) {
	n := min(len(dst), v.n)
	copy(dst[:n], v.lanes[:n])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Integers](value T) Vec[T] {
	var v Vec[T]
	v.n = MaxLanes[T]()
	for i := 0; i < v.n; i++ {
		v.lanes[i] = value
	}
	return v
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Integers]() Vec[T] {
	var v Vec[T]
	v.n = MaxLanes[T]()
	return v
}

// Add performs lanewise addition.
func Add[T Integers](a, b Vec[T]) Vec[T] {
	r := a
	r.n = min(a.n, b.n)
	for i := 0; i < r.n; i++ {
		r.lanes[i] = a.lanes[i] + b.lanes[i]
	}
	return r
}

// Sub performs lanewise subtraction.
func Sub[T Integers](a, b Vec[T]) Vec[T] {
	r := a
	r.n = min(a.n, b.n)
	for i := 0; i < r.n; i++ {
		r.lanes[i] = a.lanes[i] - b.lanes[i]
	}
	return r
}

// Mul performs lanewise multiplication. Lanes wrap on overflow, matching
// hardware integer multiply.
func Mul[T Integers](a, b Vec[T]) Vec[T] {
	r := a
	r.n = min(a.n, b.n)
	for i := 0; i < r.n; i++ {
		r.lanes[i] = a.lanes[i] * b.lanes[i]
	}
	return r
}

// MulHigh32 computes the upper 32 bits of the 64-bit product of each pair
// of uint32 lanes. This is the fixed-point reciprocal step of Barrett
// reduction; on NEON it corresponds to vmull_u32 followed by a 32-bit
// narrowing shift, on AVX2 to vpmuludq plus vpsrlq.
func MulHigh32(a, b Vec[uint32]) Vec[uint32] {
	r := a
	r.n = min(a.n, b.n)
	for i := 0; i < r.n; i++ {
		r.lanes[i] = uint32((uint64(a.lanes[i]) * uint64(b.lanes[i])) >> 32)
	}
	return r
}

// ShiftRight shifts each lane right by the given bit count (logical for
// unsigned lane types).
func ShiftRight[T Integers](v Vec[T], bits int) Vec[T] {
	r := v
	for i := 0; i < r.n; i++ {
		r.lanes[i] = v.lanes[i] >> uint(bits)
	}
	return r
}

// ShiftLeft shifts each lane left by the given bit count.
func ShiftLeft[T Integers](v Vec[T], bits int) Vec[T] {
	r := v
	for i := 0; i < r.n; i++ {
		r.lanes[i] = v.lanes[i] << uint(bits)
	}
	return r
}

// And performs lanewise bitwise AND.
func And[T Integers](a, b Vec[T]) Vec[T] {
	r := a
	r.n = min(a.n, b.n)
	for i := 0; i < r.n; i++ {
		r.lanes[i] = a.lanes[i] & b.lanes[i]
	}
	return r
}

// Or performs lanewise bitwise OR.
func Or[T Integers](a, b Vec[T]) Vec[T] {
	r := a
	r.n = min(a.n, b.n)
	for i := 0; i < r.n; i++ {
		r.lanes[i] = a.lanes[i] | b.lanes[i]
	}
	return r
}

// Xor performs lanewise bitwise XOR.
func Xor[T Integers](a, b Vec[T]) Vec[T] {
	r := a
	r.n = min(a.n, b.n)
	for i := 0; i < r.n; i++ {
		r.lanes[i] = a.lanes[i] ^ b.lanes[i]
	}
	return r
}

// AndNot computes a AND NOT b for each lane.
func AndNot[T Integers](a, b Vec[T]) Vec[T] {
	r := a
	r.n = min(a.n, b.n)
	for i := 0; i < r.n; i++ {
		r.lanes[i] = a.lanes[i] &^ b.lanes[i]
	}
	return r
}

// Narrow64 packs the low 32 bits of up to MaxLanes[uint32] consecutive
// uint64 values into a uint32 vector. This is the portable equivalent of
// the vmovn_u64 narrowing used to feed 64-bit candidates into 32-bit
// lane arithmetic.
func Narrow64(src []uint64) Vec[uint32] {
	n := min(len(src), MaxLanes[uint32]())
	var v Vec[uint32]
	v.n = n
	for i := 0; i < n; i++ {
		v.lanes[i] = uint32(src[i])
	}
	return v
}

// High64 extracts the upper 32 bits of up to MaxLanes[uint32] consecutive
// uint64 values into a uint32 vector. A lane is zero exactly when the
// source value fits in 32 bits.
func High64(src []uint64) Vec[uint32] {
	n := min(len(src), MaxLanes[uint32]())
	var v Vec[uint32]
	v.n = n
	for i := 0; i < n; i++ {
		v.lanes[i] = uint32(src[i] >> 32)
	}
	return v
}

// Equal compares lanes for equality.
func Equal[T Integers](a, b Vec[T]) Mask[T] {
	var m Mask[T]
	m.n = min(a.n, b.n)
	for i := 0; i < m.n; i++ {
		m.bits[i] = a.lanes[i] == b.lanes[i]
	}
	return m
}

// NotEqual compares lanes for inequality.
func NotEqual[T Integers](a, b Vec[T]) Mask[T] {
	var m Mask[T]
	m.n = min(a.n, b.n)
	for i := 0; i < m.n; i++ {
		m.bits[i] = a.lanes[i] != b.lanes[i]
	}
	return m
}

// LessThan compares a < b lanewise.
func LessThan[T Integers](a, b Vec[T]) Mask[T] {
	var m Mask[T]
	m.n = min(a.n, b.n)
	for i := 0; i < m.n; i++ {
		m.bits[i] = a.lanes[i] < b.lanes[i]
	}
	return m
}

// GreaterThan compares a > b lanewise.
func GreaterThan[T Integers](a, b Vec[T]) Mask[T] {
	var m Mask[T]
	m.n = min(a.n, b.n)
	for i := 0; i < m.n; i++ {
		m.bits[i] = a.lanes[i] > b.lanes[i]
	}
	return m
}

// GreaterEqual compares a >= b lanewise.
func GreaterEqual[T Integers](a, b Vec[T]) Mask[T] {
	var m Mask[T]
	m.n = min(a.n, b.n)
	for i := 0; i < m.n; i++ {
		m.bits[i] = a.lanes[i] >= b.lanes[i]
	}
	return m
}

// LessEqual compares a <= b lanewise.
func LessEqual[T Integers](a, b Vec[T]) Mask[T] {
	var m Mask[T]
	m.n = min(a.n, b.n)
	for i := 0; i < m.n; i++ {
		m.bits[i] = a.lanes[i] <= b.lanes[i]
	}
	return m
}

// IfThenElse selects yes where the mask is set and no elsewhere.
// This is the portable compare-and-select used instead of branches.
func IfThenElse[T Integers](mask Mask[T], yes, no Vec[T]) Vec[T] {
	r := no
	for i := 0; i < r.n && i < mask.n; i++ {
		if mask.bits[i] {
			r.lanes[i] = yes.lanes[i]
		}
	}
	return r
}

// IfThenElseZero selects yes where the mask is set and zero elsewhere.
func IfThenElseZero[T Integers](mask Mask[T], yes Vec[T]) Vec[T] {
	var zero Vec[T]
	zero.n = yes.n
	return IfThenElse(mask, yes, zero)
}

// FalseMask returns a mask with no lanes set, sized to the current width.
func FalseMask[T Integers]() Mask[T] {
	var m Mask[T]
	m.n = MaxLanes[T]()
	return m
}

// TrueMask returns a mask with every lane set, sized to the current width.
func TrueMask[T Integers]() Mask[T] {
	var m Mask[T]
	m.n = MaxLanes[T]()
	for i := 0; i < m.n; i++ {
		m.bits[i] = true
	}
	return m
}

// MaskAnd computes the lanewise AND of two masks.
func MaskAnd[T Integers](a, b Mask[T]) Mask[T] {
	var m Mask[T]
	m.n = min(a.n, b.n)
	for i := 0; i < m.n; i++ {
		m.bits[i] = a.bits[i] && b.bits[i]
	}
	return m
}

// MaskOr computes the lanewise OR of two masks.
func MaskOr[T Integers](a, b Mask[T]) Mask[T] {
	var m Mask[T]
	m.n = min(a.n, b.n)
	for i := 0; i < m.n; i++ {
		m.bits[i] = a.bits[i] || b.bits[i]
	}
	return m
}

// MaskNot inverts every active lane of a mask.
func MaskNot[T Integers](a Mask[T]) Mask[T] {
	m := a
	for i := 0; i < m.n; i++ {
		m.bits[i] = !a.bits[i]
	}
	return m
}

// MaskAndNot computes a AND NOT b for each lane.
func MaskAndNot[T Integers](a, b Mask[T]) Mask[T] {
	var m Mask[T]
	m.n = min(a.n, b.n)
	for i := 0; i < m.n; i++ {
		m.bits[i] = a.bits[i] && !b.bits[i]
	}
	return m
}
