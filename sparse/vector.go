// SPDX-License-Identifier: MIT

// Package sparse - Vector storage.
//
// A Vector keeps three views of the same content:
//   - vals: dense int64 payload (stale where absent),
//   - bits: presence bitmap, one bit per index,
//   - idx:  present indices in insertion order.
//
// The bitmap gives O(1) membership for masks and pull probes; idx gives
// O(nvals) iteration for push and for Clear. Nothing here allocates after
// construction except idx growth, which is bounded by n.

package sparse

import (
	"fmt"
	"math/bits"
	"slices"
	"strings"
)

const wordBits = 64

// Vector is a length-n sparse vector of int64 values.
// A Vector is not safe for concurrent mutation.
type Vector struct {
	n    int
	vals []int64
	bits []uint64
	idx  []int
}

// NewVector allocates an empty vector of length n.
// Errors: ErrInvalidDimensions (n<0), ErrAllocation (n>MaxDimension).
func NewVector(n int) (*Vector, error) {
	if err := checkDims(opNewVector, n, 0); err != nil {
		return nil, err
	}

	return &Vector{
		n:    n,
		vals: make([]int64, n),
		bits: make([]uint64, (n+wordBits-1)/wordBits),
	}, nil
}

// Size returns the vector length n.
func (v *Vector) Size() int { return v.n }

// Nvals returns the number of present entries.
func (v *Vector) Nvals() int { return len(v.idx) }

// Has reports whether index i holds an entry. Out-of-range i reports false.
func (v *Vector) Has(i int) bool {
	if i < 0 || i >= v.n {
		return false
	}

	return v.has(i)
}

func (v *Vector) has(i int) bool {
	return v.bits[i/wordBits]&(1<<(uint(i)%wordBits)) != 0
}

// Get returns the value at i and whether it is present.
func (v *Vector) Get(i int) (int64, bool) {
	if !v.Has(i) {
		return 0, false
	}

	return v.vals[i], true
}

// Set stores x at i, inserting the entry if absent.
func (v *Vector) Set(i int, x int64) error {
	if i < 0 || i >= v.n {
		return fmt.Errorf("Vector.Set(%d): %w", i, ErrOutOfRange)
	}
	v.set(i, x)

	return nil
}

func (v *Vector) set(i int, x int64) {
	if !v.has(i) {
		v.bits[i/wordBits] |= 1 << (uint(i) % wordBits)
		v.idx = append(v.idx, i)
	}
	v.vals[i] = x
}

// Clear removes every entry in O(nvals).
func (v *Vector) Clear() {
	for _, i := range v.idx {
		v.bits[i/wordBits] &^= 1 << (uint(i) % wordBits)
	}
	v.idx = v.idx[:0]
}

// Each calls fn for every entry in insertion order.
func (v *Vector) Each(fn func(i int, x int64)) {
	for _, i := range v.idx {
		fn(i, v.vals[i])
	}
}

// Indices returns a fresh ascending slice of present indices.
func (v *Vector) Indices() []int {
	out := slices.Clone(v.idx)
	slices.Sort(out)

	return out
}

// Dense materializes the vector as a []int64 of length n, with fill at
// absent positions.
func (v *Vector) Dense(fill int64) []int64 {
	out := make([]int64, v.n)
	for i := range out {
		out[i] = fill
	}
	for _, i := range v.idx {
		out[i] = v.vals[i]
	}

	return out
}

// Clone returns an independent copy.
func (v *Vector) Clone() *Vector {
	return &Vector{
		n:    v.n,
		vals: slices.Clone(v.vals),
		bits: slices.Clone(v.bits),
		idx:  slices.Clone(v.idx),
	}
}

// Equal reports whether both vectors have the same length, the same
// present indices and the same values there. Insertion order is ignored.
func (v *Vector) Equal(o *Vector) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.n != o.n || len(v.idx) != len(o.idx) || !slices.Equal(v.bits, o.bits) {
		return false
	}
	for _, i := range v.idx {
		if v.vals[i] != o.vals[i] {
			return false
		}
	}

	return true
}

// popcount counts present entries from the bitmap; used by tests and as a
// consistency check against len(idx).
func (v *Vector) popcount() int {
	c := 0
	for _, w := range v.bits {
		c += bits.OnesCount64(w)
	}

	return c
}

// SumOver returns Σ v[i] for every i present in both v and mask
// (masked plus-reduction). A nil mask sums every entry.
func (v *Vector) SumOver(mask *Vector) int64 {
	var sum int64
	if mask == nil {
		for _, i := range v.idx {
			sum += v.vals[i]
		}

		return sum
	}
	for _, i := range mask.idx {
		if i < v.n && v.has(i) {
			sum += v.vals[i]
		}
	}

	return sum
}

// AssignMasked copies u[i] into v[i] for every i present in mask (structural
// mask). It is write-once: an index already present in v yields ErrOverwrite
// and leaves v unchanged. Indices of mask absent from u are skipped.
func (v *Vector) AssignMasked(mask, u *Vector) error {
	if mask == nil || u == nil {
		return opErrorf(opAssign, ErrNilVector)
	}
	if mask.n != v.n || u.n != v.n {
		return opErrorf(opAssign, ErrDimensionMismatch)
	}
	if err := v.checkFresh(mask); err != nil {
		return err
	}
	for _, i := range mask.idx {
		if u.has(i) {
			v.set(i, u.vals[i])
		}
	}

	return nil
}

// AssignScalarMasked writes x at every index present in mask, write-once.
func (v *Vector) AssignScalarMasked(mask *Vector, x int64) error {
	if mask == nil {
		return opErrorf(opAssign, ErrNilVector)
	}
	if mask.n != v.n {
		return opErrorf(opAssign, ErrDimensionMismatch)
	}
	if err := v.checkFresh(mask); err != nil {
		return err
	}
	for _, i := range mask.idx {
		v.set(i, x)
	}

	return nil
}

func (v *Vector) checkFresh(mask *Vector) error {
	for _, i := range mask.idx {
		if v.has(i) {
			return fmt.Errorf("%s(%d): %w", opAssign, i, ErrOverwrite)
		}
	}

	return nil
}

// String renders entries in ascending index order: "[i:x i:x ...]".
func (v *Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for k, i := range v.Indices() {
		if k > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d:%d", i, v.vals[i])
	}
	sb.WriteByte(']')

	return sb.String()
}
