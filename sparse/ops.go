// SPDX-License-Identifier: MIT

// Package sparse - masked propagation kernels.
//
//   VxM: w⟨mask⟩ = u ⊕.⊗ A     (push: walk rows of A owned by frontier u)
//   MxV: w⟨mask⟩ = Aᵀ ⊕.⊗ u    (pull: scan rows of Aᵀ for every unmasked output)
//
// Both kernels overwrite w (replace semantics) and never run in place.

package sparse

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ParallelPullMin is the smallest output dimension for which MxV splits its
// row scan across workers. Below it the scheduling cost dominates.
const ParallelPullMin = 1 << 12

// Descriptor controls how a kernel reads its mask.
type Descriptor struct {
	// Structural treats every present mask entry as true regardless of value.
	Structural bool

	// Complement inverts the mask: outputs are allowed where the mask is absent.
	Complement bool

	// Workers bounds data-parallel execution inside MxV. Values <= 1 run
	// sequentially. VxM always runs sequentially.
	Workers int
}

// DescRSC is the descriptor used by traversal: structural complement, i.e.
// "only write outputs not already present in the mask".
var DescRSC = Descriptor{Structural: true, Complement: true}

func (d Descriptor) allows(mask *Vector, j int) bool {
	if mask == nil {
		return true
	}
	in := mask.has(j) && (d.Structural || mask.vals[j] != 0)

	return in != d.Complement
}

// VxM computes w⟨mask⟩ = u ⊕.⊗ A. Frontier entries are visited in u's index
// order and rows in ascending column order; under a terminal monoid the first
// contribution to an output wins.
//
// Cost is proportional to the number of entries in the rows selected by u.
func VxM(w, mask *Vector, desc Descriptor, s Semiring, u *Vector, A *Matrix) error {
	if err := checkKernel(opVxM, w, mask, u, A); err != nil {
		return err
	}
	if u.n != A.rows || w.n != A.cols {
		return fmt.Errorf("%s: u=%d w=%d A=%dx%d: %w", opVxM, u.n, w.n, A.rows, A.cols, ErrDimensionMismatch)
	}

	w.Clear()
	for _, k := range u.idx {
		a := u.vals[k]
		for _, jj := range A.Row(k) {
			j := int(jj)
			if !desc.allows(mask, j) {
				continue
			}
			t := s.Multiply(a, 1, k)
			if !w.has(j) {
				w.set(j, t)
				continue
			}
			if s.terminal(w.vals[j]) {
				continue
			}
			w.vals[j] = s.Add.Op(w.vals[j], t)
		}
	}

	return nil
}

// MxV computes w⟨mask⟩ = AT ⊕.⊗ u where AT is the transposed adjacency, so
// row j of AT lists the in-neighbours of j. Every output j allowed by the
// mask is probed against u, stopping at the first frontier neighbour when
// the monoid is terminal. Outputs are written in ascending j.
//
// Cost is proportional to Σ in-degree over unmasked outputs and does not
// depend on the frontier size.
func MxV(w, mask *Vector, desc Descriptor, s Semiring, AT *Matrix, u *Vector) error {
	if err := checkKernel(opMxV, w, mask, u, AT); err != nil {
		return err
	}
	if u.n != AT.cols || w.n != AT.rows {
		return fmt.Errorf("%s: u=%d w=%d AT=%dx%d: %w", opMxV, u.n, w.n, AT.rows, AT.cols, ErrDimensionMismatch)
	}

	w.Clear()
	if desc.Workers <= 1 || AT.rows < ParallelPullMin {
		pullRange(mask, desc, s, AT, u, 0, AT.rows, func(j int, x int64) { w.set(j, x) })

		return nil
	}

	// Contiguous chunks, each collected privately, concatenated in order:
	// the result is identical to the sequential scan.
	chunk := (AT.rows + desc.Workers - 1) / desc.Workers
	parts := make([][]entry, desc.Workers)
	var g errgroup.Group
	g.SetLimit(desc.Workers)
	for c := 0; c < desc.Workers; c++ {
		c := c
		lo := c * chunk
		hi := min(lo+chunk, AT.rows)
		if lo >= hi {
			break
		}
		g.Go(func() error {
			var out []entry
			pullRange(mask, desc, s, AT, u, lo, hi, func(j int, x int64) {
				out = append(out, entry{j: j, x: x})
			})
			parts[c] = out

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return opErrorf(opMxV, err)
	}
	for _, part := range parts {
		for _, e := range part {
			w.set(e.j, e.x)
		}
	}

	return nil
}

type entry struct {
	j int
	x int64
}

// pullRange probes outputs lo..hi-1 and reports hits through emit. It only
// reads its operands, so concurrent calls over disjoint ranges are safe.
func pullRange(mask *Vector, desc Descriptor, s Semiring, AT *Matrix, u *Vector, lo, hi int, emit func(j int, x int64)) {
	for j := lo; j < hi; j++ {
		if !desc.allows(mask, j) {
			continue
		}
		var (
			acc   int64
			found bool
		)
		for _, kk := range AT.Row(j) {
			k := int(kk)
			if !u.has(k) {
				continue
			}
			t := s.Multiply(1, u.vals[k], k)
			if found {
				acc = s.Add.Op(acc, t)
			} else {
				acc, found = t, true
			}
			if s.terminal(acc) {
				break
			}
		}
		if found {
			emit(j, acc)
		}
	}
}

func checkKernel(op string, w, mask, u *Vector, A *Matrix) error {
	if A == nil {
		return opErrorf(op, ErrNilMatrix)
	}
	if w == nil || u == nil {
		return opErrorf(op, ErrNilVector)
	}
	if w == u || w == mask {
		return opErrorf(op, ErrAliasedOperand)
	}
	if mask != nil && mask.n != w.n {
		return fmt.Errorf("%s: mask=%d w=%d: %w", op, mask.n, w.n, ErrDimensionMismatch)
	}

	return nil
}
