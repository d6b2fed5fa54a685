// SPDX-License-Identifier: MIT

// Package sparse provides the linear-algebra substrate for matrix-based graph
// traversal: a compressed-sparse-row boolean Matrix, a dense-backed sparse
// Vector, (add, multiply) operator pairs (Semiring) and the two masked
// propagation kernels used by breadth-first search.
//
// What
//
//   - Matrix: rows×cols boolean structure in CSR form. Entry (i,j) present
//     means edge i→j. Column indices inside a row are sorted and unique.
//     Matrices are immutable once built and safe for concurrent readers.
//   - Vector: length-n int64 vector with a presence bitmap and an
//     insertion-ordered index list. It serves sparse iteration (push) and
//     O(1) membership (pull) without conversion.
//   - Semirings: LorLand (reachability) and AnySecondI (parent tracking).
//   - Kernels: VxM (w⟨¬mask⟩ = u·A, "push") and MxV (w⟨¬mask⟩ = Aᵀ·u, "pull").
//   - RowDegree: out-degree vector of a matrix.
//
// Determinism
//
//	VxM visits frontier entries in the vector's index order and each row in
//	ascending column order; the first contribution wins under the ANY monoid.
//	MxV scans output rows in ascending order and stops at the first frontier
//	neighbour. Parallel MxV partitions rows into contiguous chunks and
//	concatenates them in chunk order, so its result equals the sequential one.
//
// Complexity (n = dimension, e = stored entries)
//
//   - NewMatrix: O(n + e log d) where d is the largest row length.
//   - Transpose: O(n + e).
//   - VxM: O(Σ row lengths of frontier entries).
//   - MxV: O(Σ in-degree of unmasked rows), early exit per row.
//   - Vector Set/Get/Has: O(1); Clear: O(nvals).
//
// Errors
//
//   - ErrNilMatrix / ErrNilVector  nil operand.
//   - ErrOutOfRange                index outside [0,n).
//   - ErrDimensionMismatch         incompatible operand sizes.
//   - ErrAliasedOperand            output vector aliases an input.
//   - ErrAllocation                requested dimension exceeds MaxDimension.
//   - ErrOverwrite                 write-once assignment hit a present entry.
package sparse
