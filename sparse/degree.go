// SPDX-License-Identifier: MIT

package sparse

// RowDegree returns the out-degree vector of A: degree[i] = number of stored
// entries in row i, self-loops included. Rows without entries are absent,
// as in a sparse row reduction, and read as zero through SumOver.
//
// A is not modified; the result is a fresh vector owned by the caller, so
// one degree vector can be reused across traversals over the same matrix.
//
// Errors: ErrNilMatrix, or ErrAllocation for oversized matrices.
// Complexity: O(rows) time, O(rows) space.
func RowDegree(A *Matrix) (*Vector, error) {
	if A == nil {
		return nil, opErrorf("RowDegree", ErrNilMatrix)
	}
	deg, err := NewVector(A.rows)
	if err != nil {
		return nil, err
	}
	for i := 0; i < A.rows; i++ {
		if d := A.rowPtr[i+1] - A.rowPtr[i]; d > 0 {
			deg.set(i, int64(d))
		}
	}

	return deg, nil
}
