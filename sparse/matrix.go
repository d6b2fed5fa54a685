// SPDX-License-Identifier: MIT

// Package sparse - CSR storage for boolean adjacency structure.
//
// Purpose:
//   - Hold the structure of a relationship subset: entry (i,j) ⇔ edge i→j.
//   - Row access in O(1) (slice view) for push, sorted rows for binary-search
//     membership and for deterministic iteration order.
//   - Immutability after construction: traversals share matrices freely.
//
// Layout:
//   - rowPtr has rows+1 offsets; row i occupies colIdx[rowPtr[i]:rowPtr[i+1]].
//   - colIdx is int32; MaxDimension bounds every dimension accordingly.

package sparse

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// MaxDimension is the largest row/column count a Matrix or Vector may have.
// Column indices are stored as int32, so larger requests fail with ErrAllocation.
const MaxDimension = math.MaxInt32

// operation tags used in wrapped errors
const (
	opNewMatrix = "NewMatrix"
	opUnion     = "Union"
	opNewVector = "NewVector"
	opVxM       = "VxM"
	opMxV       = "MxV"
	opAssign    = "Assign"
)

// Coord is a single (row, col) entry used to build a Matrix.
type Coord struct {
	Row int
	Col int
}

// Matrix is an immutable rows×cols boolean sparse matrix in CSR form.
type Matrix struct {
	rows, cols int
	rowPtr     []int   // len rows+1
	colIdx     []int32 // len nvals, sorted and unique within each row
}

// NewMatrix builds a rows×cols matrix from coords. Duplicate coordinates
// collapse into one entry (boolean "any edge present" semantics); the input
// slice is not modified.
//
// Errors: ErrInvalidDimensions for negative sizes, ErrAllocation when a
// dimension exceeds MaxDimension, ErrOutOfRange for a coordinate outside
// the shape.
func NewMatrix(rows, cols int, coords []Coord) (*Matrix, error) {
	if err := checkDims(opNewMatrix, rows, cols); err != nil {
		return nil, err
	}
	counts := make([]int, rows+1)
	for _, c := range coords {
		if c.Row < 0 || c.Row >= rows || c.Col < 0 || c.Col >= cols {
			return nil, fmt.Errorf("%s(%d,%d): %w", opNewMatrix, c.Row, c.Col, ErrOutOfRange)
		}
		counts[c.Row+1]++
	}
	for i := 0; i < rows; i++ {
		counts[i+1] += counts[i]
	}

	// scatter into rows, then sort and compact each row in place
	colIdx := make([]int32, len(coords))
	next := make([]int, rows)
	copy(next, counts[:rows])
	for _, c := range coords {
		colIdx[next[c.Row]] = int32(c.Col)
		next[c.Row]++
	}

	rowPtr := make([]int, rows+1)
	w := 0
	for i := 0; i < rows; i++ {
		row := colIdx[counts[i]:counts[i+1]]
		slices.Sort(row)
		rowPtr[i] = w
		for _, j := range row {
			if w > rowPtr[i] && colIdx[w-1] == j {
				continue
			}
			colIdx[w] = j
			w++
		}
	}
	rowPtr[rows] = w

	return &Matrix{rows: rows, cols: cols, rowPtr: rowPtr, colIdx: colIdx[:w:w]}, nil
}

// Identity returns the n×n matrix with entries (i,i). Handy as a self-loop fixture.
func Identity(n int) (*Matrix, error) {
	coords := make([]Coord, n)
	for i := range coords {
		coords[i] = Coord{Row: i, Col: i}
	}

	return NewMatrix(n, n, coords)
}

func checkDims(op string, rows, cols int) error {
	if rows < 0 || cols < 0 {
		return opErrorf(op, ErrInvalidDimensions)
	}
	if rows > MaxDimension || cols > MaxDimension {
		return fmt.Errorf("%s: %dx%d exceeds %d: %w", op, rows, cols, MaxDimension, ErrAllocation)
	}

	return nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// IsSquare reports whether Rows() == Cols().
func (m *Matrix) IsSquare() bool { return m.rows == m.cols }

// Nvals returns the number of stored entries (edges).
func (m *Matrix) Nvals() int { return len(m.colIdx) }

// Row returns the sorted column indices of row i. The slice aliases internal
// storage and must not be modified. Out-of-range i yields nil.
func (m *Matrix) Row(i int) []int32 {
	if i < 0 || i >= m.rows {
		return nil
	}

	return m.colIdx[m.rowPtr[i]:m.rowPtr[i+1]]
}

// RowLen returns the number of entries in row i (0 when out of range).
func (m *Matrix) RowLen(i int) int {
	if i < 0 || i >= m.rows {
		return 0
	}

	return m.rowPtr[i+1] - m.rowPtr[i]
}

// Has reports whether entry (i,j) is present. O(log rowLen).
func (m *Matrix) Has(i, j int) bool {
	if j < 0 || j >= m.cols {
		return false
	}
	_, found := slices.BinarySearch(m.Row(i), int32(j))

	return found
}

// Each calls fn for every entry in row-major order.
func (m *Matrix) Each(fn func(i, j int)) {
	for i := 0; i < m.rows; i++ {
		for _, j := range m.Row(i) {
			fn(i, int(j))
		}
	}
}

// Transpose returns a new cols×rows matrix with (j,i) for every (i,j).
// Rows of the result are produced already sorted, so no per-row sort runs.
func (m *Matrix) Transpose() *Matrix {
	rowPtr := make([]int, m.cols+1)
	for _, j := range m.colIdx {
		rowPtr[j+1]++
	}
	for j := 0; j < m.cols; j++ {
		rowPtr[j+1] += rowPtr[j]
	}
	colIdx := make([]int32, len(m.colIdx))
	next := make([]int, m.cols)
	copy(next, rowPtr[:m.cols])
	// ascending i keeps every transposed row sorted
	for i := 0; i < m.rows; i++ {
		for _, j := range m.Row(i) {
			colIdx[next[j]] = int32(i)
			next[j]++
		}
	}

	return &Matrix{rows: m.cols, cols: m.rows, rowPtr: rowPtr, colIdx: colIdx}
}

// Union returns the entry-wise OR of same-shape matrices ("any edge present").
// A single operand is returned as is; matrices are immutable so sharing is safe.
func Union(ms ...*Matrix) (*Matrix, error) {
	if len(ms) == 0 {
		return nil, opErrorf(opUnion, ErrNilMatrix)
	}
	for _, m := range ms {
		if m == nil {
			return nil, opErrorf(opUnion, ErrNilMatrix)
		}
		if m.rows != ms[0].rows || m.cols != ms[0].cols {
			return nil, fmt.Errorf("%s: %dx%d vs %dx%d: %w",
				opUnion, m.rows, m.cols, ms[0].rows, ms[0].cols, ErrDimensionMismatch)
		}
	}
	if len(ms) == 1 {
		return ms[0], nil
	}

	rows := ms[0].rows
	rowPtr := make([]int, rows+1)
	colIdx := make([]int32, 0, ms[0].Nvals())
	var merged []int32
	for i := 0; i < rows; i++ {
		merged = merged[:0]
		for _, m := range ms {
			merged = append(merged, m.Row(i)...)
		}
		slices.Sort(merged)
		merged = slices.Compact(merged)
		colIdx = append(colIdx, merged...)
		rowPtr[i+1] = len(colIdx)
	}

	return &Matrix{rows: rows, cols: ms[0].cols, rowPtr: rowPtr, colIdx: colIdx}, nil
}

// Equal reports structural equality.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}

	return m.rows == o.rows && m.cols == o.cols &&
		slices.Equal(m.rowPtr, o.rowPtr) && slices.Equal(m.colIdx, o.colIdx)
}

// String renders one line per non-empty row: "i: [j1 j2 ...]".
func (m *Matrix) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%dx%d nvals=%d\n", m.rows, m.cols, m.Nvals())
	for i := 0; i < m.rows; i++ {
		if row := m.Row(i); len(row) > 0 {
			fmt.Fprintf(&sb, "%d: %v\n", i, row)
		}
	}

	return sb.String()
}
