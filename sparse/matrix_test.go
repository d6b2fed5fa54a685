// SPDX-License-Identifier: MIT

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lagraph/sparse"
)

// mustMatrix builds an n×n matrix from (row,col) pairs or fails the test.
func mustMatrix(t testing.TB, n int, pairs ...[2]int) *sparse.Matrix {
	t.Helper()
	coords := make([]sparse.Coord, len(pairs))
	for i, p := range pairs {
		coords[i] = sparse.Coord{Row: p[0], Col: p[1]}
	}
	m, err := sparse.NewMatrix(n, n, coords)
	require.NoError(t, err)

	return m
}

func TestNewMatrix_SortsAndDeduplicates(t *testing.T) {
	m := mustMatrix(t, 4, [2]int{0, 3}, [2]int{0, 1}, [2]int{0, 3}, [2]int{2, 2}, [2]int{0, 1})

	assert.Equal(t, 3, m.Nvals())
	assert.Equal(t, []int32{1, 3}, m.Row(0))
	assert.Empty(t, m.Row(1))
	assert.Equal(t, []int32{2}, m.Row(2))
	assert.True(t, m.Has(0, 3))
	assert.False(t, m.Has(3, 0))
	assert.False(t, m.Has(0, 7), "out-of-range column is simply absent")
	assert.Nil(t, m.Row(9))
	assert.Equal(t, 0, m.RowLen(-1))
}

func TestNewMatrix_Errors(t *testing.T) {
	_, err := sparse.NewMatrix(-1, 2, nil)
	require.ErrorIs(t, err, sparse.ErrInvalidDimensions)

	_, err = sparse.NewMatrix(2, 2, []sparse.Coord{{Row: 0, Col: 2}})
	require.ErrorIs(t, err, sparse.ErrOutOfRange)

	_, err = sparse.NewMatrix(sparse.MaxDimension+1, 1, nil)
	require.ErrorIs(t, err, sparse.ErrAllocation)
}

func TestMatrix_RectangularShape(t *testing.T) {
	m, err := sparse.NewMatrix(2, 3, []sparse.Coord{{Row: 1, Col: 2}})
	require.NoError(t, err)
	assert.False(t, m.IsSquare())

	mt := m.Transpose()
	assert.Equal(t, 3, mt.Rows())
	assert.Equal(t, 2, mt.Cols())
	assert.True(t, mt.Has(2, 1))
}

func TestTranspose_Involution(t *testing.T) {
	m := mustMatrix(t, 5, [2]int{0, 1}, [2]int{0, 4}, [2]int{3, 1}, [2]int{4, 4}, [2]int{2, 0})
	mt := m.Transpose()

	assert.Equal(t, m.Nvals(), mt.Nvals())
	m.Each(func(i, j int) {
		assert.True(t, mt.Has(j, i), "missing (%d,%d) in transpose", j, i)
	})
	// rows of the transpose come out sorted
	assert.Equal(t, []int32{0, 3}, mt.Row(1))
	assert.True(t, m.Equal(mt.Transpose()))
}

func TestUnion(t *testing.T) {
	a := mustMatrix(t, 3, [2]int{0, 1}, [2]int{1, 2})
	b := mustMatrix(t, 3, [2]int{0, 1}, [2]int{2, 0})

	u, err := sparse.Union(a, b)
	require.NoError(t, err)
	assert.Equal(t, 3, u.Nvals())
	assert.True(t, u.Has(0, 1))
	assert.True(t, u.Has(1, 2))
	assert.True(t, u.Has(2, 0))

	same, err := sparse.Union(a)
	require.NoError(t, err)
	assert.Same(t, a, same)

	_, err = sparse.Union()
	require.ErrorIs(t, err, sparse.ErrNilMatrix)

	_, err = sparse.Union(a, mustMatrix(t, 4))
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
}

func TestIdentity(t *testing.T) {
	id, err := sparse.Identity(3)
	require.NoError(t, err)
	assert.Equal(t, 3, id.Nvals())
	assert.True(t, id.Equal(id.Transpose()))
	assert.Contains(t, id.String(), "nvals=3")
}
