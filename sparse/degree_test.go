// SPDX-License-Identifier: MIT

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lagraph/sparse"
)

func TestRowDegree(t *testing.T) {
	// self-loop at 0 counts; node 2 has no out-edges
	A := mustMatrix(t, 3, [2]int{0, 0}, [2]int{0, 1}, [2]int{1, 2}, [2]int{0, 1})
	before := A.String()

	deg, err := sparse.RowDegree(A)
	require.NoError(t, err)
	assert.Equal(t, "[0:2 1:1]", deg.String())
	assert.Equal(t, []int64{2, 1, 0}, deg.Dense(0))
	assert.Equal(t, before, A.String(), "input must not change")

	again, err := sparse.RowDegree(A)
	require.NoError(t, err)
	assert.True(t, deg.Equal(again))
}

func TestRowDegree_Nil(t *testing.T) {
	_, err := sparse.RowDegree(nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}
