package bfs_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lagraph/bfs"
	"github.com/katalvlaran/lagraph/sparse"
)

// mat builds an n×n adjacency matrix from directed pairs.
func mat(t testing.TB, n int, edges ...[2]int) *sparse.Matrix {
	t.Helper()
	coords := make([]sparse.Coord, len(edges))
	for i, e := range edges {
		coords[i] = sparse.Coord{Row: e[0], Col: e[1]}
	}
	A, err := sparse.NewMatrix(n, n, coords)
	require.NoError(t, err)
	return A
}

// randomMat samples about n*avgDeg directed edges.
func randomMat(t testing.TB, n, avgDeg int, seed int64) *sparse.Matrix {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	coords := make([]sparse.Coord, 0, n*avgDeg)
	for i := 0; i < n*avgDeg; i++ {
		coords = append(coords, sparse.Coord{Row: rng.Intn(n), Col: rng.Intn(n)})
	}
	A, err := sparse.NewMatrix(n, n, coords)
	require.NoError(t, err)
	return A
}

// pushPull returns the options enabling direction switching for A.
func pushPull(t testing.TB, A *sparse.Matrix) []bfs.Option {
	t.Helper()
	deg, err := sparse.RowDegree(A)
	require.NoError(t, err)
	return []bfs.Option{bfs.WithTranspose(A.Transpose()), bfs.WithDegree(deg)}
}

// pullHeavy is a tuning that switches to pull on the first growing level
// and never switches back.
var pullHeavy = bfs.Tuning{Alpha: 1e12, Beta1: 1e-12, Beta2: 1e12}

func run(t testing.TB, A *sparse.Matrix, src int, opts ...bfs.Option) *bfs.Result {
	t.Helper()
	res, err := bfs.Run(A, src, opts...)
	require.NoError(t, err)
	return res
}
