package shortestpath_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lagraph/core"
	"github.com/katalvlaran/lagraph/sparse"
)

// storeFunc adapts a function to shortestpath.EdgeStore.
type storeFunc func(src, dst int, relations ...string) ([]*core.Edge, error)

func (f storeFunc) EdgesBetween(src, dst int, relations ...string) ([]*core.Edge, error) {
	return f(src, dst, relations...)
}

// anyEdge fabricates one RELATED edge for every requested hop.
var anyEdge = storeFunc(func(src, dst int, _ ...string) ([]*core.Edge, error) {
	return []*core.Edge{{FromIndex: src, ToIndex: dst, Relation: "RELATED"}}, nil
})

// vec builds a length-n vector from index→value pairs.
func vec(t *testing.T, n int, entries map[int]int64) *sparse.Vector {
	t.Helper()
	v, err := sparse.NewVector(n)
	require.NoError(t, err)
	for i, x := range entries {
		require.NoError(t, v.Set(i, x))
	}
	return v
}

// edges builds a graph from "from to relation" triples.
func edges(t *testing.T, triples ...[3]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range triples {
		_, err := g.AddEdge(e[0], e[1], e[2])
		require.NoError(t, err)
	}
	return g
}

// network: A-ROAD->B, B-ROAD->D, A-RAIL->C, C-ROAD->D, D-ROAD->E.
// Indices: A0 B1 D2 C3 E4.
func network(t *testing.T) *core.Graph {
	return edges(t,
		[3]string{"A", "B", "ROAD"},
		[3]string{"B", "D", "ROAD"},
		[3]string{"A", "C", "RAIL"},
		[3]string{"C", "D", "ROAD"},
		[3]string{"D", "E", "ROAD"},
	)
}
