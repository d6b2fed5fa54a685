package shortestpath_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lagraph/bfs"
	"github.com/katalvlaran/lagraph/builder"
	"github.com/katalvlaran/lagraph/core"
	"github.com/katalvlaran/lagraph/shortestpath"
	"github.com/katalvlaran/lagraph/sparse"
)

func traverse(t *testing.T, g *core.Graph, src int, opts ...bfs.Option) *bfs.Result {
	t.Helper()
	A, err := g.Adjacency()
	require.NoError(t, err)
	res, err := bfs.Run(A, src, append([]bfs.Option{bfs.WithParent(true)}, opts...)...)
	require.NoError(t, err)
	return res
}

func TestReconstruct_Diamond(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Diamond())
	require.NoError(t, err)
	A, err := g.Adjacency()
	require.NoError(t, err)
	res := traverse(t, g, 0)

	lvl, ok := res.LevelOf(3)
	require.True(t, ok)
	assert.Equal(t, 2, lvl)

	p, err := shortestpath.Reconstruct(res.Parent, res.Level, 0, 3, 0, g)
	require.NoError(t, err)
	require.Equal(t, 2, p.Len())
	assert.Equal(t, []int{0, 1, 3}, p.Nodes)
	for i, e := range p.Edges {
		assert.True(t, A.Has(e.FromIndex, e.ToIndex), "edge %s", e.ID)
		assert.Equal(t, p.Nodes[i], e.FromIndex)
		assert.Equal(t, p.Nodes[i+1], e.ToIndex)
	}
	assert.Equal(t, "0 -[RELATED]-> 1 -[RELATED]-> 3", p.String())
}

func TestReconstruct_Disconnected(t *testing.T) {
	g := edges(t, [3]string{"0", "1", "R"}, [3]string{"2", "3", "R"})
	res := traverse(t, g, 0)
	assert.False(t, res.Level.Has(3))

	_, err := shortestpath.Reconstruct(res.Parent, res.Level, 0, 3, 0, g)
	assert.ErrorIs(t, err, shortestpath.ErrNoPath)

	// without a level vector reachability comes from the parent vector
	_, err = shortestpath.Reconstruct(res.Parent, nil, 0, 3, 0, g)
	assert.ErrorIs(t, err, shortestpath.ErrNoPath)
}

func TestReconstruct_Idempotent(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(60, 0.08))
	require.NoError(t, err)
	res := traverse(t, g, 0)

	for _, dst := range res.Level.Indices() {
		p1, err := shortestpath.Reconstruct(res.Parent, res.Level, 0, dst, 0, g)
		require.NoError(t, err)
		p2, err := shortestpath.Reconstruct(res.Parent, res.Level, 0, dst, 0, g)
		require.NoError(t, err)
		assert.Equal(t, p1, p2)

		lvl, _ := res.LevelOf(dst)
		assert.Equal(t, lvl, p1.Len())
	}
}

func TestReconstruct_WithoutLevel(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(5))
	require.NoError(t, err)
	res := traverse(t, g, 0, bfs.WithLevel(false))
	require.Nil(t, res.Level)

	p, err := shortestpath.Reconstruct(res.Parent, nil, 0, 4, 0, g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, p.Nodes)
}

func TestReconstruct_MinHops(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Diamond())
	require.NoError(t, err)
	res := traverse(t, g, 0)

	p, err := shortestpath.Reconstruct(res.Parent, res.Level, 0, 0, 0, g)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, p.Nodes)
	assert.Empty(t, p.Edges)
	assert.Equal(t, "", p.String())

	_, err = shortestpath.Reconstruct(res.Parent, res.Level, 0, 0, 1, g)
	assert.ErrorIs(t, err, shortestpath.ErrNoPath)

	_, err = shortestpath.Reconstruct(res.Parent, res.Level, 0, 3, 3, g)
	assert.ErrorIs(t, err, shortestpath.ErrNoPath)

	p, err = shortestpath.Reconstruct(res.Parent, res.Level, 0, 3, 2, g)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Len())

	_, err = shortestpath.Reconstruct(res.Parent, res.Level, 0, 3, -1, g)
	assert.ErrorIs(t, err, shortestpath.ErrOptionViolation)
}

func TestReconstruct_RelationFilter(t *testing.T) {
	g := edges(t, [3]string{"a", "b", "KNOWS"}, [3]string{"a", "b", "LIKES"})
	res := traverse(t, g, 0)

	p, err := shortestpath.Reconstruct(res.Parent, res.Level, 0, 1, 0, g)
	require.NoError(t, err)
	assert.Equal(t, "KNOWS", p.Edges[0].Relation)

	p, err = shortestpath.Reconstruct(res.Parent, res.Level, 0, 1, 0, g, "LIKES")
	require.NoError(t, err)
	assert.Equal(t, "LIKES", p.Edges[0].Relation)

	_, err = shortestpath.Reconstruct(res.Parent, res.Level, 0, 1, 0, g, "HATES")
	assert.ErrorIs(t, err, shortestpath.ErrMissingEdge)
}

func TestReconstruct_BrokenChain(t *testing.T) {
	tests := []struct {
		name   string
		parent map[int]int64
		level  map[int]int64
		dst    int
	}{
		{name: "missing link", parent: map[int]int64{0: 0, 2: 1}, dst: 2},
		{name: "cycle", parent: map[int]int64{0: 0, 1: 2, 2: 1}, dst: 1},
		{name: "self parent", parent: map[int]int64{0: 0, 2: 2}, dst: 2},
		{name: "parent out of range", parent: map[int]int64{0: 0, 2: 9}, dst: 2},
		{
			name:   "length disagrees with level",
			parent: map[int]int64{0: 0, 1: 0, 2: 1},
			level:  map[int]int64{0: 0, 1: 1, 2: 1},
			dst:    2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var level *sparse.Vector
			if tt.level != nil {
				level = vec(t, 3, tt.level)
			}
			_, err := shortestpath.Reconstruct(vec(t, 3, tt.parent), level, 0, tt.dst, 0, anyEdge)
			assert.ErrorIs(t, err, shortestpath.ErrBrokenParentChain)
		})
	}
}

func TestReconstruct_StoreFailures(t *testing.T) {
	parent := vec(t, 2, map[int]int64{0: 0, 1: 0})

	none := storeFunc(func(int, int, ...string) ([]*core.Edge, error) { return nil, nil })
	_, err := shortestpath.Reconstruct(parent, nil, 0, 1, 0, none)
	assert.ErrorIs(t, err, shortestpath.ErrMissingEdge)

	boom := errors.New("storage offline")
	failing := storeFunc(func(int, int, ...string) ([]*core.Edge, error) { return nil, boom })
	_, err = shortestpath.Reconstruct(parent, nil, 0, 1, 0, failing)
	assert.ErrorIs(t, err, boom)
}

func TestReconstruct_InvalidInput(t *testing.T) {
	parent := vec(t, 2, map[int]int64{0: 0, 1: 0})

	_, err := shortestpath.Reconstruct(nil, nil, 0, 1, 0, anyEdge)
	assert.ErrorIs(t, err, shortestpath.ErrNilParent)

	_, err = shortestpath.Reconstruct(parent, nil, 0, 1, 0, nil)
	assert.ErrorIs(t, err, shortestpath.ErrNilStore)

	_, err = shortestpath.Reconstruct(parent, nil, 0, 2, 0, anyEdge)
	assert.ErrorIs(t, err, shortestpath.ErrVertexOutOfRange)

	_, err = shortestpath.Reconstruct(parent, nil, -1, 1, 0, anyEdge)
	assert.ErrorIs(t, err, shortestpath.ErrVertexOutOfRange)

	_, err = shortestpath.Reconstruct(parent, vec(t, 3, nil), 0, 1, 0, anyEdge)
	assert.ErrorIs(t, err, sparse.ErrDimensionMismatch)
}
