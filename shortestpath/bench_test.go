package shortestpath_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lagraph/builder"
	"github.com/katalvlaran/lagraph/shortestpath"
)

func BenchmarkFind_Grid(b *testing.B) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithBidirectional()}, builder.Grid(100, 100))
	require.NoError(b, err)
	_, err = g.Views() // warm the matrix cache
	require.NoError(b, err)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := shortestpath.Find(g, "0", "9999"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFind_LongChain(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(1000))
	require.NoError(b, err)
	p, err := shortestpath.Find(g, "0", "999")
	require.NoError(b, err)
	require.Equal(b, 999, p.Len())
	hops, err := shortestpath.Reachable(g, "0")
	require.NoError(b, err)
	require.Len(b, hops, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := shortestpath.Find(g, "0", "999", shortestpath.WithMaxHops(999)); err != nil {
			b.Fatal(err)
		}
	}
}
