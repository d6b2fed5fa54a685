package shortestpath

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lagraph/bfs"
	"github.com/katalvlaran/lagraph/core"
)

// Find returns a shortest path from srcID to dstID following edges of the
// configured relations.
//
// The traversal stops as soon as dstID is reached; the path is then
// resolved against g itself. A mutation of g between the traversal and the
// resolution may surface as ErrMissingEdge.
//
// Errors: ErrNilGraph, ErrOptionViolation, ErrNoPath, core.ErrVertexNotFound,
// core.ErrEmptyVertexID, core.ErrEmptyRelation, or a wrapped bfs error.
func Find(g *core.Graph, srcID, dstID string, opts ...Option) (*Path, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	src, err := g.VertexIndex(srcID)
	if err != nil {
		return nil, fmt.Errorf("Find: source: %w", err)
	}
	dst, err := g.VertexIndex(dstID)
	if err != nil {
		return nil, fmt.Errorf("Find: destination: %w", err)
	}

	res, err := traverse(g, src, o, bfs.WithParent(true), bfs.WithDestination(dst))
	if err != nil {
		return nil, fmt.Errorf("Find(%q→%q): %w", srcID, dstID, err)
	}

	return Reconstruct(res.Parent, res.Level, src, dst, o.MinHops, g, o.Relations...)
}

// Hop is one vertex reachable from the source and its distance in edges.
type Hop struct {
	ID    string
	Index int
	Level int
}

// Reachable lists every vertex reachable from srcID within the hop bounds,
// ordered by (Level, Index). The source itself is included at level 0
// unless MinHops > 0.
func Reachable(g *core.Graph, srcID string, opts ...Option) ([]Hop, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	src, err := g.VertexIndex(srcID)
	if err != nil {
		return nil, fmt.Errorf("Reachable: source: %w", err)
	}

	res, err := traverse(g, src, o, bfs.WithParent(false))
	if err != nil {
		return nil, fmt.Errorf("Reachable(%q): %w", srcID, err)
	}

	vs := g.Vertices()
	out := make([]Hop, 0, res.Level.Nvals())
	res.Level.Each(func(i int, lvl int64) {
		if int(lvl) < o.MinHops || i >= len(vs) {
			return
		}
		out = append(out, Hop{ID: vs[i].ID, Index: i, Level: int(lvl)})
	})
	slices.SortFunc(out, func(a, b Hop) int {
		if a.Level != b.Level {
			return a.Level - b.Level
		}
		return a.Index - b.Index
	})

	return out, nil
}

// traverse runs bfs.Run over the relation-restricted views of g. Caller
// options come first so the ones appended here take precedence.
func traverse(g *core.Graph, src int, o Options, extra ...bfs.Option) (*bfs.Result, error) {
	v, err := g.Views(o.Relations...)
	if err != nil {
		return nil, err
	}
	run := make([]bfs.Option, 0, len(o.BFS)+len(extra)+4)
	run = append(run, o.BFS...)
	run = append(run,
		bfs.WithTranspose(v.AT),
		bfs.WithDegree(v.Degree),
		bfs.WithLevel(true),
		bfs.WithMaxLevel(o.MaxHops),
	)
	run = append(run, extra...)

	return bfs.Run(v.A, src, run...)
}
