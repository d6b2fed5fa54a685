// File: matrices.go
// Role: Relationship subsets as sparse matrices: Views/Adjacency/Transpose/RowDegree.
//
// Determinism:
//   - Matrices depend only on the live edge set and vertex indices, never on
//     map iteration order.
//
// Concurrency:
//   - Snapshot of vertices and edges under muVert → muEdge read locks.
//   - Cache lookups under muCache; concurrent builds of one (relations,
//     version) pair are collapsed by singleflight.
package core

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/lagraph/sparse"
)

// Views bundles the traversal inputs for one relation set: adjacency A,
// its transpose AT and the out-degree vector of A.
//
// A and AT are immutable. Degree is shared by every caller of Views and must
// be treated as read-only; RowDegree returns a private copy.
type Views struct {
	// Relations is the canonical (sorted, de-duplicated) relation set; nil
	// means every relation.
	Relations []string

	A      *sparse.Matrix
	AT     *sparse.Matrix
	Degree *sparse.Vector

	version uint64
}

// Views returns the cached matrices for the union of relations, building
// them on first use after a mutation. No relation selects every edge; a
// relation with no edges contributes nothing, so an unknown relation yields
// an empty n×n matrix rather than an error.
//
// Errors: ErrEmptyRelation, or a wrapped sparse error (ErrAllocation).
func (g *Graph) Views(relations ...string) (*Views, error) {
	rels, err := canonicalRelations(relations)
	if err != nil {
		return nil, err
	}
	key := strings.Join(rels, "\x00")
	ver := g.version.Load()

	g.muCache.Lock()
	if v, ok := g.cache[key]; ok && v.version == ver {
		g.muCache.Unlock()

		return v, nil
	}
	g.muCache.Unlock()

	res, err, _ := g.flight.Do(key+"@"+strconv.FormatUint(ver, 10), func() (interface{}, error) {
		v, err := g.buildViews(rels)
		if err != nil {
			return nil, err
		}
		g.muCache.Lock()
		if old, ok := g.cache[key]; !ok || old.version < v.version {
			g.cache[key] = v
		}
		for k, c := range g.cache {
			if c.version < v.version && k != key {
				delete(g.cache, k)
			}
		}
		g.muCache.Unlock()

		return v, nil
	})
	if err != nil {
		return nil, err
	}

	return res.(*Views), nil
}

// Adjacency returns the boolean n×n matrix with (i,j) present iff some edge
// i→j of one of relations exists.
func (g *Graph) Adjacency(relations ...string) (*sparse.Matrix, error) {
	v, err := g.Views(relations...)
	if err != nil {
		return nil, err
	}

	return v.A, nil
}

// Transpose returns the transpose of Adjacency(relations...).
func (g *Graph) Transpose(relations ...string) (*sparse.Matrix, error) {
	v, err := g.Views(relations...)
	if err != nil {
		return nil, err
	}

	return v.AT, nil
}

// RowDegree returns a caller-owned copy of the out-degree vector of
// Adjacency(relations...).
func (g *Graph) RowDegree(relations ...string) (*sparse.Vector, error) {
	v, err := g.Views(relations...)
	if err != nil {
		return nil, err
	}

	return v.Degree.Clone(), nil
}

// buildViews snapshots the graph and builds one matrix per relation, then
// unions them. The version is read under the same locks as the snapshot.
func (g *Graph) buildViews(rels []string) (*Views, error) {
	g.muVert.RLock()
	g.muEdge.RLock()
	n := len(g.order)
	ver := g.version.Load()
	byRel := make(map[string][]sparse.Coord)
	filter := relationFilter(rels)
	g.index.Scan(func(k edgeKey) bool {
		if filter(k.rel) {
			byRel[k.rel] = append(byRel[k.rel], sparse.Coord{Row: k.from, Col: k.to})
		}

		return true
	})
	g.muEdge.RUnlock()
	g.muVert.RUnlock()

	names := make([]string, 0, len(byRel))
	for r := range byRel {
		names = append(names, r)
	}
	slices.Sort(names)

	parts := make([]*sparse.Matrix, 0, len(names))
	for _, r := range names {
		m, err := sparse.NewMatrix(n, n, byRel[r])
		if err != nil {
			return nil, fmt.Errorf("Views(%s): %w", r, err)
		}
		parts = append(parts, m)
	}
	if len(parts) == 0 {
		empty, err := sparse.NewMatrix(n, n, nil)
		if err != nil {
			return nil, fmt.Errorf("Views: %w", err)
		}
		parts = append(parts, empty)
	}
	A, err := sparse.Union(parts...)
	if err != nil {
		return nil, fmt.Errorf("Views: %w", err)
	}
	deg, err := sparse.RowDegree(A)
	if err != nil {
		return nil, fmt.Errorf("Views: %w", err)
	}

	return &Views{Relations: rels, A: A, AT: A.Transpose(), Degree: deg, version: ver}, nil
}

// canonicalRelations sorts and de-duplicates a relation list; nil stands for
// "all relations".
func canonicalRelations(relations []string) ([]string, error) {
	if len(relations) == 0 {
		return nil, nil
	}
	out := slices.Clone(relations)
	slices.Sort(out)
	out = slices.Compact(out)
	if out[0] == "" {
		return nil, ErrEmptyRelation
	}

	return out, nil
}
