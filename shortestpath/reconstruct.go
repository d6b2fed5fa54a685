package shortestpath

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lagraph/sparse"
)

// Reconstruct rebuilds the path src→dst recorded in parent.
//
// level, when non-nil, decides reachability and the expected hop count;
// otherwise presence of dst in parent does. Paths shorter than minHops are
// rejected with ErrNoPath. At every hop the first edge returned by
// store.EdgesBetween(pred, cur, relations...) is used.
//
// Steps:
//  1. Validate inputs and reachability of dst.
//  2. Walk cur = dst, pred = parent[cur] until cur == src, at most n hops.
//  3. Resolve each hop to an edge; reverse nodes and edges.
//
// Complexity: O(h) store lookups for a path of h hops.
func Reconstruct(parent, level *sparse.Vector, src, dst, minHops int, store EdgeStore, relations ...string) (*Path, error) {
	if parent == nil {
		return nil, ErrNilParent
	}
	if store == nil {
		return nil, ErrNilStore
	}
	if minHops < 0 {
		return nil, fmt.Errorf("%w: minHops cannot be negative (%d)", ErrOptionViolation, minHops)
	}
	n := parent.Size()
	if level != nil && level.Size() != n {
		return nil, fmt.Errorf("Reconstruct: level=%d parent=%d: %w", level.Size(), n, sparse.ErrDimensionMismatch)
	}
	if src < 0 || src >= n || dst < 0 || dst >= n {
		return nil, fmt.Errorf("Reconstruct(%d→%d) n=%d: %w", src, dst, n, ErrVertexOutOfRange)
	}

	want := -1
	if level != nil {
		lvl, ok := level.Get(dst)
		if !ok {
			return nil, fmt.Errorf("Reconstruct(%d→%d): %w", src, dst, ErrNoPath)
		}
		want = int(lvl)
		if want < minHops {
			return nil, fmt.Errorf("Reconstruct(%d→%d): %d hops < min %d: %w", src, dst, want, minHops, ErrNoPath)
		}
	} else if !parent.Has(dst) {
		return nil, fmt.Errorf("Reconstruct(%d→%d): %w", src, dst, ErrNoPath)
	}

	p := &Path{Nodes: []int{dst}}
	for cur := dst; cur != src; {
		if len(p.Edges) >= n {
			return nil, fmt.Errorf("Reconstruct: no source after %d hops: %w", n, ErrBrokenParentChain)
		}
		x, ok := parent.Get(cur)
		pred := int(x)
		if !ok || pred == cur || pred < 0 || pred >= n {
			return nil, fmt.Errorf("Reconstruct: parent of %d: %w", cur, ErrBrokenParentChain)
		}
		es, err := store.EdgesBetween(pred, cur, relations...)
		if err != nil {
			return nil, fmt.Errorf("Reconstruct: EdgesBetween(%d,%d): %w", pred, cur, err)
		}
		if len(es) == 0 {
			return nil, fmt.Errorf("Reconstruct: %d→%d: %w", pred, cur, ErrMissingEdge)
		}
		p.Edges = append(p.Edges, es[0])
		p.Nodes = append(p.Nodes, pred)
		cur = pred
	}

	if want >= 0 && len(p.Edges) != want {
		return nil, fmt.Errorf("Reconstruct: %d hops, level says %d: %w", len(p.Edges), want, ErrBrokenParentChain)
	}
	if len(p.Edges) < minHops {
		return nil, fmt.Errorf("Reconstruct(%d→%d): %d hops < min %d: %w", src, dst, len(p.Edges), minHops, ErrNoPath)
	}
	slices.Reverse(p.Nodes)
	slices.Reverse(p.Edges)

	return p, nil
}
