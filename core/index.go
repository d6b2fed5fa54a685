// File: index.go
// Role: Ordered edge index backing EdgesBetween.
//
// Determinism:
//   - Keys sort by (from, to, relation, seq); a range scan over one
//     (from, to) pair therefore yields edges grouped by relation in
//     ascending name order, each group in creation order.
//
// Concurrency:
//   - The btree is built with NoLocks; every access happens under muEdge.
package core

import "github.com/tidwall/btree"

// edgeKey is one entry of the edge index. e is payload and takes no part in
// ordering.
type edgeKey struct {
	from, to int
	rel      string
	seq      uint64
	e        *Edge
}

func keyOf(e *Edge) edgeKey {
	return edgeKey{from: e.FromIndex, to: e.ToIndex, rel: e.Relation, seq: e.seq, e: e}
}

func edgeKeyLess(a, b edgeKey) bool {
	if a.from != b.from {
		return a.from < b.from
	}
	if a.to != b.to {
		return a.to < b.to
	}
	if a.rel != b.rel {
		return a.rel < b.rel
	}

	return a.seq < b.seq
}

// scanPair calls fn for every indexed edge src→dst in key order until fn
// returns false. Caller holds muEdge.
func scanPair(idx *btree.BTreeG[edgeKey], src, dst int, fn func(e *Edge) bool) {
	idx.Ascend(edgeKey{from: src, to: dst}, func(k edgeKey) bool {
		if k.from != src || k.to != dst {
			return false
		}

		return fn(k.e)
	})
}
