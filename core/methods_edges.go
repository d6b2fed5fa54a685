// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edge/Edges/EdgeCount,
//       Relations and EdgesBetween. Also: nextEdgeID().
//
// Determinism:
//   - Edges() returns edges in creation order.
//   - Relations() returns relationship types sorted ascending.
//   - EdgesBetween() returns edges in (relation, creation) order.
//   - nextEdgeID() is monotonic ("e" + decimal).
//
// Concurrency:
//   - Mutations under muEdge write lock, queries under muEdge read lock.
//   - Endpoint creation happens before muEdge is taken (lock order muVert → muEdge).
package core

import (
	"fmt"
	"slices"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix of edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates a directed edge from→to of the given relationship type and
// returns its ID. Missing endpoints are created.
//
// Implementation:
//   - Stage 1: Validate IDs, relation and the loop constraint.
//   - Stage 2: Ensure endpoints via AddVertex.
//   - Stage 3: Under muEdge, reject a parallel edge of the same relation
//     unless multi-edges are allowed, then store and index the edge.
//
// Errors: ErrEmptyVertexID, ErrEmptyRelation, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(log E).
func (g *Graph) AddEdge(from, to, relation string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if relation == "" {
		return "", ErrEmptyRelation
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	fi, err := g.AddVertex(from)
	if err != nil {
		return "", err
	}
	ti, err := g.AddVertex(to)
	if err != nil {
		return "", err
	}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	if !g.allowMulti && g.hasRelationLocked(fi, ti, relation) {
		return "", fmt.Errorf("AddEdge(%s→%s, %s): %w", from, to, relation, ErrMultiEdgeNotAllowed)
	}

	seq := atomic.AddUint64(&g.nextEdgeID, 1)
	e := &Edge{
		ID:        formatEdgeID(seq),
		From:      from,
		To:        to,
		Relation:  relation,
		FromIndex: fi,
		ToIndex:   ti,
		seq:       seq,
	}
	g.edges[e.ID] = e
	g.index.Set(keyOf(e))
	g.relations[relation]++
	g.version.Add(1)

	return e.ID, nil
}

// hasRelationLocked reports whether an edge src→dst of rel exists. Caller holds muEdge.
func (g *Graph) hasRelationLocked(src, dst int, rel string) bool {
	found := false
	g.index.Ascend(edgeKey{from: src, to: dst, rel: rel}, func(k edgeKey) bool {
		found = k.from == src && k.to == dst && k.rel == rel

		return false
	})

	return found
}

// RemoveEdge deletes one edge. Removing an absent edge returns ErrEdgeNotFound.
// Vertices are kept so indices of other vertices stay stable.
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return fmt.Errorf("RemoveEdge(%q): %w", eid, ErrEdgeNotFound)
	}
	delete(g.edges, eid)
	g.index.Delete(keyOf(e))
	if g.relations[e.Relation]--; g.relations[e.Relation] == 0 {
		delete(g.relations, e.Relation)
	}
	g.version.Add(1)

	return nil
}

// HasEdge reports whether at least one edge from→to exists, restricted to
// the given relations when any are named.
func (g *Graph) HasEdge(from, to string, relations ...string) bool {
	fi, err := g.VertexIndex(from)
	if err != nil {
		return false
	}
	ti, err := g.VertexIndex(to)
	if err != nil {
		return false
	}
	filter := relationFilter(relations)

	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	found := false
	scanPair(g.index, fi, ti, func(e *Edge) bool {
		found = filter(e.Relation)

		return !found
	})

	return found
}

// Edge returns the edge with the given ID.
func (g *Graph) Edge(eid string) (*Edge, error) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	e, ok := g.edges[eid]
	if !ok {
		return nil, fmt.Errorf("Edge(%q): %w", eid, ErrEdgeNotFound)
	}

	return e, nil
}

// Edges returns a snapshot of all edges in creation order.
func (g *Graph) Edges() []*Edge {
	g.muEdge.RLock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	g.muEdge.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// EdgeCount returns the number of live edges.
func (g *Graph) EdgeCount() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	return len(g.edges)
}

// Relations returns the relationship types that have at least one live edge.
func (g *Graph) Relations() []string {
	g.muEdge.RLock()
	out := make([]string, 0, len(g.relations))
	for r := range g.relations {
		out = append(out, r)
	}
	g.muEdge.RUnlock()
	slices.Sort(out)

	return out
}

// EdgesBetween returns the edges src→dst, addressed by dense index, whose
// relation is one of relations (any relation when none is named).
// The order is (relation ascending, creation ascending) and an empty result
// is not an error.
//
// Errors: ErrVertexNotFound for an index outside [0, VertexCount()),
// ErrEmptyRelation for an empty relation name.
func (g *Graph) EdgesBetween(src, dst int, relations ...string) ([]*Edge, error) {
	n := g.VertexCount()
	if src < 0 || src >= n || dst < 0 || dst >= n {
		return nil, fmt.Errorf("EdgesBetween(%d,%d) n=%d: %w", src, dst, n, ErrVertexNotFound)
	}
	if slices.Contains(relations, "") {
		return nil, ErrEmptyRelation
	}
	filter := relationFilter(relations)

	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	var out []*Edge
	scanPair(g.index, src, dst, func(e *Edge) bool {
		if filter(e.Relation) {
			out = append(out, e)
		}

		return true
	})

	return out, nil
}

// relationFilter turns a relation list into a membership test; an empty
// list admits everything.
func relationFilter(relations []string) func(string) bool {
	if len(relations) == 0 {
		return func(string) bool { return true }
	}
	set := make(map[string]struct{}, len(relations))
	for _, r := range relations {
		set[r] = struct{}{}
	}

	return func(r string) bool {
		_, ok := set[r]

		return ok
	}
}

func formatEdgeID(n uint64) string {
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
