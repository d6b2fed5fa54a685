// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns vertices in index order (insertion order).
//   - A vertex index never changes; vertices are never removed.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
package core

import "fmt"

// AddVertex inserts a vertex if missing (idempotent) and returns its dense index.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under muVert write lock, return the existing index or append a
//     new Vertex at index len(order).
//   - Stage 3: On insertion bump the version so cached matrices are rebuilt
//     with the new dimension.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) (int, error) {
	if id == "" {
		return -1, ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	if v, ok := g.vertices[id]; ok {
		return v.Index, nil
	}
	v := &Vertex{ID: id, Index: len(g.order)}
	g.vertices[id] = v
	g.order = append(g.order, v)
	g.version.Add(1)

	return v.Index, nil
}

// HasVertex reports whether a vertex with the given ID exists.
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the vertex with the given ID.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("Vertex(%q): %w", id, ErrVertexNotFound)
	}

	return v, nil
}

// VertexIndex maps a vertex ID to its matrix row/column.
func (g *Graph) VertexIndex(id string) (int, error) {
	v, err := g.Vertex(id)
	if err != nil {
		return -1, err
	}

	return v.Index, nil
}

// VertexID maps a matrix row/column back to the vertex ID.
func (g *Graph) VertexID(i int) (string, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if i < 0 || i >= len(g.order) {
		return "", fmt.Errorf("VertexID(%d): %w", i, ErrVertexNotFound)
	}

	return g.order[i].ID, nil
}

// Vertices returns a snapshot of all vertices in index order.
func (g *Graph) Vertices() []*Vertex {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]*Vertex, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns |V|, the dimension of every matrix the graph produces.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.order)
}
