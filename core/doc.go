// Package core provides a thread-safe, in-memory property graph whose
// relationships are typed, and exposes every relationship subset as a sparse
// adjacency matrix ready for algebraic traversal.
//
// The Graph G = (V,E) has:
//
//   - Vertices identified by string IDs and, in insertion order, by a dense
//     integer index in [0, VertexCount()). The index is the row/column of the
//     vertex in every matrix the graph hands out and never changes.
//   - Directed edges From→To carrying a relationship type (Relation).
//     Edges of different relations between the same endpoints always coexist;
//     parallel edges of one relation need WithMultiEdges.
//   - Self-loops when built WithLoops.
//
// Matrices
//
//	Adjacency(rel...) returns the boolean n×n matrix of the union of the
//	requested relations ("any edge present"); no relation means all of them.
//	Transpose(rel...) and RowDegree(rel...) return its transpose and its
//	out-degree vector. The three are built together, cached per relation set
//	and invalidated by any mutation. Concurrent first requests for the same
//	set share one build (singleflight).
//
// Edge lookup
//
//	EdgesBetween(src, dst, rel...) lists the edges src→dst restricted to a
//	relation set in (relation, creation) order, read from an ordered index,
//	so repeated calls on an unchanged graph return the same first edge.
//
// Concurrency
//
//	muVert guards the vertex catalog, muEdge guards edges and the index,
//	muCache guards the matrix cache. Lock order is muVert → muEdge.
//	Matrices are immutable and may be shared across goroutines.
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrEmptyRelation       – zero-length relationship type
//	ErrVertexNotFound      – missing vertex ID or index
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – self-loop when loops are disabled
//	ErrMultiEdgeNotAllowed – parallel edge of one relation when disabled
package core
