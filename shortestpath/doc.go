// Package shortestpath turns the parent vector of a breadth-first search into
// a concrete, edge-resolved path, and offers end-to-end shortest-path and
// reachability queries over a core.Graph.
//
// Reconstruct walks pi backward from the destination to the source, asking
// an EdgeStore for an edge pred→cur of the requested relations at every hop,
// then reverses the result so it reads source→destination. The store's own
// ordering decides among parallel edges, so the output is deterministic for
// a fixed parent vector and store.
//
// Find and Reachable build the relation-restricted matrices through
// core.Graph.Views and run bfs.Run with push/pull enabled.
//
// Hop bounds
//
//	minHops rejects paths shorter than the bound (in particular the zero-hop
//	path from a node to itself when minHops > 0). maxHops, forwarded to the
//	traversal as its level limit, makes farther destinations unreachable.
//
// Errors
//
//	ErrNoPath             destination unreachable or outside the hop bounds
//	ErrBrokenParentChain  the parent vector does not lead back to the source
//	ErrMissingEdge        the store has no edge for a recorded hop
//	ErrVertexOutOfRange   source or destination outside the vectors
//	ErrNilGraph, ErrNilParent, ErrNilStore, ErrOptionViolation
package shortestpath
