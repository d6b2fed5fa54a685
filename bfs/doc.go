// Package bfs provides a direction-optimizing breadth-first search over a
// sparse boolean adjacency matrix, returning hop levels and/or a parent
// vector from which shortest paths can be rebuilt.
//
// What
//
//   - Explore nodes in non-decreasing hop distance from a source node.
//   - Returns a Result containing:
//   - Level:  level[i] = distance of i from the source (absent if unreachable)
//   - Parent: parent[i] = a predecessor of i on a shortest path, parent[src] = src
//   - Stats:  levels, push/pull steps, direction switches, visited count
//   - Each level is computed either by pushing the frontier through A
//     (cost ∝ edges leaving the frontier) or by pulling every unvisited node
//     through Aᵀ (cost ∝ in-edges of unvisited nodes, stopping at the first
//     frontier neighbour).
//
// Direction heuristic
//
//	Pulling needs WithTranspose; without it every level is pushed. The
//	out-degree vector is derived once per call unless WithDegree supplies it. While pushing, the first switch happens when the frontier's
//	out-edges exceed edgesUnexplored/α on a growing frontier; once pull has
//	been used, later switches only need nq > n/β1. A shrinking frontier of
//	at most n/β2 nodes goes back to push. When fewer than n edges remain
//	unexplored the traversal pushes to the end. α, β1, β2 live in Tuning.
//
// Modes
//
//	Level-only traversals propagate booleans with the LOR.LAND semiring.
//	Parent tracking propagates node ids with ANY.SECONDI, so each newly
//	discovered node receives the id of one frontier neighbour. Both modes
//	mask the propagation with the structural complement of the tracking
//	vector, so no node is ever written twice.
//
// Determinism
//
//	For a fixed input the result is reproducible, including the chosen
//	parents: push keeps the first frontier node in discovery order, pull the
//	lowest-index frontier in-neighbour. Callers should still treat a parent
//	as "some shortest-path predecessor"; a different tuning may pick another.
//
// Complexity (n = nodes, m = edges)
//
//   - Time:   O(n + m) push-only; pull levels cost at most Σ in-degree of
//     unvisited nodes.
//   - Memory: O(n) for the frontier pair and the tracking vectors.
//
// Usage
//
//	res, err := bfs.Run(A, src,
//	    bfs.WithTranspose(AT),
//	    bfs.WithDegree(deg),
//	    bfs.WithParent(true),
//	    bfs.WithDestination(dst),
//	)
//
// Options
//
//   - DefaultOptions():       levels only, no destination, no level limit.
//   - WithTranspose: enable pull steps; WithDegree: reuse a degree vector.
//   - WithDestination(dst):   stop at the level that discovers dst.
//   - WithMaxLevel(k):        stop after level k (0 = no limit).
//   - WithLevel, WithParent:  select outputs.
//   - WithTuning(t):          heuristic constants.
//   - WithWorkers(w):         parallel pull scan on large matrices.
//   - WithLogger(l):          logrus debug entries (switches, termination).
//   - WithMetrics(m):         Prometheus collectors from NewMetrics.
//
// Errors
//
//   - ErrMatrixNil, ErrNonSquare      invalid adjacency matrix.
//   - ErrSourceOutOfRange             source outside [0, n).
//   - ErrDestinationOutOfRange        destination outside [0, n).
//   - ErrTransposeShape, ErrDegreeShape  mismatched auxiliary inputs.
//   - ErrNothingTracked               neither levels nor parents requested.
//   - ErrOptionViolation              invalid Option (negative level, bad tuning).
//
// Run never panics on invalid input and never returns partial vectors.
package bfs
