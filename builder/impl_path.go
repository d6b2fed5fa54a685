// SPDX-License-Identifier: MIT
// Package: lagraph/builder
//
// impl_path.go - Path(n): 0→1→…→n-1.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Edges (i-1)→i for i=1..n-1 in increasing order; reverse edges follow
//     each forward edge under WithBidirectional.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/lagraph/core"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodPath, "n", n, minPathNodes)
		}
		if err := addVertices(g, cfg, methodPath, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := link(g, cfg, methodPath, i-1, i, true); err != nil {
				return err
			}
		}

		return nil
	}
}
