// SPDX-License-Identifier: MIT
// Package: lagraph/builder
//
// impl_star.go - Star(n): hub idFn(0) with spokes to idFn(1..n-1).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Edges 0→i for i=1..n-1; the hub has out-degree n-1, which makes the
//     second BFS level the widest possible frontier.

package builder

import "github.com/katalvlaran/lagraph/core"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with hub at index 0.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return tooFew(methodStar, "n", n, minStarNodes)
		}
		if err := addVertices(g, cfg, methodStar, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := link(g, cfg, methodStar, 0, i, true); err != nil {
				return err
			}
		}

		return nil
	}
}
