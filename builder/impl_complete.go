// SPDX-License-Identifier: MIT
// Package: lagraph/builder
//
// impl_complete.go - Complete(n): every ordered pair i≠j.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Edges in (i asc, j asc) order; n(n-1) edges. WithBidirectional has no
//     effect since both directions are always present.

package builder

import "github.com/katalvlaran/lagraph/core"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete digraph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return tooFew(methodComplete, "n", n, minCompleteNodes)
		}
		if err := addVertices(g, cfg, methodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := link(g, cfg, methodComplete, i, j, false); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
